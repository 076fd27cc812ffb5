package signup

import (
	"fmt"
	"strings"
)

var turkishReplacer = strings.NewReplacer(
	"ı", "i",
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ö", "o",
	"ç", "c",
	"İ", "i",
)

// SuggestUsernames proposes up to three free usernames derived from the
// registrant's name: the transliterated base, then base1, base2, ...
// Availability is checked through the blind index like every other
// username lookup.
func (s *service) SuggestUsernames(firstName, lastName string) []string {
	first := normalizeNamePart(firstName)
	last := normalizeNamePart(lastName)

	base := first + last
	if len(base) > 30 {
		base = base[:30]
	}
	if len(base) < 3 {
		return []string{}
	}

	suggestions := make([]string, 0, 3)
	if free, _ := s.usernameFree(base); free {
		suggestions = append(suggestions, base)
	}

	for counter := 1; len(suggestions) < 3 && counter <= 999; counter++ {
		candidate := fmt.Sprintf("%s%d", base, counter)
		if len(candidate) > 30 {
			continue
		}
		if free, _ := s.usernameFree(candidate); free {
			suggestions = append(suggestions, candidate)
		}
	}
	return suggestions
}

func (s *service) usernameFree(candidate string) (bool, error) {
	exists, err := s.UsernameExists(candidate)
	return !exists && err == nil, err
}

func normalizeNamePart(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = turkishReplacer.Replace(n)
	return strings.Join(strings.Fields(n), "")
}
