package signup

import (
	"testing"

	"kimlik/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestUsernames(t *testing.T) {
	t.Run("transliterates and joins the name", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		svc := &service{repo: repo}

		got := svc.SuggestUsernames("Gül", "Çağdaş")
		require.NotEmpty(t, got)
		assert.Equal(t, "gulcagdas", got[0])
	})

	t.Run("strips inner whitespace", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		svc := &service{repo: repo}

		got := svc.SuggestUsernames(" Mary Jane ", "Watson")
		require.NotEmpty(t, got)
		assert.Equal(t, "maryjanewatson", got[0])
	})

	t.Run("numbers candidates when the base is taken", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		repo.Create(&models.User{Username: "adalovelace", PhoneNumber: "+905550000001"})
		repo.Create(&models.User{Username: "adalovelace1", PhoneNumber: "+905550000002"})
		svc := &service{repo: repo}

		got := svc.SuggestUsernames("Ada", "Lovelace")
		assert.Equal(t, []string{"adalovelace2", "adalovelace3", "adalovelace4"}, got)
	})

	t.Run("caps at three suggestions", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		svc := &service{repo: repo}

		got := svc.SuggestUsernames("Ada", "Lovelace")
		assert.Len(t, got, 3)
		assert.Equal(t, []string{"adalovelace", "adalovelace1", "adalovelace2"}, got)
	})

	t.Run("too-short base yields nothing", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		svc := &service{repo: repo}

		assert.Empty(t, svc.SuggestUsernames("A", "B"))
	})

	t.Run("long names are clamped to the username limit", func(t *testing.T) {
		_, repo, _ := newTestService(t)
		svc := &service{repo: repo}

		got := svc.SuggestUsernames("Maximiliane", "Vonundzuschwarzenbergfeld")
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got[0]), 30)
	})
}

func TestNormalizeNamePart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ada", "ada"},
		{"  Ada  ", "ada"},
		{"Şule", "sule"},
		{"IŞIL", "isil"},
		{"Mary Jane", "maryjane"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeNamePart(tt.in), "input %q", tt.in)
	}
}
