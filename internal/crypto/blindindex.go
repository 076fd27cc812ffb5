package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// BlindIndex derives the deterministic lookup digest for a plaintext
// value: SHA-256 over the lowercased input, hex encoded (64 chars).
// Empty input yields an empty digest so absent attributes stay absent.
//
// The digest supports exact-match search only. Use the same
// normalization on write and on query or lookups will silently miss.
func BlindIndex(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(strings.ToLower(value)))
	return hex.EncodeToString(sum[:])
}
