package crypto

import (
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func newTestCipher(t *testing.T) *Cipher {
	t.Helper()
	c, err := NewCipher(testKey(t))
	require.NoError(t, err)
	return c
}

func TestNewCipher_RejectsBadKey(t *testing.T) {
	_, err := NewCipher([]byte("short"))
	assert.Error(t, err)
}

func TestCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t)

	tests := []string{
		"hello",
		"ada lovelace",
		"+905551234567",
		"exactly sixteen!",             // one full block
		"value:with:colons",            // separators in plaintext
		strings.Repeat("uzun metin ", 100),
		"çok güzel ünicode",
	}

	for _, plaintext := range tests {
		t.Run(plaintext[:min(len(plaintext), 20)], func(t *testing.T) {
			envelope, err := c.Encrypt(plaintext)
			require.NoError(t, err)

			parts := strings.Split(envelope, ":")
			require.Len(t, parts, 2)

			decrypted, err := c.Decrypt(envelope)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)
		})
	}
}

func TestCipher_EmptyPassthrough(t *testing.T) {
	c := newTestCipher(t)

	envelope, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", envelope)

	plaintext, err := c.Decrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", plaintext)
}

func TestCipher_FreshIVPerCall(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("same plaintext")
	require.NoError(t, err)
	second, err := c.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_DecryptMalformed(t *testing.T) {
	c := newTestCipher(t)

	tests := []struct {
		name     string
		envelope string
	}{
		{"no separator", "bm9zZXBhcmF0b3I="},
		{"too many separators", "YWJj:ZGVm:Z2hp"},
		{"bad iv base64", "not-base64!:ZGVm"},
		{"bad ct base64", "YWJjZGVmZ2hpamtsbW5vcA==:???"},
		{"wrong block sizes", "YWJj:ZGVm"},
		{"plaintext with colon", "ada:lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.envelope)
			require.Error(t, err)
			assert.True(t, IsDecryptionError(err))
		})
	}
}

func TestCipher_WrongKey(t *testing.T) {
	c1 := newTestCipher(t)
	c2 := newTestCipher(t)

	envelope, err := c1.Encrypt("secret value")
	require.NoError(t, err)

	decrypted, err := c2.Decrypt(envelope)
	if err == nil {
		// CBC padding can accidentally validate under a wrong key; the
		// result must still not be the original plaintext.
		assert.NotEqual(t, "secret value", decrypted)
		return
	}
	assert.True(t, IsDecryptionError(err))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
