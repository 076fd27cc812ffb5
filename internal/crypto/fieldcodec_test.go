package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldCodec_SealEncryptsAndPairsHash(t *testing.T) {
	c := newTestCipher(t)
	fc := NewFieldCodec(c)

	username := "Ada_L"
	hash := ""
	bio := "likes difference engines"

	err := fc.Seal([]Field{
		{Name: "username", Value: &username, Hash: &hash},
		{Name: "bio", Value: &bio},
	})
	require.NoError(t, err)

	assert.NotEqual(t, "Ada_L", username)
	assert.NotEqual(t, "likes difference engines", bio)
	// Digest of the logical value, never of the envelope.
	assert.Equal(t, BlindIndex("Ada_L"), hash)

	decrypted, err := c.Decrypt(username)
	require.NoError(t, err)
	assert.Equal(t, "Ada_L", decrypted)
}

func TestFieldCodec_SealIdempotent(t *testing.T) {
	c := newTestCipher(t)
	fc := NewFieldCodec(c)

	value := "ada_l"
	hash := ""
	require.NoError(t, fc.Seal([]Field{{Name: "username", Value: &value, Hash: &hash}}))

	sealed := value
	sealedHash := hash

	// Re-sealing an already-encrypted value must not re-encrypt it and
	// must keep the hash derived from the plaintext.
	require.NoError(t, fc.Seal([]Field{{Name: "username", Value: &value, Hash: &hash}}))
	assert.Equal(t, sealed, value)
	assert.Equal(t, sealedHash, hash)
	assert.Equal(t, BlindIndex("ada_l"), hash)
}

func TestFieldCodec_SealPlaintextWithColon(t *testing.T) {
	c := newTestCipher(t)
	fc := NewFieldCodec(c)

	// Looks envelope-shaped but does not decrypt: treated as plaintext.
	value := "bio: cryptanalyst"
	err := fc.Seal([]Field{{Name: "bio", Value: &value}})
	require.NoError(t, err)

	decrypted, err := c.Decrypt(value)
	require.NoError(t, err)
	assert.Equal(t, "bio: cryptanalyst", decrypted)
}

func TestFieldCodec_SealEmptyClearsHash(t *testing.T) {
	fc := NewFieldCodec(newTestCipher(t))

	value := ""
	hash := "stale-digest"
	require.NoError(t, fc.Seal([]Field{{Name: "phone", Value: &value, Hash: &hash}}))

	assert.Equal(t, "", value)
	assert.Equal(t, "", hash)
}

func TestFieldCodec_OpenDecrypts(t *testing.T) {
	c := newTestCipher(t)
	fc := NewFieldCodec(c)

	first := "Ada"
	last := "Lovelace"
	require.NoError(t, fc.Seal([]Field{
		{Name: "first_name", Value: &first},
		{Name: "last_name", Value: &last},
	}))

	require.NoError(t, fc.Open([]Field{
		{Name: "first_name", Value: &first},
		{Name: "last_name", Value: &last},
	}))
	assert.Equal(t, "Ada", first)
	assert.Equal(t, "Lovelace", last)
}

func TestFieldCodec_OpenClearsUndecryptable(t *testing.T) {
	fc := NewFieldCodec(newTestCipher(t))

	good := ""
	require.NoError(t, fc.Seal([]Field{{Name: "good", Value: &good}}))

	bad := "garbage:ZGVmaW5pdGVseSBub3QgY2lwaGVydGV4dA=="
	err := fc.Open([]Field{
		{Name: "good", Value: &good},
		{Name: "bad", Value: &bad},
	})
	require.Error(t, err)
	assert.True(t, IsDecryptionError(err))
	assert.Equal(t, "", bad)
}
