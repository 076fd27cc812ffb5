// Package crypto implements the field-encryption primitives used to keep
// identity attributes confidential at rest: a symmetric envelope cipher,
// a blind-index digest for equality lookups, and the field codec that
// applies both at the storage boundary.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// DecryptionError wraps any failure to recover a plaintext from an
// envelope. The cause is kept for logging only and must never be
// returned to API clients.
type DecryptionError struct {
	Cause error
}

func (e *DecryptionError) Error() string {
	return "unable to decrypt value"
}

func (e *DecryptionError) Unwrap() error { return e.Cause }

// IsDecryptionError reports whether err is (or wraps) a DecryptionError.
func IsDecryptionError(err error) bool {
	var de *DecryptionError
	return errors.As(err, &de)
}

// Cipher encrypts single values under AES-CBC with a random IV per call.
// The stored form is "base64(iv):base64(ciphertext)". The key is fixed
// at construction and never exposed.
type Cipher struct {
	key []byte
}

// NewCipher validates the key length (16, 24 or 32 bytes) and returns a
// ready cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if _, err := aes.NewCipher(key); err != nil {
		return nil, fmt.Errorf("invalid encryption key: %w", err)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &Cipher{key: k}, nil
}

// Encrypt returns the envelope form of plaintext. Empty values are
// returned unchanged: absent data is stored absent, not encrypted.
// Every call draws a fresh IV, so envelopes for equal plaintexts differ.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, padded)

	return base64.StdEncoding.EncodeToString(iv) + ":" + base64.StdEncoding.EncodeToString(ct), nil
}

// Decrypt parses an envelope and recovers the plaintext. Empty values
// pass through unchanged. Any malformation (missing separator, bad
// base64, wrong key, invalid padding) yields a DecryptionError; callers
// must treat it as "undecryptable", never as "absent".
func (c *Cipher) Decrypt(envelope string) (string, error) {
	if envelope == "" {
		return envelope, nil
	}

	parts := strings.Split(envelope, ":")
	if len(parts) != 2 {
		return "", &DecryptionError{Cause: errors.New("envelope missing iv separator")}
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", &DecryptionError{Cause: fmt.Errorf("bad iv encoding: %w", err)}
	}
	ct, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", &DecryptionError{Cause: fmt.Errorf("bad ciphertext encoding: %w", err)}
	}
	if len(iv) != aes.BlockSize || len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return "", &DecryptionError{Cause: errors.New("envelope has invalid block sizes")}
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", &DecryptionError{Cause: err}
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)

	unpadded, err := pkcs7Unpad(pt, aes.BlockSize)
	if err != nil {
		return "", &DecryptionError{Cause: err}
	}
	return string(unpadded), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
