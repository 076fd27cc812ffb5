package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateVerificationCode returns a 6-digit numeric code drawn from
// crypto/rand (100000-999999).
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}
