package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// RandomSecret returns a cryptographically secure, unbiased random
// string over a base62 alphabet, used for ephemeral signing keys.
func RandomSecret(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}

	limit := big.NewInt(int64(len(secretAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = secretAlphabet[position.Int64()]
	}
	return string(value), nil
}
