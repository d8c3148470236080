package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	profileIDAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"
	profileIDLength   = 24
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns an unbiased random string drawn from alphabet.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// NewProfileID returns an opaque identifier for a new anonymous profile.
func NewProfileID() (string, error) {
	return RandomString(profileIDLength, profileIDAlphabet)
}

func IsProfileID(value string) bool {
	if len(value) != profileIDLength {
		return false
	}
	for index := 0; index < len(value); index++ {
		found := false
		for candidate := 0; candidate < len(profileIDAlphabet); candidate++ {
			if value[index] == profileIDAlphabet[candidate] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
