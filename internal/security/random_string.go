package security

import (
	"crypto/rand"
	"errors"
)

// PasswordAlphabet leaves out characters that are easy to misread (0/O, 1/l/I).
const PasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minTemporaryPasswordLength = 8

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errLargeAlphabet  = errors.New("alphabet must have at most 256 characters")
)

// RandomString returns a string of length characters drawn uniformly from
// alphabet using crypto/rand. Bytes that would bias the draw are discarded.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case len(alphabet) == 0:
		return "", errEmptyAlphabet
	case len(alphabet) > 256:
		return "", errLargeAlphabet
	}

	// Largest multiple of len(alphabet) that fits in a byte.
	limit := 256 - 256%len(alphabet)
	value := make([]byte, 0, length)
	chunk := make([]byte, length)
	for len(value) < length {
		if _, err := rand.Read(chunk); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if int(b) >= limit {
				continue
			}
			value = append(value, alphabet[int(b)%len(alphabet)])
			if len(value) == length {
				break
			}
		}
	}
	return string(value), nil
}

// TemporaryPassword is the one-off password handed out by a reset. Lengths
// below eight are raised to eight.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}
	return RandomString(length, PasswordAlphabet)
}
