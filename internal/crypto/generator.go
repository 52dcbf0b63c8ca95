package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*-_=+"

	// MinGeneratedLength keeps generated passwords above the registration minimum.
	MinGeneratedLength = 12
)

var ErrGeneratedLengthTooShort = errors.New("generated password length must be at least 12")

var passwordClasses = []string{uppercaseChars, lowercaseChars, numberChars, symbolChars}

// GeneratePassword returns a random password of the given length containing at
// least one upper-case letter, lower-case letter, digit and symbol.
func GeneratePassword(length int) (string, error) {
	if length < MinGeneratedLength {
		return "", ErrGeneratedLengthTooShort
	}

	var pool string
	for _, class := range passwordClasses {
		pool += class
	}

	result := make([]byte, length)
	for i := range result {
		charset := pool
		if i < len(passwordClasses) {
			charset = passwordClasses[i]
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fisher-Yates so the guaranteed characters do not sit at the front.
	for i := len(result) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		result[i], result[j.Int64()] = result[j.Int64()], result[i]
	}

	return string(result), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
