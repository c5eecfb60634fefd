// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"unicode"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialChars   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// PasswordStrength is the verdict of [CheckPasswordStrength].
type PasswordStrength string

const (
	StrengthWeak     PasswordStrength = "Weak"
	StrengthModerate PasswordStrength = "Moderate"
	StrengthStrong   PasswordStrength = "Strong"
)

// ErrEmptyCharacterPool is returned when password generation is requested
// with an impossible character set.
var ErrEmptyCharacterPool = errors.New("at least one character type must be selected")

// GeneratePassword builds a random password of the requested length from the
// selected character classes, drawing from crypto/rand. Lowercase letters
// are always included.
func GeneratePassword(length int, useDigits, useUppercase, useSpecial bool) (string, error) {
	if length < 1 {
		return "", errors.New("password length must be at least 1")
	}

	pool := lowercaseChars
	if useDigits {
		pool += digitChars
	}
	if useUppercase {
		pool += uppercaseChars
	}
	if useSpecial {
		pool += specialChars
	}
	if pool == "" {
		return "", ErrEmptyCharacterPool
	}

	var b strings.Builder
	b.Grow(length)
	max := big.NewInt(int64(len(pool)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(pool[n.Int64()])
	}

	return b.String(), nil
}

// CheckPasswordStrength evaluates a password: shorter than 8 characters is
// Weak; all four character classes make it Strong; any two classes make it
// Moderate.
func CheckPasswordStrength(password string) PasswordStrength {
	if len(password) < 8 {
		return StrengthWeak
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	classes := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			classes++
		}
	}

	switch {
	case classes == 4:
		return StrengthStrong
	case classes >= 2:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}
