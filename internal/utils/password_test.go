package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePassword_Length(t *testing.T) {
	for _, length := range []int{1, 8, 32, 128} {
		pw, err := GeneratePassword(length, true, true, true)
		require.NoError(t, err)
		assert.Len(t, pw, length)
	}
}

func TestGeneratePassword_InvalidLength(t *testing.T) {
	_, err := GeneratePassword(0, true, true, true)
	assert.Error(t, err)
}

func TestGeneratePassword_RespectsCharacterPool(t *testing.T) {
	pw, err := GeneratePassword(64, false, false, false)
	require.NoError(t, err)

	for _, r := range pw {
		assert.Truef(t, strings.ContainsRune(lowercaseChars, r), "unexpected character %q", r)
	}
}

func TestGeneratePassword_Randomness(t *testing.T) {
	p1, err := GeneratePassword(32, true, true, true)
	require.NoError(t, err)
	p2, err := GeneratePassword(32, true, true, true)
	require.NoError(t, err)

	assert.NotEqual(t, p1, p2)
}

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     PasswordStrength
	}{
		{"short", StrengthWeak},
		{"aaaaaaaa", StrengthWeak},
		{"aaaa1111", StrengthModerate},
		{"AAAAbbbb", StrengthModerate},
		{"Tr0ub4dor&3", StrengthStrong},
	}

	for _, tc := range tests {
		t.Run(tc.password, func(t *testing.T) {
			assert.Equal(t, tc.want, CheckPasswordStrength(tc.password))
		})
	}
}
