package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("carol@example.com"))
	assert.True(t, ValidateEmail("first.last+tag@sub.example.co"))
	assert.False(t, ValidateEmail("nope"))
	assert.False(t, ValidateEmail("carol@"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("bob"))
	assert.False(t, ValidateUsername("ab"))
	assert.False(t, ValidateUsername(""))
	assert.True(t, ValidateUsername(strings.Repeat("a", 30)))
	assert.False(t, ValidateUsername(strings.Repeat("a", 31)))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all character classes", "Str0ng!pass", true},
		{"too short", "S0!a", false},
		{"no uppercase", "str0ng!pass", false},
		{"no digit", "Strong!pass", false},
		{"no special", "Str0ngpass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
