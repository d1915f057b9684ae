// Package util holds the input validation predicates shared by the auth
// handlers.
package util

import (
	"regexp"
)

var (
	emailPattern   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// ValidateEmail reports whether the address has a plausible
// local@domain.tld shape. Full RFC parsing is not attempted.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateUsername reports whether the username is 3 to 30 characters.
func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

// ValidatePassword reports whether the password is at least 8 characters
// and mixes lowercase, uppercase, a digit, and a special character.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return lowerPattern.MatchString(password) &&
		upperPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}
