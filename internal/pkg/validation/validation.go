package validation

import (
	"regexp"
	"strings"
)

// Registration only enforces this minimum; see StrongPassword below.
const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// StrongPassword requires at least 8 characters including a lowercase
// letter, an uppercase letter, a digit and one of @$!%*?&. It is kept as a
// stricter policy option but is not wired into the registration path, which
// enforces only MinPasswordLength.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
