package utils

import (
	"strings"
	"unicode"
)

// PasswordSymbols is the set of special characters a password may (and must) contain.
const PasswordSymbols = "@$!%*?&"

const passwordMinLength = 8

// ValidatePassword enforces the registration password policy: at least
// eight characters with one lowercase, one uppercase, one digit and one
// symbol from PasswordSymbols, and nothing outside that alphabet.
func ValidatePassword(password string) bool {
	if len(password) < passwordMinLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			hasLower = true
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
