package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// commonPasswords is a short deny-list of the passwords we see most in
// credential-stuffing dumps. Compared after lowercasing.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"qwerty": {}, "qwerty123": {}, "qwertyuiop": {}, "abc123": {}, "abcd1234": {},
	"iloveyou": {}, "letmein": {}, "welcome": {}, "welcome1": {}, "monkey": {},
	"dragon": {}, "sunshine": {}, "princess": {}, "football": {}, "baseball": {},
	"master": {}, "shadow": {}, "superman": {}, "batman": {}, "trustno1": {},
	"admin": {}, "admin123": {}, "root": {}, "login": {}, "guest": {},
	"111111": {}, "000000": {}, "654321": {}, "123123": {}, "121212": {},
}

// PasswordPolicy mirrors the four checks we enforce at registration and
// password change: minimum length, common-password deny-list, not purely
// numeric, and not substantially similar to the account's own attributes.
type PasswordPolicy struct {
	MinLength int
}

// Validate returns ErrWeakPassword (wrapped with the failing check) when the
// candidate fails any rule. attributes carries the account's email, username
// and name so the similarity check can reject passwords derived from them.
func (p PasswordPolicy) Validate(password string, attributes ...string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("%w: must contain at least %d characters", ErrWeakPassword, p.MinLength)
	}

	lowered := strings.ToLower(password)
	if _, ok := commonPasswords[lowered]; ok {
		return fmt.Errorf("%w: this password is too common", ErrWeakPassword)
	}

	if isEntirelyNumeric(password) {
		return fmt.Errorf("%w: this password is entirely numeric", ErrWeakPassword)
	}

	for _, attr := range attributes {
		for _, part := range attributeParts(attr) {
			if len(part) < 4 {
				continue
			}
			if strings.Contains(lowered, part) || strings.Contains(part, lowered) {
				return fmt.Errorf("%w: this password is too similar to your personal information", ErrWeakPassword)
			}
		}
	}

	return nil
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// attributeParts splits an attribute on the separators that show up in
// emails and names, so "jane.doe@example.com" also yields "jane" and "doe".
func attributeParts(attr string) []string {
	attr = strings.ToLower(strings.TrimSpace(attr))
	if attr == "" {
		return nil
	}
	parts := strings.FieldsFunc(attr, func(r rune) bool {
		return r == '@' || r == '.' || r == '_' || r == '-' || r == '+' || r == ' '
	})
	return append(parts, attr)
}
