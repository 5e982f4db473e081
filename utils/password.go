package utils

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks the registration password policy and returns one
// message per unmet rule.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < minPasswordLength {
		errs = append(errs, fmt.Sprintf("At least %d characters", minPasswordLength))
	}

	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	if !hasDigit {
		errs = append(errs, "At least one digit")
	}
	if !hasLower {
		errs = append(errs, "At least one lowercase letter")
	}
	if !hasUpper {
		errs = append(errs, "At least one uppercase letter")
	}
	if !hasSymbol {
		errs = append(errs, "At least one symbol")
	}
	return errs
}
