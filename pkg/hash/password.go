package hash

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// MinLength is the password floor enforced at signup.
const MinLength = 8

const bcryptCost = 12

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidatePolicy checks the signup password rules: at least MinLength
// characters, alphanumeric only. The same rules are declared on the
// signup request's validator tags; enforcing them here keeps direct
// service callers honest too.
func ValidatePolicy(password string) error {
	if len(password) < MinLength {
		return fmt.Errorf("password must be at least %d characters", MinLength)
	}
	if !alphanumeric.MatchString(password) {
		return fmt.Errorf("password must contain only alphanumeric characters")
	}
	return nil
}

func Hash(password string) (string, error) {
	if err := ValidatePolicy(password); err != nil {
		return "", err
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

func Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
