package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserID must be lowercase letters, digits, underscore or hyphen, 1-40 chars
var userIdRx = regexp.MustCompile(`^[a-z0-9_-]{1,40}$`)

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// CreateUser validates input for creating a new user. UserID is mandatory.
func CreateUser(userId, name, email string) error {
	if userId == "" {
		return fmt.Errorf("userId is required")
	}
	if !userIdRx.MatchString(userId) {
		return fmt.Errorf("userId must match %s", userIdRx.String())
	}
	if err := NonEmpty("name", name); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return nil
}
