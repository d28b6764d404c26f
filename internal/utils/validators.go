// internal/utils/validators.go
// Validation utility functions

package utils

import (
	"fmt"
	"regexp"
)

var userIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidateUserID validates that a user id is safe to embed in a Java
// package name and use as a scoreboard/match key.
func ValidateUserID(userID string) error {
	if len(userID) == 0 || len(userID) > 64 {
		return fmt.Errorf("user id must be between 1 and 64 characters long")
	}
	if !userIDRegex.MatchString(userID) {
		return fmt.Errorf("user id must contain only letters, digits, and underscores")
	}
	return nil
}
