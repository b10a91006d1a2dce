// Package validation contains client-facing field validators.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinActTitleLen is the minimum accepted act title length in runes.
	MinActTitleLen = 5
	// MaxActTitleLen caps act titles.
	MaxActTitleLen = 200

	minReasonLen   = 10
	minPasswordLen = 8
)

var staticIDRegex = regexp.MustCompile(`^[A-Za-z0-9 ._#-]{2,32}$`)

// ValidateStaticID checks the user-supplied in-world identifier.
func ValidateStaticID(staticID string) error {
	staticID = strings.TrimSpace(staticID)
	if staticID == "" {
		return fmt.Errorf("static ID is required")
	}
	if !staticIDRegex.MatchString(staticID) {
		return fmt.Errorf("static ID must be 2-32 characters (letters, digits, spaces, . _ # -)")
	}
	return nil
}

// ValidateNickname checks the display name.
func ValidateNickname(nickname string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(nickname))
	if n < 3 || n > 64 {
		return fmt.Errorf("nickname must be 3-64 characters")
	}
	return nil
}

// ValidateActTitle enforces the title length bounds for act drafts.
func ValidateActTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	if n < MinActTitleLen {
		return fmt.Errorf("title must be at least %d characters", MinActTitleLen)
	}
	if n > MaxActTitleLen {
		return fmt.Errorf("title must be at most %d characters", MaxActTitleLen)
	}
	return nil
}

// ValidateReason enforces the minimum length for request reasons/comments.
func ValidateReason(reason string) error {
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < minReasonLen {
		return fmt.Errorf("reason must be at least %d characters", minReasonLen)
	}
	return nil
}

// ValidatePassword enforces a minimal strength policy.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and digits")
	}
	return nil
}
