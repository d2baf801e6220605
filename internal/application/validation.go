package application

import (
	"fmt"
	"strconv"
	"strings"

	"moodlog/internal/domain"
)

// ValidateContent checks that content is non-empty after trimming whitespace
// and returns the trimmed value.
func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", &ValidationError{
			Field:   "content",
			Message: "content is required",
			Err:     ErrEmptyContent,
		}
	}
	return trimmed, nil
}

// ParseMood parses user-typed mood text into an integer in the accepted range
func ParseMood(raw string) (int, error) {
	mood, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{
			Field:   "mood",
			Message: fmt.Sprintf("mood must be a whole number, got: %q", raw),
			Err:     ErrInvalidMood,
		}
	}
	return mood, ValidateMood(mood)
}

// ValidateMood checks that mood lies within the 1-10 scale
func ValidateMood(mood int) error {
	if mood < domain.MinMood || mood > domain.MaxMood {
		return &ValidationError{
			Field:   "mood",
			Message: fmt.Sprintf("mood must be between %d and %d, got: %d", domain.MinMood, domain.MaxMood, mood),
			Err:     ErrInvalidMood,
		}
	}
	return nil
}

// ParseID parses an entry ID argument
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid entry ID: %q", raw),
			Err:     ErrInvalidID,
		}
	}
	return id, nil
}
