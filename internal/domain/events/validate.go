package events

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New()

// ValidateField checks a single named request field. A missing required
// value and a present non-alphanumeric value are the only failure modes;
// an absent optional value is always valid.
func ValidateField(name string, required bool, value string) (bool, string) {
	if required && value == "" {
		return false, name + " is required."
	}
	if value != "" && fieldValidator.Var(value, "alphanum") != nil {
		return false, name + " must be alphanumeric."
	}
	return true, ""
}

var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// IsISO8601 reports whether value parses as an ISO-8601 timestamp or date.
func IsISO8601(value string) bool {
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
