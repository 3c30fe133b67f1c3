package controller

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MaxTeamID    = 20
	MaxGameweek  = 38
	MaxManagerID = 99_999_999
)

// InputError rejects a user-entered id before any request is made.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

// ParseID validates raw as a whole number in [min, max].
func ParseID(field, raw string, min, max int) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &InputError{Field: field, Value: raw, Reason: fmt.Sprintf("Please enter a %s.", field)}
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, &InputError{Field: field, Value: raw, Reason: fmt.Sprintf("%s must be a number.", capitalize(field))}
		}
	}

	n, err := strconv.Atoi(value)
	if err != nil || n < min || n > max {
		return 0, &InputError{Field: field, Value: raw, Reason: fmt.Sprintf("%s must be between %d and %d.", capitalize(field), min, max)}
	}
	return n, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
