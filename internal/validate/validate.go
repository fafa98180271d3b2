// Package validate guards inputs before they reach the store. Every
// function either returns nil or an error wrapping task.ErrValidation
// with a message naming the offending field.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/avdeev/taskdeck/internal/task"
)

// TitleMinLength is the minimum title length after trimming.
const TitleMinLength = 3

// idPattern matches the canonical UUIDv4 text form: 8-4-4-4-12 hex
// groups, version nibble fixed to 4, variant nibble in {8,9,a,b}.
var idPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// NonEmpty fails when s is empty after trimming whitespace.
func NonEmpty(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s must not be empty", task.ErrValidation, field)
	}
	return nil
}

// MinLength fails when s, trimmed, is shorter than min characters.
// Length is counted in runes, not bytes.
func MinLength(field, s string, min int) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) < min {
		return fmt.Errorf("%w: %s must be at least %d characters", task.ErrValidation, field, min)
	}
	return nil
}

// Title combines the non-empty and minimum-length checks used for titles.
func Title(s string) error {
	if err := NonEmpty("title", s); err != nil {
		return err
	}
	return MinLength("title", s, TitleMinLength)
}

// Status fails when s is not a declared status value.
func Status(s task.Status) error {
	if !s.Valid() {
		return fmt.Errorf("%w: unknown status %d", task.ErrValidation, int(s))
	}
	return nil
}

// Difficulty fails when d is not a declared difficulty value.
func Difficulty(d task.Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: unknown difficulty %d", task.ErrValidation, int(d))
	}
	return nil
}

// Priority fails when p is not a declared priority value.
func Priority(p task.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("%w: unknown priority %d", task.ErrValidation, int(p))
	}
	return nil
}

// DueDate fails when a concrete due instant lies before now. A nil due
// date always passes. The check happens once, at set time; existing due
// dates are never re-validated.
func DueDate(due *time.Time, now time.Time) error {
	if due != nil && due.Before(now) {
		return fmt.Errorf("%w: due date must not be in the past", task.ErrValidation)
	}
	return nil
}

// ID fails unless s matches the canonical lowercase UUIDv4 text form.
func ID(s string) error {
	if !idPattern.MatchString(s) {
		return fmt.Errorf("%w: malformed task id %q", task.ErrValidation, s)
	}
	return nil
}

// Range fails when v falls outside [min, max].
func Range(field string, v, min, max float64) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s must be between %v and %v, got %v", task.ErrValidation, field, min, max, v)
	}
	return nil
}

// NotEmptySlice fails when xs holds no elements.
func NotEmptySlice[T any](field string, xs []T) error {
	if len(xs) == 0 {
		return fmt.Errorf("%w: %s must not be empty", task.ErrValidation, field)
	}
	return nil
}
