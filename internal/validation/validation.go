// Package validation checks and normalizes incoming complaint and fraud
// payloads. Create mode enforces required fields; update mode validates
// only the fields present and requires at least one of them. All failures
// are reported as field-level messages, never as panics or bind errors.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/careline/case-service/internal/errs"
)

var (
	// International phone format: optional +, then 1-16 digits not starting with 0.
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// result accumulates field-level messages across all checks so every
// problem in a payload is reported in one response.
type result struct {
	details []string
}

func (r *result) add(msg string) {
	r.details = append(r.details, msg)
}

func (r *result) err() error {
	if len(r.details) == 0 {
		return nil
	}
	return &errs.ValidationError{Details: r.details}
}

func validPhone(s string) bool {
	return phonePattern.MatchString(s)
}

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// enumContains reports whether v is one of the allowed values.
func enumContains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// fieldLen counts characters the way the API documents maximum lengths.
func fieldLen(s string) int {
	return utf8.RuneCountInString(s)
}

// trimAll trims every element of a string list, dropping nothing.
func trimAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
