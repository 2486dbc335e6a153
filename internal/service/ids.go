package service

import (
	"strings"

	"github.com/google/uuid"
)

// NewID synthesizes a public record id: the resource prefix followed by
// the first 8 hex characters of a random UUID, uppercased.
func NewID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}
