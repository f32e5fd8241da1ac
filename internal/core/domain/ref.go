package domain

import (
	"strings"

	"github.com/google/uuid"
)

const refLength = 24

// newRef returns a random 24-char lowercase hex reference.
func newRef() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:refLength]
}
