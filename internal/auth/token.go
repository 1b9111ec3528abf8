package auth

import (
	"strings"

	"github.com/google/uuid"
)

// NewToken generates an opaque 32-character hex session token.
// Tokens carry no claims; they are only meaningful as a lookup key
// in the user_tokens table.
func NewToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
