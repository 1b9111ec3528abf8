// Package repositories provides SQL data access for the four
// attendance-tracking tables: users, events, attendance and user_tokens.
package repositories

import "errors"

// Sentinel errors surfaced by repositories so callers can branch on the
// outcome without string matching
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrTokenNotFound  = errors.New("token not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrEventNotFound  = errors.New("event not found")
)
