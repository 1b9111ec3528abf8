package models

// UserToken represents an opaque session token for a user
type UserToken struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}
