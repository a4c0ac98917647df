package models

import "time"

// User is a registered account. PasswordHash is a bcrypt hash and never
// serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	Created      time.Time `json:"created_at"`
}
