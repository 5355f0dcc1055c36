package common

import "time"

// UserResult is the externally visible shape of a stored user. The password
// hash is deliberately absent: no response ever carries the credential.
type UserResult struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	CreatedAt time.Time `json:"created_at"`
}
