package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
//
// The password is stored verbatim and compared byte-for-byte on login; this
// service deliberately carries the plain-credential contract of the system it
// replaces. See the README before pointing it at anything real.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
