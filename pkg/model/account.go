// pkg/model/account.go
package model

import "time"

// Account is one row of the users table. Accounts are not part of the legacy
// export; they are backed up to a snapshot file before the destination schema
// is recreated and restored afterwards, preserving original identifiers.
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
