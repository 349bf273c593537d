package models

import "time"

// APIKey is an issued bearer token for the hosted rendering API.
// Regeneration revokes the prior key and inserts a new row, so the table
// doubles as an append-only audit trail.
type APIKey struct {
	ID        int        `json:"id" db:"id"`
	UserID    string     `json:"user_id" db:"user_id"`
	Key       string     `json:"key" db:"key"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
}
