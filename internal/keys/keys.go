// Package keys issues and rotates API keys for the hosted rendering API.
package keys

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sk25649/pdf-api-landing-page/internal/models"
)

const keyPrefix = "pk_"

// keyBytes yields 46 hex characters after the prefix.
const keyBytes = 23

type Service struct {
	db *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// NewKey generates an opaque bearer token: "pk_" plus 46 hex characters.
func NewKey() (string, error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return keyPrefix + hex.EncodeToString(buf), nil
}

// Regenerate revokes every active key for the user and inserts a fresh
// one. The two steps are not wrapped in a cross-request lock; two racing
// regenerations can briefly leave more than one active key, which is an
// accepted risk (the newest wins on next read).
func (s *Service) Regenerate(ctx context.Context, userID string) (models.APIKey, error) {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE api_keys SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL",
		userID,
	); err != nil {
		return models.APIKey{}, fmt.Errorf("failed to revoke existing keys: %w", err)
	}

	key, err := NewKey()
	if err != nil {
		return models.APIKey{}, err
	}

	record := models.APIKey{UserID: userID, Key: key}
	err = s.db.QueryRowxContext(ctx,
		"INSERT INTO api_keys (user_id, key) VALUES ($1, $2) RETURNING id, created_at",
		userID, key,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return models.APIKey{}, fmt.Errorf("failed to insert new key: %w", err)
	}

	return record, nil
}

// Active returns the user's current non-revoked key, or false when the
// user has never generated one.
func (s *Service) Active(ctx context.Context, userID string) (models.APIKey, bool, error) {
	var record models.APIKey
	err := s.db.GetContext(ctx, &record,
		"SELECT id, user_id, key, created_at, revoked_at FROM api_keys WHERE user_id = $1 AND revoked_at IS NULL ORDER BY created_at DESC LIMIT 1",
		userID,
	)
	if err == sql.ErrNoRows {
		return models.APIKey{}, false, nil
	}
	if err != nil {
		return models.APIKey{}, false, fmt.Errorf("failed to fetch active key: %w", err)
	}
	return record, true, nil
}
