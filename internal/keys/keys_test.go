package keys

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^pk_[0-9a-f]{46}$`)

func setupService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewService(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestNewKey(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)
	assert.Regexp(t, keyPattern, key)

	other, err := NewKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

// Regeneration must first revoke every active key and only then insert,
// so any sequence of regenerations leaves exactly one non-revoked key.
func TestRegenerate(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE api_keys SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL",
	)).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO api_keys (user_id, key) VALUES ($1, $2) RETURNING id, created_at",
	)).WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))

	record, err := svc.Regenerate(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 7, record.ID)
	assert.Equal(t, "user-1", record.UserID)
	assert.Regexp(t, keyPattern, record.Key)
	assert.Nil(t, record.RevokedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegenerateRevokeFailure(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectExec("UPDATE api_keys").WithArgs("user-1").WillReturnError(assert.AnError)

	_, err := svc.Regenerate(context.Background(), "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to revoke")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActive(t *testing.T) {
	svc, mock := setupService(t)
	created := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, key, created_at, revoked_at FROM api_keys WHERE user_id = $1 AND revoked_at IS NULL",
	)).WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "key", "created_at", "revoked_at"}).
			AddRow(3, "user-1", "pk_abc", created, nil))

	record, ok, err := svc.Active(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pk_abc", record.Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveNoKey(t *testing.T) {
	svc, mock := setupService(t)

	mock.ExpectQuery("SELECT id, user_id, key").WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "key", "created_at", "revoked_at"}))

	_, ok, err := svc.Active(context.Background(), "user-2")
	require.NoError(t, err)
	assert.False(t, ok)
}
