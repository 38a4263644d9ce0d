package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventportal/internal/domain"
)

func TestSessionRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`INSERT INTO sessions`).
		WithArgs("session-1", int64(42), now, now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSessionRepository(db)
	session := &domain.Session{ID: "session-1", AccountID: 42, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, repo.Create(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("active session", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "account_id", "created_at", "expires_at", "revoked_at"}).
			AddRow("session-1", int64(42), now, now.Add(time.Hour), nil)
		mock.ExpectQuery(`FROM sessions`).
			WithArgs("session-1").
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		session, err := repo.GetByID(ctx, "session-1")
		require.NoError(t, err)
		require.Nil(t, session.RevokedAt)
		require.True(t, session.Active(now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("revoked session", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "account_id", "created_at", "expires_at", "revoked_at"}).
			AddRow("session-1", int64(42), now, now.Add(time.Hour), now)
		mock.ExpectQuery(`FROM sessions`).
			WithArgs("session-1").
			WillReturnRows(rows)

		repo := NewSessionRepository(db)
		session, err := repo.GetByID(ctx, "session-1")
		require.NoError(t, err)
		require.NotNil(t, session.RevokedAt)
		require.False(t, session.Active(now))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM sessions`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewSessionRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_Revoke(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE sessions`).
		WithArgs("session-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSessionRepository(db)
	require.NoError(t, repo.Revoke(context.Background(), "session-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
