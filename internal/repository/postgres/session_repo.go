package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventportal/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (id, account_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.AccountID, s.CreatedAt, s.ExpiresAt)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, account_id, created_at, expires_at, revoked_at
		FROM sessions
		WHERE id = $1
	`
	s := &domain.Session{}
	var revokedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.AccountID, &s.CreatedAt, &s.ExpiresAt, &revokedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if revokedAt.Valid {
		s.RevokedAt = &revokedAt.Time
	}
	return s, nil
}

// Revoke is unconditional: revoking an already revoked or expired session succeeds.
func (r *sessionRepository) Revoke(ctx context.Context, id string) error {
	query := `
		UPDATE sessions
		SET revoked_at = NOW()
		WHERE id = $1 AND revoked_at IS NULL
	`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}
