package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"

	"eventportal/internal/domain"
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{DB: db}
}

// CreateWithRole inserts the account row and its role assignment in one
// transaction, so a crash between the two statements cannot strand a
// role-less account.
func (r *accountRepository) CreateWithRole(ctx context.Context, a *domain.Account, roleID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (email, full_name, password_hash, salt, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, query, a.Email, a.FullName, a.PasswordHash, a.Salt, a.CreatedAt).Scan(&a.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	assign := `
		INSERT INTO account_roles (account_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (account_id, role_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, assign, a.ID, roleID); err != nil {
		return err
	}
	return tx.Commit()
}

const accountColumns = `id, email, full_name, password_hash, salt, failed_logins, locked_until, created_at`

func scanAccount(row *sql.Row) (*domain.Account, error) {
	a := &domain.Account{}
	var lockedUntil sql.NullTime
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &a.PasswordHash, &a.Salt, &a.FailedLogins, &lockedUntil, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	if lockedUntil.Valid {
		a.LockedUntil = &lockedUntil.Time
	}
	return a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE lower(email) = lower($1)
	`
	return scanAccount(r.DB.QueryRowContext(ctx, query, strings.TrimSpace(email)))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
	`
	return scanAccount(r.DB.QueryRowContext(ctx, query, id))
}

// Delete removes the account and everything hanging off it in one
// transaction: guests of its owned events, the events themselves, role
// assignments, and sessions. Children go first; the store has no declarative
// cascades.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	steps := []string{
		`DELETE FROM guests WHERE event_id IN (SELECT id FROM events WHERE owner_id = $1)`,
		`DELETE FROM events WHERE owner_id = $1`,
		`DELETE FROM account_roles WHERE account_id = $1`,
		`DELETE FROM sessions WHERE account_id = $1`,
	}
	for _, stmt := range steps {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return err
		}
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return tx.Commit()
}

func (r *accountRepository) AssignRole(ctx context.Context, accountID, roleID int64) error {
	query := `
		INSERT INTO account_roles (account_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (account_id, role_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, accountID, roleID)
	return err
}

func (r *accountRepository) RecordLoginFailure(ctx context.Context, id int64, failures int, lockedUntil *time.Time) error {
	query := `
		UPDATE accounts
		SET failed_logins = $2, locked_until = $3
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id, failures, lockedUntil)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) ResetLoginFailures(ctx context.Context, id int64) error {
	query := `
		UPDATE accounts
		SET failed_logins = 0, locked_until = NULL
		WHERE id = $1
	`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *accountRepository) ListOrganisers(ctx context.Context) ([]*domain.OrganiserSummary, error) {
	query := `
		SELECT a.id, a.full_name, a.email, a.created_at, COUNT(e.id)
		FROM accounts a
		INNER JOIN account_roles ar ON ar.account_id = a.id
		INNER JOIN roles r ON r.id = ar.role_id AND r.code = $1
		LEFT JOIN events e ON e.owner_id = a.id
		GROUP BY a.id, a.full_name, a.email, a.created_at
		ORDER BY a.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, domain.RoleOrganiser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	organisers := make([]*domain.OrganiserSummary, 0)
	for rows.Next() {
		o := &domain.OrganiserSummary{}
		if err := rows.Scan(&o.ID, &o.FullName, &o.Email, &o.CreatedAt, &o.EventCount); err != nil {
			return nil, err
		}
		organisers = append(organisers, o)
	}
	return organisers, rows.Err()
}

func (r *accountRepository) CountByRole(ctx context.Context, roleCode string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM accounts a
		INNER JOIN account_roles ar ON ar.account_id = a.id
		INNER JOIN roles r ON r.id = ar.role_id
		WHERE r.code = $1
	`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, roleCode).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
