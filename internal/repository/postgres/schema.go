package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the portal schema. The two unique indexes back the
// store-enforced invariants: account emails are unique case-insensitively,
// and a guest email may register at most once per event. Referential actions
// are deliberately RESTRICT; cascades are performed explicitly inside the
// repository transactions so the delete order is visible in code.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL,
		full_name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		salt TEXT NOT NULL,
		failed_logins INT NOT NULL DEFAULT 0,
		locked_until TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_key ON accounts (lower(email))`,
	`CREATE TABLE IF NOT EXISTS account_roles (
		account_id BIGINT NOT NULL REFERENCES accounts(id),
		role_id BIGINT NOT NULL REFERENCES roles(id),
		PRIMARY KEY (account_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		starts_at TIMESTAMPTZ NOT NULL,
		owner_id BIGINT NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS guests (
		id BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		event_id BIGINT NOT NULL REFERENCES events(id),
		registered_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS guests_event_email_key ON guests (event_id, lower(email))`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts(id),
		created_at TIMESTAMPTZ NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ
	)`,
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
// Safe to call on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
