package postgres

import (
	"context"
	"database/sql"

	"eventportal/internal/domain"
)

type roleRepository struct {
	DB *sql.DB
}

func NewRoleRepository(db *sql.DB) domain.RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	query := `
		SELECT id, code
		FROM roles
		WHERE code = $1
	`
	role := &domain.Role{}
	err := r.DB.QueryRowContext(ctx, query, code).Scan(&role.ID, &role.Code)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) ListByAccountID(ctx context.Context, accountID int64) ([]*domain.Role, error) {
	query := `
		SELECT r.id, r.code
		FROM roles r
		INNER JOIN account_roles ar ON ar.role_id = r.id
		WHERE ar.account_id = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		role := &domain.Role{}
		if err := rows.Scan(&role.ID, &role.Code); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Ensure inserts the role if absent and returns the stored row. The ON
// CONFLICT no-op keeps the seeding procedure idempotent under restarts.
func (r *roleRepository) Ensure(ctx context.Context, code string) (*domain.Role, error) {
	query := `
		INSERT INTO roles (code)
		VALUES ($1)
		ON CONFLICT (code) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, query, code); err != nil {
		return nil, err
	}
	return r.GetByCode(ctx, code)
}
