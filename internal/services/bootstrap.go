package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventportal/internal/domain"
)

// Seeder guarantees the two roles and the one default admin account exist.
// Seed is idempotent: every step is guarded by an existence check or an
// on-conflict no-op, so it is safe to run on every process start and safe
// to race against another instance starting at the same time.
type Seeder struct {
	accountRepo domain.AccountRepository
	roleRepo    domain.RoleRepository
	hasher      domain.PasswordHasher

	adminEmail    string
	adminName     string
	adminPassword string
}

// NewSeeder creates a Seeder for the given repositories and admin credentials.
func NewSeeder(accountRepo domain.AccountRepository, roleRepo domain.RoleRepository, hasher domain.PasswordHasher, adminEmail, adminName, adminPassword string) *Seeder {
	return &Seeder{
		accountRepo:   accountRepo,
		roleRepo:      roleRepo,
		hasher:        hasher,
		adminEmail:    adminEmail,
		adminName:     adminName,
		adminPassword: adminPassword,
	}
}

// Seed ensures the "admin" and "organiser" roles exist, then the seeded
// admin account. This is the only path that ever yields an admin account.
func (s *Seeder) Seed(ctx context.Context) error {
	adminRole, err := s.roleRepo.Ensure(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("ensure role %q: %w", domain.RoleAdmin, err)
	}
	if _, err := s.roleRepo.Ensure(ctx, domain.RoleOrganiser); err != nil {
		return fmt.Errorf("ensure role %q: %w", domain.RoleOrganiser, err)
	}

	if existing, err := s.accountRepo.GetByEmail(ctx, s.adminEmail); err == nil {
		// Re-assert the role even when the account already exists, so a
		// start that died between earlier statements heals on the next run.
		// The assignment is an on-conflict no-op.
		return s.assignAdminRole(ctx, existing.ID, adminRole.ID)
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, s.adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	account := domain.NewAccount(s.adminEmail, s.adminName, hash, salt, time.Now())
	if err := s.accountRepo.CreateWithRole(ctx, account, adminRole.ID); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			// Another instance seeded the account between our check and
			// insert; make sure it carries the role either way.
			existing, gerr := s.accountRepo.GetByEmail(ctx, s.adminEmail)
			if gerr != nil {
				return fmt.Errorf("look up admin account: %w", gerr)
			}
			return s.assignAdminRole(ctx, existing.ID, adminRole.ID)
		}
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}

func (s *Seeder) assignAdminRole(ctx context.Context, accountID, roleID int64) error {
	if err := s.accountRepo.AssignRole(ctx, accountID, roleID); err != nil {
		return fmt.Errorf("assign admin role: %w", err)
	}
	return nil
}
