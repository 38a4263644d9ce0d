package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventportal/internal/domain"
)

const (
	maxLoginFailures = 5
	lockoutWindow    = 5 * time.Minute
)

// Post-login landing targets by role.
const (
	landingAdmin     = "/admin/dashboard"
	landingOrganiser = "/events"
	landingDefault   = "/"
)

type authService struct {
	accountRepo    domain.AccountRepository
	roleRepo       domain.RoleRepository
	sessionRepo    domain.SessionRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	emailService   domain.EmailService
	sessionExpiry  time.Duration
	rememberExpiry time.Duration
}

// NewAuthService creates an AuthService with the given repositories and auth ports.
func NewAuthService(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	sessionRepo domain.SessionRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	emailService domain.EmailService,
	sessionExpiry, rememberExpiry time.Duration,
) domain.AuthService {
	return &authService{
		accountRepo:    accountRepo,
		roleRepo:       roleRepo,
		sessionRepo:    sessionRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		emailService:   emailService,
		sessionExpiry:  sessionExpiry,
		rememberExpiry: rememberExpiry,
	}
}

func (s *authService) SignUp(ctx context.Context, email, fullName, password string) (*domain.AuthResult, error) {
	account, err := provisionOrganiser(ctx, s.accountRepo, s.roleRepo, s.hasher, s.emailService, email, fullName, password)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, account, false)
}

func (s *authService) Login(ctx context.Context, email, password string, remember bool) (*domain.AuthResult, error) {
	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Same error as a wrong password so emails cannot be enumerated.
			return nil, domain.ErrBadCredential
		}
		return nil, fmt.Errorf("get account: %w", err)
	}

	now := time.Now()
	if account.Locked(now) {
		return nil, domain.ErrLockedOut
	}

	if err := s.hasher.Compare(account.PasswordHash, account.Salt, password); err != nil {
		failures := account.FailedLogins + 1
		var lockedUntil *time.Time
		if failures >= maxLoginFailures {
			t := now.Add(lockoutWindow)
			lockedUntil = &t
		}
		if err := s.accountRepo.RecordLoginFailure(ctx, account.ID, failures, lockedUntil); err != nil {
			return nil, fmt.Errorf("record login failure: %w", err)
		}
		return nil, domain.ErrBadCredential
	}

	if account.FailedLogins > 0 || account.LockedUntil != nil {
		if err := s.accountRepo.ResetLoginFailures(ctx, account.ID); err != nil {
			return nil, fmt.Errorf("reset login failures: %w", err)
		}
	}

	roles, err := s.roleRepo.ListByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	account.Roles = make([]string, len(roles))
	for i, r := range roles {
		account.Roles[i] = r.Code
	}

	return s.startSession(ctx, account, remember)
}

// Logout revokes the session unconditionally.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *authService) startSession(ctx context.Context, account *domain.Account, remember bool) (*domain.AuthResult, error) {
	expiry := s.sessionExpiry
	if remember {
		expiry = s.rememberExpiry
	}
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(expiry),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokenIssuer.Issue(&domain.TokenClaims{
		AccountID: account.ID,
		Email:     account.Email,
		Roles:     account.Roles,
		SessionID: session.ID,
	}, expiry)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.AuthResult{
		Token:       token,
		Account:     account,
		LandingPath: landingPathFor(account),
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

func landingPathFor(account *domain.Account) string {
	switch {
	case account.HasRole(domain.RoleAdmin):
		return landingAdmin
	case account.HasRole(domain.RoleOrganiser):
		return landingOrganiser
	default:
		return landingDefault
	}
}
