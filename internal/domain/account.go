package domain

import (
	"context"
	"errors"
	"time"

	"eventportal/internal/authz"
)

// Role codes. Exactly these two exist; they are seeded at startup.
const (
	RoleAdmin     = authz.RoleAdmin
	RoleOrganiser = authz.RoleOrganiser
)

// Sentinel errors for account operations.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrBadCredential   = errors.New("invalid email or password")
	ErrLockedOut       = errors.New("account temporarily locked")
	ErrWeakCredential  = errors.New("password too weak")
)

// Account represents a registered account. Email doubles as the login name
// and is unique case-insensitively.
type Account struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	Salt         string     `json:"-"`
	FailedLogins int        `json:"-"`
	LockedUntil  *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	Roles        []string   `json:"roles,omitempty"`
}

// NewAccount returns a new Account with the given fields. ID is set by the repository on create.
func NewAccount(email, fullName, passwordHash, salt string, createdAt time.Time) *Account {
	return &Account{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
	}
}

// HasRole reports whether the account carries the given role code.
func (a *Account) HasRole(code string) bool {
	for _, r := range a.Roles {
		if r == code {
			return true
		}
	}
	return false
}

// Locked reports whether the account is inside its lockout window at the given instant.
func (a *Account) Locked(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}

// Role represents an application role ("admin" or "organiser").
type Role struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// OrganiserSummary is one row of the admin organiser listing.
type OrganiserSummary struct {
	ID         int64     `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	EventCount int       `json:"event_count"`
}

// AccountRepository defines the interface for account storage.
type AccountRepository interface {
	// CreateWithRole inserts the account and its role assignment in one
	// transaction, so a crash can never leave a role-less account behind.
	CreateWithRole(ctx context.Context, account *Account, roleID int64) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id int64) (*Account, error)
	// Delete removes the account together with its owned events, those events'
	// guests, its role assignments, and its sessions, in one transaction.
	Delete(ctx context.Context, id int64) error
	AssignRole(ctx context.Context, accountID, roleID int64) error
	// RecordLoginFailure persists the new failure count and, if non-nil, the
	// lockout expiry in one statement.
	RecordLoginFailure(ctx context.Context, id int64, failures int, lockedUntil *time.Time) error
	ResetLoginFailures(ctx context.Context, id int64) error
	ListOrganisers(ctx context.Context) ([]*OrganiserSummary, error)
	CountByRole(ctx context.Context, roleCode string) (int, error)
}

// RoleRepository defines the interface for role storage.
type RoleRepository interface {
	GetByCode(ctx context.Context, code string) (*Role, error)
	ListByAccountID(ctx context.Context, accountID int64) ([]*Role, error)
	// Ensure creates the role if it does not exist and returns it either way.
	Ensure(ctx context.Context, code string) (*Role, error)
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}
