package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode"

	"eventportal/internal/domain"
)

const minPasswordLen = 6

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// validatePassword enforces the credential policy: minimum length 6, at
// least one digit, one lowercase, one uppercase, and one non-alphanumeric
// character. The returned error wraps ErrWeakCredential and names the
// unmet rule.
func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return fmt.Errorf("%w: must be at least %d characters", domain.ErrWeakCredential, minPasswordLen)
	}
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSymbol = true
		}
	}
	switch {
	case !hasDigit:
		return fmt.Errorf("%w: must contain at least one digit", domain.ErrWeakCredential)
	case !hasLower:
		return fmt.Errorf("%w: must contain at least one lowercase letter", domain.ErrWeakCredential)
	case !hasUpper:
		return fmt.Errorf("%w: must contain at least one uppercase letter", domain.ErrWeakCredential)
	case !hasSymbol:
		return fmt.Errorf("%w: must contain at least one non-alphanumeric character", domain.ErrWeakCredential)
	}
	return nil
}

// provisionOrganiser creates an account with role "organiser". Shared by
// self-service signup and the admin create-organiser surface; both paths
// always yield an organiser, there is no path to acquire "admin".
func provisionOrganiser(
	ctx context.Context,
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	hasher domain.PasswordHasher,
	emailService domain.EmailService,
	email, fullName, password string,
) (*domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	fullName = strings.TrimSpace(fullName)

	var verrs domain.ValidationErrors
	if email == "" {
		verrs = append(verrs, domain.FieldError{Field: "email", Message: "email is required"})
	} else if !emailRegexp.MatchString(email) {
		verrs = append(verrs, domain.FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	if fullName == "" {
		verrs = append(verrs, domain.FieldError{Field: "full_name", Message: "full name is required"})
	}
	if len(verrs) > 0 {
		return nil, verrs
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	salt, err := hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role, err := roleRepo.GetByCode(ctx, domain.RoleOrganiser)
	if err != nil {
		return nil, fmt.Errorf("get role %q: %w", domain.RoleOrganiser, err)
	}
	account := domain.NewAccount(email, fullName, hash, salt, time.Now())
	if err := accountRepo.CreateWithRole(ctx, account, role.ID); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	account.Roles = []string{domain.RoleOrganiser}

	if emailService != nil {
		data := &domain.OrganiserWelcomeEmailData{Email: account.Email, FullName: account.FullName}
		if err := emailService.SendOrganiserWelcome(ctx, data); err != nil {
			// Welcome email is best-effort; account creation already committed.
			log.Printf("[ACCOUNT] welcome email to %s failed: %v", account.Email, err)
		}
	}
	return account, nil
}
