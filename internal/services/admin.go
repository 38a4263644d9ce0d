package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventportal/internal/authz"
	"eventportal/internal/domain"
)

const dashboardUpcomingLimit = 5

type adminService struct {
	accountRepo  domain.AccountRepository
	roleRepo     domain.RoleRepository
	eventRepo    domain.EventRepository
	guestRepo    domain.GuestRepository
	hasher       domain.PasswordHasher
	emailService domain.EmailService
}

// NewAdminService creates an AdminService with the given repositories and ports.
func NewAdminService(
	accountRepo domain.AccountRepository,
	roleRepo domain.RoleRepository,
	eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	hasher domain.PasswordHasher,
	emailService domain.EmailService,
) domain.AdminService {
	return &adminService{
		accountRepo:  accountRepo,
		roleRepo:     roleRepo,
		eventRepo:    eventRepo,
		guestRepo:    guestRepo,
		hasher:       hasher,
		emailService: emailService,
	}
}

func (s *adminService) Dashboard(ctx context.Context, caller *authz.Caller) (*domain.DashboardStats, error) {
	if d := authz.Decide(caller, authz.ActionViewDashboard, nil); !d.Allowed {
		return nil, denialError(d)
	}
	totalEvents, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	totalOrganisers, err := s.accountRepo.CountByRole(ctx, domain.RoleOrganiser)
	if err != nil {
		return nil, fmt.Errorf("count organisers: %w", err)
	}
	totalGuests, err := s.guestRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count guests: %w", err)
	}
	upcoming, err := s.eventRepo.ListUpcoming(ctx, time.Now(), dashboardUpcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return &domain.DashboardStats{
		TotalEvents:     totalEvents,
		TotalOrganisers: totalOrganisers,
		TotalGuests:     totalGuests,
		UpcomingEvents:  upcoming,
	}, nil
}

func (s *adminService) CreateOrganiser(ctx context.Context, caller *authz.Caller, email, fullName, password string) (*domain.Account, error) {
	if d := authz.Decide(caller, authz.ActionCreateOrganiser, nil); !d.Allowed {
		return nil, denialError(d)
	}
	return provisionOrganiser(ctx, s.accountRepo, s.roleRepo, s.hasher, s.emailService, email, fullName, password)
}

func (s *adminService) ListOrganisers(ctx context.Context, caller *authz.Caller) ([]*domain.OrganiserSummary, error) {
	if d := authz.Decide(caller, authz.ActionListOrganisers, nil); !d.Allowed {
		return nil, denialError(d)
	}
	organisers, err := s.accountRepo.ListOrganisers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organisers: %w", err)
	}
	return organisers, nil
}

func (s *adminService) ListAllEvents(ctx context.Context, caller *authz.Caller) ([]*domain.Event, error) {
	if d := authz.Decide(caller, authz.ActionListAllEvents, nil); !d.Allowed {
		return nil, denialError(d)
	}
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *adminService) DeleteEvent(ctx context.Context, caller *authz.Caller, eventID int64) error {
	if d := authz.Decide(caller, authz.ActionDeleteAnyEvent, nil); !d.Allowed {
		return denialError(d)
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// DeleteOrganiser removes the account with its owned events and their guests
// in one transaction. The surface only knows organisers: an account holding
// the admin role (including the seeded one) is reported as not found.
func (s *adminService) DeleteOrganiser(ctx context.Context, caller *authz.Caller, accountID int64) error {
	if d := authz.Decide(caller, authz.ActionDeleteOrganiser, nil); !d.Allowed {
		return denialError(d)
	}
	roles, err := s.roleRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	isOrganiser := false
	for _, r := range roles {
		if r.Code == domain.RoleAdmin {
			return domain.ErrAccountNotFound
		}
		if r.Code == domain.RoleOrganiser {
			isOrganiser = true
		}
	}
	if !isOrganiser {
		return domain.ErrAccountNotFound
	}
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
