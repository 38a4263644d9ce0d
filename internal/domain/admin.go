package domain

import (
	"context"

	"eventportal/internal/authz"
)

// DashboardStats is the aggregate view on the admin dashboard.
type DashboardStats struct {
	TotalEvents     int      `json:"total_events"`
	TotalOrganisers int      `json:"total_organisers"`
	TotalGuests     int      `json:"total_guests"`
	UpcomingEvents  []*Event `json:"upcoming_events"`
}

// AdminService defines the admin-only surface. None of its operations are
// ownership-scoped, but every one is gated on the admin role.
type AdminService interface {
	Dashboard(ctx context.Context, caller *authz.Caller) (*DashboardStats, error)
	// CreateOrganiser provisions an organiser account on behalf of an admin.
	CreateOrganiser(ctx context.Context, caller *authz.Caller, email, fullName, password string) (*Account, error)
	ListOrganisers(ctx context.Context, caller *authz.Caller) ([]*OrganiserSummary, error)
	ListAllEvents(ctx context.Context, caller *authz.Caller) ([]*Event, error)
	DeleteEvent(ctx context.Context, caller *authz.Caller, eventID int64) error
	// DeleteOrganiser removes the account and cascades to its owned events and
	// their guests. Accounts holding the admin role are refused.
	DeleteOrganiser(ctx context.Context, caller *authz.Caller, accountID int64) error
}
