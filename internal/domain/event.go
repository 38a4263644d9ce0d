package domain

import (
	"context"
	"errors"
	"time"

	"eventportal/internal/authz"
)

// Sentinel errors for event operations.
var (
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidSchedule is returned whenever an event's scheduled time is not
	// strictly in the future at the instant of create or update.
	ErrInvalidSchedule = errors.New("event must be scheduled in the future")
)

// Event represents an event owned by exactly one account. OwnerID is set at
// creation and never changes.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(ownerID int64, title, description, location string, startsAt, createdAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Location:    location,
		StartsAt:    startsAt,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
	}
}

// EventUpdate carries the optional fields of an event edit; nil fields are unchanged.
type EventUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"starts_at"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, id int64, upd EventUpdate) (*Event, error)
	// Delete removes the event and all its guest registrations in one transaction.
	Delete(ctx context.Context, id int64) error
	// ListByOwnerID returns the owner's events soonest-upcoming-first.
	ListByOwnerID(ctx context.Context, ownerID int64) ([]*Event, error)
	// ListAll returns every event newest-created-first.
	ListAll(ctx context.Context) ([]*Event, error)
	// ListUpcoming returns up to limit events with starts_at after now, soonest first.
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Event, error)
	Count(ctx context.Context) (int, error)
}

// EventDetails bundles an event with its registered guests.
type EventDetails struct {
	Event  *Event   `json:"event"`
	Guests []*Guest `json:"guests"`
}

// EventService defines the business logic for organiser event management.
// Every operation evaluates the authorization policy for the caller before
// touching the store; ownership is re-checked on each item-level call.
type EventService interface {
	Create(ctx context.Context, caller *authz.Caller, title, description, location string, startsAt time.Time) (*Event, error)
	ListOwn(ctx context.Context, caller *authz.Caller) ([]*Event, error)
	Get(ctx context.Context, caller *authz.Caller, id int64) (*EventDetails, error)
	Update(ctx context.Context, caller *authz.Caller, id int64, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, caller *authz.Caller, id int64) error
}
