package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateRegistration is returned when a guest email is already
// registered for the same event. The pair (event id, email) is unique; the
// same email may register for different events.
var ErrDuplicateRegistration = errors.New("email already registered for this event")

// Guest represents an unauthenticated registrant tied to exactly one event.
type Guest struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	EventID      int64     `json:"eventId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// NewGuest returns a new Guest with the given fields. ID is set by the repository on create.
func NewGuest(eventID int64, fullName, email, phone string, registeredAt time.Time) *Guest {
	return &Guest{
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		EventID:      eventID,
		RegisteredAt: registeredAt,
	}
}

// GuestDetails is a guest together with its resolved event title.
type GuestDetails struct {
	Guest
	EventTitle string `json:"eventTitle"`
}

// GuestRepository defines the interface for guest registration storage.
// Create relies on the store's unique constraint on (event id, email) so the
// duplicate check and insert are serializable with respect to concurrent
// registrations; a constraint violation surfaces as ErrDuplicateRegistration.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id int64) (*GuestDetails, error)
	GetByEventAndEmail(ctx context.Context, eventID int64, email string) (*Guest, error)
	// ListByEventID returns registrations oldest-first.
	ListByEventID(ctx context.Context, eventID int64) ([]*Guest, error)
	Count(ctx context.Context) (int, error)
}

// GuestService defines the public guest-intake flow: validate field shape,
// check the event exists, reject duplicates, insert with a server-assigned
// registration timestamp.
type GuestService interface {
	Register(ctx context.Context, eventID int64, fullName, email, phone string) (*Guest, error)
	Get(ctx context.Context, id int64) (*GuestDetails, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*Guest, error)
}
