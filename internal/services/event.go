package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventportal/internal/authz"
	"eventportal/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	guestRepo domain.GuestRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, guestRepo domain.GuestRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
	}
}

// denialError translates a policy denial into the matching domain error.
func denialError(d authz.Decision) error {
	if d.Reason == authz.ReasonNotOwner {
		return domain.ErrNotOwner
	}
	return domain.ErrInsufficientRole
}

func (s *eventService) Create(ctx context.Context, caller *authz.Caller, title, description, location string, startsAt time.Time) (*domain.Event, error) {
	if d := authz.Decide(caller, authz.ActionCreateEvent, nil); !d.Allowed {
		return nil, denialError(d)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ValidationErrors{{Field: "title", Message: "title is required"}}
	}
	if !startsAt.After(time.Now()) {
		return nil, domain.ErrInvalidSchedule
	}
	event := domain.NewEvent(caller.ID, title, description, location, startsAt, time.Now())
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListOwn(ctx context.Context, caller *authz.Caller) ([]*domain.Event, error) {
	if d := authz.Decide(caller, authz.ActionListOwnEvents, nil); !d.Allowed {
		return nil, denialError(d)
	}
	events, err := s.eventRepo.ListByOwnerID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Get returns the event and its guest list. Ownership is evaluated against
// the stored row on this call, not carried over from a previous listing.
func (s *eventService) Get(ctx context.Context, caller *authz.Caller, id int64) (*domain.EventDetails, error) {
	event, err := s.authorize(ctx, caller, authz.ActionViewEvent, id)
	if err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.ListByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return &domain.EventDetails{Event: event, Guests: guests}, nil
}

func (s *eventService) Update(ctx context.Context, caller *authz.Caller, id int64, upd domain.EventUpdate) (*domain.Event, error) {
	event, err := s.authorize(ctx, caller, authz.ActionEditEvent, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, domain.ValidationErrors{{Field: "title", Message: "title cannot be empty"}}
	}
	// The schedule rule holds on every mutation, not just at creation: the
	// effective schedule after the edit (the incoming value, or the stored one
	// when the patch omits it) must still be in the future.
	startsAt := event.StartsAt
	if upd.StartsAt != nil {
		startsAt = *upd.StartsAt
	}
	if !startsAt.After(time.Now()) {
		return nil, domain.ErrInvalidSchedule
	}
	event, err = s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, caller *authz.Caller, id int64) error {
	if _, err := s.authorize(ctx, caller, authz.ActionDeleteEvent, id); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return err
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// authorize loads the event and evaluates the policy for an item-level
// action against its current owner.
func (s *eventService) authorize(ctx context.Context, caller *authz.Caller, action authz.Action, id int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			// A missing id and a foreign-owned id get the same denial, so an
			// organiser probing ids cannot learn which events exist.
			return nil, domain.ErrNotOwner
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if d := authz.Decide(caller, action, &authz.Target{OwnerID: event.OwnerID}); !d.Allowed {
		return nil, denialError(d)
	}
	return event, nil
}
