package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"eventportal/internal/domain"
)

const (
	maxGuestNameLen  = 100
	maxGuestEmailLen = 100
	maxGuestPhoneLen = 20
)

// phoneRegexp accepts an optional leading + followed by digits with common
// separators. Length is checked separately.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 .()\-]*$`)

type guestService struct {
	eventRepo    domain.EventRepository
	guestRepo    domain.GuestRepository
	emailService domain.EmailService
}

// NewGuestService creates a GuestService with the given repositories.
func NewGuestService(eventRepo domain.EventRepository, guestRepo domain.GuestRepository, emailService domain.EmailService) domain.GuestService {
	return &guestService{
		eventRepo:    eventRepo,
		guestRepo:    guestRepo,
		emailService: emailService,
	}
}

// Register runs the intake algorithm: validate field shape, check the event
// exists, reject duplicates, insert with a server-assigned timestamp. The
// pre-insert duplicate check gives the friendly path; the store's unique
// constraint is the serializable backstop when two registrations race, so
// exactly one of them succeeds.
func (s *guestService) Register(ctx context.Context, eventID int64, fullName, email, phone string) (*domain.Guest, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))
	phone = strings.TrimSpace(phone)

	if verrs := validateGuest(fullName, email, phone); len(verrs) > 0 {
		return nil, verrs
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if _, err := s.guestRepo.GetByEventAndEmail(ctx, eventID, email); err == nil {
		return nil, domain.ErrDuplicateRegistration
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	guest := domain.NewGuest(eventID, fullName, email, phone, time.Now())
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if s.emailService != nil {
		data := &domain.GuestConfirmationEmailData{
			Email:      guest.Email,
			FullName:   guest.FullName,
			EventTitle: event.Title,
			Location:   event.Location,
			StartsAt:   event.StartsAt,
		}
		if err := s.emailService.SendGuestConfirmation(ctx, data); err != nil {
			// Confirmation email is best-effort; the registration stands.
			log.Printf("[GUEST] confirmation email to %s failed: %v", guest.Email, err)
		}
	}
	return guest, nil
}

func (s *guestService) Get(ctx context.Context, id int64) (*domain.GuestDetails, error) {
	details, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}
	return details, nil
}

func (s *guestService) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	guests, err := s.guestRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func validateGuest(fullName, email, phone string) domain.ValidationErrors {
	var verrs domain.ValidationErrors
	if fullName == "" {
		verrs = append(verrs, domain.FieldError{Field: "fullName", Message: "fullName is required"})
	} else if len(fullName) > maxGuestNameLen {
		verrs = append(verrs, domain.FieldError{Field: "fullName", Message: fmt.Sprintf("fullName must be at most %d characters", maxGuestNameLen)})
	}
	switch {
	case email == "":
		verrs = append(verrs, domain.FieldError{Field: "email", Message: "email is required"})
	case len(email) > maxGuestEmailLen:
		verrs = append(verrs, domain.FieldError{Field: "email", Message: fmt.Sprintf("email must be at most %d characters", maxGuestEmailLen)})
	case !emailRegexp.MatchString(email):
		verrs = append(verrs, domain.FieldError{Field: "email", Message: "email must be a valid email address"})
	}
	switch {
	case phone == "":
		verrs = append(verrs, domain.FieldError{Field: "phoneNumber", Message: "phoneNumber is required"})
	case len(phone) > maxGuestPhoneLen:
		verrs = append(verrs, domain.FieldError{Field: "phoneNumber", Message: fmt.Sprintf("phoneNumber must be at most %d characters", maxGuestPhoneLen)})
	case !phoneRegexp.MatchString(phone):
		verrs = append(verrs, domain.FieldError{Field: "phoneNumber", Message: "phoneNumber must be a valid phone number"})
	}
	return verrs
}
