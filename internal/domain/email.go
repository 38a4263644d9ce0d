package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// OrganiserWelcomeEmailData holds data for the organiser welcome email.
type OrganiserWelcomeEmailData struct {
	Email    string
	FullName string
}

// GuestConfirmationEmailData holds data for the guest registration confirmation email.
type GuestConfirmationEmailData struct {
	Email      string
	FullName   string
	EventTitle string
	Location   string
	StartsAt   time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendOrganiserWelcome(ctx context.Context, data *OrganiserWelcomeEmailData) error
	SendGuestConfirmation(ctx context.Context, data *GuestConfirmationEmailData) error
}
