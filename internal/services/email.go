package services

import (
	"context"
	"fmt"
	"log"

	"eventportal/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendOrganiserWelcome sends the organiser welcome email using the "organiser_welcome" template.
func (s *emailService) SendOrganiserWelcome(ctx context.Context, data *domain.OrganiserWelcomeEmailData) error {
	if data == nil {
		return fmt.Errorf("organiser welcome data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("organiser_welcome", data)
	if err != nil {
		return fmt.Errorf("failed to render organiser_welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", data.Email)
	return nil
}

// SendGuestConfirmation sends the registration confirmation using the "guest_confirmation" template.
func (s *emailService) SendGuestConfirmation(ctx context.Context, data *domain.GuestConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("guest confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("guest_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render guest_confirmation template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}
