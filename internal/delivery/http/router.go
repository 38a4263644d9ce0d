package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventportal/internal/delivery/http/controllers"
	"eventportal/internal/delivery/http/middleware"
	"eventportal/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Organiser and admin routes are wrapped with bearer-token auth; the guest
// routes under /api/guests are public.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	sessions domain.SessionRepository,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	adminController *controllers.AdminController,
	guestController *controllers.GuestController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, sessions, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/logout", auth(authController.Logout))

	// Organiser event management
	mux.HandleFunc("GET /events", auth(eventController.ListOwn))
	mux.HandleFunc("POST /events", auth(eventController.Create))
	mux.HandleFunc("GET /events/{eventID}", auth(eventController.Get))
	mux.HandleFunc("PATCH /events/{eventID}", auth(eventController.Update))
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.Delete))

	// Admin
	mux.HandleFunc("GET /admin/dashboard", auth(adminController.Dashboard))
	mux.HandleFunc("GET /admin/organisers", auth(adminController.ListOrganisers))
	mux.HandleFunc("POST /admin/organisers", auth(adminController.CreateOrganiser))
	mux.HandleFunc("DELETE /admin/organisers/{accountID}", auth(adminController.DeleteOrganiser))
	mux.HandleFunc("GET /admin/events", auth(adminController.ListAllEvents))
	mux.HandleFunc("DELETE /admin/events/{eventID}", auth(adminController.DeleteEvent))

	// Public guest registration
	mux.HandleFunc("POST /api/guests", guestController.Register)
	mux.HandleFunc("GET /api/guests/{id}", guestController.Get)
	mux.HandleFunc("GET /api/guests/event/{eventId}", guestController.ListByEvent)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
