package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"eventportal/internal/domain"
)

// RegisterGuestRequest is the request body for POST /api/guests. The public
// endpoint uses camelCase keys; clients of the registration page send the
// identical shape.
type RegisterGuestRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	EventID     int64  `json:"eventId"`
}

// GuestAPIResponse is the wire shape of the public guest endpoint. It is a
// stable external contract and deliberately does not use the standard
// envelope.
type GuestAPIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GuestID int64  `json:"guestId,omitempty"`
}

type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

func writeGuestJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// Register godoc
// @Summary Register a guest for an event
// @Description Public endpoint, no authentication. Registers a guest for an event; the same email may register once per event.
// @Tags guests
// @Accept json
// @Produce json
// @Param body body RegisterGuestRequest true "Registration data"
// @Success 201 {object} controllers.GuestAPIResponse "success true with guestId; Location header points at the created guest"
// @Failure 400 {object} controllers.GuestAPIResponse "success false with joined validation messages"
// @Failure 404 {object} controllers.GuestAPIResponse "success false, event does not exist"
// @Failure 409 {object} controllers.GuestAPIResponse "success false, email already registered for this event"
// @Failure 500 {object} controllers.GuestAPIResponse "success false"
// @Router /api/guests [post]
func (c *GuestController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterGuestRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeGuestJSON(w, http.StatusBadRequest, GuestAPIResponse{Success: false, Message: "Invalid request body."})
		return
	}
	guest, err := c.Service.Register(r.Context(), req.EventID, req.FullName, req.Email, req.PhoneNumber)
	if err != nil {
		var vErrs domain.ValidationErrors
		switch {
		case errors.As(err, &vErrs):
			writeGuestJSON(w, http.StatusBadRequest, GuestAPIResponse{Success: false, Message: strings.Join(vErrs.Messages(), "; ")})
		case errors.Is(err, domain.ErrEventNotFound):
			writeGuestJSON(w, http.StatusNotFound, GuestAPIResponse{Success: false, Message: fmt.Sprintf("Event with ID %d does not exist.", req.EventID)})
		case errors.Is(err, domain.ErrDuplicateRegistration):
			writeGuestJSON(w, http.StatusConflict, GuestAPIResponse{Success: false, Message: "This email is already registered for this event."})
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			writeGuestJSON(w, http.StatusInternalServerError, GuestAPIResponse{Success: false, Message: "Something went wrong. Please try again."})
		}
		return
	}
	w.Header().Set("Location", "/api/guests/"+strconv.FormatInt(guest.ID, 10))
	writeGuestJSON(w, http.StatusCreated, GuestAPIResponse{
		Success: true,
		Message: "Registration successful.",
		GuestID: guest.ID,
	})
}

// Get godoc
// @Summary Get a guest registration
// @Description Returns the guest with the resolved event title. 404 with an empty body when no such guest exists.
// @Tags guests
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} domain.GuestDetails
// @Failure 404 "empty body"
// @Router /api/guests/{id} [get]
func (c *GuestController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	guest, err := c.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeGuestJSON(w, http.StatusOK, guest)
}

// ListByEvent godoc
// @Summary List guests registered for an event
// @Description Returns an array of guest registrations for the event, oldest first. Empty array when none.
// @Tags guests
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {array} domain.Guest
// @Router /api/guests/event/{eventId} [get]
func (c *GuestController) ListByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(r.PathValue("eventId"), 10, 64)
	if err != nil || eventID <= 0 {
		writeGuestJSON(w, http.StatusOK, []*domain.Guest{})
		return
	}
	guests, err := c.Service.ListByEvent(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	writeGuestJSON(w, http.StatusOK, guests)
}
