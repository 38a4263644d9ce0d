package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventportal/internal/delivery/http/helpers"
	"eventportal/internal/domain"
)

// CreateOrganiserRequest is the request body for POST /admin/organisers.
type CreateOrganiserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Validate implements Validator. Format and strength rules live in the service.
func (c CreateOrganiserRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(c.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// DeleteOrganiserResponse is the data payload for DELETE /admin/organisers/{accountID} (200).
type DeleteOrganiserResponse struct {
	Status string `json:"status"`
}

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// Dashboard godoc
// @Summary Admin dashboard statistics
// @Description Returns total events, organisers, and guests, plus the next five upcoming events soonest first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains totals and upcoming_events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/dashboard [get]
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	stats, err := c.Service.Dashboard(r.Context(), cal)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if stats.UpcomingEvents == nil {
		stats.UpcomingEvents = []*domain.Event{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}

// CreateOrganiser godoc
// @Summary Provision an organiser account
// @Description Create an organiser on behalf of an admin. The new account can log in immediately; a welcome email is sent best-effort.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateOrganiserRequest true "Organiser data"
// @Success 201 {object} helpers.APIResponse "data contains the created account"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/organisers [post]
func (c *AdminController) CreateOrganiser(w http.ResponseWriter, r *http.Request) {
	var req CreateOrganiserRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	account, err := c.Service.CreateOrganiser(r.Context(), cal, req.Email, req.FullName, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWeakCredential) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already in use")
			return
		}
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, account)
}

// ListOrganisers godoc
// @Summary List organiser accounts
// @Description Returns all organiser accounts with their event counts, newest first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of organiser summaries"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/organisers [get]
func (c *AdminController) ListOrganisers(w http.ResponseWriter, r *http.Request) {
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	organisers, err := c.Service.ListOrganisers(r.Context(), cal)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if organisers == nil {
		organisers = []*domain.OrganiserSummary{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, organisers)
}

// ListAllEvents godoc
// @Summary List all events
// @Description Returns every event in the system, newest created first. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data is an array of events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [get]
func (c *AdminController) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListAllEvents(r.Context(), cal)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// DeleteEvent godoc
// @Summary Delete any event
// @Description Delete any event regardless of owner, together with its guest registrations. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), cal, id); err != nil {
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// DeleteOrganiser godoc
// @Summary Delete an organiser account
// @Description Delete an organiser account together with its events and their guest registrations. Accounts holding the admin role cannot be deleted. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param accountID path int true "Account ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/organisers/{accountID} [delete]
func (c *AdminController) DeleteOrganiser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accountID")
	if !ok {
		return
	}
	cal, ok := caller(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteOrganiser(r.Context(), cal, id); err != nil {
		if writeDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, DeleteOrganiserResponse{Status: "deleted"})
}
