package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventportal/internal/delivery/http/helpers"
	"eventportal/internal/delivery/http/middleware"
	"eventportal/internal/domain"
)

// SignUpRequest is the request body for POST /auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Validate implements Validator. Field-level rules (format, strength) are
// enforced by the service; only presence is checked here.
func (s SignUpRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(s.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if s.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// AuthResponse is the response body for successful signup and login.
type AuthResponse struct {
	Token       string          `json:"token"`
	TokenType   string          `json:"token_type"`
	Account     *domain.Account `json:"account"`
	LandingPath string          `json:"landing_path"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Sign up as an organiser
// @Description Create an organiser account with email, full name, and password, and log in immediately. The password must be at least 6 characters with a digit, an uppercase letter, a lowercase letter, and a special character.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains token, account, and landing_path"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.SignUp(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		var vErrs domain.ValidationErrors
		if errors.As(err, &vErrs) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, strings.Join(vErrs.Messages(), "; "))
			return
		}
		if errors.Is(err, domain.ErrWeakCredential) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONError(w, http.StatusConflict, h.ErrCodeConflict, "email already in use")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, AuthResponse{
		Token:       result.Token,
		TokenType:   "Bearer",
		Account:     result.Account,
		LandingPath: result.LandingPath,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Set remember to true for a long-lived session. Five consecutive failures lock the account for five minutes.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token, account, and landing_path"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 423 {object} helpers.APIResponse "error.code: locked"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Login(r.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, domain.ErrLockedOut) {
			h.WriteJSONError(w, http.StatusLocked, h.ErrCodeLocked, "account temporarily locked, try again later")
			return
		}
		if errors.Is(err, domain.ErrBadCredential) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid email or password")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, AuthResponse{
		Token:       result.Token,
		TokenType:   "Bearer",
		Account:     result.Account,
		LandingPath: result.LandingPath,
	})
}

// LogoutResponse is the data payload for POST /auth/logout (200).
type LogoutResponse struct {
	Status string `json:"status"`
}

// Logout godoc
// @Summary Log out
// @Description Revoke the current session. The bearer token stops working immediately.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Logout(r.Context(), sessionID); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LogoutResponse{Status: "logged out"})
}
