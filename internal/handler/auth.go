package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wilt/wilt/internal/handler/dto"
	"github.com/wilt/wilt/internal/service"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	result, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	h.logger.Info("user_registered",
		"user_id", result.User.ID,
		"username", result.User.Username,
	)

	writeJSON(w, http.StatusCreated, dto.ToAuthResponse("User registered successfully", result.User, result.Tokens))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	h.logger.Info("user_logged_in",
		"user_id", result.User.ID,
	)

	writeJSON(w, http.StatusOK, dto.ToAuthResponse("Login successful", result.User, result.Tokens))
}

// handleAuthError maps auth service errors to HTTP responses.
// Invalid credentials always produce the same 401 body regardless of cause.
func (h *AuthHandler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameRequired):
		writeFieldError(w, "username", "Username is required")
	case errors.Is(err, service.ErrUsernameTooLong):
		writeFieldError(w, "username", "Username must be at most 150 characters")
	case errors.Is(err, service.ErrUsernameInvalid):
		writeFieldError(w, "username", "Username may only contain letters, digits and @/./+/-/_")
	case errors.Is(err, service.ErrPasswordRequired):
		writeFieldError(w, "password", "Password is required")
	case errors.Is(err, service.ErrUsernameExists):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:  "validation failed",
			Code:   "USERNAME_TAKEN",
			Fields: map[string]string{"username": "A user with that username already exists"},
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeFieldError writes a 400 validation error with a field-level message.
func writeFieldError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:  "validation failed",
		Code:   "VALIDATION_ERROR",
		Fields: map[string]string{field: message},
	})
}
