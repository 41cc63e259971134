package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wilt/wilt/internal/auth"
	"github.com/wilt/wilt/internal/handler/dto"
	"github.com/wilt/wilt/internal/service"
)

// EntryHandler handles HTTP requests for journal entry operations.
// All routes sit behind the auth middleware, so the caller identity is
// always present in the request context.
type EntryHandler struct {
	svc    *service.EntryService
	logger *slog.Logger
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(svc *service.EntryService, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/entries.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustAuthFromContext(r.Context())

	entries, err := h.svc.List(r.Context(), caller.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryListResponse(entries, caller))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustAuthFromContext(r.Context())

	var req dto.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	entry, err := h.svc.Create(r.Context(), caller.UserID, req.Title, req.Content)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_created",
		"entry_id", entry.ID,
		"user_id", caller.UserID,
	)

	writeJSON(w, http.StatusCreated, dto.ToEntryResponse(entry, caller))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustAuthFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Entry ID is required")
		return
	}

	entry, err := h.svc.Get(r.Context(), caller.UserID, id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(entry, caller))
}

// Update handles PUT /api/entries/{id}.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustAuthFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Entry ID is required")
		return
	}

	var req dto.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	entry, err := h.svc.Update(r.Context(), caller.UserID, id, req.Title, req.Content)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_updated",
		"entry_id", entry.ID,
		"user_id", caller.UserID,
	)

	writeJSON(w, http.StatusOK, dto.ToEntryResponse(entry, caller))
}

// Delete handles DELETE /api/entries/{id}.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller := auth.MustAuthFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Entry ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), caller.UserID, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("entry_deleted",
		"entry_id", id,
		"user_id", caller.UserID,
	)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps entry service errors to HTTP responses.
// Not-found deliberately carries no hint whether the id exists for another user.
func (h *EntryHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEntryNotFound):
		writeError(w, http.StatusNotFound, "ENTRY_NOT_FOUND", "Entry not found")
	case errors.Is(err, service.ErrTitleRequired):
		writeFieldError(w, "title", "Title is required")
	case errors.Is(err, service.ErrTitleTooLong):
		writeFieldError(w, "title", "Title must be at most 200 characters")
	case errors.Is(err, service.ErrContentRequired):
		writeFieldError(w, "content", "Content is required")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
