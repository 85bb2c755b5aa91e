package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/service"
)

// UserHandler serves credit balance and generation history lookups.
type UserHandler struct {
	content *service.ContentService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(content *service.ContentService) *UserHandler {
	return &UserHandler{content: content}
}

// HandleCredits returns the user's current balance.
// GET /api/user/credits/{userId}
// Response: {"credits":25}
func (h *UserHandler) HandleCredits(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	credits, err := h.content.Credits(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		slog.Error("get credits", "error", err, "userId", userID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"credits": credits})
}

// HandleHistory returns the user's generations in insertion order.
// GET /api/user/history/{userId}
// Response: {"history":[...]}
func (h *UserHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	history, err := h.content.History(r.Context(), userID)
	if err != nil {
		slog.Error("get history", "error", err, "userId", userID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"history": toGenerationDTOs(history)})
}
