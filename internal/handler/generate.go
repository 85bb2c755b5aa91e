package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/service"
)

// GenerateHandler handles content generation requests.
type GenerateHandler struct {
	content *service.ContentService
	limiter *service.TokenBucket
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(content *service.ContentService, limiter *service.TokenBucket) *GenerateHandler {
	return &GenerateHandler{content: content, limiter: limiter}
}

// HandleGenerate runs one paid generation.
// POST /api/generate
// Request:  {"contentType":"lyrics","language":"hindi","context":{...},"userId":"..."}
// Response: {"content":"...","creditsRemaining":24}
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContentType string            `json:"contentType"`
		Language    string            `json:"language"`
		Context     map[string]string `json:"context"`
		UserID      string            `json:"userId"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.limiter != nil && req.UserID != "" && !h.limiter.Allow(req.UserID) {
		writeError(w, http.StatusTooManyRequests, "Too many generation requests")
		return
	}

	content, remaining, err := h.content.Generate(r.Context(), req.UserID, req.ContentType, req.Language, req.Context)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			// The service wraps a client-facing reason behind the sentinel;
			// surface it without the sentinel prefix.
			writeError(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": "))
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrInsufficientCredits):
			writeError(w, http.StatusBadRequest, "Insufficient credits")
		default:
			slog.Error("generate content", "error", err, "userId", req.UserID)
			writeError(w, http.StatusInternalServerError, "Failed to generate content")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"content":          content,
		"creditsRemaining": remaining,
	})
}
