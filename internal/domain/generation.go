package domain

import (
	"context"
	"time"
)

// Content types accepted by the generator.
const (
	ContentTypeLyrics   = "lyrics"
	ContentTypeDialogue = "dialogue"
)

// SupportedLanguages lists the languages the generator produces content in.
var SupportedLanguages = []string{"hindi", "tamil", "telugu", "bengali", "marathi"}

// ContextKeys are the recognized optional hints that shape a prompt.
// Unrecognized keys in a request are ignored, not rejected.
var ContextKeys = []string{"theme", "mood", "topic", "scenario", "characters", "situation"}

// Generation is one produced piece of content. Records are immutable
// once created; there is no update or delete.
type Generation struct {
	ID               string
	UserID           string
	ContentType      string
	Language         string
	Context          map[string]string
	GeneratedContent string
	CreatedAt        time.Time
}

// GenerationRepository defines persistence operations for generation history.
type GenerationRepository interface {
	Create(ctx context.Context, gen *Generation) error

	// ListByUser returns the user's generations in insertion order.
	ListByUser(ctx context.Context, userID string) ([]Generation, error)
}

// IsSupportedLanguage reports whether lang is one of the languages the
// application generates content in.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// IsValidContentType reports whether ct is a known content type.
func IsValidContentType(ct string) bool {
	return ct == ContentTypeLyrics || ct == ContentTypeDialogue
}
