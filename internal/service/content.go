package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/arvindnr/geetika/internal/domain"
)

// TextGenerator produces text for a prompt. Implementations must not fail:
// provider problems degrade to canned output inside the implementation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, contentType, language string) string
}

// ContentService orchestrates a generation request: validation, user lookup,
// credit check, prompt construction, provider call, history record, and the
// credit decrement.
type ContentService struct {
	users       domain.UserRepository
	generations domain.GenerationRepository
	generator   TextGenerator
}

// NewContentService creates a new ContentService.
func NewContentService(users domain.UserRepository, generations domain.GenerationRepository, generator TextGenerator) *ContentService {
	return &ContentService{
		users:       users,
		generations: generations,
		generator:   generator,
	}
}

// Generate runs one paid generation for the user and returns the produced
// content with the remaining credit balance.
//
// The provider call cannot fail; a history-write failure aborts the request
// before any credit is spent. The decrement itself is atomic and conditional,
// so concurrent requests against a balance of 1 leave it at 0, never below.
func (s *ContentService) Generate(ctx context.Context, userID, contentType, language string, genContext map[string]string) (string, int, error) {
	if contentType == "" || language == "" || userID == "" {
		return "", 0, fmt.Errorf("%w: Content type, language, and user ID are required", domain.ErrInvalidInput)
	}
	if !domain.IsValidContentType(contentType) {
		return "", 0, fmt.Errorf("%w: Unknown content type %q", domain.ErrInvalidInput, contentType)
	}
	if !domain.IsSupportedLanguage(language) {
		return "", 0, fmt.Errorf("%w: Unsupported language %q", domain.ErrInvalidInput, language)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", 0, domain.ErrNotFound
		}
		return "", 0, fmt.Errorf("get user: %w", err)
	}

	if user.Credits <= 0 {
		return "", 0, domain.ErrInsufficientCredits
	}

	prompt := BuildPrompt(contentType, language, genContext)
	content := s.generator.Generate(ctx, prompt, contentType, language)

	gen := &domain.Generation{
		UserID:           userID,
		ContentType:      contentType,
		Language:         language,
		Context:          filterContext(genContext),
		GeneratedContent: content,
	}
	if err := s.generations.Create(ctx, gen); err != nil {
		return "", 0, fmt.Errorf("record generation: %w", err)
	}

	remaining, err := s.users.DecrementCredits(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientCredits) {
			// Lost the race against a concurrent request for the last credit.
			return "", remaining, domain.ErrInsufficientCredits
		}
		return "", 0, fmt.Errorf("decrement credits: %w", err)
	}

	return content, remaining, nil
}

// History returns the user's generations in insertion order.
func (s *ContentService) History(ctx context.Context, userID string) ([]domain.Generation, error) {
	return s.generations.ListByUser(ctx, userID)
}

// Credits returns the user's current balance.
func (s *ContentService) Credits(ctx context.Context, userID string) (int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

// filterContext keeps only the recognized hint keys with non-empty values.
// Unrecognized keys are dropped silently.
func filterContext(genContext map[string]string) map[string]string {
	filtered := map[string]string{}
	for _, key := range domain.ContextKeys {
		if v := genContext[key]; v != "" {
			filtered[key] = v
		}
	}
	return filtered
}
