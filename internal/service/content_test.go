package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/provider"
	"github.com/arvindnr/geetika/internal/repository/memory"
	"github.com/arvindnr/geetika/internal/service"
)

func newTestContent(t *testing.T) (*service.ContentService, *memory.DB, *domain.User) {
	t.Helper()
	db := memory.New()
	ctx := context.Background()

	user := &domain.User{Username: "asha", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// No API key: the adapter serves mock content.
	content := service.NewContentService(db.Users(), db.Generations(), provider.New("", ""))
	return content, db, user
}

func TestContentService_Generate_Success(t *testing.T) {
	content, db, user := newTestContent(t)
	ctx := context.Background()

	text, remaining, err := content.Generate(ctx, user.ID, "lyrics", "hindi", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text == "" {
		t.Fatal("expected non-empty content")
	}
	if remaining != domain.StartingCredits-1 {
		t.Fatalf("expected %d credits remaining, got %d", domain.StartingCredits-1, remaining)
	}

	history, err := db.Generations().ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history))
	}
	if history[0].GeneratedContent != text {
		t.Fatalf("history content %q does not match response %q", history[0].GeneratedContent, text)
	}
}

func TestContentService_Generate_MissingFields(t *testing.T) {
	content, _, user := newTestContent(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      string
		contentType string
		language    string
	}{
		{"missing content type", user.ID, "", "hindi"},
		{"missing language", user.ID, "lyrics", ""},
		{"missing user id", "", "lyrics", "hindi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := content.Generate(ctx, tc.userID, tc.contentType, tc.language, nil)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestContentService_Generate_UnknownContentType(t *testing.T) {
	content, _, user := newTestContent(t)

	_, _, err := content.Generate(context.Background(), user.ID, "poem", "hindi", nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContentService_Generate_UnsupportedLanguage(t *testing.T) {
	content, _, user := newTestContent(t)

	_, _, err := content.Generate(context.Background(), user.ID, "lyrics", "klingon", nil)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestContentService_Generate_UnknownUser(t *testing.T) {
	content, _, _ := newTestContent(t)

	_, _, err := content.Generate(context.Background(), "missing-user", "lyrics", "hindi", nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContentService_Generate_ZeroCredits(t *testing.T) {
	content, db, user := newTestContent(t)
	ctx := context.Background()

	if _, err := db.Users().UpdateCredits(ctx, user.ID, 0); err != nil {
		t.Fatalf("UpdateCredits: %v", err)
	}

	_, _, err := content.Generate(ctx, user.ID, "lyrics", "hindi", nil)
	if !errors.Is(err, domain.ErrInsufficientCredits) {
		t.Fatalf("expected ErrInsufficientCredits, got %v", err)
	}

	// No history record is created for a rejected request.
	history, err := db.Generations().ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no history records, got %d", len(history))
	}
}

func TestContentService_Generate_FiltersUnrecognizedContextKeys(t *testing.T) {
	content, db, user := newTestContent(t)
	ctx := context.Background()

	_, _, err := content.Generate(ctx, user.ID, "dialogue", "tamil", map[string]string{
		"characters": "two friends",
		"unknown":    "dropped",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	history, err := db.Generations().ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	got := history[0].Context
	if got["characters"] != "two friends" {
		t.Fatalf("expected characters to be kept, got %v", got)
	}
	if _, ok := got["unknown"]; ok {
		t.Fatalf("expected unrecognized key to be dropped, got %v", got)
	}
}

func TestContentService_Generate_HistoryWriteFailureIsFatal(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	user := &domain.User{Username: "ravi", PasswordHash: "hash"}
	if err := db.Users().Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	content := service.NewContentService(db.Users(), failingGenerations{}, provider.New("", ""))

	_, _, err := content.Generate(ctx, user.ID, "lyrics", "hindi", nil)
	if err == nil {
		t.Fatal("expected error when the history write fails")
	}

	// The credit is not spent when the request aborts.
	after, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Credits != domain.StartingCredits {
		t.Fatalf("expected credits untouched at %d, got %d", domain.StartingCredits, after.Credits)
	}
}

func TestContentService_Generate_CreditsNeverNegative(t *testing.T) {
	content, db, user := newTestContent(t)
	ctx := context.Background()

	if _, err := db.Users().UpdateCredits(ctx, user.ID, 1); err != nil {
		t.Fatalf("UpdateCredits: %v", err)
	}

	// Many concurrent requests race for the last credit; at most one wins.
	const workers = 16
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := content.Generate(ctx, user.ID, "lyrics", "hindi", nil); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	if n := len(successes); n != 1 {
		t.Fatalf("expected exactly 1 successful generation, got %d", n)
	}

	after, err := db.Users().GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Credits < 0 {
		t.Fatalf("credits went negative: %d", after.Credits)
	}
	if after.Credits != 0 {
		t.Fatalf("expected 0 credits after the race, got %d", after.Credits)
	}
}

// failingGenerations simulates a broken history store.
type failingGenerations struct{}

func (failingGenerations) Create(ctx context.Context, gen *domain.Generation) error {
	return errors.New("store unavailable")
}

func (failingGenerations) ListByUser(ctx context.Context, userID string) ([]domain.Generation, error) {
	return nil, nil
}
