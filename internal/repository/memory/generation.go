package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/google/uuid"
)

// GenerationRepository implements domain.GenerationRepository as an
// append-only, insertion-ordered slice per user.
type GenerationRepository struct {
	mu     sync.RWMutex
	byUser map[string][]domain.Generation
}

func newGenerationRepository() *GenerationRepository {
	return &GenerationRepository{byUser: make(map[string][]domain.Generation)}
}

func (r *GenerationRepository) Create(ctx context.Context, gen *domain.Generation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if gen.ID == "" {
		gen.ID = uuid.NewString()
	}
	gen.CreatedAt = time.Now().UTC()
	if gen.Context == nil {
		gen.Context = map[string]string{}
	}

	stored := *gen
	stored.Context = maps.Clone(gen.Context)
	r.byUser[gen.UserID] = append(r.byUser[gen.UserID], stored)
	return nil
}

func (r *GenerationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Generation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gens := r.byUser[userID]
	out := make([]domain.Generation, len(gens))
	for i, g := range gens {
		out[i] = g
		out[i].Context = maps.Clone(g.Context)
	}
	return out, nil
}
