package memory

import (
	"context"
	"sync"
	"time"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/google/uuid"
)

// UserRepository implements domain.UserRepository with mutex-guarded maps.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]*domain.User
	byUsername map[string]string // username -> id
}

func newUserRepository() *UserRepository {
	return &UserRepository{
		byID:       make(map[string]*domain.User),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return domain.ErrDuplicateUsername
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if _, taken := r.byID[user.ID]; taken {
		return domain.ErrDuplicateUsername
	}
	user.Credits = domain.StartingCredits
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.byID[user.ID] = &stored
	r.byUsername[user.Username] = user.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r.byID[id]
	return &copied, nil
}

func (r *UserRepository) UpdateCredits(ctx context.Context, id string, credits int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user.Credits = credits
	copied := *user
	return &copied, nil
}

// DecrementCredits performs the check and the decrement under one lock, so
// two concurrent generations cannot drive a balance below zero.
func (r *UserRepository) DecrementCredits(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if user.Credits <= 0 {
		return user.Credits, domain.ErrInsufficientCredits
	}
	user.Credits--
	return user.Credits, nil
}
