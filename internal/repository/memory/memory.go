package memory

import (
	"context"

	"github.com/arvindnr/geetika/internal/domain"
)

// DB is an in-memory storage backend. It is the default backend: the
// application makes no durability promise, so state lives for the process
// lifetime only. All repositories share the same DB and are safe for
// concurrent use.
type DB struct {
	users       *UserRepository
	generations *GenerationRepository
}

// New creates an empty in-memory backend.
func New() *DB {
	return &DB{
		users:       newUserRepository(),
		generations: newGenerationRepository(),
	}
}

// Migrate is a no-op for the in-memory backend.
func (db *DB) Migrate(ctx context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (db *DB) Close() error { return nil }

// Users returns the user repository.
func (db *DB) Users() domain.UserRepository { return db.users }

// Generations returns the generation repository.
func (db *DB) Generations() domain.GenerationRepository { return db.generations }
