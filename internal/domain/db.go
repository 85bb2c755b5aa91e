package domain

import "context"

// Database defines lifecycle operations for a storage backend. Each
// implementation (in-memory, SQLite) owns its own setup strategy, so the
// entire backend is swappable at process start.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error

	Users() UserRepository
	Generations() GenerationRepository
}
