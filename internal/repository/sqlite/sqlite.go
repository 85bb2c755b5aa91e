package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB is a SQLite storage backend. The in-memory backend is the default;
// this one exists for deployments that want history and balances to survive
// a restart.
type DB struct {
	sqlDB       *sql.DB
	users       *UserRepository
	generations *GenerationRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Enable foreign key enforcement.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// Set a reasonable connection pool for SQLite.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{sqlDB: sqlDB}
	db.users = NewUserRepository(db)
	db.generations = NewGenerationRepository(db)
	return db, nil
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sqlDB)
}

// Close closes the underlying database handle.
func (db *DB) Close() error {
	return db.sqlDB.Close()
}

// Users returns the user repository.
func (db *DB) Users() domain.UserRepository { return db.users }

// Generations returns the generation repository.
func (db *DB) Generations() domain.GenerationRepository { return db.generations }
