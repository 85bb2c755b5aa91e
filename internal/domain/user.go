package domain

import (
	"context"
	"time"
)

// StartingCredits is the balance granted to every new account.
const StartingCredits = 25

// User represents a registered user of the application.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Credits      int
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateCredits(ctx context.Context, id string, credits int) (*User, error)

	// DecrementCredits subtracts one credit as a single atomic operation.
	// It fails with ErrInsufficientCredits when the balance is already zero,
	// so a balance can never go negative regardless of concurrent callers.
	DecrementCredits(ctx context.Context, id string) (int, error)
}
