package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arvindnr/geetika/internal/domain"
	"github.com/arvindnr/geetika/internal/repository/memory"
	"github.com/arvindnr/geetika/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := memory.New()
	// Use cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testJWTSecret, 4)
}

func TestAuthService_Register_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "asha", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}
	if user.Credits != domain.StartingCredits {
		t.Fatalf("expected %d starting credits, got %d", domain.StartingCredits, user.Credits)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := auth.Register(ctx, "dup", "password123"); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, _, err := auth.Register(ctx, "dup", "password456")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "password123"},
		{"empty password", "asha", ""},
		{"both empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := auth.Register(ctx, tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	registered, _, err := auth.Register(ctx, "ravi", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := auth.Login(ctx, "ravi", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user.ID != registered.ID {
		t.Fatalf("expected user id %q, got %q", registered.ID, user.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	if _, _, err := auth.Register(ctx, "meera", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := auth.Login(ctx, "meera", "wrongpassword")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	auth := newTestAuthService(t)

	_, _, err := auth.Login(context.Background(), "nobody", "password123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_JWT_RoundTrip(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "jwt", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected user ID %q, got %q", user.ID, userID)
	}
}

func TestAuthService_JWT_TamperedToken(t *testing.T) {
	auth := newTestAuthService(t)
	ctx := context.Background()

	_, token, err := auth.Register(ctx, "tamper", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tampered := token[:len(token)-5] + "XXXXX"
	if _, err := auth.ValidateToken(tampered); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for tampered token, got %v", err)
	}
}

func TestAuthService_JWT_InvalidToken(t *testing.T) {
	auth := newTestAuthService(t)

	if _, err := auth.ValidateToken("not-a-valid-jwt"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
