package ports

import (
	"context"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// SignupInput carries the fields required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Lastname string
	Phone    string
	Address  string
}

// AuthService handles registration and session issuance.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	// Login verifies credentials against the active user matching email and
	// returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
}
