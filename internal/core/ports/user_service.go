package ports

import (
	"context"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update from the API. Empty fields
// are left unchanged. Password, when set, is re-hashed by the service.
type UpdateUserInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Lastname string
	Phone    string
	Address  string
}

// UserService defines account operations beyond authentication.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// Update applies a partial update; the actor must own the target account.
	Update(ctx context.Context, actor domain.Principal, id string, input UpdateUserInput) error
	// Delete soft-deletes the account; same ownership requirement as Update.
	Delete(ctx context.Context, actor domain.Principal, id string) error
}
