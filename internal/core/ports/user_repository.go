package ports

import (
	"context"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// UserUpdate carries a partial user update. Empty string fields are left
// unchanged; PasswordHash, when non-empty, replaces the stored hash.
type UserUpdate struct {
	Username     string
	Email        string
	PasswordHash string
	Name         string
	Lastname     string
	Phone        string
	Address      string
}

// UserRepository defines persistence operations for users. All reads are
// restricted to active records; soft-deleted users are invisible here.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	// SoftDelete marks the user inactive. The record remains as a tombstone.
	SoftDelete(ctx context.Context, id string) error
}
