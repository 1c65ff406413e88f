package ports

import (
	"context"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new product listing.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Image       string
	Category    string
}

// ProductService defines product catalog operations.
type ProductService interface {
	// Create lists a new product owned by the acting user.
	Create(ctx context.Context, actor domain.Principal, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// List returns active products matching the filter. When the filter names
	// an owner, that user must exist and be active.
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// Categories returns the distinct categories of the user's active products.
	Categories(ctx context.Context, userID string) ([]string, error)
	Update(ctx context.Context, actor domain.Principal, id string, update ProductUpdate) error
	Delete(ctx context.Context, actor domain.Principal, id string) error
}
