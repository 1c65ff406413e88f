package ports

import (
	"context"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// ProductFilter carries the optional query parameters for listing products.
type ProductFilter struct {
	Category string // exact match
	Name     string // case-insensitive substring match
	OwnerID  string // products owned by this user
}

// ProductUpdate carries a partial product update. Empty/nil fields are left unchanged.
type ProductUpdate struct {
	Name        string
	Price       *float64
	Description string
	Image       string
	Category    string
}

// ProductRepository defines persistence operations for products. All reads
// are restricted to active records.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	// DistinctCategories returns the distinct category values across the
	// owner's active products.
	DistinctCategories(ctx context.Context, ownerID string) ([]string, error)
	Update(ctx context.Context, id string, update ProductUpdate) error
	SoftDelete(ctx context.Context, id string) error
}
