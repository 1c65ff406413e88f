package ports

import (
	"context"
	"time"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// CreateDeliveryInput carries the fields for a new delivery. Date defaults to
// the current time when zero; Status defaults to pending when empty.
type CreateDeliveryInput struct {
	ProductID string
	Quantity  int
	Date      time.Time
	Status    string
	Comments  string
	Score     int
}

// DeliveryService defines delivery operations. Every call is scoped to the
// acting user: a delivery is only visible to its owner.
type DeliveryService interface {
	Create(ctx context.Context, actor domain.Principal, input CreateDeliveryInput) (*domain.Delivery, error)
	Get(ctx context.Context, actor domain.Principal, id string) (*domain.Delivery, error)
	// List returns the actor's deliveries, optionally bounded to [start, end] inclusive.
	List(ctx context.Context, actor domain.Principal, start, end time.Time) ([]*domain.Delivery, error)
	Update(ctx context.Context, actor domain.Principal, id string, update DeliveryUpdate) error
}
