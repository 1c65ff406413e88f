package ports

import (
	"context"
	"time"

	"github.com/mercadito/marketplace-api/internal/core/domain"
)

// DeliveryFilter scopes a delivery listing. OwnerID is always set by the
// service layer; the date bounds are optional and inclusive.
type DeliveryFilter struct {
	OwnerID string
	Start   time.Time // optional: date >= Start
	End     time.Time // optional: date <= End
}

// DeliveryUpdate carries the buyer-editable fields. Nil pointers are left unchanged.
type DeliveryUpdate struct {
	Comments *string
	Score    *int
}

// DeliveryRepository defines persistence operations for deliveries.
type DeliveryRepository interface {
	Create(ctx context.Context, d *domain.Delivery) (*domain.Delivery, error)
	FindByID(ctx context.Context, id string) (*domain.Delivery, error)
	List(ctx context.Context, filter DeliveryFilter) ([]*domain.Delivery, error)
	Update(ctx context.Context, id string, update DeliveryUpdate) error
}
