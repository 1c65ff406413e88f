package domain

import "time"

// DeliveryStatus represents the lifecycle state of a delivery.
type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusDelivered DeliveryStatus = "delivered"
)

// validTransitions defines the allowed state machine transitions.
// A delivery only ever moves forward: pending → delivered.
var validTransitions = map[DeliveryStatus][]DeliveryStatus{
	StatusPending: {StatusDelivered},
}

// IsValid reports whether s is a known delivery status.
func (s DeliveryStatus) IsValid() bool {
	return s == StatusPending || s == StatusDelivered
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Delivery records an order of a product placed by a user. OwnerID is the
// purchasing user, set at creation, immutable. Score and Comments are the
// buyer's optional review, attachable after the fact.
type Delivery struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"user"`
	ProductID string         `json:"product"`
	Quantity  int            `json:"quantity"`
	Date      time.Time      `json:"date"`
	Status    DeliveryStatus `json:"status"`
	Comments  string         `json:"comments,omitempty"`
	Score     int            `json:"score,omitempty"`
}
