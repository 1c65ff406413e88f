package handler

import "time"

type createDeliveryRequest struct {
	Product  string    `json:"product"  validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"   validate:"omitempty,oneof=pending delivered"`
	Comments string    `json:"comments"`
	Score    int       `json:"score"    validate:"omitempty,min=1,max=5"`
}

// updateDeliveryRequest carries the buyer-editable fields. Pointers so a
// request can clear comments or leave either field untouched.
type updateDeliveryRequest struct {
	Comments *string `json:"comments"`
	Score    *int    `json:"score" validate:"omitempty,min=1,max=5"`
}
