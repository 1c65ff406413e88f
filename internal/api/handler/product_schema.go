package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"required"`
	Category    string  `json:"category"    validate:"required"`
}

// updateProductRequest is a partial update: omitted fields leave the record
// unchanged. Price is a pointer so zero can be told apart from absent.
type updateProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
}
