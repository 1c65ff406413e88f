package domain

// Product is an item listed for sale by a user. OwnerID is set at creation
// and never changes.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	OwnerID     string  `json:"user"`
	Active      bool    `json:"active"`
}
