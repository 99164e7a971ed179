package order

import "github.com/zsherman2510/shop-themes-backend/internal/cart"

// Order statuses. An order starts PENDING when checkout hands off to the
// payment provider and becomes PAID on the success callback.
const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusFulfilled = "FULFILLED"
	StatusCancelled = "CANCELLED"
)

// Order is a purchase. Items are a snapshot of the cart lines at checkout
// time so later catalog edits never rewrite order history.
type Order struct {
	ID            string          `json:"orderId"`
	Number        string          `json:"number"`
	CustomerID    string          `json:"customerId,omitempty"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []cart.LineItem `json:"items"`
	ItemCount     int             `json:"itemCount"`
	Subtotal      float64         `json:"subtotal"`
	ShippingPrice float64         `json:"shippingPrice"`
	TotalPrice    float64         `json:"totalPrice"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

func validStatus(status string) bool {
	switch status {
	case StatusPending, StatusPaid, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}
