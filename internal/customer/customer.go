package customer

// Customer is a shopper known to the store. Records are created on first
// successful checkout rather than by admin CRUD, so the admin surface is
// list/detail only.
type Customer struct {
	ID         string `json:"customerId"`
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	OrderCount int    `json:"orderCount"`
	CreatedAt  string `json:"createdAt,omitempty"`
}
