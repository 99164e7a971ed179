package product

// Product statuses. Archived products stay queryable in the admin but are
// hidden from the storefront.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
)

// Product represents a catalog product. JSON tags follow the camelCase
// convention used across the API.
type Product struct {
	ID          string   `json:"productId"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Images      []string `json:"images,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// PrimaryImage returns the first image, the one shown on cards and in the
// cart line item snapshot.
func (p Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
