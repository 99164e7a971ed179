package category

// Category groups products for storefront navigation and filtering.
type Category struct {
	ID        string `json:"categoryId"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"createdAt,omitempty"`
}
