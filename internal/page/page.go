package page

// Page is a CMS page rendered by the storefront theme (about, FAQ,
// shipping policy and the like). Only published pages are public.
type Page struct {
	ID        string `json:"pageId"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
