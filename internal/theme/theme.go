package theme

import "encoding/json"

// Theme is a named bundle of storefront presentation settings (colors,
// fonts, logo, banner images). Settings are an opaque JSON document: the
// storefront renderer owns the schema, the backend just stores and serves
// it. Exactly one theme is active at a time.
type Theme struct {
	ID        string          `json:"themeId"`
	Name      string          `json:"name"`
	Settings  json.RawMessage `json:"settings"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}
