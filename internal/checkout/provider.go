package checkout

import (
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
)

// SessionRequest is the read-only cart handoff to the payment provider.
type SessionRequest struct {
	OrderID     string
	OrderNumber string
	Items       []cart.LineItem
	Subtotal    float64
	Total       float64
	SuccessURL  string
	CancelURL   string
}

// Session is an opened payment session; the shopper is redirected to URL.
type Session struct {
	ID  string
	URL string
}

// Provider opens payment sessions with the external payment service.
type Provider interface {
	CreateSession(req SessionRequest) (Session, error)
}

// HostedProvider targets a provider's hosted payment page: it builds the
// redirect URL carrying the order reference and return URLs. The actual
// charge happens entirely on the provider's side.
type HostedProvider struct {
	baseURL string
}

func NewHostedProvider(baseURL string) *HostedProvider {
	return &HostedProvider{baseURL: baseURL}
}

func (p *HostedProvider) CreateSession(req SessionRequest) (Session, error) {
	base, err := url.Parse(p.baseURL)
	if err != nil {
		return Session{}, fmt.Errorf("parse checkout base url: %w", err)
	}

	id := uuid.NewString()
	params := base.Query()
	params.Set("session_id", id)
	params.Set("order", req.OrderNumber)
	params.Set("amount", fmt.Sprintf("%.2f", req.Total))
	params.Set("success_url", req.SuccessURL)
	params.Set("cancel_url", req.CancelURL)
	base.RawQuery = params.Encode()

	return Session{ID: id, URL: base.String()}, nil
}
