package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/listing"
)

// Service orchestrates order operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(q listing.Query) (listing.Result[Order], error) {
	if err := q.Validate(); err != nil {
		return listing.Result[Order]{}, err
	}
	items, total, err := s.repo.List(q)
	if err != nil {
		return listing.Result[Order]{}, err
	}
	return listing.NewResult(items, total, q), nil
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// CreateFromCart snapshots the cart into a PENDING order at checkout
// handoff. Totals are derived from the snapshot, never passed in, so they
// cannot disagree with the items.
func (s *Service) CreateFromCart(ct cart.Cart, email string, shipping float64) (Order, error) {
	if len(ct.Items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if email == "" {
		return Order{}, ErrEmailRequired
	}

	items := make([]cart.LineItem, len(ct.Items))
	copy(items, ct.Items)

	subtotal := ct.Subtotal()
	now := time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(Order{
		Number:        newOrderNumber(),
		CustomerEmail: email,
		Items:         items,
		ItemCount:     ct.ItemCount(),
		Subtotal:      subtotal,
		ShippingPrice: shipping,
		TotalPrice:    subtotal + shipping,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// MarkPaid transitions a PENDING order to PAID and attaches the customer.
// The bool reports whether the transition happened: a repeated completion
// callback finds the order already PAID and changes nothing.
func (s *Service) MarkPaid(id, customerID string) (Order, bool, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, false, err
	}
	if ord.Status != StatusPending {
		return ord, false, nil
	}

	ord.Status = StatusPaid
	ord.CustomerID = customerID
	ord.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	updated, err := s.repo.Update(id, ord)
	if err != nil {
		return Order{}, false, err
	}
	return updated, true, nil
}

// UpdateStatus is the admin operation (fulfil, cancel).
func (s *Service) UpdateStatus(id, status string) (Order, error) {
	status = strings.ToUpper(status)
	if !validStatus(status) {
		return Order{}, ErrInvalidStatus
	}
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	ord.Status = status
	ord.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, ord)
}

// newOrderNumber makes a short human-readable order reference.
func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
