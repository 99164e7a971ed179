package checkout

import (
	"github.com/zsherman2510/shop-themes-backend/internal/cart"
	"github.com/zsherman2510/shop-themes-backend/internal/customer"
	"github.com/zsherman2510/shop-themes-backend/internal/order"
)

// Service drives the checkout handoff: cart in, pending order and payment
// URL out, then completion on the provider's success callback.
type Service struct {
	orders     *order.Service
	customers  *customer.Service
	provider   Provider
	successURL string
	cancelURL  string
}

func NewService(orders *order.Service, customers *customer.Service, provider Provider, successURL, cancelURL string) *Service {
	return &Service{
		orders:     orders,
		customers:  customers,
		provider:   provider,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// StartResult tells the storefront where to send the shopper.
type StartResult struct {
	OrderID    string `json:"orderId"`
	Number     string `json:"number"`
	PaymentURL string `json:"paymentUrl"`
}

// Start snapshots the cart into a PENDING order and opens a payment
// session. The cart itself is untouched; it is cleared only when the
// provider confirms payment.
func (s *Service) Start(ct cart.Cart, email string) (StartResult, error) {
	ord, err := s.orders.CreateFromCart(ct, email, 0)
	if err != nil {
		return StartResult{}, err
	}

	sess, err := s.provider.CreateSession(SessionRequest{
		OrderID:     ord.ID,
		OrderNumber: ord.Number,
		Items:       ord.Items,
		Subtotal:    ord.Subtotal,
		Total:       ord.TotalPrice,
		SuccessURL:  s.successURL,
		CancelURL:   s.cancelURL,
	})
	if err != nil {
		return StartResult{}, err
	}

	return StartResult{OrderID: ord.ID, Number: ord.Number, PaymentURL: sess.URL}, nil
}

// Complete marks the order PAID and records the customer. The returned
// bool reports whether this call performed the transition: the caller
// clears the cart only then, so a replayed callback cannot clear a cart
// the shopper has since refilled.
func (s *Service) Complete(orderID string) (order.Order, bool, error) {
	ord, err := s.orders.GetByID(orderID)
	if err != nil {
		return order.Order{}, false, err
	}
	if ord.Status != order.StatusPending {
		return ord, false, nil
	}

	cust, err := s.customers.Ensure(ord.CustomerEmail, "")
	if err != nil {
		return order.Order{}, false, err
	}

	updated, transitioned, err := s.orders.MarkPaid(orderID, cust.ID)
	if err != nil {
		return order.Order{}, false, err
	}
	if transitioned {
		if err := s.customers.RecordOrder(cust.ID); err != nil {
			return order.Order{}, false, err
		}
	}
	return updated, transitioned, nil
}
