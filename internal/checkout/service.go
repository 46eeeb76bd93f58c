// Package checkout turns a non-empty cart plus delivery details into a
// submitted order, exactly once per trigger.
package checkout

import (
	"context"
	"sync/atomic"

	"cafe-client/internal/cart"
	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
)

// OrderPoster is the single backend operation checkout needs.
type OrderPoster interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) error
}

// Session exposes the role gate; the session context satisfies it.
type Session interface {
	CanPlaceOrder() bool
}

// Service is the order submission service. PlaceOrder never lets an error
// cross its boundary: every failure path is caught, logged, surfaced through
// the Notifier, and reported as a false return.
type Service struct {
	cart       *cart.Cart
	api        OrderPoster
	session    Session
	notify     cart.Notifier
	log        *logger.Logger
	submitting atomic.Bool
}

func New(c *cart.Cart, api OrderPoster, sess Session, notify cart.Notifier, log *logger.Logger) *Service {
	if notify == nil {
		notify = cart.Nop()
	}
	return &Service{cart: c, api: api, session: sess, notify: notify, log: log}
}

// Submitting reports whether an order is in flight; the UI disables its
// trigger while this is true.
func (s *Service) Submitting() bool { return s.submitting.Load() }

// PlaceOrder validates locally, posts the order, and clears the cart on
// success. On any failure the cart is left untouched and the caller may
// re-invoke to retry; there is no automatic retry.
func (s *Service) PlaceOrder(ctx context.Context, details domain.DeliveryDetails) bool {
	if !s.submitting.CompareAndSwap(false, true) {
		s.log.Warn("order_submit_reentry", nil)
		return false
	}
	defer s.submitting.Store(false)

	if s.cart.IsEmpty() {
		s.fail(&domain.ValidationError{Msg: "cart is empty"}, "Your cart is empty")
		return false
	}
	if !s.session.CanPlaceOrder() {
		s.fail(&domain.ValidationError{Msg: "role not allowed to order"}, "This account cannot place orders")
		return false
	}
	if err := details.Validate(); err != nil {
		s.fail(err, "Please check your delivery details")
		return false
	}

	req := s.buildRequest(details)
	if err := s.api.CreateOrder(ctx, req); err != nil {
		s.log.Error("order_submit_failed", err, map[string]any{"total": req.TotalAmount})
		s.notify.Error("Failed to place order. Please try again.")
		return false
	}

	s.cart.Clear()
	s.log.Info("order_submitted", map[string]any{"total": req.TotalAmount, "items": len(req.Items)})
	s.notify.Success("Order placed successfully!")
	return true
}

// buildRequest snapshots the cart. Unit prices are derived from each line's
// stored price/quantity pair, matching what the user saw in the cart.
func (s *Service) buildRequest(details domain.DeliveryDetails) domain.OrderRequest {
	lines := s.cart.Items()
	items := make([]domain.OrderRequestItem, 0, len(lines))
	for _, li := range lines {
		items = append(items, domain.OrderRequestItem{
			MenuItemID: li.ID,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice(),
		})
	}
	return domain.OrderRequest{
		Items:               items,
		TotalAmount:         s.cart.TotalAmount(),
		DeliveryAddress:     details.DeliveryAddress,
		Phone:               details.Phone,
		SpecialInstructions: details.SpecialInstructions,
	}
}

func (s *Service) fail(err error, msg string) {
	s.log.Warn("order_rejected", map[string]any{"reason": err.Error()})
	s.notify.Error(msg)
}
