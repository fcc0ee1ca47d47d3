package commerce

import (
	"context"
	"fmt"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/state"
)

// Checkout opens the wizard for the whole cart.
func (s *Service) Checkout(ctx context.Context) (state.AppState, error) {
	return s.beginCheckout(ctx, nil)
}

// CheckoutItems opens the wizard for an explicit item list; the cart is kept on completion.
func (s *Service) CheckoutItems(ctx context.Context, items []models.CartItem) (state.AppState, error) {
	return s.beginCheckout(ctx, items)
}

func (s *Service) beginCheckout(ctx context.Context, items []models.CartItem) (state.AppState, error) {
	const opn = "commerce.Checkout"

	next, err := s.store.Dispatch(state.BeginCheckout{Items: items})
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Checkout started", "op", opn,
		"lines", len(next.Checkout.Items), "total", next.Checkout.Total().String())

	return next, nil
}

// Advance moves the wizard one step forward.
func (s *Service) Advance(ctx context.Context) (state.AppState, error) {
	const opn = "commerce.Advance"

	next, err := s.store.Dispatch(state.AdvanceCheckout{})
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.DebugContext(ctx, "Checkout advanced", "op", opn, "step", next.Checkout.Step.String())

	return next, nil
}

// Next is the wizard's primary button: Continue on the first two steps,
// Place Order on the last one. The returned orders are nil unless an order was placed.
func (s *Service) Next(ctx context.Context) (state.AppState, []models.Order, error) {
	current := s.store.State()
	if current.Checkout != nil && current.Checkout.IsFinalStep() {
		orders, err := s.PlaceOrder(ctx)
		if err != nil {
			return state.AppState{}, nil, err
		}
		return s.store.State(), orders, nil
	}

	next, err := s.Advance(ctx)
	return next, nil, err
}

// Cancel closes the wizard and keeps the cart.
func (s *Service) Cancel(ctx context.Context) (state.AppState, error) {
	const opn = "commerce.Cancel"

	next, err := s.store.Dispatch(state.CancelCheckout{})
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Checkout cancelled", "op", opn)

	return next, nil
}

// PlaceOrder confirms the checkout. Orders are stored before the state is
// completed, so a storage failure leaves the cart and the wizard untouched.
// Concurrent calls place the order once; the others get ErrNoCheckout.
func (s *Service) PlaceOrder(ctx context.Context) ([]models.Order, error) {
	const opn = "commerce.PlaceOrder"
	log := s.log.With("op", opn)

	s.placeMu.Lock()
	defer s.placeMu.Unlock()

	current := s.store.State()
	if current.Checkout == nil {
		return nil, fmt.Errorf("%s: %w", opn, state.ErrNoCheckout)
	}
	if !current.Checkout.IsFinalStep() {
		return nil, fmt.Errorf("%s: %w", opn, state.ErrCheckoutNotConfirm)
	}

	orders := models.OrdersFromCheckout(current.Checkout.Items, s.now())
	if err := s.orders.AppendOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("%s: failed to store orders: %w", opn, err)
	}

	if _, err := s.store.Dispatch(state.CompleteCheckout{Orders: orders}); err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	log.InfoContext(ctx, "Order placed", "orders", len(orders), "total", current.Checkout.Total().String())
	s.speak(ctx, "Your order has been placed")

	return orders, nil
}

// Orders returns the order history, oldest first.
func (s *Service) Orders() []models.Order {
	return s.store.State().Orders
}
