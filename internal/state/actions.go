package state

import (
	"fmt"
	"slices"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/search"
	"github.com/google/uuid"
)

// Action is a state transition. Apply receives a private copy of the state.
type Action interface {
	Apply(s AppState) (AppState, error)
}

// Reduce applies an action without touching the input state. On error the
// input state is returned unchanged.
func Reduce(s AppState, action Action) (AppState, error) {
	next, err := action.Apply(s.Clone())
	if err != nil {
		return s, fmt.Errorf("%T: %w", action, err)
	}
	return next, nil
}

// VoiceSearch records a resolved voice query and opens the browser tab.
type VoiceSearch struct {
	Result search.Result
}

func (a VoiceSearch) Apply(s AppState) (AppState, error) {
	s.LastVoiceQuery = a.Result.Query
	s.SearchURL = a.Result.URL
	s.SearchResults = slices.Clone(a.Result.Products)
	s.SelectedTab = TabBrowser
	return s, nil
}

// SetComparison shows two products side by side.
type SetComparison struct {
	Left, Right models.ProductResult
}

func (a SetComparison) Apply(s AppState) (AppState, error) {
	s.Comparison = &Comparison{Left: a.Left, Right: a.Right}
	return s, nil
}

// AddToCart appends a new line with quantity 1. Lines are never merged, so
// adding the same product twice yields two lines.
type AddToCart struct {
	Product models.ProductResult
}

func (a AddToCart) Apply(s AppState) (AppState, error) {
	if s.Checkout != nil {
		return s, ErrCheckoutInProgress
	}
	s.Cart = append(s.Cart, models.NewCartItem(a.Product))
	s.LastOutcome = ""
	s.SelectedTab = TabCart
	return s, nil
}

// SetQuantity changes the quantity of one line.
type SetQuantity struct {
	ItemID   uuid.UUID
	Quantity int
}

func (a SetQuantity) Apply(s AppState) (AppState, error) {
	if s.Checkout != nil {
		return s, ErrCheckoutInProgress
	}
	if a.Quantity < 1 {
		return s, ErrInvalidQuantity
	}
	idx := slices.IndexFunc(s.Cart, func(item models.CartItem) bool { return item.ID == a.ItemID })
	if idx < 0 {
		return s, ErrItemNotFound
	}
	s.Cart[idx].Quantity = a.Quantity
	s.LastOutcome = ""
	return s, nil
}

// RemoveFromCart drops one line.
type RemoveFromCart struct {
	ItemID uuid.UUID
}

func (a RemoveFromCart) Apply(s AppState) (AppState, error) {
	if s.Checkout != nil {
		return s, ErrCheckoutInProgress
	}
	idx := slices.IndexFunc(s.Cart, func(item models.CartItem) bool { return item.ID == a.ItemID })
	if idx < 0 {
		return s, ErrItemNotFound
	}
	s.Cart = slices.Delete(s.Cart, idx, idx+1)
	s.LastOutcome = ""
	return s, nil
}

// BeginCheckout opens the wizard at the review step. With no Items the cart is checked out.
type BeginCheckout struct {
	Items []models.CartItem
}

func (a BeginCheckout) Apply(s AppState) (AppState, error) {
	if s.Checkout != nil {
		return s, ErrCheckoutInProgress
	}

	checkout := Checkout{Step: StepReview, Items: slices.Clone(s.Cart)}
	if len(a.Items) > 0 {
		checkout.Items = slices.Clone(a.Items)
		checkout.Explicit = true
	}
	if len(checkout.Items) == 0 {
		return s, ErrEmptyCart
	}

	s.Checkout = &checkout
	s.LastOutcome = ""
	return s, nil
}

// AdvanceCheckout moves Review to Payment to Confirm.
type AdvanceCheckout struct{}

func (AdvanceCheckout) Apply(s AppState) (AppState, error) {
	if s.Checkout == nil {
		return s, ErrNoCheckout
	}
	if s.Checkout.IsFinalStep() {
		return s, ErrCheckoutAtFinalStep
	}
	s.Checkout.Step++
	return s, nil
}

// CancelCheckout closes the wizard and keeps the cart.
type CancelCheckout struct{}

func (CancelCheckout) Apply(s AppState) (AppState, error) {
	if s.Checkout == nil {
		return s, ErrNoCheckout
	}
	s.Checkout = nil
	s.LastOutcome = PhaseCancelled
	return s, nil
}

// CompleteCheckout is the success confirmation. It records the orders and
// empties the cart unless the checkout was for an explicit item list.
type CompleteCheckout struct {
	Orders []models.Order
}

func (a CompleteCheckout) Apply(s AppState) (AppState, error) {
	if s.Checkout == nil {
		return s, ErrNoCheckout
	}
	if !s.Checkout.IsFinalStep() {
		return s, ErrCheckoutNotConfirm
	}
	if !s.Checkout.Explicit {
		s.Cart = nil
	}
	s.Orders = append(s.Orders, a.Orders...)
	s.Checkout = nil
	s.LastOutcome = PhaseCompleted
	return s, nil
}

// LoadOrders replaces the order history, used once at startup.
type LoadOrders struct {
	Orders []models.Order
}

func (a LoadOrders) Apply(s AppState) (AppState, error) {
	s.Orders = slices.Clone(a.Orders)
	return s, nil
}

// SelectTab switches the main screen section.
type SelectTab struct {
	Tab Tab
}

func (a SelectTab) Apply(s AppState) (AppState, error) {
	s.SelectedTab = a.Tab
	return s, nil
}

// PairingStarted marks the glasses handshake as running.
type PairingStarted struct{}

func (PairingStarted) Apply(s AppState) (AppState, error) {
	s.PairingInProgress = true
	return s, nil
}

// PairingFinished ends the handshake. A failed handshake leaves the glasses disconnected.
type PairingFinished struct {
	Connected bool
}

func (a PairingFinished) Apply(s AppState) (AppState, error) {
	s.PairingInProgress = false
	s.GlassesConnected = a.Connected
	if a.Connected {
		s.HasCompletedPairingFlow = true
	}
	return s, nil
}

// SkipPairing lets the user into the app without glasses.
type SkipPairing struct{}

func (SkipPairing) Apply(s AppState) (AppState, error) {
	s.HasCompletedPairingFlow = true
	return s, nil
}

// GlassesConnectionChanged mirrors the device stream.
type GlassesConnectionChanged struct {
	Connected bool
}

func (a GlassesConnectionChanged) Apply(s AppState) (AppState, error) {
	s.GlassesConnected = a.Connected
	return s, nil
}
