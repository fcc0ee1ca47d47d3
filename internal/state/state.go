package state

import (
	"slices"

	"github.com/Houeta/browser-commerce/internal/models"
)

// Tab is the selected section of the main screen.
type Tab string

const (
	TabHome    Tab = "home"
	TabBrowser Tab = "browser"
	TabCart    Tab = "cart"
)

// Phase is the cart/checkout lifecycle position derived from AppState.
type Phase string

const (
	PhaseBrowsing           Phase = "browsing"
	PhaseItemsInCart        Phase = "items_in_cart"
	PhaseCheckoutInProgress Phase = "checkout_in_progress"
	PhaseCompleted          Phase = "completed"
	PhaseCancelled          Phase = "cancelled"
)

// IsTerminal reports whether the phase ends a checkout.
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseCancelled
}

// Comparison is the pair of products shown side by side.
type Comparison struct {
	Left  models.ProductResult
	Right models.ProductResult
}

// AppState is the whole application state. It is only changed through Reduce.
type AppState struct {
	GlassesConnected        bool
	PairingInProgress       bool
	HasCompletedPairingFlow bool // paired or skipped

	LastVoiceQuery string
	SearchURL      string
	SearchResults  []models.ProductResult
	Comparison     *Comparison

	Cart     []models.CartItem
	Orders   []models.Order
	Checkout *Checkout
	// Outcome of the most recent checkout, reset by the next cart change.
	LastOutcome Phase

	SelectedTab Tab
}

// Initial is the state of a fresh launch.
func Initial() AppState {
	return AppState{SelectedTab: TabHome}
}

// Phase derives the lifecycle position.
func (s AppState) Phase() Phase {
	switch {
	case s.Checkout != nil:
		return PhaseCheckoutInProgress
	case s.LastOutcome.IsTerminal():
		return s.LastOutcome
	case len(s.Cart) > 0:
		return PhaseItemsInCart
	default:
		return PhaseBrowsing
	}
}

// CartCount is the number of cart lines.
func (s AppState) CartCount() int {
	return len(s.Cart)
}

// Clone returns a copy that shares no slices with s.
func (s AppState) Clone() AppState {
	out := s
	out.SearchResults = slices.Clone(s.SearchResults)
	out.Cart = slices.Clone(s.Cart)
	out.Orders = slices.Clone(s.Orders)
	if s.Comparison != nil {
		c := *s.Comparison
		out.Comparison = &c
	}
	if s.Checkout != nil {
		c := s.Checkout.clone()
		out.Checkout = &c
	}
	return out
}
