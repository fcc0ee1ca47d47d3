package commerce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Houeta/browser-commerce/internal/deeplink"
	"github.com/Houeta/browser-commerce/internal/device"
	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/repository"
	"github.com/Houeta/browser-commerce/internal/search"
	"github.com/Houeta/browser-commerce/internal/state"
)

var (
	ErrUnsupportedLink = errors.New("link is not a search link")
	ErrNoSuchResult    = errors.New("no search result at that position")
	ErrNoSuchItem      = errors.New("no cart line at that position")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Side picks one product of the comparison pair.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Service is the UI controller: it resolves queries, drives the state store
// and talks to persistence and the glasses.
type Service struct {
	log       *slog.Logger
	store     *state.Store
	platforms repository.PlatformRepository
	orders    repository.OrderRepository
	glasses   device.Wearables
	scheme    string
	now       func() time.Time

	// placeMu makes the check, persist and complete steps of PlaceOrder one unit.
	placeMu sync.Mutex
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new Service instance.
func NewService(
	log *slog.Logger,
	store *state.Store,
	platforms repository.PlatformRepository,
	orders repository.OrderRepository,
	glasses device.Wearables,
	scheme string,
	opts ...Option,
) *Service {
	svc := &Service{
		log:       log,
		store:     store,
		platforms: platforms,
		orders:    orders,
		glasses:   glasses,
		scheme:    scheme,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// State returns the current application state.
func (s *Service) State() state.AppState {
	return s.store.State()
}

// Load restores the persisted order history into the state.
func (s *Service) Load(ctx context.Context) error {
	const opn = "commerce.Load"

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("%s: failed to list orders: %w", opn, err)
	}

	if _, err = s.store.Dispatch(state.LoadOrders{Orders: orders}); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Order history loaded", "op", opn, "count", len(orders))

	return nil
}

// VoiceQuery resolves an utterance against the connected retailers, shows
// the results and reads a summary on the glasses.
func (s *Service) VoiceQuery(ctx context.Context, query string) (search.Result, error) {
	const opn = "commerce.VoiceQuery"
	log := s.log.With("op", opn)

	connected, err := s.platforms.ConnectedPlatforms(ctx)
	if err != nil {
		return search.Result{}, fmt.Errorf("%s: failed to get connected platforms: %w", opn, err)
	}

	res := search.Resolve(query, search.NewConnections(connected...))
	log.InfoContext(ctx, "Voice query resolved", "query", query, "term", res.Term, "results", len(res.Products))

	if _, err = s.store.Dispatch(state.VoiceSearch{Result: res}); err != nil {
		return search.Result{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.speak(ctx, fmt.Sprintf("Found %d results for %s", len(res.Products), res.Term))

	return res, nil
}

// OpenURL handles a <scheme>://search?q= deep link.
func (s *Service) OpenURL(ctx context.Context, raw string) (search.Result, error) {
	const opn = "commerce.OpenURL"

	query, ok := deeplink.ParseSearch(raw, s.scheme)
	if !ok {
		return search.Result{}, fmt.Errorf("%s: %w: %s", opn, ErrUnsupportedLink, raw)
	}

	return s.VoiceQuery(ctx, query)
}

// SearchLink builds the deep link that opens a voice query in this app.
func (s *Service) SearchLink(query string) string {
	return deeplink.SearchLink(s.scheme, query)
}

// Dining shows the pickup order for a coffee venue.
func (s *Service) Dining(ctx context.Context, venue string) (search.Result, error) {
	const opn = "commerce.Dining"

	res := search.DiningOrder(venue)
	if _, err := s.store.Dispatch(state.VoiceSearch{Result: res}); err != nil {
		return search.Result{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Dining order prepared", "op", opn, "venue", venue)

	return res, nil
}

// BrowseURL is the retailer page for the last voice query.
func (s *Service) BrowseURL(platformID string) (string, error) {
	if _, ok := models.LookupPlatform(platformID); !ok {
		return "", fmt.Errorf("commerce.BrowseURL: %w: %q", ErrUnknownPlatform, platformID)
	}
	return search.BrowseURL(platformID, s.store.State().LastVoiceQuery), nil
}

// AddResult adds the search result at a 1-based position to the cart.
func (s *Service) AddResult(ctx context.Context, position int) (models.CartItem, error) {
	const opn = "commerce.AddResult"

	results := s.store.State().SearchResults
	if position < 1 || position > len(results) {
		return models.CartItem{}, fmt.Errorf("%s: %w: %d", opn, ErrNoSuchResult, position)
	}

	return s.addToCart(ctx, opn, results[position-1])
}

// Compare shows the phone comparison pair.
func (s *Service) Compare(ctx context.Context) (state.Comparison, error) {
	const opn = "commerce.Compare"

	left, right := search.Comparison()
	next, err := s.store.Dispatch(state.SetComparison{Left: left, Right: right})
	if err != nil {
		return state.Comparison{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.speak(ctx, fmt.Sprintf("%s or %s. Say add to cart to pick one.", left.Title, right.Title))

	return *next.Comparison, nil
}

// AddComparison adds one side of the comparison to the cart, showing the comparison first if needed.
func (s *Service) AddComparison(ctx context.Context, side Side) (models.CartItem, error) {
	const opn = "commerce.AddComparison"

	pair := s.store.State().Comparison
	if pair == nil {
		shown, err := s.Compare(ctx)
		if err != nil {
			return models.CartItem{}, fmt.Errorf("%s: %w", opn, err)
		}
		pair = &shown
	}

	product := pair.Left
	if side == SideRight {
		product = pair.Right
	}

	return s.addToCart(ctx, opn, product)
}

func (s *Service) addToCart(ctx context.Context, opn string, product models.ProductResult) (models.CartItem, error) {
	next, err := s.store.Dispatch(state.AddToCart{Product: product})
	if err != nil {
		return models.CartItem{}, fmt.Errorf("%s: %w", opn, err)
	}

	item := next.Cart[len(next.Cart)-1]
	s.log.InfoContext(ctx, "Added to cart", "op", opn, "title", product.Title, "source", product.Source, "lines", len(next.Cart))
	s.speak(ctx, "Added "+product.Title+" to your cart")

	return item, nil
}

// SetQuantity changes the quantity of the cart line at a 1-based position.
func (s *Service) SetQuantity(ctx context.Context, position, quantity int) (state.AppState, error) {
	const opn = "commerce.SetQuantity"

	item, err := s.cartLine(position)
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	next, err := s.store.Dispatch(state.SetQuantity{ItemID: item.ID, Quantity: quantity})
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.DebugContext(ctx, "Quantity changed", "op", opn, "title", item.Product.Title, "quantity", quantity)

	return next, nil
}

// RemoveItem drops the cart line at a 1-based position.
func (s *Service) RemoveItem(ctx context.Context, position int) (state.AppState, error) {
	const opn = "commerce.RemoveItem"

	item, err := s.cartLine(position)
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	next, err := s.store.Dispatch(state.RemoveFromCart{ItemID: item.ID})
	if err != nil {
		return state.AppState{}, fmt.Errorf("%s: %w", opn, err)
	}

	s.log.DebugContext(ctx, "Removed from cart", "op", opn, "title", item.Product.Title)

	return next, nil
}

func (s *Service) cartLine(position int) (models.CartItem, error) {
	cart := s.store.State().Cart
	if position < 1 || position > len(cart) {
		return models.CartItem{}, fmt.Errorf("%w: %d", ErrNoSuchItem, position)
	}
	return cart[position-1], nil
}

// SelectTab switches the main screen section.
func (s *Service) SelectTab(tab state.Tab) (state.AppState, error) {
	next, err := s.store.Dispatch(state.SelectTab{Tab: tab})
	if err != nil {
		return state.AppState{}, fmt.Errorf("commerce.SelectTab: %w", err)
	}
	return next, nil
}
