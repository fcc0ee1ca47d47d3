package bot

import (
	"context"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/search"
	"github.com/Houeta/browser-commerce/internal/services/commerce"
	"github.com/Houeta/browser-commerce/internal/state"
	"gopkg.in/telebot.v4"
)

type API interface {
	// Handle lets you set the handler for some command name or one of the supported endpoints. It also applies middleware if such passed to the function.
	Handle(endpoint interface{}, h telebot.HandlerFunc, m ...telebot.MiddlewareFunc)
	// Start brings bot into motion by consuming incoming updates (see Bot.Updates channel).
	Start()
	// Stop gracefully shuts the poller down.
	Stop()

	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Commerce is the controller the chat commands drive.
type Commerce interface {
	State() state.AppState
	VoiceQuery(ctx context.Context, query string) (search.Result, error)
	OpenURL(ctx context.Context, raw string) (search.Result, error)
	SearchLink(query string) string
	Dining(ctx context.Context, venue string) (search.Result, error)
	BrowseURL(platformID string) (string, error)
	AddResult(ctx context.Context, position int) (models.CartItem, error)
	Compare(ctx context.Context) (state.Comparison, error)
	AddComparison(ctx context.Context, side commerce.Side) (models.CartItem, error)
	SetQuantity(ctx context.Context, position, quantity int) (state.AppState, error)
	RemoveItem(ctx context.Context, position int) (state.AppState, error)
	Checkout(ctx context.Context) (state.AppState, error)
	Next(ctx context.Context) (state.AppState, []models.Order, error)
	Cancel(ctx context.Context) (state.AppState, error)
	Orders() []models.Order
	Platforms(ctx context.Context) ([]models.PlatformConnection, error)
	Connect(ctx context.Context, platformID string) (models.Platform, error)
	Disconnect(ctx context.Context, platformID string) (models.Platform, error)
	Pair(ctx context.Context) error
	Unpair(ctx context.Context) error
	SkipPairing(ctx context.Context) error
}
