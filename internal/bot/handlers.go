package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Houeta/browser-commerce/internal/device"
	"github.com/Houeta/browser-commerce/internal/services/commerce"
	"github.com/Houeta/browser-commerce/internal/state"
	"gopkg.in/telebot.v4"
)

const requestTimeout = 30 * time.Second

// replyFunc builds the answer to one command from its payload.
type replyFunc func(ctx context.Context, payload string) string

func (b *Bot) handler(endpoint string, reply replyFunc) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		payload := c.Message().Payload
		if endpoint == telebot.OnText {
			payload = c.Text()
		}

		username := ""
		if sender := c.Sender(); sender != nil {
			username = sender.Username
		}
		b.log.DebugContext(ctx, "Command received", "endpoint", endpoint, "username", username)

		if err := c.Send(reply(ctx, payload)); err != nil {
			return fmt.Errorf("failed to send reply to %s: %w", endpoint, err)
		}

		return nil
	}
}

// failure logs err and turns it into a short message for the user.
func (b *Bot) failure(ctx context.Context, action string, err error) string {
	b.log.WarnContext(ctx, "Command failed", "action", action, "error", err)

	switch {
	case errors.Is(err, state.ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, state.ErrCheckoutInProgress):
		return "Finish or /cancel the checkout first."
	case errors.Is(err, state.ErrNoCheckout):
		return "No checkout in progress. Use /checkout to start one."
	case errors.Is(err, state.ErrInvalidQuantity):
		return "Quantity must be at least 1."
	case errors.Is(err, commerce.ErrNoSuchResult):
		return "There is no result with that number. Use /results to see them."
	case errors.Is(err, commerce.ErrNoSuchItem):
		return "There is no cart line with that number. Use /cart to see them."
	case errors.Is(err, commerce.ErrUnknownPlatform):
		return "Unknown platform. Use /platforms to see the list."
	case errors.Is(err, commerce.ErrUnsupportedLink):
		return "That link is not a search link."
	default:
		return fmt.Sprintf("Could not %s, please try again.", action)
	}
}

func parsePosition(payload string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(payload))
	return n, err == nil
}

func (b *Bot) startReply(_ context.Context, _ string) string {
	return "Hands-free search and buy.\n" +
		"Say what you want, for example \"find running shoes\" or \"a sofa for my living room\".\n" +
		"Links like " + b.svc.SearchLink("running shoes") + " open a search too.\n" +
		"Commands: /search /results /add /compare /cart /checkout /next /cancel /orders /platforms /connect /pair /unpair"
}

func (b *Bot) textReply(ctx context.Context, text string) string {
	if strings.Contains(text, "://") {
		res, err := b.svc.OpenURL(ctx, text)
		if err != nil {
			return b.failure(ctx, "open the link", err)
		}
		return formatResults(res)
	}
	return b.searchReply(ctx, text)
}

func (b *Bot) searchReply(ctx context.Context, query string) string {
	res, err := b.svc.VoiceQuery(ctx, query)
	if err != nil {
		return b.failure(ctx, "search", err)
	}
	return formatResults(res)
}

func (b *Bot) resultsReply(_ context.Context, _ string) string {
	st := b.svc.State()
	if len(st.SearchResults) == 0 {
		return "No results yet. Try /search running shoes."
	}
	return formatProducts(st.SearchResults)
}

func (b *Bot) diningReply(ctx context.Context, venue string) string {
	venue = strings.TrimSpace(venue)
	if venue == "" {
		venue = "La Colombe"
	}
	res, err := b.svc.Dining(ctx, venue)
	if err != nil {
		return b.failure(ctx, "prepare the pickup order", err)
	}
	return formatResults(res)
}

func (b *Bot) browseReply(ctx context.Context, platformID string) string {
	link, err := b.svc.BrowseURL(strings.ToLower(strings.TrimSpace(platformID)))
	if err != nil {
		return b.failure(ctx, "browse", err)
	}
	return link
}

func (b *Bot) addReply(ctx context.Context, payload string) string {
	arg := strings.ToLower(strings.TrimSpace(payload))

	var (
		title string
		err   error
	)
	switch arg {
	case "iphone":
		item, addErr := b.svc.AddComparison(ctx, commerce.SideLeft)
		title, err = item.Product.Title, addErr
	case "pixel":
		item, addErr := b.svc.AddComparison(ctx, commerce.SideRight)
		title, err = item.Product.Title, addErr
	default:
		position, ok := parsePosition(arg)
		if !ok {
			return "Usage: /add <result number>, /add iphone or /add pixel"
		}
		item, addErr := b.svc.AddResult(ctx, position)
		title, err = item.Product.Title, addErr
	}
	if err != nil {
		return b.failure(ctx, "add to cart", err)
	}

	return fmt.Sprintf("Added %s to your cart. %d item(s) in cart.", title, b.svc.State().CartCount())
}

func (b *Bot) compareReply(ctx context.Context, _ string) string {
	pair, err := b.svc.Compare(ctx)
	if err != nil {
		return b.failure(ctx, "compare", err)
	}
	return formatComparison(pair)
}

func (b *Bot) cartReply(_ context.Context, _ string) string {
	return formatCart(b.svc.State().Cart)
}

func (b *Bot) quantityReply(ctx context.Context, payload string) string {
	fields := strings.Fields(payload)
	if len(fields) != 2 {
		return "Usage: /qty <line number> <quantity>"
	}
	position, okPos := parsePosition(fields[0])
	quantity, okQty := parsePosition(fields[1])
	if !okPos || !okQty {
		return "Usage: /qty <line number> <quantity>"
	}

	st, err := b.svc.SetQuantity(ctx, position, quantity)
	if err != nil {
		return b.failure(ctx, "change the quantity", err)
	}
	return formatCart(st.Cart)
}

func (b *Bot) removeReply(ctx context.Context, payload string) string {
	position, ok := parsePosition(payload)
	if !ok {
		return "Usage: /remove <line number>"
	}

	st, err := b.svc.RemoveItem(ctx, position)
	if err != nil {
		return b.failure(ctx, "remove the item", err)
	}
	return formatCart(st.Cart)
}

func (b *Bot) checkoutReply(ctx context.Context, _ string) string {
	st, err := b.svc.Checkout(ctx)
	if err != nil {
		return b.failure(ctx, "start checkout", err)
	}
	return formatCheckout(*st.Checkout)
}

func (b *Bot) nextReply(ctx context.Context, _ string) string {
	st, orders, err := b.svc.Next(ctx)
	if err != nil {
		return b.failure(ctx, "continue checkout", err)
	}
	if orders != nil {
		return "Order Complete\nYour order has been placed. Items will be shipped to your saved address.\n\n" +
			formatOrders(orders)
	}
	return formatCheckout(*st.Checkout)
}

func (b *Bot) cancelReply(ctx context.Context, _ string) string {
	st, err := b.svc.Cancel(ctx)
	if err != nil {
		return b.failure(ctx, "cancel checkout", err)
	}
	return "Checkout cancelled. " + formatCart(st.Cart)
}

func (b *Bot) ordersReply(_ context.Context, _ string) string {
	return formatOrders(b.svc.Orders())
}

func (b *Bot) platformsReply(ctx context.Context, _ string) string {
	platforms, err := b.svc.Platforms(ctx)
	if err != nil {
		return b.failure(ctx, "list platforms", err)
	}
	return formatPlatforms(platforms)
}

func (b *Bot) connectReply(ctx context.Context, payload string) string {
	platform, err := b.svc.Connect(ctx, strings.ToLower(strings.TrimSpace(payload)))
	if err != nil {
		return b.failure(ctx, "connect", err)
	}
	return platform.Name + " connected."
}

func (b *Bot) disconnectReply(ctx context.Context, payload string) string {
	platform, err := b.svc.Disconnect(ctx, strings.ToLower(strings.TrimSpace(payload)))
	if err != nil {
		return b.failure(ctx, "disconnect", err)
	}
	return platform.Name + " disconnected."
}

func (b *Bot) pairReply(ctx context.Context, _ string) string {
	if err := b.svc.Pair(ctx); err != nil {
		b.log.WarnContext(ctx, "Pairing failed", "error", err)
		return "Could not connect to your glasses. You can /skip and pair later."
	}
	return "Glasses connected."
}

func (b *Bot) unpairReply(ctx context.Context, _ string) string {
	if err := b.svc.Unpair(ctx); err != nil {
		if errors.Is(err, device.ErrNotRegistered) {
			return "Your glasses are not paired. Use /pair to connect them."
		}
		return b.failure(ctx, "unpair", err)
	}
	return "Glasses disconnected."
}

func (b *Bot) skipReply(ctx context.Context, _ string) string {
	if err := b.svc.SkipPairing(ctx); err != nil {
		return b.failure(ctx, "skip pairing", err)
	}
	return "Continuing without glasses. Use /pair any time."
}
