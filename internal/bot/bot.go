package bot

import (
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/telebot.v4"
)

// Bot contains the bot API instance and other information.
type Bot struct {
	bot API
	log *slog.Logger
	svc Commerce
}

func NewBot(log *slog.Logger, token string, poller time.Duration, svc Commerce) (*Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: poller},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	log.Info("Authorized on acount", "account", bot.Me.Username)

	botInstance := &Bot{bot: bot, log: log, svc: svc}

	botInstance.registerRoutes()

	return botInstance, nil
}

// Start launches the bot to listen for updates.
func (b *Bot) Start() {
	b.log.Info("Telegram bot is starting...")
	b.bot.Start()
}

// Stop gracefully stops the Telegram bot and logs the action.
func (b *Bot) Stop() {
	b.log.Info("Telegram bot is stopped...")
	b.bot.Stop()
}

// routes maps every command to the function building its reply.
func (b *Bot) routes() map[string]replyFunc {
	return map[string]replyFunc{
		"/start":      b.startReply,
		"/search":     b.searchReply,
		"/results":    b.resultsReply,
		"/add":        b.addReply,
		"/compare":    b.compareReply,
		"/browse":     b.browseReply,
		"/coffee":     b.diningReply,
		"/cart":       b.cartReply,
		"/qty":        b.quantityReply,
		"/remove":     b.removeReply,
		"/checkout":   b.checkoutReply,
		"/next":       b.nextReply,
		"/cancel":     b.cancelReply,
		"/orders":     b.ordersReply,
		"/platforms":  b.platformsReply,
		"/connect":    b.connectReply,
		"/disconnect": b.disconnectReply,
		"/pair":       b.pairReply,
		"/unpair":     b.unpairReply,
		"/skip":       b.skipReply,
	}
}

// registerRoutes configures all routes (commands).
func (b *Bot) registerRoutes() {
	for endpoint, reply := range b.routes() {
		b.bot.Handle(endpoint, b.handler(endpoint, reply))
	}

	// Any other text is treated as a voice utterance or a deep link.
	b.bot.Handle(telebot.OnText, b.handler(telebot.OnText, b.textReply))
}
