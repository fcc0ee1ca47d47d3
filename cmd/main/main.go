package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Houeta/browser-commerce/internal/bot"
	"github.com/Houeta/browser-commerce/internal/config"
	"github.com/Houeta/browser-commerce/internal/device"
	"github.com/Houeta/browser-commerce/internal/repository/sqlite"
	"github.com/Houeta/browser-commerce/internal/services/commerce"
	"github.com/Houeta/browser-commerce/internal/state"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	store := state.NewStore(logger, state.Initial())
	defer store.Close()

	glasses := device.NewSimulated(logger, cfg.Glasses.PairingDelay)

	svc := commerce.NewService(logger, store, repo, repo, glasses, cfg.URLScheme)
	if err = svc.Load(ctx); err != nil {
		log.Fatalf("Failed to load order history: %v", err)
	}

	go svc.WatchDevices(ctx)
	go logPhases(ctx, logger, store)

	commerceBot, err := bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout, svc)
	if err != nil {
		log.Fatalf("Failed to init bot: %v", err)
	}

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	// Start the bot in a goroutine to allow main to listen for signals.
	go commerceBot.Start()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Stop the bot gracefully.
	commerceBot.Stop()

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// logPhases follows state snapshots and logs every cart phase change.
func logPhases(ctx context.Context, logger *slog.Logger, store *state.Store) {
	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	last := store.State().Phase()
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if phase := snapshot.Phase(); phase != last {
				logger.InfoContext(ctx, "Cart phase changed", "from", string(last), "to", string(phase),
					"cart", snapshot.CartCount(), "orders", len(snapshot.Orders))
				last = phase
			}
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified	 or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
