package commerce

import (
	"context"
	"fmt"

	"github.com/Houeta/browser-commerce/internal/state"
)

// Pair registers with the companion app and runs the glasses handshake. A failure is logged and leaves the
// glasses disconnected; there is no retry.
func (s *Service) Pair(ctx context.Context) error {
	const opn = "commerce.Pair"
	log := s.log.With("op", opn)

	if _, err := s.store.Dispatch(state.PairingStarted{}); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	pairErr := s.glasses.StartRegistration(ctx)
	if pairErr == nil {
		pairErr = s.glasses.StartPairing(ctx)
	}
	if pairErr != nil {
		log.WarnContext(ctx, "Pairing with glasses failed", "error", pairErr)
	}

	if _, err := s.store.Dispatch(state.PairingFinished{Connected: pairErr == nil}); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	if pairErr != nil {
		return fmt.Errorf("%s: %w", opn, pairErr)
	}

	log.InfoContext(ctx, "Glasses paired")

	return nil
}

// SkipPairing enters the app without glasses.
func (s *Service) SkipPairing(ctx context.Context) error {
	if _, err := s.store.Dispatch(state.SkipPairing{}); err != nil {
		return fmt.Errorf("commerce.SkipPairing: %w", err)
	}

	s.log.InfoContext(ctx, "Pairing skipped", "op", "commerce.SkipPairing")

	return nil
}

// Unpair drops the companion app registration and disconnects the glasses.
func (s *Service) Unpair(ctx context.Context) error {
	const opn = "commerce.Unpair"

	if err := s.glasses.StartUnregistration(ctx); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	if _, err := s.store.Dispatch(state.GlassesConnectionChanged{Connected: false}); err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	s.log.InfoContext(ctx, "Glasses unpaired", "op", opn)

	return nil
}

// WatchDevices mirrors the glasses device stream into the state until ctx is done.
func (s *Service) WatchDevices(ctx context.Context) {
	const opn = "commerce.WatchDevices"

	for devices := range s.glasses.Devices(ctx) {
		connected := len(devices) > 0
		if _, err := s.store.Dispatch(state.GlassesConnectionChanged{Connected: connected}); err != nil {
			s.log.WarnContext(ctx, "Failed to record glasses connection", "op", opn, "error", err)
			continue
		}
		s.log.DebugContext(ctx, "Glasses connection changed", "op", opn, "connected", connected)
	}
}

// speak reads text on the glasses when they are connected. Failures are only logged.
func (s *Service) speak(ctx context.Context, text string) {
	if !s.store.State().GlassesConnected {
		return
	}
	if err := s.glasses.Speak(ctx, text); err != nil {
		s.log.WarnContext(ctx, "Failed to speak on glasses", "op", "commerce.speak", "error", err)
	}
}
