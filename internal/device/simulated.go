package device

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Simulated stands in for the glasses SDK: pairing waits a fixed delay and
// then reports one connected device.
type Simulated struct {
	log   *slog.Logger
	delay time.Duration

	mu           sync.Mutex
	devices      []Device
	registered   bool
	watchers     map[int]chan []Device
	nextID       int
	spoken       []string
}

// NewSimulated creates a Simulated device whose pairing takes delay.
func NewSimulated(log *slog.Logger, delay time.Duration) *Simulated {
	return &Simulated{
		log:      log,
		delay:    delay,
		watchers: make(map[int]chan []Device),
	}
}

// StartPairing waits for the configured delay and connects the glasses.
func (s *Simulated) StartPairing(ctx context.Context) error {
	const opn = "device.Simulated.StartPairing"

	s.log.InfoContext(ctx, "Pairing with glasses", "op", opn, "delay", s.delay)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", opn, ctx.Err())
	case <-timer.C:
	}

	s.setDevices([]Device{{ID: "glasses-1", Name: "Meta AI Glasses"}})

	return nil
}

// StartRegistration marks the app as registered with the companion app.
func (s *Simulated) StartRegistration(ctx context.Context) error {
	s.mu.Lock()
	s.registered = true
	s.mu.Unlock()

	s.log.InfoContext(ctx, "Registered with companion app", "op", "device.Simulated.StartRegistration")

	return nil
}

// StartUnregistration drops the registration and disconnects every device.
func (s *Simulated) StartUnregistration(ctx context.Context) error {
	s.mu.Lock()
	registered := s.registered
	s.registered = false
	s.mu.Unlock()

	if !registered {
		return fmt.Errorf("device.Simulated.StartUnregistration: %w", ErrNotRegistered)
	}

	s.setDevices(nil)
	s.log.InfoContext(ctx, "Unregistered from companion app", "op", "device.Simulated.StartUnregistration")

	return nil
}

// Speak records the phrase instead of playing it.
func (s *Simulated) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	s.spoken = append(s.spoken, text)
	s.mu.Unlock()

	s.log.DebugContext(ctx, "Speaking on glasses", "op", "device.Simulated.Speak", "text", text)

	return nil
}

// Spoken returns every phrase passed to Speak.
func (s *Simulated) Spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.spoken)
}

// Devices emits the current device list immediately and again after every change.
func (s *Simulated) Devices(ctx context.Context) <-chan []Device {
	ch := make(chan []Device, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = ch
	ch <- slices.Clone(s.devices)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.watchers, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *Simulated) setDevices(devices []Device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.devices = slices.Clone(devices)
	for _, ch := range s.watchers {
		// Watchers only need the latest list.
		select {
		case <-ch:
		default:
		}
		ch <- slices.Clone(devices)
	}
}
