package device

import (
	"context"
	"errors"
)

var ErrNotRegistered = errors.New("app is not registered with the glasses companion app")

// Device is one pair of connected glasses.
type Device struct {
	ID   string
	Name string
}

// Wearables is everything the app needs from the glasses SDK.
type Wearables interface {
	// StartPairing runs the handshake and returns once the glasses are connected.
	StartPairing(ctx context.Context) error
	// Devices streams the connected device list; the channel closes when ctx is done.
	Devices(ctx context.Context) <-chan []Device
	// StartRegistration registers the app with the companion app. It is
	// idempotent and precedes pairing.
	StartRegistration(ctx context.Context) error
	// StartUnregistration drops the registration and disconnects the glasses.
	StartUnregistration(ctx context.Context) error
	// Speak reads text aloud on the glasses.
	Speak(ctx context.Context, text string) error
}
