package repository

import (
	"context"
	"errors"

	"github.com/Houeta/browser-commerce/internal/models"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrOrderExists     = errors.New("order already recorded")
)

// ConnectedPlatformsKey is the single key holding the connected platform set.
const ConnectedPlatformsKey = "MetaBrowserCommerce.ConnectedPlatforms"

// PlatformRepository persists which retailers the user has signed in to.
type PlatformRepository interface {
	IsConnected(ctx context.Context, platformID string) (bool, error)
	SetConnected(ctx context.Context, platformID string, connected bool) error
	ConnectedPlatforms(ctx context.Context) ([]string, error)
}

// OrderRepository keeps the append-only order history.
type OrderRepository interface {
	AppendOrders(ctx context.Context, orders []models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}
