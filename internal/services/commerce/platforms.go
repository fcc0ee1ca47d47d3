package commerce

import (
	"context"
	"fmt"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/search"
)

// Platforms lists every retailer with its login flag.
func (s *Service) Platforms(ctx context.Context) ([]models.PlatformConnection, error) {
	const opn = "commerce.Platforms"

	ids, err := s.platforms.ConnectedPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}
	connected := search.NewConnections(ids...)

	catalog := models.Platforms()
	out := make([]models.PlatformConnection, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, models.PlatformConnection{Platform: p, Connected: connected.IsConnected(p.ID)})
	}

	return out, nil
}

// Connect records a successful retailer login.
func (s *Service) Connect(ctx context.Context, platformID string) (models.Platform, error) {
	return s.setConnected(ctx, "commerce.Connect", platformID, true)
}

// Disconnect forgets a retailer login.
func (s *Service) Disconnect(ctx context.Context, platformID string) (models.Platform, error) {
	return s.setConnected(ctx, "commerce.Disconnect", platformID, false)
}

func (s *Service) setConnected(ctx context.Context, opn, platformID string, connected bool) (models.Platform, error) {
	platform, ok := models.LookupPlatform(platformID)
	if !ok {
		return models.Platform{}, fmt.Errorf("%s: %w: %q", opn, ErrUnknownPlatform, platformID)
	}

	if err := s.platforms.SetConnected(ctx, platform.ID, connected); err != nil {
		return models.Platform{}, fmt.Errorf("%s: %w", opn, err)
	}

	return platform, nil
}
