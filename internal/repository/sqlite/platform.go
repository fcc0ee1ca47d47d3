package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/repository"
)

// ConnectedPlatforms returns the sorted identifiers of every connected platform.
func (r *Repository) ConnectedPlatforms(ctx context.Context) ([]string, error) {
	const opn = "repository.sqlite.ConnectedPlatforms"

	ids, err := loadPlatformSet(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opn, err)
	}

	return ids, nil
}

// IsConnected reports whether platformID is in the connected set.
func (r *Repository) IsConnected(ctx context.Context, platformID string) (bool, error) {
	const opn = "repository.sqlite.IsConnected"

	ids, err := loadPlatformSet(ctx, r.db)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opn, err)
	}

	return slices.Contains(ids, platformID), nil
}

// SetConnected adds or removes platformID from the connected set atomically.
func (r *Repository) SetConnected(ctx context.Context, platformID string, connected bool) error {
	const opn = "repository.sqlite.SetConnected"

	if _, ok := models.LookupPlatform(platformID); !ok {
		return fmt.Errorf("%s: %w: %q", opn, repository.ErrUnknownPlatform, platformID)
	}

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit only returns sql.ErrTxDone

	ids, err := loadPlatformSet(ctx, tx)
	if err != nil {
		return fmt.Errorf("%s: %w", opn, err)
	}

	idx := slices.Index(ids, platformID)
	switch {
	case connected && idx < 0:
		ids = append(ids, platformID)
		slices.Sort(ids)
	case !connected && idx >= 0:
		ids = slices.Delete(ids, idx, idx+1)
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("%s: failed to encode platform set: %w", opn, err)
	}

	_, err = tx.ExecContext(ctx, "INSERT OR REPLACE INTO kv_store (key, value) VALUES (?, ?)",
		repository.ConnectedPlatformsKey, string(raw))
	if err != nil {
		return fmt.Errorf("%s: failed to store platform set: %w", opn, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	r.log.InfoContext(ctx, "Platform connection changed", "op", opn, "platform", platformID, "connected", connected)

	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// loadPlatformSet reads the stored set; a missing key is an empty set.
func loadPlatformSet(ctx context.Context, q queryRower) ([]string, error) {
	var raw string
	err := q.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", repository.ConnectedPlatformsKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get platform set: %w", err)
	}

	var ids []string
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode platform set: %w", err)
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}
