package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/repository"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// AppendOrders records placed orders in one transaction. Existing orders are never updated.
func (r *Repository) AppendOrders(ctx context.Context, orders []models.Order) error {
	const opn = "repository.sqlite.AppendOrders"

	tx, err := r.db.BeginTx(ctx, nil) //nolint:varnamelen // tx its a default naming for transaction
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", opn, err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit only returns sql.ErrTxDone

	stmt, err := tx.PrepareContext(
		ctx,
		"INSERT INTO orders (id, platform, summary, total, placed_at, status) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare insert statement: %w", opn, err)
	}
	defer stmt.Close()

	for _, o := range orders {
		_, err = stmt.ExecContext(ctx, o.ID.String(), o.Platform, o.Summary, o.Total.String(), o.Date.UnixNano(), string(o.Status))
		if err != nil {
			var sqliteErr sqlite3.Error
			if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
				return fmt.Errorf("%s: %w: %s", opn, repository.ErrOrderExists, o.ID)
			}
			return fmt.Errorf("%s: failed to insert order %s: %w", opn, o.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", opn, err)
	}

	r.log.InfoContext(ctx, "Orders recorded", "op", opn, "count", len(orders))

	return nil
}

// ListOrders returns the order history, oldest first.
func (r *Repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	const opn = "repository.sqlite.ListOrders"

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, platform, summary, total, placed_at, status FROM orders ORDER BY placed_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get orders: %w", opn, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			id, total, status string
			placedAt          int64
			o                 models.Order
		)
		if err = rows.Scan(&id, &o.Platform, &o.Summary, &total, &placedAt, &status); err != nil {
			return nil, fmt.Errorf("%s: failed to scan order: %w", opn, err)
		}
		if o.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("%s: invalid order id %q: %w", opn, id, err)
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("%s: invalid order total %q: %w", opn, total, err)
		}
		o.Date = time.Unix(0, placedAt).UTC()
		o.Status = models.OrderStatus(status)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration error: %w", opn, err)
	}

	return orders, nil
}
