package sqlite_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Houeta/browser-commerce/internal/models"
	"github.com/Houeta/browser-commerce/internal/repository"
	"github.com/Houeta/browser-commerce/internal/repository/sqlite"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repository.OrderRepository = (*sqlite.Repository)(nil)

func randomOrder(placedAt time.Time) models.Order {
	return models.Order{
		ID:       uuid.New(),
		Platform: gofakeit.Company(),
		Summary:  gofakeit.ProductName(),
		Total:    decimal.NewFromFloat(gofakeit.Price(1, 1000)).Round(2),
		Date:     placedAt.UTC(),
		Status:   models.OrderStatusPlaced,
	}
}

func TestRepository_Integration_Orders(t *testing.T) {
	repo := newTestDB(t)
	ctx := t.Context()

	t.Run("empty_history", func(t *testing.T) {
		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := randomOrder(base)
	second := randomOrder(base.Add(time.Minute))
	third := randomOrder(base.Add(2 * time.Minute))

	t.Run("append_in_two_batches", func(t *testing.T) {
		require.NoError(t, repo.AppendOrders(ctx, []models.Order{second, first}))
		require.NoError(t, repo.AppendOrders(ctx, []models.Order{third}))
	})

	t.Run("list_in_placement_order", func(t *testing.T) {
		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 3)

		for i, want := range []models.Order{first, second, third} {
			assert.Equal(t, want.ID, orders[i].ID)
			assert.Equal(t, want.Platform, orders[i].Platform)
			assert.Equal(t, want.Summary, orders[i].Summary)
			assert.True(t, want.Total.Equal(orders[i].Total), "total %s != %s", want.Total, orders[i].Total)
			assert.True(t, want.Date.Equal(orders[i].Date))
			assert.Equal(t, models.OrderStatusPlaced, orders[i].Status)
		}
	})

	t.Run("orders_are_append_only", func(t *testing.T) {
		err := repo.AppendOrders(ctx, []models.Order{first})
		require.ErrorIs(t, err, repository.ErrOrderExists)

		orders, err := repo.ListOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 3)
	})
}

func TestAppendOrders_Failures(t *testing.T) {
	ctx := t.Context()
	order := randomOrder(time.Now())

	t.Run("error_on_prepare_query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO orders").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.AppendOrders(ctx, []models.Order{order})

		require.ErrorContains(t, err, "failed to prepare insert statement")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_insert_query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO orders")
		prep.ExpectExec().
			WithArgs(order.ID.String(), order.Platform, order.Summary, order.Total.String(), order.Date.UnixNano(), "placed").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.AppendOrders(ctx, []models.Order{order})

		require.ErrorContains(t, err, "failed to insert order")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_commit", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectBegin()
		prep := mock.ExpectPrepare("INSERT INTO orders")
		prep.ExpectExec().WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit().WillReturnError(assert.AnError)

		err := repo.AppendOrders(ctx, []models.Order{order})

		require.ErrorContains(t, err, "failed to commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListOrders_Failures(t *testing.T) {
	ctx := t.Context()
	columns := []string{"id", "platform", "summary", "total", "placed_at", "status"}

	t.Run("error_on_query", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		mock.ExpectQuery("SELECT id, platform, summary, total, placed_at, status FROM orders").WillReturnError(assert.AnError)

		_, err := repo.ListOrders(ctx)

		require.ErrorContains(t, err, "failed to get orders")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_invalid_id", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		rows := sqlmock.NewRows(columns).AddRow("not-a-uuid", "Nike", "shoes", "10.00", int64(1), "placed")
		mock.ExpectQuery("SELECT id, platform, summary, total, placed_at, status FROM orders").WillReturnRows(rows)

		_, err := repo.ListOrders(ctx)

		require.ErrorContains(t, err, "invalid order id")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_invalid_total", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		rows := sqlmock.NewRows(columns).AddRow(uuid.NewString(), "Nike", "shoes", "ten", int64(1), "placed")
		mock.ExpectQuery("SELECT id, platform, summary, total, placed_at, status FROM orders").WillReturnRows(rows)

		_, err := repo.ListOrders(ctx)

		require.ErrorContains(t, err, "invalid order total")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error_on_rows", func(t *testing.T) {
		repo, mock := newMockedRepo(t)
		rows := sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "Nike", "shoes", "10.00", int64(1), "placed").
			RowError(0, assert.AnError)
		mock.ExpectQuery("SELECT id, platform, summary, total, placed_at, status FROM orders").WillReturnRows(rows)

		_, err := repo.ListOrders(ctx)

		require.ErrorContains(t, err, "rows iteration error")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
