package state_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Houeta/browser-commerce/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T) *state.Store {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := state.NewStore(logger, state.Initial())
	t.Cleanup(store.Close)

	return store
}

func TestStore_DispatchPublishes(t *testing.T) {
	store := newTestStore(t)
	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	next, err := store.Dispatch(state.AddToCart{Product: shoes()})
	require.NoError(t, err)

	got := <-updates
	assert.Equal(t, 1, got.CartCount())
	assert.Equal(t, next.Cart[0].ID, got.Cart[0].ID)
	assert.Equal(t, 1, store.State().CartCount())
}

func TestStore_RejectedActionDoesNotPublish(t *testing.T) {
	store := newTestStore(t)
	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	_, err := store.Dispatch(state.BeginCheckout{})
	require.ErrorIs(t, err, state.ErrEmptyCart)

	select {
	case <-updates:
		t.Fatal("rejected action must not publish a state")
	default:
	}
}

func TestStore_SlowSubscriberGetsLatest(t *testing.T) {
	store := newTestStore(t)
	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	for range 3 {
		_, err := store.Dispatch(state.AddToCart{Product: shoes()})
		require.NoError(t, err)
	}

	got := <-updates
	assert.Equal(t, 3, got.CartCount())
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Dispatch(state.AddToCart{Product: shoes()})
	require.NoError(t, err)

	snapshot := store.State()
	snapshot.Cart[0].Quantity = 99

	assert.Equal(t, 1, store.State().Cart[0].Quantity)
}

func TestStore_Unsubscribe(t *testing.T) {
	store := newTestStore(t)
	updates, unsubscribe := store.Subscribe()

	unsubscribe()
	unsubscribe()

	_, ok := <-updates
	assert.False(t, ok)

	_, err := store.Dispatch(state.AddToCart{Product: shoes()})
	require.NoError(t, err)
}

func TestStore_Close(t *testing.T) {
	store := newTestStore(t)
	updates, unsubscribe := store.Subscribe()

	store.Close()
	unsubscribe()

	_, ok := <-updates
	assert.False(t, ok)

	_, err := store.Dispatch(state.AddToCart{Product: shoes()})
	require.ErrorIs(t, err, state.ErrStoreClosed)

	late, _ := store.Subscribe()
	_, ok = <-late
	assert.False(t, ok)
}
