package userdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHoldingCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	holding := &models.Holding{
		ID:       "h1",
		UserID:   "alice",
		Ticker:   "AAPL",
		Quantity: 10,
		BuyPrice: 180,
		PriceAim: 216,
	}
	require.NoError(t, store.PutHolding(ctx, holding))
	assert.False(t, holding.Created.IsZero(), "Created should be stamped on first put")

	got, err := store.GetHolding(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Ticker)
	assert.Equal(t, 10.0, got.Quantity)

	// Update in place
	holding.Quantity = 15
	require.NoError(t, store.PutHolding(ctx, holding))
	got, err = store.GetHolding(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.Quantity)

	require.NoError(t, store.DeleteHolding(ctx, "alice", "h1"))
	_, err = store.GetHolding(ctx, "alice", "h1")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListHoldingsIsUserScoped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.PutHolding(ctx, &models.Holding{ID: "h1", UserID: "alice", Ticker: "AAPL", Created: now.Add(-time.Hour)}))
	require.NoError(t, store.PutHolding(ctx, &models.Holding{ID: "h2", UserID: "alice", Ticker: "MSFT", Created: now}))
	require.NoError(t, store.PutHolding(ctx, &models.Holding{ID: "h1", UserID: "bob", Ticker: "NVDA"}))

	alice, err := store.ListHoldings(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, "AAPL", alice[0].Ticker, "oldest first")
	assert.Equal(t, "MSFT", alice[1].Ticker)

	bob, err := store.ListHoldings(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bob, 1)
	assert.Equal(t, "NVDA", bob[0].Ticker)
}

func TestSameHoldingIDAcrossUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.PutHolding(ctx, &models.Holding{ID: "h1", UserID: "alice", Ticker: "AAPL"}))
	require.NoError(t, store.PutHolding(ctx, &models.Holding{ID: "h1", UserID: "bob", Ticker: "TSLA"}))

	got, err := store.GetHolding(ctx, "alice", "h1")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Ticker)

	got, err = store.GetHolding(ctx, "bob", "h1")
	require.NoError(t, err)
	assert.Equal(t, "TSLA", got.Ticker)
}

func TestSavedInsightRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := &models.SavedInsight{
		UserID: "alice",
		Ticker: "AAPL",
		Insight: models.ScoredInsight{
			Ticker:       "AAPL",
			QualityScore: 4,
			RiskFlags:    []string{"Cash Burn: Free Cash Flow is negative"},
		},
	}
	require.NoError(t, store.PutSavedInsight(ctx, saved))

	list, err := store.ListSavedInsights(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Insight.QualityScore)
	assert.Len(t, list[0].Insight.RiskFlags, 1)

	require.NoError(t, store.DeleteSavedInsight(ctx, "alice", "AAPL"))
	list, err = store.ListSavedInsights(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, list)

	// Deleting a missing bookmark is not an error
	assert.NoError(t, store.DeleteSavedInsight(ctx, "alice", "AAPL"))
}

func TestPutHoldingValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.PutHolding(ctx, &models.Holding{ID: "h1"}))
	assert.Error(t, store.PutHolding(ctx, &models.Holding{UserID: "alice"}))
}
