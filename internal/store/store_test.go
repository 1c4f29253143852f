package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestEnsureBook_Idempotent(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()

	b1, err := s.EnsureBook(ctx, "default")
	require.NoError(t, err)
	assert.NotEmpty(t, b1.ID)

	b2, err := s.EnsureBook(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, b1.ID, b2.ID)

	_, err = s.EnsureBook(ctx, "sucursal")
	require.NoError(t, err)

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "default", books[0].Name)
	assert.Equal(t, "sucursal", books[1].Name)
}

func TestBook_NotFound(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.Book(context.Background(), "nope")
	require.ErrorIs(t, err, ErrBookNotFound)
}

func TestOperations_RoundTripAndReplay(t *testing.T) {
	s, path := openTemp(t)
	ctx := context.Background()
	book, err := s.EnsureBook(ctx, "default")
	require.NoError(t, err)

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	ops := []model.Operation{
		{Kind: model.OpOpen, Date: day, Amount: decimal.RequireFromString("10000"),
			Items: []model.NamedAmount{{Name: "Mobiliario", Amount: decimal.RequireFromString("2500.50")}}},
		{Kind: model.OpCashPurchase, Date: day, Name: "Mercancía", Amount: decimal.RequireFromString("1000")},
	}
	for i, op := range ops {
		seq, err := s.AppendOperation(ctx, book.ID, op)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	// Reopen to prove the log is durable.
	require.NoError(t, s.Close())
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Operations(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.OpOpen, got[0].Kind)
	assert.True(t, got[0].Items[0].Amount.Equal(decimal.RequireFromString("2500.50")))
	assert.True(t, got[1].Date.Equal(day))

	e := engine.New()
	require.NoError(t, e.Replay(got))
	assert.True(t, e.Controls().Cash.Equal(decimal.RequireFromString("8840")))
}

func TestOperations_ScopedToBook(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	a, err := s.EnsureBook(ctx, "a")
	require.NoError(t, err)
	b, err := s.EnsureBook(ctx, "b")
	require.NoError(t, err)

	_, err = s.AppendOperation(ctx, a.ID, model.Operation{Kind: model.OpOpen, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	got, err := s.Operations(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendOperation_UnknownBook(t *testing.T) {
	s, _ := openTemp(t)
	_, err := s.AppendOperation(context.Background(), "missing", model.Operation{Kind: model.OpOpen})
	require.Error(t, err)
}

func TestAppendOperations_AllOrNothing(t *testing.T) {
	s, _ := openTemp(t)
	ctx := context.Background()
	b, err := s.EnsureBook(ctx, "default")
	require.NoError(t, err)

	batch := []model.Operation{
		{Kind: model.OpOpen, Amount: decimal.NewFromInt(1000)},
		{Kind: model.OpSale, Name: "Mostrador", Amount: decimal.NewFromInt(200)},
	}
	require.NoError(t, s.AppendOperations(ctx, b.ID, batch))

	got, err := s.Operations(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.OpSale, got[1].Kind)

	err = s.AppendOperations(ctx, "missing", batch)
	require.Error(t, err)
	got, err = s.Operations(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}
