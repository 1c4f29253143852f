package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(t *testing.T, id string, code model.EntryCode, lines ...model.Line) model.JournalEntry {
	t.Helper()
	e, err := model.NewEntry(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "test", code, lines...)
	require.NoError(t, err)
	e.ID = id
	return e
}

func TestPost_FirstInsertionOrder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Post(entry(t, "2025-01-001", model.CodeOpening,
		model.DebitLine("Caja", model.CategoryCurrentAsset, dec("10000")),
		model.CreditLine("Capital (Apertura)", model.CategoryEquity, dec("10000")),
	)))
	require.NoError(t, s.Post(entry(t, "2025-01-002", model.CodeCashPurchase,
		model.DebitLine("Inventario", model.CategoryCurrentAsset, dec("1000")),
		model.DebitLine("IVA Acreditable", model.CategoryCurrentAsset, dec("160")),
		model.CreditLine("Caja", model.CategoryCurrentAsset, dec("1160")),
	)))

	accts := s.Accounts()
	names := make([]string, len(accts))
	for i, a := range accts {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"Caja", "Capital (Apertura)", "Inventario", "IVA Acreditable"}, names)

	caja, ok := s.Account("Caja")
	require.True(t, ok)
	require.Len(t, caja.Postings, 2)
	assert.Equal(t, "2025-01-002", caja.Postings[1].EntryID)
	assert.Equal(t, model.CodeCashPurchase, caja.Postings[1].Code)
	assert.True(t, caja.TotalDebit().Equal(dec("10000")))
	assert.True(t, caja.TotalCredit().Equal(dec("1160")))
	assert.True(t, s.Balance("Caja").Equal(dec("8840")))
	assert.True(t, s.Balance("Capital (Apertura)").Equal(dec("-10000")))
	assert.True(t, s.Balance("missing").IsZero())
	assert.Equal(t, 4, s.Len())
}

func TestPost_CategoryConflict(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Post(entry(t, "1", model.CodeOpening,
		model.DebitLine("Caja", model.CategoryCurrentAsset, dec("10")),
		model.CreditLine("Capital (Apertura)", model.CategoryEquity, dec("10")),
	)))

	err := s.Post(entry(t, "2", model.CodeCreditPurchase,
		model.DebitLine("Equipo", model.CategoryNonCurrentAsset, dec("5")),
		model.DebitLine("Caja", model.CategoryNonCurrentAsset, dec("5")),
		model.CreditLine("Acreedores", model.CategoryLiability, dec("10")),
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryConflict)

	// Nothing from the rejected entry was posted.
	_, ok := s.Account("Equipo")
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestAccount_SnapshotIsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Post(entry(t, "1", model.CodeSale,
		model.DebitLine("Caja", model.CategoryCurrentAsset, dec("1")),
		model.CreditLine("Ventas", model.CategoryRevenue, dec("1")),
	)))

	a, _ := s.Account("Caja")
	a.Postings[0].Debit = dec("999")
	assert.True(t, s.Balance("Caja").Equal(dec("1")))
}

func TestCheck_ConflictWithinEntry(t *testing.T) {
	s := NewStore()
	err := s.Post(entry(t, "1", model.CodeOpening,
		model.DebitLine("Caja", model.CategoryCurrentAsset, dec("10")),
		model.DebitLine("Caja", model.CategoryNonCurrentAsset, dec("5")),
		model.CreditLine("Capital (Apertura)", model.CategoryEquity, dec("15")),
	))
	require.ErrorIs(t, err, ErrCategoryConflict)
	assert.Equal(t, 0, s.Len())
}
