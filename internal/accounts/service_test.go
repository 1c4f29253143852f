package accounts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart()
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))

	acct, ok := svc.Get("Caja")
	assert.True(t, ok)
	assert.Equal(t, "1101", acct.Code)

	_, ok = svc.Get("Bancos")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	svc := NewService(DefaultChart())

	current := svc.ByCategory(model.CategoryCurrentAsset)
	assert.Len(t, current, 5)
	for _, a := range current {
		assert.Equal(t, model.CategoryCurrentAsset, a.Category)
	}
	assert.Len(t, svc.ByCategory(model.CategoryLiability), 3)
	assert.Empty(t, svc.ByCategory(model.CategoryContraAsset))
}

func TestDefaultChart_UniqueCodes(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range DefaultChart() {
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
		assert.True(t, a.Category.Valid(), a.Name)
	}
}

func usedAccounts(t *testing.T) (*engine.Engine, []ledger.Account) {
	t.Helper()
	e := engine.New(engine.WithClock(func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }))
	_, err := e.Open(decimal.NewFromInt(1000), []model.NamedAmount{{Name: "Mobiliario", Amount: decimal.NewFromInt(500)}})
	require.NoError(t, err)
	_, err = e.CashPurchase("Mercancía", decimal.NewFromInt(100))
	require.NoError(t, err)
	return e, e.Accounts()
}

func TestFromLedger(t *testing.T) {
	e, used := usedAccounts(t)
	svc := FromLedger(used)

	require.Len(t, svc.All(), len(used))
	caja, ok := svc.Get("Caja")
	require.True(t, ok)
	assert.Equal(t, "1101", caja.Code)

	mob, ok := svc.Get("Mobiliario")
	require.True(t, ok)
	assert.Empty(t, mob.Code)
	assert.Equal(t, model.CategoryNonCurrentAsset, mob.Category)

	require.NoError(t, svc.CheckEntries(e.Entries()))
}

func TestCheckEntries(t *testing.T) {
	e, used := usedAccounts(t)

	missing := NewService(DefaultChart())
	err := missing.CheckEntries(e.Entries())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mobiliario")

	chart := FromLedger(used).All()
	for i := range chart {
		if chart[i].Name == "Caja" {
			chart[i].Category = model.CategoryNonCurrentAsset
		}
	}
	err = NewService(chart).CheckEntries(e.Entries())
	require.ErrorIs(t, err, ledger.ErrCategoryConflict)
}

func TestSaveRoundTrip(t *testing.T) {
	chart := DefaultChart()
	svc := NewService(chart)

	dir := filepath.Join(t.TempDir(), "export")
	require.NoError(t, svc.Save(dir))

	_, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, chart, svc2.All())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}
