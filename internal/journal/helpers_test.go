package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func openingEntry(t *testing.T, when time.Time, cash string) model.JournalEntry {
	t.Helper()
	e, err := model.NewEntry(when, "Asiento de Apertura", model.CodeOpening,
		model.DebitLine("Caja", model.CategoryCurrentAsset, dec(cash)),
		model.CreditLine("Capital (Apertura)", model.CategoryEquity, dec(cash)),
	)
	require.NoError(t, err)
	return e
}

func cashPurchaseEntry(t *testing.T, when time.Time) model.JournalEntry {
	t.Helper()
	e, err := model.NewEntry(when, "Compra en Efectivo - X", model.CodeCashPurchase,
		model.DebitLine("Inventario", model.CategoryCurrentAsset, dec("1000")),
		model.DebitLine("IVA Acreditable", model.CategoryCurrentAsset, dec("160")),
		model.CreditLine("Caja", model.CategoryCurrentAsset, dec("1160")),
	)
	require.NoError(t, err)
	return e
}
