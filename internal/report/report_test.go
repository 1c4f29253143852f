package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msg ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msg...)...)
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(engine.WithClock(func() time.Time {
		return time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func workedExample(t *testing.T) *engine.Engine {
	t.Helper()
	e := newEngine(t)
	_, err := e.Open(dec("10000"), nil)
	require.NoError(t, err)
	_, err = e.CashPurchase("X", dec("1000"))
	require.NoError(t, err)
	return e
}

func busyPeriod(t *testing.T) *engine.Engine {
	t.Helper()
	e := newEngine(t)
	_, err := e.Open(dec("50000"), []model.NamedAmount{{Name: "Mobiliario", Amount: dec("20000")}})
	require.NoError(t, err)
	_, err = e.CashPurchase("Mercancía", dec("10000"))
	require.NoError(t, err)
	_, err = e.CombinedPurchase("Computadora", dec("15000"))
	require.NoError(t, err)
	_, err = e.CreditPurchase("Camioneta", dec("100000"))
	require.NoError(t, err)
	_, err = e.CustomerAdvance("Acme", dec("4000"))
	require.NoError(t, err)
	_, err = e.Sale("Mostrador", dec("30000"))
	require.NoError(t, err)
	_, err = e.CostOfGoodsSold("Mostrador", dec("8000"))
	require.NoError(t, err)
	_, err = e.GeneralExpense("Luz", dec("2000"))
	require.NoError(t, err)
	_, err = e.ReverseAdvance("Acme", dec("2000"))
	require.NoError(t, err)
	_, err = e.Depreciation("Anual", map[string]decimal.Decimal{"Dep. Acum. Mobiliario": dec("2000")})
	require.NoError(t, err)
	return e
}

func TestBuildJournal(t *testing.T) {
	e := workedExample(t)
	j := BuildJournal(e.Entries())
	require.Len(t, j.Entries, 2)
	assert.Equal(t, model.CodeOpening, j.Entries[0].Code)
	assertDec(t, "11160", j.TotalDebit)
	assertDec(t, "11160", j.TotalCredit)
}

func TestBuildLedger_RunningBalances(t *testing.T) {
	e := workedExample(t)
	l := BuildLedger(e.Accounts())

	names := make([]string, 0, len(l.Accounts))
	for _, a := range l.Accounts {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"Caja", "Capital (Apertura)", "Inventario", "IVA Acreditable"}, names)

	caja := l.Accounts[0]
	require.Len(t, caja.Rows, 2)
	assertDec(t, "10000", caja.Rows[0].Balance)
	assertDec(t, "10000", caja.Rows[1].RunningDebit)
	assertDec(t, "1160", caja.Rows[1].RunningCredit)
	assertDec(t, "8840", caja.Rows[1].Balance)
	assertDec(t, "8840", caja.Balance)
}

func TestBuildTrialBalance_WorkedExample(t *testing.T) {
	e := workedExample(t)
	tb := BuildTrialBalance(e.Accounts())

	require.Len(t, tb.Rows, 4)
	caja := tb.Rows[0]
	assert.Equal(t, "Caja", caja.Account)
	assertDec(t, "10000", caja.Debit)
	assertDec(t, "1160", caja.Credit)
	assertDec(t, "8840", caja.DebitBalance)
	assert.True(t, caja.CreditBalance.IsZero())

	capital := tb.Rows[1]
	assertDec(t, "10000", capital.Credit)
	assertDec(t, "10000", capital.CreditBalance)
	assert.True(t, capital.DebitBalance.IsZero())

	assertDec(t, "10000", tb.TotalDebitBalance)
	assertDec(t, "10000", tb.TotalCreditBalance)
	assert.True(t, tb.Balanced)
}

func TestBuildTrialBalance_Reconciles(t *testing.T) {
	e := busyPeriod(t)
	tb := BuildTrialBalance(e.Accounts())
	assert.True(t, tb.Balanced)
	assert.True(t, tb.TotalDebit.Equal(tb.TotalCredit))
	for _, r := range tb.Rows {
		assert.False(t, r.DebitBalance.IsNegative(), r.Account)
		assert.False(t, r.CreditBalance.IsNegative(), r.Account)
		assert.False(t, r.DebitBalance.IsPositive() && r.CreditBalance.IsPositive(), r.Account)
	}
}

func TestLedgerMatchesJournal(t *testing.T) {
	e := busyPeriod(t)

	debits := map[string]decimal.Decimal{}
	credits := map[string]decimal.Decimal{}
	var order []string
	for _, entry := range e.Entries() {
		for _, l := range entry.Lines {
			if _, seen := debits[l.Account]; !seen {
				order = append(order, l.Account)
				debits[l.Account] = decimal.Zero
				credits[l.Account] = decimal.Zero
			}
			debits[l.Account] = debits[l.Account].Add(l.Debit)
			credits[l.Account] = credits[l.Account].Add(l.Credit)
		}
	}

	ledger := BuildLedger(e.Accounts())
	require.Len(t, ledger.Accounts, len(order))
	for i, acct := range ledger.Accounts {
		name := order[i]
		assert.Equal(t, name, acct.Name)
		assert.True(t, acct.TotalDebit.Equal(debits[name]), "%s debit %s != %s", name, acct.TotalDebit, debits[name])
		assert.True(t, acct.TotalCredit.Equal(credits[name]), "%s credit %s != %s", name, acct.TotalCredit, credits[name])
		want := debits[name].Sub(credits[name])
		assert.True(t, acct.Balance.Equal(want), "%s balance %s != %s", name, acct.Balance, want)
	}

	tb := BuildTrialBalance(e.Accounts())
	require.Len(t, tb.Rows, len(order))
	for i, row := range tb.Rows {
		name := order[i]
		assert.Equal(t, name, row.Account)
		assert.True(t, row.Debit.Equal(debits[name]), name)
		assert.True(t, row.Credit.Equal(credits[name]), name)
		assert.True(t, row.DebitBalance.Sub(row.CreditBalance).Equal(debits[name].Sub(credits[name])), name)
	}
}

func TestBuildIncomeStatement(t *testing.T) {
	e := busyPeriod(t)
	is := BuildIncomeStatement(e.Accounts(), e.Rates())

	// Sale 30000 plus reversal 2000 + 2000 principal.
	assertDec(t, "34000", is.Sales)
	assertDec(t, "8000", is.CostOfSales)
	assertDec(t, "26000", is.GrossProfit)
	assertDec(t, "4000", is.Expenses)
	assertDec(t, "22000", is.OperatingProfit)
	assertDec(t, "6600", is.ISR)
	assertDec(t, "2200", is.PTU)
	assertDec(t, "13200", is.NetProfit)
}

func TestBuildIncomeStatement_LossHasNoTax(t *testing.T) {
	e := newEngine(t)
	_, err := e.Open(dec("1000"), nil)
	require.NoError(t, err)
	_, err = e.GeneralExpense("Renta", dec("300"))
	require.NoError(t, err)

	is := BuildIncomeStatement(e.Accounts(), e.Rates())
	assertDec(t, "-300", is.OperatingProfit)
	assert.True(t, is.ISR.IsZero())
	assert.True(t, is.PTU.IsZero())
	assertDec(t, "-300", is.NetProfit)
}

func TestBuildBalanceSheet(t *testing.T) {
	e := busyPeriod(t)
	bs := BuildBalanceSheet(e.Accounts())

	assert.True(t, bs.Balanced, "assets %s, liabilities+equity %s", bs.TotalAssets, bs.TotalLiabilitiesEquity)
	assertDec(t, "-2000", bs.AccumulatedDepreciation.Total)
	assertDec(t, "135000", bs.NonCurrentAssets.Total)

	require.NotEmpty(t, bs.Equity.Lines)
	last := bs.Equity.Lines[len(bs.Equity.Lines)-1]
	assert.Equal(t, "Resultado del Ejercicio", last.Account)
	assertDec(t, "22000", last.Amount)
	assertDec(t, "92000", bs.Equity.Total)
}

func TestBuildCashFlow(t *testing.T) {
	e := busyPeriod(t)
	cf := BuildCashFlow(e.Accounts())

	assertDec(t, "50000", cf.Financing.Net)
	require.Len(t, cf.Investing.Movements, 1)
	assertDec(t, "-8700", cf.Investing.Net)

	assert.True(t, cf.NetChange.Equal(cf.EndingCash))
	assertDec(t, e.Controls().Cash.String(), cf.EndingCash)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Financing, Classify(model.CodeOpening))
	assert.Equal(t, Investing, Classify(model.CodeCombinedPurchase))
	assert.Equal(t, Investing, Classify(model.CodeSupplies))
	assert.Equal(t, Operating, Classify(model.CodeSale))
	assert.Equal(t, Operating, Classify(model.CodeAdvanceReversal))
}

func TestBuildSummary(t *testing.T) {
	e := busyPeriod(t)
	s := BuildSummary(e.Company(), e.Controls(), e.Totals())

	assert.Equal(t, engine.DefaultCompany, s.Company)
	assert.Equal(t, "Caja", s.CurrentAssets.Lines[0].Account)
	assertDec(t, e.Totals().Assets.String(), s.TotalAssets)

	var labels []string
	for _, l := range s.Liabilities.Lines {
		labels = append(labels, l.Account)
	}
	assert.Contains(t, labels, "Anticipo de Clientes - Acme")
	assert.Contains(t, labels, "IVA Trasladado - Acme")
}

func TestBuildersDoNotMutate(t *testing.T) {
	e := busyPeriod(t)
	before := BuildTrialBalance(e.Accounts())
	_ = BuildLedger(e.Accounts())
	_ = BuildBalanceSheet(e.Accounts())
	_ = BuildCashFlow(e.Accounts())
	after := BuildTrialBalance(e.Accounts())
	require.Len(t, after.Rows, len(before.Rows))
	assert.True(t, before.TotalDebit.Equal(after.TotalDebit))
	assert.True(t, before.TotalCreditBalance.Equal(after.TotalCreditBalance))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.5", "$1,234.50"},
		{"1000000", "$1,000,000.00"},
		{"-80", "-$80.00"},
		{"-0.001", "$0.00"},
		{"999.995", "$1,000.00"},
		{"123456.789", "$123,456.79"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(dec(tt.in)))
		})
	}
}

func TestRender(t *testing.T) {
	e := busyPeriod(t)
	accounts := e.Accounts()

	var buf bytes.Buffer
	RenderJournal(&buf, BuildJournal(e.Entries()))
	RenderLedger(&buf, BuildLedger(accounts))
	RenderTrialBalance(&buf, BuildTrialBalance(accounts))
	RenderIncomeStatement(&buf, BuildIncomeStatement(accounts, e.Rates()))
	RenderBalanceSheet(&buf, BuildBalanceSheet(accounts))
	RenderCashFlow(&buf, BuildCashFlow(accounts))
	RenderSummary(&buf, BuildSummary(e.Company(), e.Controls(), e.Totals()))

	out := buf.String()
	for _, want := range []string{
		"LIBRO DIARIO",
		"CUENTA: Caja",
		"BALANZA DE COMPROBACIÓN",
		"ESTADO DE RESULTADOS",
		"BALANCE GENERAL",
		"ESTADO DE FLUJO DE EFECTIVO",
		"Actividades de Inversión",
		"$50,000.00",
		"Cuadrado.",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "DESCUADRADO")
}

func TestRenderLedger_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderLedger(&buf, BuildLedger(nil))
	assert.Contains(t, buf.String(), "No hay movimientos")
}
