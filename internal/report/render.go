package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const dateFormat = "2006-01-02"

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}

func alignRight(cols ...int) []table.ColumnConfig {
	cfg := make([]table.ColumnConfig, 0, len(cols))
	for _, c := range cols {
		cfg = append(cfg, table.ColumnConfig{Number: c, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	return cfg
}

// RenderJournal writes the general journal, one block of lines per entry.
func RenderJournal(w io.Writer, j Journal) {
	t := newTable(w, "LIBRO DIARIO")
	t.AppendHeader(table.Row{"Asiento", "Fecha", "Cód", "Cuenta", "Debe", "Haber"})
	for _, e := range j.Entries {
		for i, l := range e.Lines {
			id, date, code := "", "", ""
			if i == 0 {
				id, date, code = e.ID, e.Date.Format(dateFormat), string(e.Code)
			}
			account := l.Account
			if l.Debit.IsZero() && !l.Credit.IsZero() {
				account = "    " + account
			}
			t.AppendRow(table.Row{id, date, code, account, amount(l.Debit), amount(l.Credit)})
		}
		t.AppendRow(table.Row{"", "", "", e.Description, "", ""})
		t.AppendSeparator()
	}
	t.AppendFooter(table.Row{"", "", "", "Totales", Money(j.TotalDebit), Money(j.TotalCredit)})
	t.SetColumnConfigs(alignRight(5, 6))
	t.Render()
}

// RenderLedger writes one T-account table per account.
func RenderLedger(w io.Writer, l Ledger) {
	if len(l.Accounts) == 0 {
		fmt.Fprintln(w, "No hay movimientos en el mayor.")
		return
	}
	for _, a := range l.Accounts {
		t := newTable(w, fmt.Sprintf("CUENTA: %s (%s)", a.Name, a.Category.Label()))
		t.AppendHeader(table.Row{"Fecha", "Cód", "Descripción", "Debe", "Haber", "Saldo"})
		for _, r := range a.Rows {
			t.AppendRow(table.Row{r.Date.Format(dateFormat), string(r.Code), r.Description, amount(r.Debit), amount(r.Credit), Money(r.Balance)})
		}
		t.AppendFooter(table.Row{"", "", "Total", Money(a.TotalDebit), Money(a.TotalCredit), Money(a.Balance)})
		t.SetColumnConfigs(alignRight(4, 5, 6))
		t.Render()
		fmt.Fprintln(w)
	}
}

// RenderTrialBalance writes the four-column trial balance.
func RenderTrialBalance(w io.Writer, tb TrialBalance) {
	t := newTable(w, "BALANZA DE COMPROBACIÓN")
	t.AppendHeader(table.Row{"Cuenta", "Debe", "Haber", "Saldo Deudor", "Saldo Acreedor"})
	for _, r := range tb.Rows {
		t.AppendRow(table.Row{r.Account, Money(r.Debit), Money(r.Credit), amount(r.DebitBalance), amount(r.CreditBalance)})
	}
	t.AppendFooter(table.Row{"Totales", Money(tb.TotalDebit), Money(tb.TotalCredit), Money(tb.TotalDebitBalance), Money(tb.TotalCreditBalance)})
	t.SetColumnConfigs(alignRight(2, 3, 4, 5))
	t.Render()
	fmt.Fprintln(w, balancedNote(tb.Balanced))
}

// RenderIncomeStatement writes the income statement.
func RenderIncomeStatement(w io.Writer, is IncomeStatement) {
	t := newTable(w, "ESTADO DE RESULTADOS")
	t.AppendRows([]table.Row{
		{"Ventas", Money(is.Sales)},
		{"Costo de lo Vendido", Money(is.CostOfSales)},
	})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Utilidad Bruta", Money(is.GrossProfit)})
	t.AppendRow(table.Row{"Gastos Generales", Money(is.Expenses)})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Utilidad de Operación", Money(is.OperatingProfit)})
	t.AppendRow(table.Row{"ISR", Money(is.ISR)})
	t.AppendRow(table.Row{"PTU", Money(is.PTU)})
	t.AppendFooter(table.Row{"Utilidad Neta", Money(is.NetProfit)})
	t.SetColumnConfigs(alignRight(2))
	t.Render()
}

// RenderBalanceSheet writes the balance sheet grouped by category.
func RenderBalanceSheet(w io.Writer, bs BalanceSheet) {
	t := newTable(w, "BALANCE GENERAL")
	t.AppendHeader(table.Row{"Cuenta", "Importe"})
	for _, s := range []Section{bs.CurrentAssets, bs.NonCurrentAssets, bs.AccumulatedDepreciation} {
		appendSection(t, s)
	}
	t.AppendRow(table.Row{"Total Activo", Money(bs.TotalAssets)})
	t.AppendSeparator()
	appendSection(t, bs.Liabilities)
	appendSection(t, bs.Equity)
	t.AppendFooter(table.Row{"Total Pasivo + Capital", Money(bs.TotalLiabilitiesEquity)})
	t.SetColumnConfigs(alignRight(2))
	t.Render()
	fmt.Fprintln(w, balancedNote(bs.Balanced))
}

// RenderCashFlow writes the cash-flow statement by activity.
func RenderCashFlow(w io.Writer, cf CashFlow) {
	t := newTable(w, "ESTADO DE FLUJO DE EFECTIVO")
	t.AppendHeader(table.Row{"Asiento", "Descripción", "Importe"})
	for _, s := range cf.Sections() {
		t.AppendRow(table.Row{"", s.Activity.Title(), ""})
		for _, m := range s.Movements {
			t.AppendRow(table.Row{m.EntryID, m.Description, Money(m.Amount)})
		}
		t.AppendRow(table.Row{"", "Flujo neto", Money(s.Net)})
		t.AppendSeparator()
	}
	t.AppendRow(table.Row{"", "Cambio neto en efectivo", Money(cf.NetChange)})
	t.AppendFooter(table.Row{"", "Efectivo al final", Money(cf.EndingCash)})
	t.SetColumnConfigs(alignRight(3))
	t.Render()
}

// RenderSummary writes the control-account balance table.
func RenderSummary(w io.Writer, s Summary) {
	t := newTable(w, "BALANCE GENERAL - "+s.Company)
	t.AppendHeader(table.Row{"Cuenta", "Importe"})
	appendSection(t, s.CurrentAssets)
	appendSection(t, s.NonCurrentAssets)
	appendSection(t, s.Liabilities)
	t.AppendRows([]table.Row{
		{"Total Activo", Money(s.TotalAssets)},
		{"Total Pasivo", Money(s.TotalLiabilities)},
		{"Capital", Money(s.Capital)},
	})
	t.AppendFooter(table.Row{"Total Pasivo + Capital", Money(s.TotalLiabilitiesPlus)})
	t.SetColumnConfigs(alignRight(2))
	t.Render()
}

func appendSection(t table.Writer, s Section) {
	t.AppendRow(table.Row{s.Title, ""})
	if len(s.Lines) == 0 {
		t.AppendRow(table.Row{"  (sin movimientos)", ""})
	}
	for _, l := range s.Lines {
		t.AppendRow(table.Row{"  " + l.Account, Money(l.Amount)})
	}
	t.AppendRow(table.Row{"  Total " + s.Title, Money(s.Total)})
	t.AppendSeparator()
}

func balancedNote(ok bool) string {
	if ok {
		return "Cuadrado."
	}
	return "DESCUADRADO: las sumas no coinciden."
}
