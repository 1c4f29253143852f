// Package report derives the journal listing, ledger listing, trial balance
// and financial statements from posted entries. Builders are pure: they read
// snapshots and never mutate engine state.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// Journal is the general journal with its grand totals.
type Journal struct {
	Entries     []model.JournalEntry `json:"entries"`
	TotalDebit  decimal.Decimal      `json:"total_debit"`
	TotalCredit decimal.Decimal      `json:"total_credit"`
}

// BuildJournal lists entries in insertion order.
func BuildJournal(entries []model.JournalEntry) Journal {
	r := Journal{Entries: entries, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, e := range entries {
		r.TotalDebit = r.TotalDebit.Add(e.TotalDebit())
		r.TotalCredit = r.TotalCredit.Add(e.TotalCredit())
	}
	return r
}

// LedgerRow is one posting with the account's running totals after it.
type LedgerRow struct {
	EntryID       string          `json:"entry_id"`
	Date          time.Time       `json:"date"`
	Code          model.EntryCode `json:"code"`
	Description   string          `json:"description"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	RunningDebit  decimal.Decimal `json:"running_debit"`
	RunningCredit decimal.Decimal `json:"running_credit"`
	Balance       decimal.Decimal `json:"balance"`
}

// LedgerAccount is the T-account listing of one account.
type LedgerAccount struct {
	Name        string          `json:"name"`
	Category    model.Category  `json:"category"`
	Rows        []LedgerRow     `json:"rows"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Ledger is the general ledger in first-insertion order.
type Ledger struct {
	Accounts []LedgerAccount `json:"accounts"`
}

// BuildLedger computes running totals for every account.
func BuildLedger(accounts []ledger.Account) Ledger {
	out := Ledger{Accounts: make([]LedgerAccount, 0, len(accounts))}
	for _, a := range accounts {
		la := LedgerAccount{
			Name:        a.Name,
			Category:    a.Category,
			Rows:        make([]LedgerRow, 0, len(a.Postings)),
			TotalDebit:  decimal.Zero,
			TotalCredit: decimal.Zero,
		}
		for _, p := range a.Postings {
			la.TotalDebit = la.TotalDebit.Add(p.Debit)
			la.TotalCredit = la.TotalCredit.Add(p.Credit)
			la.Rows = append(la.Rows, LedgerRow{
				EntryID:       p.EntryID,
				Date:          p.Date,
				Code:          p.Code,
				Description:   p.Description,
				Debit:         p.Debit,
				Credit:        p.Credit,
				RunningDebit:  la.TotalDebit,
				RunningCredit: la.TotalCredit,
				Balance:       la.TotalDebit.Sub(la.TotalCredit),
			})
		}
		la.Balance = la.TotalDebit.Sub(la.TotalCredit)
		out.Accounts = append(out.Accounts, la)
	}
	return out
}

// TrialBalanceRow holds one account's totals and its difference, placed in
// exactly one of the two difference columns.
type TrialBalanceRow struct {
	Account       string          `json:"account"`
	Category      model.Category  `json:"category"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalance is the four-column reconciliation of the ledger.
type TrialBalance struct {
	Rows               []TrialBalanceRow `json:"rows"`
	TotalDebit         decimal.Decimal   `json:"total_debit"`
	TotalCredit        decimal.Decimal   `json:"total_credit"`
	TotalDebitBalance  decimal.Decimal   `json:"total_debit_balance"`
	TotalCreditBalance decimal.Decimal   `json:"total_credit_balance"`
	Balanced           bool              `json:"balanced"`
}

// BuildTrialBalance sums every account. The ledger is balanced when the two
// difference columns have equal totals.
func BuildTrialBalance(accounts []ledger.Account) TrialBalance {
	tb := TrialBalance{
		Rows:               make([]TrialBalanceRow, 0, len(accounts)),
		TotalDebit:         decimal.Zero,
		TotalCredit:        decimal.Zero,
		TotalDebitBalance:  decimal.Zero,
		TotalCreditBalance: decimal.Zero,
	}
	for _, a := range accounts {
		row := TrialBalanceRow{
			Account:       a.Name,
			Category:      a.Category,
			Debit:         a.TotalDebit(),
			Credit:        a.TotalCredit(),
			DebitBalance:  decimal.Zero,
			CreditBalance: decimal.Zero,
		}
		if row.Debit.GreaterThan(row.Credit) {
			row.DebitBalance = row.Debit.Sub(row.Credit)
		} else {
			row.CreditBalance = row.Credit.Sub(row.Debit)
		}
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
		tb.TotalDebitBalance = tb.TotalDebitBalance.Add(row.DebitBalance)
		tb.TotalCreditBalance = tb.TotalCreditBalance.Add(row.CreditBalance)
		tb.Rows = append(tb.Rows, row)
	}
	tb.Balanced = tb.TotalDebitBalance.Equal(tb.TotalCreditBalance)
	return tb
}

// sumCategory returns the normal-side balance of every account in cat.
func sumCategory(accounts []ledger.Account, cat model.Category) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range accounts {
		if a.Category == cat {
			sum = sum.Add(normalBalance(a))
		}
	}
	return sum
}

// normalBalance is the balance expressed on the account's normal side, so a
// liability with credits exceeding debits is positive.
func normalBalance(a ledger.Account) decimal.Decimal {
	if a.Category.DebitNormal() {
		return a.Balance()
	}
	return a.Balance().Neg()
}
