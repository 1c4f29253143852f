package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryCode identifies the kind of business transaction that produced an entry.
type EntryCode string

const (
	CodeOpening          EntryCode = "A"
	CodeCashPurchase     EntryCode = "1"
	CodeCreditPurchase   EntryCode = "2"
	CodeCombinedPurchase EntryCode = "3"
	CodePrepaidRent      EntryCode = "4"
	CodeSupplies         EntryCode = "5"
	CodeCustomerAdvance  EntryCode = "6"
	CodeSale             EntryCode = "7"
	CodeCostOfSales      EntryCode = "8"
	CodeGeneralExpense   EntryCode = "9"
	CodeAdvanceReversal  EntryCode = "10"
	CodeDepreciation     EntryCode = "11"
)

var (
	ErrTooFewLines     = errors.New("entry must have at least 2 lines")
	ErrEmptyAccount    = errors.New("line account name is required")
	ErrUnknownCategory = errors.New("line has unknown account category")
	ErrNegativeAmount  = errors.New("line amounts must not be negative")
	ErrUnbalancedEntry = errors.New("entry debits do not equal credits")
)

// Line is one debit or credit row of a journal entry.
type Line struct {
	Account  string          `json:"account"`
	Category Category        `json:"category"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// DebitLine returns a line debiting account for amount.
func DebitLine(account string, cat Category, amount decimal.Decimal) Line {
	return Line{Account: account, Category: cat, Debit: amount}
}

// CreditLine returns a line crediting account for amount.
func CreditLine(account string, cat Category, amount decimal.Decimal) Line {
	return Line{Account: account, Category: cat, Credit: amount}
}

// JournalEntry is one balanced transaction. Entries are immutable once appended to a journal.
type JournalEntry struct {
	ID          string    `json:"id"` // assigned by the journal on append
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Code        EntryCode `json:"code"`
	Lines       []Line    `json:"lines"`
}

// NewEntry is the only constructor for journal entries. It fails fast on any
// line set whose debits and credits do not balance.
func NewEntry(date time.Time, description string, code EntryCode, lines ...Line) (JournalEntry, error) {
	if len(lines) < 2 {
		return JournalEntry{}, fmt.Errorf("%w: got %d", ErrTooFewLines, len(lines))
	}

	debit := decimal.Zero
	credit := decimal.Zero
	for i, l := range lines {
		if l.Account == "" {
			return JournalEntry{}, fmt.Errorf("line %d: %w", i, ErrEmptyAccount)
		}
		if !l.Category.Valid() {
			return JournalEntry{}, fmt.Errorf("line %d (%s): %w %q", i, l.Account, ErrUnknownCategory, l.Category)
		}
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			return JournalEntry{}, fmt.Errorf("line %d (%s): %w", i, l.Account, ErrNegativeAmount)
		}
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	if !debit.Equal(credit) {
		return JournalEntry{}, fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedEntry, debit.String(), credit.String())
	}

	out := make([]Line, len(lines))
	copy(out, lines)
	return JournalEntry{
		Date:        date,
		Description: description,
		Code:        code,
		Lines:       out,
	}, nil
}

// TotalDebit sums the debit side of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		sum = sum.Add(l.Debit)
	}
	return sum
}

// TotalCredit sums the credit side of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range e.Lines {
		sum = sum.Add(l.Credit)
	}
	return sum
}

// Posting is a single movement recorded against one ledger account.
type Posting struct {
	EntryID     string          `json:"entry_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Code        EntryCode       `json:"code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
