// Package ledger keeps one running account per account name. It aggregates
// postings and enforces no business rules beyond category consistency.
package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

// ErrCategoryConflict is returned when an account name is posted with a
// category different from the one it was created with.
var ErrCategoryConflict = errors.New("account already exists with a different category")

// Account is a snapshot of one ledger account.
type Account struct {
	Name     string
	Category model.Category
	Postings []model.Posting
}

// TotalDebit sums the debits posted to the account.
func (a Account) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range a.Postings {
		sum = sum.Add(p.Debit)
	}
	return sum
}

// TotalCredit sums the credits posted to the account.
func (a Account) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range a.Postings {
		sum = sum.Add(p.Credit)
	}
	return sum
}

// Balance is debits minus credits.
func (a Account) Balance() decimal.Decimal {
	return a.TotalDebit().Sub(a.TotalCredit())
}

type account struct {
	category model.Category
	postings []model.Posting
}

// Store maps account names to their postings, remembering the order in which
// accounts were first posted to.
type Store struct {
	order    []string
	accounts map[string]*account
}

// NewStore returns an empty ledger.
func NewStore() *Store {
	return &Store{accounts: make(map[string]*account)}
}

// Check reports whether every line of entry can be posted without a category
// conflict, against existing accounts and against earlier lines of the same entry.
func (s *Store) Check(entry model.JournalEntry) error {
	pending := make(map[string]model.Category, len(entry.Lines))
	for _, l := range entry.Lines {
		cat, ok := pending[l.Account]
		if !ok {
			if acct, exists := s.accounts[l.Account]; exists {
				cat, ok = acct.category, true
			}
		}
		if ok && cat != l.Category {
			return fmt.Errorf("%w: %q is %s, line says %s", ErrCategoryConflict, l.Account, cat, l.Category)
		}
		pending[l.Account] = l.Category
	}
	return nil
}

// Post records each line of entry against its account, creating accounts lazily.
// Nothing is posted if any line conflicts.
func (s *Store) Post(entry model.JournalEntry) error {
	if err := s.Check(entry); err != nil {
		return err
	}
	for _, l := range entry.Lines {
		acct, ok := s.accounts[l.Account]
		if !ok {
			acct = &account{category: l.Category}
			s.accounts[l.Account] = acct
			s.order = append(s.order, l.Account)
		}
		acct.postings = append(acct.postings, model.Posting{
			EntryID:     entry.ID,
			Date:        entry.Date,
			Description: entry.Description,
			Code:        entry.Code,
			Debit:       l.Debit,
			Credit:      l.Credit,
		})
	}
	return nil
}

// Accounts returns every account in first-insertion order.
func (s *Store) Accounts() []Account {
	out := make([]Account, 0, len(s.order))
	for _, name := range s.order {
		a, _ := s.Account(name)
		out = append(out, a)
	}
	return out
}

// Account returns a snapshot of the named account.
func (s *Store) Account(name string) (Account, bool) {
	acct, ok := s.accounts[name]
	if !ok {
		return Account{}, false
	}
	postings := make([]model.Posting, len(acct.postings))
	copy(postings, acct.postings)
	return Account{Name: name, Category: acct.category, Postings: postings}, true
}

// Balance returns debits minus credits for name, zero if it has never been posted.
func (s *Store) Balance(name string) decimal.Decimal {
	a, ok := s.Account(name)
	if !ok {
		return decimal.Zero
	}
	return a.Balance()
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.order)
}
