// Package accounts maintains the chart of accounts: the code, category and
// description of every account name a book has used.
package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// FileName is the chart-of-accounts file written by export.
const FileName = "chart-of-accounts.csv"

// Account is one chart entry. Code is empty for accounts created on the fly
// that have no catalogue code.
type Account struct {
	Code        string
	Name        string
	Category    model.Category
	Description string
}

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []Account
	byName   map[string]Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []Account) *Service {
	byName := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		byName[a.Name] = a
	}
	return &Service{accounts: accounts, byName: byName}
}

// FromLedger builds the chart of the accounts actually used, in ledger
// order, taking codes and descriptions from the default chart.
func FromLedger(used []ledger.Account) *Service {
	known := NewService(DefaultChart())
	out := make([]Account, 0, len(used))
	for _, u := range used {
		a, ok := known.Get(u.Name)
		if !ok {
			a = Account{Name: u.Name}
		}
		a.Category = u.Category
		out = append(out, a)
	}
	return NewService(out)
}

// Load reads chart-of-accounts.csv from dir and returns a Service.
func Load(dir string) (*Service, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// ByCategory returns all accounts of the given category.
func (s *Service) ByCategory(cat model.Category) []Account {
	var result []Account
	for _, a := range s.accounts {
		if a.Category == cat {
			result = append(result, a)
		}
	}
	return result
}

// CheckEntries reports the first journal line whose category disagrees with
// the chart, or whose account is missing from it.
func (s *Service) CheckEntries(entries []model.JournalEntry) error {
	for _, e := range entries {
		for _, l := range e.Lines {
			a, ok := s.byName[l.Account]
			if !ok {
				return fmt.Errorf("entry %s: account %q not in chart", e.ID, l.Account)
			}
			if a.Category != l.Category {
				return fmt.Errorf("entry %s: %w: %q is %s in chart, line says %s",
					e.ID, ledger.ErrCategoryConflict, l.Account, a.Category, l.Category)
			}
		}
	}
	return nil
}

// Save writes the chart of accounts to dir/chart-of-accounts.csv.
func (s *Service) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
