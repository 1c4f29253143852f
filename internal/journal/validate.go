package journal

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/id"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// ValidateEntries enforces 5 invariants on a set of journal entries.
func ValidateEntries(entries []model.JournalEntry) []ValidationError {
	var errs []ValidationError
	for _, e := range entries {
		errs = append(errs, ValidateEntry(e)...)
	}
	return append(errs, validateSequence(entries)...)
}

// ValidateEntry checks invariants 1-4, which hold for an entry on its own.
func ValidateEntry(e model.JournalEntry) []ValidationError {
	var errs []ValidationError

	// Invariant 1: Entry balances (sum(debits) == sum(credits)).
	debit, credit := e.TotalDebit(), e.TotalCredit()
	if !debit.Equal(credit) {
		errs = append(errs, ValidationError{
			Invariant:   1,
			EntryID:     e.ID,
			Description: fmt.Sprintf("debits (%s) != credits (%s)", debit.StringFixed(2), credit.StringFixed(2)),
		})
	}

	// Invariant 2: At least two lines.
	if len(e.Lines) < 2 {
		errs = append(errs, ValidationError{
			Invariant:   2,
			EntryID:     e.ID,
			Description: fmt.Sprintf("entry has %d line(s), need at least 2", len(e.Lines)),
		})
	}

	for i, l := range e.Lines {
		// Invariant 3: Named account with a known category.
		if l.Account == "" || !l.Category.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     e.ID,
				Description: fmt.Sprintf("line %d: account %q with category %q", i, l.Account, l.Category),
			})
		}

		// Invariant 4: No negative amounts.
		if l.Debit.LessThan(decimal.Zero) || l.Credit.LessThan(decimal.Zero) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     e.ID,
				Description: fmt.Sprintf("line %d (%s) has a negative amount", i, l.Account),
			})
		}
	}
	return errs
}

func validateSequence(entries []model.JournalEntry) []ValidationError {
	var errs []ValidationError

	// Invariant 5: Unique sequential IDs per month, contiguous 1..N, matching the entry date.
	seqs := make(map[string]map[int]bool)
	for _, e := range entries {
		year, month, seq, err := id.ParseEntryID(e.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     e.ID,
				Description: fmt.Sprintf("invalid entry ID: %v", err),
			})
			continue
		}
		if year != e.Date.Year() || month != int(e.Date.Month()) {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     e.ID,
				Description: fmt.Sprintf("date %s does not match ID", e.Date.Format(dateFormat)),
			})
		}
		key := fmt.Sprintf("%04d-%02d", year, month)
		if seqs[key] == nil {
			seqs[key] = make(map[int]bool)
		}
		if seqs[key][seq] {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     e.ID,
				Description: "duplicate entry ID",
			})
		}
		seqs[key][seq] = true
	}
	months := make([]string, 0, len(seqs))
	for k := range seqs {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		seen := seqs[k]
		for i := 1; i <= len(seen); i++ {
			if !seen[i] {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     fmt.Sprintf("%s seq %d", k, i),
					Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seen)),
				})
			}
		}
	}

	return errs
}
