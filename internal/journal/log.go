// Package journal is the append-only general journal. Every appended entry
// is validated and immediately posted to the ledger store.
package journal

import (
	"fmt"
	"strings"

	"github.com/Fr4ncx-04/Balance/internal/id"
	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// Log holds journal entries in insertion order.
type Log struct {
	entries []model.JournalEntry
	ledger  *ledger.Store
	seqs    map[string]int // "YYYY-MM" -> last sequence used
}

// NewLog creates a journal that posts into l.
func NewLog(l *ledger.Store) *Log {
	return &Log{ledger: l, seqs: make(map[string]int)}
}

// Append assigns the entry its ID, validates it, and posts it to the ledger.
// On error nothing is recorded. Returns the stored entry.
func (j *Log) Append(entry model.JournalEntry) (model.JournalEntry, error) {
	year, month := entry.Date.Year(), int(entry.Date.Month())
	key := fmt.Sprintf("%04d-%02d", year, month)
	seq := j.seqs[key] + 1
	entry.ID = id.FormatEntryID(year, month, seq)

	if verrs := ValidateEntry(entry); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.JournalEntry{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	if err := j.ledger.Post(entry); err != nil {
		return model.JournalEntry{}, fmt.Errorf("posting %s: %w", entry.ID, err)
	}

	j.seqs[key] = seq
	j.entries = append(j.entries, cloneEntry(entry))
	return cloneEntry(entry), nil
}

// Check reports whether entry could be appended without a ledger conflict.
func (j *Log) Check(entry model.JournalEntry) error {
	return j.ledger.Check(entry)
}

// Entries returns a deep copy of all entries in insertion order.
func (j *Log) Entries() []model.JournalEntry {
	out := make([]model.JournalEntry, len(j.entries))
	for i, e := range j.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e model.JournalEntry) model.JournalEntry {
	e.Lines = append([]model.Line(nil), e.Lines...)
	return e
}

// Len returns the number of entries.
func (j *Log) Len() int {
	return len(j.entries)
}

// Verify re-runs every invariant over the whole journal.
func (j *Log) Verify() []ValidationError {
	return ValidateEntries(j.entries)
}
