package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/id"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "line_id,date,code,account,category,description,debit,credit"

const (
	numFields   = 8
	dateFormat  = "2006-01-02"
	colLineID   = 0
	colDate     = 1
	colCode     = 2
	colAccount  = 3
	colCategory = 4
	colDesc     = 5
	colDebit    = 6
	colCredit   = 7
)

// Row is one decoded journal.csv line.
type Row struct {
	LineID      string
	Date        time.Time
	Code        model.EntryCode
	Description string
	Line        model.Line
}

// ReadEntries reads journal.csv and regroups its lines into entries, in file order.
// Entries are not validated; run ValidateEntries on the result.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	index := make(map[string]int)
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		group := id.EntryGroup(row.LineID)
		pos, ok := index[group]
		if !ok {
			pos = len(entries)
			index[group] = pos
			entries = append(entries, model.JournalEntry{
				ID:          group,
				Date:        row.Date,
				Description: row.Description,
				Code:        row.Code,
			})
		}
		entries[pos].Lines = append(entries[pos].Lines, row.Line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header), one row per line.
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		for i := range e.Lines {
			if err := cw.Write(MarshalRow(e, i)); err != nil {
				return fmt.Errorf("writing %s line %d: %w", e.ID, i, err)
			}
		}
	}
	return cw.Error()
}

// MarshalRow converts line n of entry to a CSV row.
func MarshalRow(e model.JournalEntry, n int) []string {
	l := e.Lines[n]
	row := make([]string, numFields)
	row[colLineID] = id.FormatLineID(e.ID, n)
	row[colDate] = e.Date.Format(dateFormat)
	row[colCode] = string(e.Code)
	row[colAccount] = l.Account
	row[colCategory] = string(l.Category)
	row[colDesc] = e.Description

	if !l.Debit.IsZero() {
		row[colDebit] = l.Debit.String()
	}
	if !l.Credit.IsZero() {
		row[colCredit] = l.Credit.String()
	}
	return row
}

// UnmarshalRow converts a CSV row to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return Row{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return Row{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return Row{
		LineID:      record[colLineID],
		Date:        date,
		Code:        model.EntryCode(record[colCode]),
		Description: record[colDesc],
		Line: model.Line{
			Account:  record[colAccount],
			Category: model.Category(record[colCategory]),
			Debit:    debit,
			Credit:   credit,
		},
	}, nil
}
