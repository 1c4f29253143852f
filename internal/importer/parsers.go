package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

// DateLayout is the date format used in batch files.
const DateLayout = "2006-01-02"

var ErrUnknownKind = errors.New("unknown operation kind")

// CSVParser reads operations from a CSV with the header
// date,kind,name,amount,items. Items hold NAME=VALUE pairs separated by ';'
// and are only meaningful for open and depreciation rows.
type CSVParser struct{}

func (p *CSVParser) Format() string { return "csv" }

var csvHeader = []string{"date", "kind", "name", "amount", "items"}

func (p *CSVParser) Parse(r io.Reader) ([]model.Operation, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, col := range csvHeader {
		if strings.ToLower(strings.TrimSpace(header[i])) != col {
			return nil, fmt.Errorf("header column %d: expected %q, got %q", i+1, col, header[i])
		}
	}

	var ops []model.Operation
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		op, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseRecord(rec []string) (model.Operation, error) {
	var op model.Operation

	date, err := time.Parse(DateLayout, strings.TrimSpace(rec[0]))
	if err != nil {
		return op, fmt.Errorf("parsing date %q: %w", rec[0], err)
	}
	kind, err := parseKind(rec[1])
	if err != nil {
		return op, err
	}
	amount := decimal.Zero
	if s := strings.TrimSpace(rec[3]); s != "" {
		amount, err = decimal.NewFromString(s)
		if err != nil {
			return op, fmt.Errorf("parsing amount %q: %w", rec[3], err)
		}
	}
	items, err := parseItems(rec[4])
	if err != nil {
		return op, err
	}

	return model.Operation{
		Kind:   kind,
		Date:   date,
		Name:   strings.TrimSpace(rec[2]),
		Amount: amount,
		Items:  items,
	}, nil
}

func parseKind(s string) (model.OperationKind, error) {
	k := model.OperationKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range model.AllOperationKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

func parseItems(s string) ([]model.NamedAmount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var items []model.NamedAmount
	for _, pair := range strings.Split(s, ";") {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("item %q: expected NAME=VALUE", pair)
		}
		amt, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", pair, err)
		}
		items = append(items, model.NamedAmount{Name: name, Amount: amt})
	}
	return items, nil
}

// JSONParser reads a JSON array of operations in the same shape the store
// persists and the HTTP API accepts.
type JSONParser struct{}

func (p *JSONParser) Format() string { return "json" }

func (p *JSONParser) Parse(r io.Reader) ([]model.Operation, error) {
	var ops []model.Operation
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ops); err != nil {
		return nil, fmt.Errorf("decoding operations: %w", err)
	}
	for i, op := range ops {
		if _, err := parseKind(string(op.Kind)); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		if op.Date.IsZero() {
			return nil, fmt.Errorf("operation %d: date is required", i)
		}
	}
	return ops, nil
}
