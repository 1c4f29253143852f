package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

func TestCSVParser_Parse(t *testing.T) {
	f, err := os.Open("testdata/march.csv")
	require.NoError(t, err)
	defer f.Close()

	ops, err := (&CSVParser{}).Parse(f)
	require.NoError(t, err)
	require.Len(t, ops, 6)

	open := ops[0]
	assert.Equal(t, model.OpOpen, open.Kind)
	assert.Equal(t, "50000", open.Amount.String())
	require.Len(t, open.Items, 2)
	assert.Equal(t, "Equipo de Transporte", open.Items[1].Name)
	assert.Equal(t, "100000", open.Items[1].Amount.String())

	purchase := ops[1]
	assert.Equal(t, model.OpCashPurchase, purchase.Kind)
	assert.Equal(t, "Mercancías", purchase.Name)
	assert.Equal(t, 2, purchase.Date.Day())
	assert.Nil(t, purchase.Items)

	dep := ops[5]
	assert.Equal(t, model.OpDepreciation, dep.Kind)
	assert.True(t, dep.Amount.IsZero())
	require.Len(t, dep.Items, 1)
	assert.Equal(t, "500", dep.Items[0].Amount.String())
}

func TestCSVParser_Empty(t *testing.T) {
	ops, err := (&CSVParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, ops)
}

func TestCSVParser_Errors(t *testing.T) {
	const header = "date,kind,name,amount,items\n"
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad header", "fecha,kind,name,amount,items\n", "header column 1"},
		{"bad date", header + "03/01/2025,sale,x,1,\n", "line 2: parsing date"},
		{"bad kind", header + "2025-03-01,refund,x,1,\n", "unknown operation kind"},
		{"bad amount", header + "2025-03-01,sale,x,abc,\n", "parsing amount"},
		{"bad item", header + "2025-03-01,open,,1,Mobiliario\n", "expected NAME=VALUE"},
		{"short row", header + "2025-03-01,sale,x\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&CSVParser{}).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCSVParser_KindIsCaseInsensitive(t *testing.T) {
	input := "date,kind,name,amount,items\n2025-03-01, General_Expense ,Luz,800,\n"
	ops, err := (&CSVParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, model.OpGeneralExpense, ops[0].Kind)
}

func TestJSONParser_Parse(t *testing.T) {
	input := `[
		{"kind":"open","date":"2025-03-01T00:00:00Z","amount":"1000"},
		{"kind":"sale","date":"2025-03-02T00:00:00Z","name":"Mostrador","amount":"250.50"}
	]`
	ops, err := (&JSONParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, model.OpSale, ops[1].Kind)
	assert.Equal(t, "250.5", ops[1].Amount.String())
}

func TestJSONParser_Errors(t *testing.T) {
	_, err := (&JSONParser{}).Parse(strings.NewReader(`[{"kind":"refund","date":"2025-03-01T00:00:00Z","amount":"1"}]`))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = (&JSONParser{}).Parse(strings.NewReader(`[{"kind":"sale","amount":"1"}]`))
	assert.ErrorContains(t, err, "date is required")

	_, err = (&JSONParser{}).Parse(strings.NewReader(`[{"kind":"sale","when":"x"}]`))
	assert.ErrorContains(t, err, "decoding operations")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"csv", "json"}, r.Formats())
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("xlsx"))
}

func TestScan_FindsKnownFormats(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "b.json"), []byte("[]"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "a.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "notes.txt"), []byte("data"), 0o644))

	files, err := DefaultRegistry().Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.csv", files[0].Name)
	assert.Equal(t, "csv", files[0].Format)
	assert.Equal(t, "b.json", files[1].Name)
	assert.Equal(t, "json", files[1].Format)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, "import", "processed")
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.csv"), []byte("data"), 0o644))

	files, err := DefaultRegistry().Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := DefaultRegistry().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestParseFile(t *testing.T) {
	r := DefaultRegistry()
	ops, err := r.ParseFile(FileInfo{Name: "march.csv", Path: "testdata/march.csv", Format: "csv"})
	require.NoError(t, err)
	assert.Len(t, ops, 6)

	_, err = r.ParseFile(FileInfo{Name: "x.xlsx", Path: "testdata/x.xlsx", Format: "xlsx"})
	assert.ErrorContains(t, err, "no parser")
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "batch.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "batch.csv"))

	_, err := os.Stat(filepath.Join(importDir, "batch.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "batch.csv"))
	assert.NoError(t, err)
}
