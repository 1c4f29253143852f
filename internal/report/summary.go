package report

import (
	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/engine"
)

// Summary is the control-account balance table kept by the engine, listed
// the way the business owner tracks it rather than derived from the ledger.
type Summary struct {
	Company              string          `json:"company"`
	CurrentAssets        Section         `json:"current_assets"`
	NonCurrentAssets     Section         `json:"non_current_assets"`
	Liabilities          Section         `json:"liabilities"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalLiabilities     decimal.Decimal `json:"total_liabilities"`
	Capital              decimal.Decimal `json:"capital"`
	TotalLiabilitiesPlus decimal.Decimal `json:"total_liabilities_and_capital"`
}

// BuildSummary lists the control balances. Zero-valued optional current
// assets are omitted; cash is always listed.
func BuildSummary(company string, c engine.Controls, t engine.Totals) Summary {
	s := Summary{
		Company:              company,
		CurrentAssets:        Section{Title: "Activo Circulante", Lines: []Line{{Account: engine.AccountCash, Amount: c.Cash}}},
		NonCurrentAssets:     Section{Title: "Activo No Circulante", Lines: []Line{}},
		Liabilities:          Section{Title: "Pasivo", Lines: []Line{}},
		TotalAssets:          t.Assets,
		TotalLiabilities:     t.Liabilities,
		Capital:              t.Capital,
		TotalLiabilitiesPlus: t.Liabilities.Add(t.Capital),
	}

	optional := []Line{
		{Account: engine.AccountInventory, Amount: c.Inventory},
		{Account: engine.AccountVATCredited, Amount: c.VATCredited},
		{Account: engine.AccountVATPending, Amount: c.VATPending},
		{Account: engine.AccountPrepaidRent, Amount: c.PrepaidRent},
	}
	for _, l := range optional {
		if !l.Amount.IsZero() {
			s.CurrentAssets.Lines = append(s.CurrentAssets.Lines, l)
		}
	}
	s.CurrentAssets.Total = t.CurrentAssets

	for _, a := range c.NonCurrentAssets {
		s.NonCurrentAssets.Lines = append(s.NonCurrentAssets.Lines, Line{Account: a.Name, Amount: a.Amount})
	}
	s.NonCurrentAssets.Total = t.NonCurrentAssets

	s.Liabilities.Lines = append(s.Liabilities.Lines,
		Line{Account: engine.AccountCreditors, Amount: c.Creditors},
		Line{Account: engine.AccountNotesPayable, Amount: c.NotesPayable},
	)
	for _, a := range c.Advances {
		s.Liabilities.Lines = append(s.Liabilities.Lines, Line{Account: a.Label, Amount: a.Outstanding()})
	}
	s.Liabilities.Total = t.Liabilities
	return s
}
