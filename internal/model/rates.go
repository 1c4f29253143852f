package model

import "github.com/shopspring/decimal"

// Rates holds the fixed tax percentages applied by the engine and the reports.
type Rates struct {
	VAT decimal.Decimal `json:"vat"` // IVA on purchases and sales
	ISR decimal.Decimal `json:"isr"` // income tax on pre-tax profit
	PTU decimal.Decimal `json:"ptu"` // employee profit sharing on pre-tax profit
}

// DefaultRates returns IVA 16%, ISR 30%, PTU 10%.
func DefaultRates() Rates {
	return Rates{
		VAT: decimal.RequireFromString("0.16"),
		ISR: decimal.RequireFromString("0.30"),
		PTU: decimal.RequireFromString("0.10"),
	}
}
