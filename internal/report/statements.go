package report

import (
	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// IncomeStatement is the period result. ISR and PTU apply only to a positive
// operating profit.
type IncomeStatement struct {
	Sales           decimal.Decimal `json:"sales"`
	CostOfSales     decimal.Decimal `json:"cost_of_sales"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	Expenses        decimal.Decimal `json:"expenses"`
	OperatingProfit decimal.Decimal `json:"operating_profit"`
	ISR             decimal.Decimal `json:"isr"`
	PTU             decimal.Decimal `json:"ptu"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

// BuildIncomeStatement aggregates revenue, cost of sales and expense accounts.
func BuildIncomeStatement(accounts []ledger.Account, rates model.Rates) IncomeStatement {
	is := IncomeStatement{
		Sales:       sumCategory(accounts, model.CategoryRevenue),
		CostOfSales: sumCategory(accounts, model.CategoryCostOfSales),
		Expenses:    sumCategory(accounts, model.CategoryExpense),
		ISR:         decimal.Zero,
		PTU:         decimal.Zero,
	}
	is.GrossProfit = is.Sales.Sub(is.CostOfSales)
	is.OperatingProfit = is.GrossProfit.Sub(is.Expenses)
	if is.OperatingProfit.IsPositive() {
		is.ISR = is.OperatingProfit.Mul(rates.ISR)
		is.PTU = is.OperatingProfit.Mul(rates.PTU)
	}
	is.NetProfit = is.OperatingProfit.Sub(is.ISR).Sub(is.PTU)
	return is
}

// Line is one named amount on a statement.
type Line struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// Section is a titled group of lines with its total.
type Section struct {
	Title string          `json:"title"`
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// BalanceSheet is the statement of financial position. Equity includes the
// pre-tax result of the period, since no closing entries are posted.
type BalanceSheet struct {
	CurrentAssets           Section         `json:"current_assets"`
	NonCurrentAssets        Section         `json:"non_current_assets"`
	AccumulatedDepreciation Section         `json:"accumulated_depreciation"`
	Liabilities             Section         `json:"liabilities"`
	Equity                  Section         `json:"equity"`
	TotalAssets             decimal.Decimal `json:"total_assets"`
	TotalLiabilitiesEquity  decimal.Decimal `json:"total_liabilities_equity"`
	Balanced                bool            `json:"balanced"`
}

// BuildBalanceSheet groups accounts by category. Accumulated depreciation is
// shown as a negative amount deducted from non-current assets.
func BuildBalanceSheet(accounts []ledger.Account) BalanceSheet {
	bs := BalanceSheet{
		CurrentAssets:           section(accounts, model.CategoryCurrentAsset),
		NonCurrentAssets:        section(accounts, model.CategoryNonCurrentAsset),
		AccumulatedDepreciation: section(accounts, model.CategoryContraAsset),
		Liabilities:             section(accounts, model.CategoryLiability),
		Equity:                  section(accounts, model.CategoryEquity),
	}
	for i := range bs.AccumulatedDepreciation.Lines {
		l := &bs.AccumulatedDepreciation.Lines[i]
		l.Amount = l.Amount.Neg()
	}
	bs.AccumulatedDepreciation.Total = bs.AccumulatedDepreciation.Total.Neg()

	result := sumCategory(accounts, model.CategoryRevenue).
		Sub(sumCategory(accounts, model.CategoryCostOfSales)).
		Sub(sumCategory(accounts, model.CategoryExpense))
	bs.Equity.Lines = append(bs.Equity.Lines, Line{Account: "Resultado del Ejercicio", Amount: result})
	bs.Equity.Total = bs.Equity.Total.Add(result)

	bs.TotalAssets = bs.CurrentAssets.Total.
		Add(bs.NonCurrentAssets.Total).
		Add(bs.AccumulatedDepreciation.Total)
	bs.TotalLiabilitiesEquity = bs.Liabilities.Total.Add(bs.Equity.Total)
	bs.Balanced = bs.TotalAssets.Equal(bs.TotalLiabilitiesEquity)
	return bs
}

func section(accounts []ledger.Account, cat model.Category) Section {
	s := Section{Title: cat.Label(), Lines: []Line{}, Total: decimal.Zero}
	for _, a := range accounts {
		if a.Category != cat {
			continue
		}
		amt := normalBalance(a)
		s.Lines = append(s.Lines, Line{Account: a.Name, Amount: amt})
		s.Total = s.Total.Add(amt)
	}
	return s
}
