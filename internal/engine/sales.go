package engine

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

// CustomerAdvance receives half of a future sale, plus its tax, in cash.
// Two rows are appended to the advance list: the principal and the tax.
func (e *Engine) CustomerAdvance(name string, sale decimal.Decimal) (model.JournalEntry, error) {
	const op = "customer advance"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	half := sale.Div(two)
	halfTax := e.tax(half)
	entry, err := e.post(op, "Anticipo de Clientes - "+name, model.CodeCustomerAdvance,
		model.DebitLine(AccountCash, model.CategoryCurrentAsset, half.Add(halfTax)),
		model.CreditLine(AdvanceAccount(name), model.CategoryLiability, half),
		model.CreditLine(AdvanceVATAccount(name), model.CategoryLiability, halfTax),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.cash = e.cash.Add(half.Add(halfTax))
	e.advances = append(e.advances,
		AdvanceEntry{Customer: name, Label: AdvanceAccount(name), Amount: half},
		AdvanceEntry{Customer: name, Label: AdvanceVATAccount(name), Amount: halfTax, Tax: true},
	)
	e.recalculate()
	return entry, nil
}

// Sale records a cash sale with output tax. Inventory is relieved separately
// through CostOfGoodsSold.
func (e *Engine) Sale(description string, amount decimal.Decimal) (model.JournalEntry, error) {
	const op = "sale"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	tax := e.tax(amount)
	entry, err := e.post(op, "Venta - "+description, model.CodeSale,
		model.DebitLine(AccountCash, model.CategoryCurrentAsset, amount.Add(tax)),
		model.CreditLine(AccountSales, model.CategoryRevenue, amount),
		model.CreditLine(AccountOutputVAT, model.CategoryLiability, tax),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.cash = e.cash.Add(amount.Add(tax))
	e.recalculate()
	return entry, nil
}

// CostOfGoodsSold moves cost out of inventory. It fails if cost exceeds the
// inventory on hand.
func (e *Engine) CostOfGoodsSold(description string, cost decimal.Decimal) (model.JournalEntry, error) {
	const op = "cost of goods sold"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}
	if cost.GreaterThan(e.inventory) {
		e.log.Warn().Str("op", op).Str("cost", cost.String()).Str("inventory", e.inventory.String()).Msg("rejected: insufficient inventory")
		return model.JournalEntry{}, &DomainError{
			Op:     op,
			Reason: fmt.Sprintf("insufficient inventory: cost %s exceeds %s", cost.StringFixed(2), e.inventory.StringFixed(2)),
		}
	}

	entry, err := e.post(op, "Costo de Ventas - "+description, model.CodeCostOfSales,
		model.DebitLine(AccountCostOfSales, model.CategoryCostOfSales, cost),
		model.CreditLine(AccountInventory, model.CategoryCurrentAsset, cost),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.inventory = e.inventory.Sub(cost)
	e.recalculate()
	return entry, nil
}

// GeneralExpense pays an expense in cash. No tax is applied.
func (e *Engine) GeneralExpense(description string, amount decimal.Decimal) (model.JournalEntry, error) {
	const op = "general expense"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	entry, err := e.post(op, "Gasto - "+description, model.CodeGeneralExpense,
		model.DebitLine(AccountExpenses, model.CategoryExpense, amount),
		model.CreditLine(AccountCash, model.CategoryCurrentAsset, amount),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.cash = e.cash.Sub(amount)
	e.recalculate()
	return entry, nil
}

// ReverseAdvance settles the oldest open advance of customer when the sale is
// completed. The customer pays amount plus tax in cash; the advance principal
// is applied to the sale and its list row is settled.
func (e *Engine) ReverseAdvance(customer string, amount decimal.Decimal) (model.JournalEntry, error) {
	const op = "reverse advance"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	idx := -1
	for i, a := range e.advances {
		if a.Customer == customer && !a.Tax && !a.Settled {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.log.Warn().Str("op", op).Str("customer", customer).Msg("rejected: no open advance")
		return model.JournalEntry{}, &DomainError{Op: op, Reason: fmt.Sprintf("no open advance for customer %q", customer)}
	}

	principal := e.advances[idx].Amount
	tax := e.tax(amount)
	entry, err := e.post(op, "Anulación de Anticipo - "+customer, model.CodeAdvanceReversal,
		model.DebitLine(AccountCash, model.CategoryCurrentAsset, amount.Add(tax)),
		model.DebitLine(AdvanceAccount(customer), model.CategoryLiability, principal),
		model.CreditLine(AccountSales, model.CategoryRevenue, amount.Add(principal)),
		model.CreditLine(AccountOutputVAT, model.CategoryLiability, tax),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.cash = e.cash.Add(amount.Add(tax))
	e.advances[idx].Settled = true
	e.recalculate()
	return entry, nil
}

// Depreciation debits general expenses for the sum of amounts and credits each
// accumulated-depreciation account. Accounts are posted in name order.
func (e *Engine) Depreciation(description string, amounts map[string]decimal.Decimal) (model.JournalEntry, error) {
	const op = "depreciation"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	names := make([]string, 0, len(amounts))
	for name := range amounts {
		names = append(names, name)
	}
	sort.Strings(names)

	total := decimal.Zero
	credits := make([]model.Line, 0, len(names))
	for _, name := range names {
		total = total.Add(amounts[name])
		credits = append(credits, model.CreditLine(name, model.CategoryContraAsset, amounts[name]))
	}

	lines := append([]model.Line{model.DebitLine(AccountExpenses, model.CategoryExpense, total)}, credits...)
	entry, err := e.post(op, "Depreciación - "+description, model.CodeDepreciation, lines...)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.recalculate()
	return entry, nil
}
