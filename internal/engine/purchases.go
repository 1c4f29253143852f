package engine

import (
	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

var two = decimal.NewFromInt(2)

// Open records the opening entry: cash and each non-current asset are
// debited, capital is credited for their sum. It can be called only once.
func (e *Engine) Open(cash decimal.Decimal, assets []model.NamedAmount) (model.JournalEntry, error) {
	const op = "open"
	if e.opened {
		e.log.Warn().Str("op", op).Msg("rejected: already opened")
		return model.JournalEntry{}, &PreconditionError{Op: op, Reason: "opening entry already recorded"}
	}

	total := cash
	var lines []model.Line
	if cash.IsPositive() || len(assets) == 0 {
		lines = append(lines, model.DebitLine(AccountCash, model.CategoryCurrentAsset, cash))
	}
	for _, a := range assets {
		lines = append(lines, model.DebitLine(a.Name, model.CategoryNonCurrentAsset, a.Amount))
		total = total.Add(a.Amount)
	}
	lines = append(lines, model.CreditLine(AccountCapital, model.CategoryEquity, total))

	entry, err := e.post(op, "Asiento de Apertura", model.CodeOpening, lines...)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.cash = cash
	e.nonCurrent = append(e.nonCurrent, assets...)
	e.capital = total
	e.opened = true
	e.recalculate()
	return entry, nil
}

// CashPurchase buys inventory for cash: inventory up by value, input VAT up by
// tax, cash down by value plus tax.
func (e *Engine) CashPurchase(name string, value decimal.Decimal) (model.JournalEntry, error) {
	const op = "cash purchase"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	tax := e.tax(value)
	entry, err := e.post(op, "Compra en Efectivo - "+name, model.CodeCashPurchase,
		model.DebitLine(AccountInventory, model.CategoryCurrentAsset, value),
		model.DebitLine(AccountVATCredited, model.CategoryCurrentAsset, tax),
		model.CreditLine(AccountCash, model.CategoryCurrentAsset, value.Add(tax)),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.inventory = e.inventory.Add(value)
	e.vatCredited = e.vatCredited.Add(tax)
	e.cash = e.cash.Sub(value.Add(tax))
	e.recalculate()
	return entry, nil
}

// CreditPurchase buys a non-current asset on account. The tax is not yet
// creditable and goes to the pending VAT bucket.
func (e *Engine) CreditPurchase(name string, value decimal.Decimal) (model.JournalEntry, error) {
	const op = "credit purchase"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	tax := e.tax(value)
	entry, err := e.post(op, "Compra a Crédito - "+name, model.CodeCreditPurchase,
		model.DebitLine(name, model.CategoryNonCurrentAsset, value),
		model.DebitLine(AccountVATPending, model.CategoryCurrentAsset, tax),
		model.CreditLine(AccountCreditors, model.CategoryLiability, value.Add(tax)),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.nonCurrent = append(e.nonCurrent, model.NamedAmount{Name: name, Amount: value})
	e.vatPending = e.vatPending.Add(tax)
	e.creditors = e.creditors.Add(value.Add(tax))
	e.recalculate()
	return entry, nil
}

// CombinedPurchase buys a non-current asset paying half in cash and signing a
// note for the other half. Value and tax are split exactly in half; the full
// value is recorded once as a non-current asset.
func (e *Engine) CombinedPurchase(name string, value decimal.Decimal) (model.JournalEntry, error) {
	const op = "combined purchase"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	halfTax := e.tax(value).Div(two)
	half := value.Div(two).Add(halfTax)
	entry, err := e.post(op, "Compra Combinada - "+name, model.CodeCombinedPurchase,
		model.DebitLine(name, model.CategoryNonCurrentAsset, value),
		model.DebitLine(AccountVATCredited, model.CategoryCurrentAsset, halfTax),
		model.DebitLine(AccountVATPending, model.CategoryCurrentAsset, halfTax),
		model.CreditLine(AccountCash, model.CategoryCurrentAsset, half),
		model.CreditLine(AccountNotesPayable, model.CategoryLiability, half),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.nonCurrent = append(e.nonCurrent, model.NamedAmount{Name: name, Amount: value})
	e.cash = e.cash.Sub(half)
	e.vatCredited = e.vatCredited.Add(halfTax)
	e.notesPayable = e.notesPayable.Add(half)
	e.vatPending = e.vatPending.Add(halfTax)
	e.recalculate()
	return entry, nil
}

// PrepaidRent pays rent in advance in cash.
func (e *Engine) PrepaidRent(name string, value decimal.Decimal) (model.JournalEntry, error) {
	const op = "prepaid rent"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	tax := e.tax(value)
	entry, err := e.post(op, "Pago Rentas - "+name, model.CodePrepaidRent,
		model.DebitLine(AccountPrepaidRent, model.CategoryCurrentAsset, value),
		model.DebitLine(AccountVATCredited, model.CategoryCurrentAsset, tax),
		model.CreditLine(AccountCash, model.CategoryCurrentAsset, value.Add(tax)),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.prepaidRent = e.prepaidRent.Add(value)
	e.vatCredited = e.vatCredited.Add(tax)
	e.cash = e.cash.Sub(value.Add(tax))
	e.recalculate()
	return entry, nil
}

// SuppliesPurchase buys stationery for cash and records it as a non-current asset.
func (e *Engine) SuppliesPurchase(name string, value decimal.Decimal) (model.JournalEntry, error) {
	const op = "supplies purchase"
	if err := e.requireOpened(op); err != nil {
		return model.JournalEntry{}, err
	}

	account := SuppliesAccount(name)
	tax := e.tax(value)
	entry, err := e.post(op, "Compra Papelería - "+name, model.CodeSupplies,
		model.DebitLine(account, model.CategoryNonCurrentAsset, value),
		model.DebitLine(AccountVATCredited, model.CategoryCurrentAsset, tax),
		model.CreditLine(AccountCash, model.CategoryCurrentAsset, value.Add(tax)),
	)
	if err != nil {
		return model.JournalEntry{}, err
	}

	e.nonCurrent = append(e.nonCurrent, model.NamedAmount{Name: account, Amount: value})
	e.vatCredited = e.vatCredited.Add(tax)
	e.cash = e.cash.Sub(value.Add(tax))
	e.recalculate()
	return entry, nil
}
