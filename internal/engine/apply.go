package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/model"
)

// Apply dispatches a recorded operation to the matching engine method. A
// non-zero op.Date is used as the entry date instead of the engine clock.
func (e *Engine) Apply(op model.Operation) (model.JournalEntry, error) {
	if !op.Date.IsZero() {
		prev := e.now
		e.now = func() time.Time { return op.Date }
		defer func() { e.now = prev }()
	}

	switch op.Kind {
	case model.OpOpen:
		return e.Open(op.Amount, op.Items)
	case model.OpCashPurchase:
		return e.CashPurchase(op.Name, op.Amount)
	case model.OpCreditPurchase:
		return e.CreditPurchase(op.Name, op.Amount)
	case model.OpCombinedPurchase:
		return e.CombinedPurchase(op.Name, op.Amount)
	case model.OpPrepaidRent:
		return e.PrepaidRent(op.Name, op.Amount)
	case model.OpSupplies:
		return e.SuppliesPurchase(op.Name, op.Amount)
	case model.OpCustomerAdvance:
		return e.CustomerAdvance(op.Name, op.Amount)
	case model.OpSale:
		return e.Sale(op.Name, op.Amount)
	case model.OpCostOfSales:
		return e.CostOfGoodsSold(op.Name, op.Amount)
	case model.OpGeneralExpense:
		return e.GeneralExpense(op.Name, op.Amount)
	case model.OpReverseAdvance:
		return e.ReverseAdvance(op.Name, op.Amount)
	case model.OpDepreciation:
		amounts := make(map[string]decimal.Decimal, len(op.Items))
		for _, it := range op.Items {
			amounts[it.Name] = amounts[it.Name].Add(it.Amount)
		}
		return e.Depreciation(op.Name, amounts)
	default:
		return model.JournalEntry{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op.Kind)
	}
}

// Replay applies ops in order, stopping at the first failure.
func (e *Engine) Replay(ops []model.Operation) error {
	for i, op := range ops {
		if _, err := e.Apply(op); err != nil {
			return fmt.Errorf("replaying operation %d (%s): %w", i+1, op.Kind, err)
		}
	}
	return nil
}
