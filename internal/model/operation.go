package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind names one of the engine's mutating operations.
type OperationKind string

const (
	OpOpen             OperationKind = "open"
	OpCashPurchase     OperationKind = "cash_purchase"
	OpCreditPurchase   OperationKind = "credit_purchase"
	OpCombinedPurchase OperationKind = "combined_purchase"
	OpPrepaidRent      OperationKind = "prepaid_rent"
	OpSupplies         OperationKind = "supplies_purchase"
	OpCustomerAdvance  OperationKind = "customer_advance"
	OpSale             OperationKind = "sale"
	OpCostOfSales      OperationKind = "cost_of_goods_sold"
	OpGeneralExpense   OperationKind = "general_expense"
	OpReverseAdvance   OperationKind = "reverse_advance"
	OpDepreciation     OperationKind = "depreciation"
)

// AllOperationKinds lists every operation the engine accepts.
var AllOperationKinds = []OperationKind{
	OpOpen, OpCashPurchase, OpCreditPurchase, OpCombinedPurchase, OpPrepaidRent, OpSupplies,
	OpCustomerAdvance, OpSale, OpCostOfSales, OpGeneralExpense, OpReverseAdvance, OpDepreciation,
}

// NamedAmount is a (name, value) pair: a non-current asset, a depreciation
// account, or an advance-list entry.
type NamedAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Operation is a recorded request to the engine. Name carries the asset,
// customer, or description depending on Kind; Amount the value, sale amount,
// cost, or opening cash.
type Operation struct {
	Kind   OperationKind   `json:"kind"`
	Date   time.Time       `json:"date,omitempty"`
	Name   string          `json:"name,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Items  []NamedAmount   `json:"items,omitempty"` // opening assets or depreciation accounts
}
