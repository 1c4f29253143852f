package model

// Category classifies an account at the moment it is first posted to.
// Reports aggregate by category, never by account name.
type Category string

const (
	CategoryCurrentAsset    Category = "current_asset"
	CategoryNonCurrentAsset Category = "non_current_asset"
	CategoryContraAsset     Category = "contra_asset" // accumulated depreciation
	CategoryLiability       Category = "liability"
	CategoryEquity          Category = "equity"
	CategoryRevenue         Category = "revenue"
	CategoryCostOfSales     Category = "cost_of_sales"
	CategoryExpense         Category = "expense"
)

// AllCategories lists every category in balance-sheet then income-statement order.
var AllCategories = []Category{
	CategoryCurrentAsset,
	CategoryNonCurrentAsset,
	CategoryContraAsset,
	CategoryLiability,
	CategoryEquity,
	CategoryRevenue,
	CategoryCostOfSales,
	CategoryExpense,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DebitNormal reports whether accounts of this category carry a debit balance.
func (c Category) DebitNormal() bool {
	switch c {
	case CategoryCurrentAsset, CategoryNonCurrentAsset, CategoryCostOfSales, CategoryExpense:
		return true
	default:
		return false
	}
}

// Label returns the Spanish heading used in rendered reports.
func (c Category) Label() string {
	switch c {
	case CategoryCurrentAsset:
		return "Activo Circulante"
	case CategoryNonCurrentAsset:
		return "Activo No Circulante"
	case CategoryContraAsset:
		return "Depreciación Acumulada"
	case CategoryLiability:
		return "Pasivo"
	case CategoryEquity:
		return "Capital"
	case CategoryRevenue:
		return "Ingresos"
	case CategoryCostOfSales:
		return "Costo de Ventas"
	case CategoryExpense:
		return "Gastos"
	default:
		return string(c)
	}
}
