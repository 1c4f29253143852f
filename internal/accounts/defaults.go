package accounts

import (
	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// DefaultChart returns the fixed accounts the engine posts to. Accounts
// named after assets, customers and supplies are added as they appear.
func DefaultChart() []Account {
	return []Account{
		{Code: "1101", Name: engine.AccountCash, Category: model.CategoryCurrentAsset, Description: "Efectivo en caja"},
		{Code: "1102", Name: engine.AccountInventory, Category: model.CategoryCurrentAsset, Description: "Mercancía para venta"},
		{Code: "1103", Name: engine.AccountVATCredited, Category: model.CategoryCurrentAsset, Description: "IVA pagado en compras de contado"},
		{Code: "1104", Name: engine.AccountVATPending, Category: model.CategoryCurrentAsset, Description: "IVA de compras a crédito aún no pagadas"},
		{Code: "1105", Name: engine.AccountPrepaidRent, Category: model.CategoryCurrentAsset, Description: "Rentas pagadas por adelantado"},
		{Code: "2101", Name: engine.AccountCreditors, Category: model.CategoryLiability, Description: "Compras a crédito"},
		{Code: "2102", Name: engine.AccountNotesPayable, Category: model.CategoryLiability, Description: "Pagarés firmados"},
		{Code: "2103", Name: engine.AccountOutputVAT, Category: model.CategoryLiability, Description: "IVA cobrado en ventas"},
		{Code: "3101", Name: engine.AccountCapital, Category: model.CategoryEquity, Description: "Aportación inicial"},
		{Code: "4101", Name: engine.AccountSales, Category: model.CategoryRevenue},
		{Code: "5101", Name: engine.AccountCostOfSales, Category: model.CategoryCostOfSales},
		{Code: "6101", Name: engine.AccountExpenses, Category: model.CategoryExpense, Description: "Gastos de operación y depreciación"},
	}
}
