package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// CashAccount is the account whose movements make up the cash-flow statement.
const CashAccount = "Caja"

// Activity classifies a cash movement.
type Activity string

const (
	Operating Activity = "operating"
	Investing Activity = "investing"
	Financing Activity = "financing"
)

// Title returns the Spanish heading for the activity.
func (a Activity) Title() string {
	switch a {
	case Operating:
		return "Actividades de Operación"
	case Investing:
		return "Actividades de Inversión"
	case Financing:
		return "Actividades de Financiamiento"
	default:
		return string(a)
	}
}

// Classify maps a transaction code to its cash-flow activity. Purchases of
// non-current assets are investing, the owner's contribution is financing,
// everything else is operating.
func Classify(code model.EntryCode) Activity {
	switch code {
	case model.CodeOpening:
		return Financing
	case model.CodeCreditPurchase, model.CodeCombinedPurchase, model.CodeSupplies:
		return Investing
	default:
		return Operating
	}
}

// CashMovement is one posting to the cash account, signed: inflows positive.
type CashMovement struct {
	EntryID     string          `json:"entry_id"`
	Date        time.Time       `json:"date"`
	Code        model.EntryCode `json:"code"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CashFlowSection holds the movements of one activity.
type CashFlowSection struct {
	Activity  Activity        `json:"activity"`
	Movements []CashMovement  `json:"movements"`
	Net       decimal.Decimal `json:"net"`
}

// CashFlow is the cash-flow statement. The period starts with no cash, so
// the net change equals the ending cash balance.
type CashFlow struct {
	Operating  CashFlowSection `json:"operating"`
	Investing  CashFlowSection `json:"investing"`
	Financing  CashFlowSection `json:"financing"`
	NetChange  decimal.Decimal `json:"net_change"`
	EndingCash decimal.Decimal `json:"ending_cash"`
}

// BuildCashFlow classifies every cash posting by its transaction code.
func BuildCashFlow(accounts []ledger.Account) CashFlow {
	cf := CashFlow{
		Operating:  CashFlowSection{Activity: Operating, Movements: []CashMovement{}, Net: decimal.Zero},
		Investing:  CashFlowSection{Activity: Investing, Movements: []CashMovement{}, Net: decimal.Zero},
		Financing:  CashFlowSection{Activity: Financing, Movements: []CashMovement{}, Net: decimal.Zero},
		NetChange:  decimal.Zero,
		EndingCash: decimal.Zero,
	}
	for _, a := range accounts {
		if a.Name != CashAccount {
			continue
		}
		for _, p := range a.Postings {
			m := CashMovement{
				EntryID:     p.EntryID,
				Date:        p.Date,
				Code:        p.Code,
				Description: p.Description,
				Amount:      p.Debit.Sub(p.Credit),
			}
			s := cf.section(Classify(p.Code))
			s.Movements = append(s.Movements, m)
			s.Net = s.Net.Add(m.Amount)
		}
		cf.EndingCash = a.Balance()
	}
	cf.NetChange = cf.Operating.Net.Add(cf.Investing.Net).Add(cf.Financing.Net)
	return cf
}

// Sections returns the three sections in statement order.
func (cf *CashFlow) Sections() []*CashFlowSection {
	return []*CashFlowSection{&cf.Operating, &cf.Investing, &cf.Financing}
}

func (cf *CashFlow) section(a Activity) *CashFlowSection {
	switch a {
	case Investing:
		return &cf.Investing
	case Financing:
		return &cf.Financing
	default:
		return &cf.Operating
	}
}
