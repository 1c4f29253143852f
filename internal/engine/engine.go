// Package engine holds the control-account balances of one business entity
// and the operations that turn business transactions into balanced journal
// entries. An Engine is not safe for concurrent use; callers that share one
// must serialize access.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Fr4ncx-04/Balance/internal/journal"
	"github.com/Fr4ncx-04/Balance/internal/ledger"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// Account labels posted by the engine.
const (
	AccountCash         = "Caja"
	AccountInventory    = "Inventario"
	AccountPrepaidRent  = "Rentas Pagadas Anticipado"
	AccountVATCredited  = "IVA Acreditable"
	AccountVATPending   = "IVA por Acreditar"
	AccountCreditors    = "Acreedores"
	AccountNotesPayable = "Documentos por Pagar"
	AccountCapital      = "Capital (Apertura)"
	AccountSales        = "Ventas"
	AccountOutputVAT    = "IVA Trasladado"
	AccountCostOfSales  = "Costo de lo Vendido"
	AccountExpenses     = "Gastos Generales"
)

// DefaultCompany is the entity name used when none is configured.
const DefaultCompany = "Mi Empresa"

// AdvanceAccount is the liability account for advances received from a customer.
func AdvanceAccount(customer string) string {
	return "Anticipo de Clientes - " + customer
}

// AdvanceVATAccount is the output-tax account for a customer's advance.
func AdvanceVATAccount(customer string) string {
	return "IVA Trasladado - " + customer
}

// SuppliesAccount is the asset account for a supplies purchase.
func SuppliesAccount(name string) string {
	return "Papelería - " + name
}

// AdvanceEntry is one row of the customer-advance list. Each advance appends
// a principal row and a tax row; a reversal settles the principal row.
type AdvanceEntry struct {
	Customer string          `json:"customer"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
	Tax      bool            `json:"tax"`
	Settled  bool            `json:"settled"`
}

// Outstanding is the amount still owed on this row.
func (a AdvanceEntry) Outstanding() decimal.Decimal {
	if a.Settled {
		return decimal.Zero
	}
	return a.Amount
}

// Totals are derived from the control balances after every operation.
type Totals struct {
	CurrentAssets    decimal.Decimal `json:"current_assets"`
	NonCurrentAssets decimal.Decimal `json:"non_current_assets"`
	Assets           decimal.Decimal `json:"assets"`
	Liabilities      decimal.Decimal `json:"liabilities"`
	Capital          decimal.Decimal `json:"capital"`
}

// Controls is a snapshot of the control-account balances.
type Controls struct {
	Cash             decimal.Decimal     `json:"cash"`
	Inventory        decimal.Decimal     `json:"inventory"`
	PrepaidRent      decimal.Decimal     `json:"prepaid_rent"`
	VATCredited      decimal.Decimal     `json:"vat_credited"`
	VATPending       decimal.Decimal     `json:"vat_pending"`
	Creditors        decimal.Decimal     `json:"creditors"`
	NotesPayable     decimal.Decimal     `json:"notes_payable"`
	NonCurrentAssets []model.NamedAmount `json:"non_current_assets"`
	Advances         []AdvanceEntry      `json:"advances"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithRates sets the tax rates.
func WithRates(r model.Rates) Option {
	return func(e *Engine) { e.rates = r }
}

// WithClock sets the source of entry dates.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithCompany sets the entity name shown on reports.
func WithCompany(name string) Option {
	return func(e *Engine) { e.company = name }
}

// Engine is the accounting state of one business entity.
type Engine struct {
	company string
	rates   model.Rates
	now     func() time.Time
	log     zerolog.Logger

	ledger  *ledger.Store
	journal *journal.Log

	opened       bool
	cash         decimal.Decimal
	inventory    decimal.Decimal
	prepaidRent  decimal.Decimal
	vatCredited  decimal.Decimal
	vatPending   decimal.Decimal
	creditors    decimal.Decimal
	notesPayable decimal.Decimal
	nonCurrent   []model.NamedAmount
	advances     []AdvanceEntry
	capital      decimal.Decimal
	totals       Totals
}

// New returns an unopened engine with every balance at zero.
func New(opts ...Option) *Engine {
	store := ledger.NewStore()
	e := &Engine{
		company: DefaultCompany,
		rates:   model.DefaultRates(),
		now:     time.Now,
		log:     zerolog.Nop(),
		ledger:  store,
		journal: journal.NewLog(store),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Opened reports whether the opening entry has been recorded.
func (e *Engine) Opened() bool {
	return e.opened
}

// Company returns the entity name.
func (e *Engine) Company() string {
	return e.company
}

// Rates returns the configured tax rates.
func (e *Engine) Rates() model.Rates {
	return e.rates
}

// Totals returns the derived totals.
func (e *Engine) Totals() Totals {
	return e.totals
}

// Controls returns a copy of the control balances.
func (e *Engine) Controls() Controls {
	nc := make([]model.NamedAmount, len(e.nonCurrent))
	copy(nc, e.nonCurrent)
	adv := make([]AdvanceEntry, len(e.advances))
	copy(adv, e.advances)
	return Controls{
		Cash:             e.cash,
		Inventory:        e.inventory,
		PrepaidRent:      e.prepaidRent,
		VATCredited:      e.vatCredited,
		VATPending:       e.vatPending,
		Creditors:        e.creditors,
		NotesPayable:     e.notesPayable,
		NonCurrentAssets: nc,
		Advances:         adv,
	}
}

// Entries returns the journal in insertion order.
func (e *Engine) Entries() []model.JournalEntry {
	return e.journal.Entries()
}

// Accounts returns the ledger accounts in first-insertion order.
func (e *Engine) Accounts() []ledger.Account {
	return e.ledger.Accounts()
}

// Verify re-checks every journal invariant.
func (e *Engine) Verify() []journal.ValidationError {
	return e.journal.Verify()
}

func (e *Engine) tax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(e.rates.VAT)
}

func (e *Engine) requireOpened(op string) error {
	if e.opened {
		return nil
	}
	e.log.Warn().Str("op", op).Msg("rejected: opening entry not recorded")
	return &PreconditionError{Op: op, Reason: "opening entry has not been recorded"}
}

// post builds the entry through the balanced-entry factory and appends it.
// Callers mutate control balances only after post succeeds.
func (e *Engine) post(op, description string, code model.EntryCode, lines ...model.Line) (model.JournalEntry, error) {
	entry, err := model.NewEntry(e.now(), description, code, lines...)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("%s: %w", op, err)
	}
	stored, err := e.journal.Append(entry)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("%s: %w", op, err)
	}
	e.log.Debug().
		Str("entry", stored.ID).
		Str("code", string(stored.Code)).
		Str("total", stored.TotalDebit().StringFixed(2)).
		Msg(description)
	return stored, nil
}

// recalculate derives every total from scratch.
func (e *Engine) recalculate() {
	current := e.cash.
		Add(e.inventory).
		Add(e.prepaidRent).
		Add(e.vatCredited).
		Add(e.vatPending)

	nonCurrent := decimal.Zero
	for _, a := range e.nonCurrent {
		nonCurrent = nonCurrent.Add(a.Amount)
	}

	advances := decimal.Zero
	for _, a := range e.advances {
		advances = advances.Add(a.Outstanding())
	}

	e.totals = Totals{
		CurrentAssets:    current,
		NonCurrentAssets: nonCurrent,
		Assets:           current.Add(nonCurrent),
		Liabilities:      e.creditors.Add(e.notesPayable).Add(advances),
		Capital:          e.capital,
	}
}
