package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Fr4ncx-04/Balance/internal/report"
)

func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	e := sess.engine

	var out any
	switch chi.URLParam(r, "report") {
	case "journal":
		out = report.BuildJournal(e.Entries())
	case "ledger":
		out = report.BuildLedger(e.Accounts())
	case "trial-balance":
		out = report.BuildTrialBalance(e.Accounts())
	case "balance-sheet":
		out = report.BuildBalanceSheet(e.Accounts())
	case "income-statement":
		out = report.BuildIncomeStatement(e.Accounts(), e.Rates())
	case "cash-flow":
		out = report.BuildCashFlow(e.Accounts())
	case "summary":
		out = report.BuildSummary(e.Company(), e.Controls(), e.Totals())
	default:
		writeError(w, http.StatusNotFound, "unknown report")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
