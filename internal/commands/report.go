package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/report"
)

var reportKinds = []string{"journal", "ledger", "trial", "balance-sheet", "income", "cash-flow", "summary"}

func newReportCommand(repoDir *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:       "report <journal|ledger|trial|balance-sheet|income|cash-flow|summary>",
		Short:     "Print a report for the book",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx, *repoDir)
			if err != nil {
				return err
			}
			defer ws.Close()

			e, err := ws.engine(ctx)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), e, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func writeReport(out io.Writer, e *engine.Engine, kind string, asJSON bool) error {
	var data any
	var render func()
	switch kind {
	case "journal":
		r := report.BuildJournal(e.Entries())
		data, render = r, func() { report.RenderJournal(out, r) }
	case "ledger":
		r := report.BuildLedger(e.Accounts())
		data, render = r, func() { report.RenderLedger(out, r) }
	case "trial":
		r := report.BuildTrialBalance(e.Accounts())
		data, render = r, func() { report.RenderTrialBalance(out, r) }
	case "balance-sheet":
		r := report.BuildBalanceSheet(e.Accounts())
		data, render = r, func() { report.RenderBalanceSheet(out, r) }
	case "income":
		r := report.BuildIncomeStatement(e.Accounts(), e.Rates())
		data, render = r, func() { report.RenderIncomeStatement(out, r) }
	case "cash-flow":
		r := report.BuildCashFlow(e.Accounts())
		data, render = r, func() { report.RenderCashFlow(out, r) }
	case "summary":
		r := report.BuildSummary(e.Company(), e.Controls(), e.Totals())
		data, render = r, func() { report.RenderSummary(out, r) }
	default:
		return fmt.Errorf("unknown report %q", kind)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	render()
	return nil
}
