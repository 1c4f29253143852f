package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/model"
	"github.com/Fr4ncx-04/Balance/internal/report"
)

// record applies op to the book and prints the resulting entry.
func record(ctx context.Context, out io.Writer, repoDir string, op model.Operation) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ws, err := openWorkspace(ctx, repoDir)
	if err != nil {
		return err
	}
	defer ws.Close()

	entry, err := ws.apply(ctx, op)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Recorded %s: %s\n", entry.ID, entry.Description)
	report.RenderJournal(out, report.BuildJournal([]model.JournalEntry{entry}))
	return nil
}

func newOpenCommand(repoDir *string) *cobra.Command {
	var cash, date string
	var assets []string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Record the opening entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("cash", cash)
			if err != nil {
				return err
			}
			items, err := parseNamedAmounts("asset", assets)
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}
			return record(cmd.Context(), cmd.OutOrStdout(), *repoDir, model.Operation{
				Kind: model.OpOpen, Date: when, Amount: amount, Items: items,
			})
		},
	}

	cmd.Flags().StringVar(&cash, "cash", "0", "opening cash")
	cmd.Flags().StringArrayVar(&assets, "asset", nil, "non-current asset as NAME=VALUE (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	return cmd
}

func newPurchaseCommand(repoDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Record a purchase",
	}
	cmd.AddCommand(
		newAmountCommand(repoDir, amountSpec{
			use: "cash", short: "Buy inventory for cash", kind: model.OpCashPurchase, nameFlag: "name", amountFlag: "value",
		}),
		newAmountCommand(repoDir, amountSpec{
			use: "credit", short: "Buy a non-current asset on credit", kind: model.OpCreditPurchase, nameFlag: "name", amountFlag: "value",
		}),
		newAmountCommand(repoDir, amountSpec{
			use: "combined", short: "Buy a non-current asset half cash, half note", kind: model.OpCombinedPurchase, nameFlag: "name", amountFlag: "value",
		}),
	)
	return cmd
}

// amountSpec describes a command that records one name and one amount.
type amountSpec struct {
	use        string
	short      string
	kind       model.OperationKind
	nameFlag   string
	amountFlag string
}

func newAmountCommand(repoDir *string, spec amountSpec) *cobra.Command {
	var name, amount, date string

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(spec.amountFlag, amount)
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}
			return record(cmd.Context(), cmd.OutOrStdout(), *repoDir, model.Operation{
				Kind: spec.kind, Date: when, Name: name, Amount: value,
			})
		},
	}

	cmd.Flags().StringVar(&name, spec.nameFlag, "", spec.nameFlag+" (required)")
	_ = cmd.MarkFlagRequired(spec.nameFlag)
	cmd.Flags().StringVar(&amount, spec.amountFlag, "", spec.amountFlag+" (required)")
	_ = cmd.MarkFlagRequired(spec.amountFlag)
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	return cmd
}

func newDepreciateCommand(repoDir *string) *cobra.Command {
	var description, date string
	var accts []string

	cmd := &cobra.Command{
		Use:   "depreciate",
		Short: "Record depreciation against accumulated-depreciation accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseNamedAmounts("account", accts)
			if err != nil {
				return err
			}
			when, err := parseDate(date)
			if err != nil {
				return err
			}
			return record(cmd.Context(), cmd.OutOrStdout(), *repoDir, model.Operation{
				Kind: model.OpDepreciation, Date: when, Name: description, Items: items,
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringArrayVar(&accts, "account", nil, `accumulated-depreciation account as NAME=VALUE, e.g. "Dep. Acum. Mobiliario=1000" (repeatable)`)
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&date, "date", "", "entry date (YYYY-MM-DD, default today)")
	return cmd
}
