package commands

import (
	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/buildinfo"
	"github.com/Fr4ncx-04/Balance/internal/model"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var repoDir string

	rootCmd := &cobra.Command{
		Use:     "balance",
		Short:   "Double-entry bookkeeping for a single business",
		Version: buildinfo.Current().String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", ".", "book directory containing balance.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newOpenCommand(&repoDir),
		newPurchaseCommand(&repoDir),
		newAmountCommand(&repoDir, amountSpec{
			use: "rent", short: "Pay rent in advance", kind: model.OpPrepaidRent, nameFlag: "name", amountFlag: "value",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "supplies", short: "Buy stationery and supplies", kind: model.OpSupplies, nameFlag: "name", amountFlag: "value",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "advance", short: "Receive a customer advance for half of a future sale", kind: model.OpCustomerAdvance, nameFlag: "name", amountFlag: "sale",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "reverse-advance", short: "Complete the sale behind a customer's oldest open advance", kind: model.OpReverseAdvance, nameFlag: "name", amountFlag: "amount",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "sale", short: "Record a cash sale", kind: model.OpSale, nameFlag: "description", amountFlag: "amount",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "cogs", short: "Move the cost of goods sold out of inventory", kind: model.OpCostOfSales, nameFlag: "description", amountFlag: "cost",
		}),
		newAmountCommand(&repoDir, amountSpec{
			use: "expense", short: "Pay a general expense", kind: model.OpGeneralExpense, nameFlag: "description", amountFlag: "amount",
		}),
		newDepreciateCommand(&repoDir),
		newReportCommand(&repoDir),
		newImportCommand(&repoDir),
		newExportCommand(&repoDir),
		newCheckCommand(&repoDir),
		newBooksCommand(&repoDir),
		newServeCommand(&repoDir),
	)

	return rootCmd
}
