package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/importer"
)

func newImportCommand(repoDir *string) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Record operation batches waiting in <repo>/import",
		Long: `Reads every .csv and .json batch in <repo>/import in name order.
A batch is recorded only if all of its operations post; recorded batches
move to import/processed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx, *repoDir)
			if err != nil {
				return err
			}
			defer ws.Close()

			reg := importer.DefaultRegistry()
			files, err := reg.Scan(ws.dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(files) == 0 {
				fmt.Fprintf(out, "Nothing to import in %s/\n", importer.Dir)
				return nil
			}

			e, err := ws.engine(ctx)
			if err != nil {
				return err
			}

			for _, f := range files {
				ops, err := reg.ParseFile(f)
				if err != nil {
					return err
				}
				for i, op := range ops {
					entry, err := e.Apply(op)
					if err != nil {
						return fmt.Errorf("%s: operation %d (%s): %w", f.Name, i+1, op.Kind, err)
					}
					ws.log.Debug().Str("file", f.Name).Str("entry", entry.ID).Msg("operation posted")
				}
				if dryRun {
					fmt.Fprintf(out, "%s: %d operations would be recorded\n", f.Name, len(ops))
					continue
				}
				if err := ws.store.AppendOperations(ctx, ws.book.ID, ops); err != nil {
					return err
				}
				if err := importer.MarkProcessed(ws.dir, f.Name); err != nil {
					return err
				}
				ws.log.Info().Str("book", ws.book.Name).Str("file", f.Name).Int("operations", len(ops)).Msg("batch imported")
				fmt.Fprintf(out, "%s: recorded %d operations\n", f.Name, len(ops))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate batches without recording them")
	return cmd
}
