package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/accounts"
	"github.com/Fr4ncx-04/Balance/internal/config"
	"github.com/Fr4ncx-04/Balance/internal/gitops"
	"github.com/Fr4ncx-04/Balance/internal/journal"
)

// JournalFile is the journal export written next to the chart of accounts.
const JournalFile = "journal.csv"

func newExportCommand(repoDir *string) *cobra.Command {
	var outDir string
	var commit bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write journal.csv and chart-of-accounts.csv",
		Args:  cobra.NoArgs,
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

			if outDir == "" {
				outDir = ws.cfg.Export.Dir
			}
			dir := resolve(ws.dir, outDir)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}

			f, err := os.Create(filepath.Join(dir, JournalFile))
			if err != nil {
				return fmt.Errorf("creating journal file: %w", err)
			}
			if err := journal.WriteEntries(f, e.Entries()); err != nil {
				f.Close()
				return fmt.Errorf("writing journal: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing journal file: %w", err)
			}

			if err := accounts.FromLedger(e.Accounts()).Save(dir); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d entries to %s\n", len(e.Entries()), dir)

			if !commit && !ws.cfg.Export.AutoCommit {
				return nil
			}
			if !gitops.IsRepo(dir) {
				if err := gitops.Init(dir); err != nil {
					return err
				}
			}
			author := gitops.Author{Name: ws.cfg.Export.AuthorName, Email: ws.cfg.Export.AuthorEmail}
			msg := fmt.Sprintf("export: %s (%d entries)", ws.book.Name, len(e.Entries()))
			hash, err := gitops.Commit(dir, []string{JournalFile, accounts.FileName}, msg, author)
			if errors.Is(err, gitops.ErrNothingToCommit) {
				fmt.Fprintln(out, "No changes since the last export.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Committed %s\n", hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default export.dir from balance.yaml)")
	cmd.Flags().BoolVar(&commit, "commit", false, "commit the exported files to git")
	return cmd
}

func newCheckCommand(repoDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [directory]",
		Long:  "Validates <directory>/journal.csv; without an argument, the export.dir configured in balance.yaml.",
		Short: "Validate an exported journal.csv against the journal invariants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) > 0 {
				dir = args[0]
			} else {
				root, err := filepath.Abs(*repoDir)
				if err != nil {
					return fmt.Errorf("resolving path: %w", err)
				}
				cfg, err := config.Load(filepath.Join(root, config.FileName))
				if err != nil {
					return fmt.Errorf("%w (pass the export directory or run `balance init` first)", err)
				}
				dir = resolve(root, cfg.Export.Dir)
			}

			f, err := os.Open(filepath.Join(dir, JournalFile))
			if err != nil {
				return fmt.Errorf("opening journal: %w", err)
			}
			defer f.Close()

			entries, err := journal.ReadEntries(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			problems := journal.ValidateEntries(entries)
			for _, p := range problems {
				fmt.Fprintln(out, p.Error())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problems in %s", len(problems), JournalFile)
			}

			chart, err := accounts.Load(dir)
			switch {
			case errors.Is(err, os.ErrNotExist):
			case err != nil:
				return err
			default:
				if err := chart.CheckEntries(entries); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "%d entries OK\n", len(entries))
			return nil
		},
	}
	return cmd
}
