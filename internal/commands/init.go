package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/accounts"
	"github.com/Fr4ncx-04/Balance/internal/config"
	"github.com/Fr4ncx-04/Balance/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new book",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.Context(), cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, dir, name string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default(name)
	exportDir := filepath.Join(dir, cfg.Export.Dir)
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", cfg.Export.Dir, err)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the chart with the engine's fixed accounts.
	if err := accounts.NewService(accounts.DefaultChart()).Save(exportDir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	gitignore := cfg.Store.Path + "\n" + cfg.Store.Path + "-*\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	st, err := store.Open(filepath.Join(dir, cfg.Store.Path))
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer st.Close()
	book, err := st.EnsureBook(ctx, cfg.Store.Book)
	if err != nil {
		return fmt.Errorf("creating book: %w", err)
	}

	fmt.Fprintf(out, "Initialized book %q for %s at %s\n", book.Name, name, dir)
	return nil
}
