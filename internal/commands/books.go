package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newBooksCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the books in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ws, err := openWorkspace(ctx, *repoDir)
			if err != nil {
				return err
			}
			defer ws.Close()

			books, err := ws.store.ListBooks(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range books {
				marker := " "
				if b.ID == ws.book.ID {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\t%s\t%s\n", marker, b.Name, b.ID, b.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
