package commands

import (
	"github.com/spf13/cobra"

	"github.com/Fr4ncx-04/Balance/internal/engine"
	"github.com/Fr4ncx-04/Balance/internal/logger"
	"github.com/Fr4ncx-04/Balance/internal/server"
)

func newServeCommand(repoDir *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd.Context(), *repoDir)
			if err != nil {
				return err
			}
			defer ws.Close()

			// Fail on bad rates before accepting connections.
			if _, err := ws.newEngine(); err != nil {
				return err
			}
			if addr == "" {
				addr = ws.cfg.Server.Addr
			}

			srv := server.New(addr, func() *engine.Engine {
				e, _ := ws.newEngine()
				return e
			}, server.WithBooks(ws.store), server.WithLogger(logger.WithComponent("server")))
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr from balance.yaml)")
	return cmd
}
