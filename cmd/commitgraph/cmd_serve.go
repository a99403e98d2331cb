package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/commitgraph/pkg/server"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the replayed repository as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRepository(cmd, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(r,
				server.WithLogger(loggerFromContext(ctx)),
				server.WithLayout(cfg.LayoutOptions()...),
			)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
