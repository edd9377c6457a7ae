package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the retirement planning API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			opts := []server.Option{server.WithLogger(a.logger)}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if s != nil {
				defer s.Close()
				opts = append(opts, server.WithRunStore(s))
				a.logger.Info("recording runs", zap.String("path", a.cfg.Storage.Path))
			}

			return server.New(a.newEngine(), cfg, opts...).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
