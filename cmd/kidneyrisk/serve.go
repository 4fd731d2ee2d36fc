package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/kidneyrisk/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prediction form and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (or set KIDNEYRISK_ADDR, default :8501)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	// Artifacts load before the listener opens; no request is served without
	// them.
	p, err := a.openPipeline()
	if err != nil {
		return err
	}
	defer p.Close()

	srv, err := server.New(p, server.Options{CORSOrigins: a.cfg.Server.CORSOrigins})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, a.cfg.Server.Addr, a.cfg.Server.ShutdownTimeout)
}
