package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/toyz/stratum/internal/server"
	"github.com/toyz/stratum/internal/utils"
)

func newServeCommand(rootOpts *rootOptions) *cobra.Command {
	var addr, configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation preview API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics := rootOpts.diagnostics(cmd)

			defaults, err := utils.LoadOptions(configFile)
			if err != nil {
				return rootOpts.report(cmd, err)
			}

			srv := server.New(defaults, diagnostics)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = srv.Stop(shutdownCtx)
			}()

			diagnostics.Info("Listening on %s", addr)
			if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file with the default options")

	return cmd
}
