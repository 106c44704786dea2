// SPDX-License-Identifier: Apache-2.0
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Work-Fort/Welcome/cmd/cmdutil"
	"github.com/Work-Fort/Welcome/pkg/config"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the wizard endpoints over HTTP",
		Long: `Serve the wizard endpoints over HTTP.

  GET /return  redirects (302) to the resolved return URL for the request's
               Referer header
  GET /state   returns the wizard step, message and whitelist state as JSON

The scheme is taken from X-Forwarded-Proto when a proxy sets it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = config.GetServeAddr()
			}

			session, err := cmdutil.OpenSession(cmd.Context())
			if err != nil {
				return err
			}
			defer session.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           NewHandler(session.Helper),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			log.Info("Serving wizard endpoints", "addr", addr)
			fmt.Println(config.CurrentTheme.InfoMessage("Listening on http://" + addr))

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			log.Info("Shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from serve.addr)")
	return cmd
}
