package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/vizgraph/vizgraph/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	flags := &storeBackendFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the vizgraph HTTP API server",
		Long: `Serve exposes document storage, validation, and rendering over HTTP.
Documents are kept in the file store by default; pass --redis or --mongo
to use a shared backend instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), addr, flags)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "listen address")
	cmd.Flags().StringVar(&flags.redisAddr, "redis", "", "use Redis backend at host:port")
	cmd.Flags().StringVar(&flags.mongoURI, "mongo", "", "use MongoDB backend at the given URI")

	return cmd
}

func runServe(ctx context.Context, addr string, flags *storeBackendFlags) error {
	logger := loggerFromContext(ctx)

	st, err := flags.open(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(st, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
