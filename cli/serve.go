package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"safelink-lite/server"
)

func newServeCmd(load engineLoader) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := load()
			if err != nil {
				return err
			}
			if port == "" {
				port = e.cfg.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(e.scorer, e.verifier).ListenAndServe(ctx, ":"+port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (default $PORT or 8080)")
	return cmd
}
