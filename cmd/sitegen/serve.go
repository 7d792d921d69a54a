package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/purh/sitegen/pkg/sitegen/preview"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var dir, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the generated site on localhost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln, err := preview.Listen(addr)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.Printf("Serving %s at http://%s/ (Ctrl+C to stop)\n", dir, ln.Addr())
			return preview.NewServer(dir).Serve(ctx, ln)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", getEnv("SITEGEN_OUTPUT", "site"), "Directory to serve")
	cmd.Flags().StringVar(&addr, "addr", preview.DefaultAddr, "Listen address")
	return cmd
}
