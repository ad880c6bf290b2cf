package cmd

import (
	"log"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"melodyland/internal/server"
)

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", envString("MELODYLAND_ADDR", "127.0.0.1:8080"), "listen address (env MELODYLAND_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the games over a JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx, loop, stop := a.start(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		hub := server.NewHub(loop, a.env)
		srv := server.New(hub, a.store, server.Options{
			Logger: log.New(cmd.ErrOrStderr(), "[server] ", log.LstdFlags|log.Lshortfile),
		})
		return srv.ListenAndServe(ctx, flagAddr)
	},
}
