package main

import (
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Loads the definitions and exposes the gates over a JSON API, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serveOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunServe(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addServeFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Listen address (env STATEGATE_ADDR)")
}
