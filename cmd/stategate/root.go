package main

import (
	"fmt"
	"os"

	"github.com/aretw0/stategate/internal/cli"
	"github.com/aretw0/stategate/internal/config"
	"github.com/aretw0/stategate/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "stategate",
	Short:         "stategate guards attribute values with declared state graphs",
	Long:          `stategate validates, inspects and serves state gates defined in YAML or JSON documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

func inspectOptions(cmd *cobra.Command, path string) cli.InspectOptions {
	debug, _ := cmd.Flags().GetBool("debug")
	jsonMode, _ := cmd.Flags().GetBool("json")
	return cli.InspectOptions{
		Path:        path,
		Debug:       debug,
		JSON:        jsonMode,
		Interactive: tui.IsTerminal(os.Stdout),
	}
}

// serveOptions loads the environment config and applies flag overrides.
func serveOptions(cmd *cobra.Command) (cli.ServeOptions, error) {
	cfg, err := config.Load()
	if err != nil {
		return cli.ServeOptions{}, err
	}
	if cmd.Flags().Changed("definitions") {
		cfg.Definitions, _ = cmd.Flags().GetString("definitions")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Lookup("addr") != nil && cmd.Flags().Changed("addr") {
		cfg.Addr, _ = cmd.Flags().GetString("addr")
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics, _ = cmd.Flags().GetBool("metrics")
	}
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.ServeOptions{Config: cfg, Debug: debug}, nil
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("definitions", "f", "stategate.yaml", "Definition file or directory (env STATEGATE_DEFINITIONS)")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error (env STATEGATE_LOG_LEVEL)")
	cmd.Flags().Bool("metrics", true, "Record Prometheus metrics (env STATEGATE_METRICS)")
}
