package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stategate"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stategate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stategate version %s\n", strings.TrimSpace(stategate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
