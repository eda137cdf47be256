package main

import (
	"github.com/aretw0/lifecycle"
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check every gate of a definition document",
	Long:  `Builds every gate of the document and reports the first configuration error, if any.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := inspectOptions(cmd, args[0])
		if watch, _ := cmd.Flags().GetBool("watch"); watch {
			return cli.RunWatchValidate(lifecycle.NewSignalContext(cmd.Context()), cmd.OutOrStdout(), opts)
		}
		return cli.RunValidate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolP("watch", "w", false, "Validate again whenever the document changes")
}
