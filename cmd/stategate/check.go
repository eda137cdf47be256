package main

import (
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file> <entity> <attribute> <from> <to>",
	Short: "Authorize a single transition",
	Long:  `Checks whether the gate allows moving from one state to another. Prefix the target with force_ to bypass the transition rules.`,
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunCheck(cmd.OutOrStdout(), inspectOptions(cmd, args[0]), args[1], args[2], args[3], args[4])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
