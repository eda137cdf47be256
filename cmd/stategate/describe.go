package main

import (
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <file> [entity attribute]",
	Short: "Describe the states and transitions of gates",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 || len(args) == 3 {
			return nil
		}
		return cobra.ExactArgs(3)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var entity, attribute string
		if len(args) == 3 {
			entity, attribute = args[1], args[2]
		}
		return cli.RunDescribe(cmd.OutOrStdout(), inspectOptions(cmd, args[0]), entity, attribute)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().Bool("json", false, "Print descriptions as JSON")
}
