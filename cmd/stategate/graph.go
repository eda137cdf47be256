package main

import (
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <file> <entity> <attribute>",
	Short: "Export the gate as a Mermaid state diagram",
	Long:  `Outputs a Mermaid diagram (stateDiagram-v2) of the states and transitions of one gate.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, _ := cmd.Flags().GetString("current")
		return cli.RunGraph(cmd.OutOrStdout(), inspectOptions(cmd, args[0]), args[1], args[2], current)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight this state in the diagram")
}
