package main

import (
	"github.com/aretw0/stategate/internal/cli"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long:  `Exposes the gates to MCP clients. Uses stdio unless --port is given, in which case it serves SSE.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := serveOptions(cmd)
		if err != nil {
			return err
		}
		opts.SSEPort, _ = cmd.Flags().GetInt("port")
		return cli.RunMCP(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	addServeFlags(mcpCmd)
	mcpCmd.Flags().Int("port", 0, "Serve over SSE on this port instead of stdio")
}
