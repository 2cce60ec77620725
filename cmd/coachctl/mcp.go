package main

import (
	coachmcp "github.com/2beens/adaptivecoach/internal/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the coaching context tools over stdio",
	Long:  "Run the MCP server on stdin/stdout for local assistants. The main service also mounts it at /mcp over HTTP.",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	components, closeFn, err := openComponents(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	server := coachmcp.NewServer(components.CoachContext)
	return server.Run(ctx, &mcp.StdioTransport{})
}
