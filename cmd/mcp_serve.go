package cmd

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/filter-today/filterctl/internal/mcptools"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes diary tools
over stdio transport, backed by your Filter.today session.

Available tools:
  - get_record: Fetch the record for a date
  - save_record: Create or update a record, with analyzer-picked colors
  - month_tonemap: List the recorded days and tone colors of a month
  - month_stats: Monthly emotion distribution

Example usage in an MCP client config:
  {
    "mcpServers": {
      "filterctl": {
        "command": "/path/to/filterctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Client is already initialized in PersistentPreRunE
	if client == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(client)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting filterctl MCP server (stdio transport)")
	log.Printf("Backend: %s", appConfig.BaseURL)

	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
