package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/filter-today/filterctl/internal/api"
)

// NewRecordMCPServer creates an in-memory MCP server exposing diary tools.
// Returns the server and a client transport for connecting to it.
func NewRecordMCPServer(client *api.Client) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(client)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered diary tools.
func CreateMCPServer(client *api.Client) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "filterctl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_record",
		Description: "Fetch the diary record for a date",
	}, GetRecordHandler(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_record",
		Description: "Create or update the diary record for a date",
	}, SaveRecordHandler(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_tonemap",
		Description: "List the recorded days and tone colors of a month",
	}, ToneMapHandler(client))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "month_stats",
		Description: "Monthly emotion distribution",
	}, StatsHandler(client))

	return server
}
