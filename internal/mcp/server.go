// ABOUTME: MCP server setup for the practice data layer.
// ABOUTME: Wraps MCP server with the shared entity stores.
package mcp

import (
	"context"

	"github.com/harperreed/practice/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	stores    *store.Stores
}

// NewServer creates a new MCP server over the given stores.
func NewServer(stores *store.Stores) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "practice",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		stores:    stores,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
