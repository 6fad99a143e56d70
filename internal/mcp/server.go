package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/Hurricane2010/polygot-code-translator/internal/config"
)

const (
	// ServerName is the MCP server name
	ServerName = "polyglot-translator"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp *server.MCPServer
	cfg *config.Config
}

// NewServer creates a new MCP server instance with the given defaults
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion),
		cfg: cfg,
	}
	s.registerTools()

	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(chunkSourceTool(), s.handleChunkSource)
	s.mcp.AddTool(callGraphTool(), s.handleCallGraph)
	s.mcp.AddTool(clusterSourceTool(), s.handleClusterSource)
}
