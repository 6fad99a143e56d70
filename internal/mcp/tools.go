package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Hurricane2010/polygot-code-translator/internal/callgraph"
	"github.com/Hurricane2010/polygot-code-translator/internal/chunker"
	"github.com/Hurricane2010/polygot-code-translator/internal/parser"
	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeParseFailure  = -32001 // Source is not syntactically valid
)

// handleChunkSource handles the chunk_source tool invocation
func (s *Server) handleChunkSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, source, err := sourceArg(request)
	if err != nil {
		return nil, err
	}

	cfg := s.cfg.ChunkerConfig()
	cfg.MaxLines = getIntDefault(args, "max_lines", cfg.MaxLines)
	cfg.ClusterMaxLines = getIntDefault(args, "cluster_max_lines", cfg.ClusterMaxLines)
	cfg.MaxTokens = getIntDefault(args, "max_tokens", cfg.MaxTokens)
	cfg.CharsPerToken = getIntDefault(args, "chars_per_token", cfg.CharsPerToken)

	chunks, err := chunker.New(cfg).ChunkSource(ctx, source)
	if err != nil {
		return nil, toolError(err)
	}

	chunkList := make([]map[string]interface{}, len(chunks))
	for i, chunk := range chunks {
		chunkList[i] = map[string]interface{}{
			"index":       chunk.Index,
			"kind":        string(chunk.Kind),
			"token_count": chunk.TokenCount,
			"content":     chunk.Content,
		}
	}

	response := map[string]interface{}{
		"count":  len(chunks),
		"chunks": chunkList,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCallGraph handles the call_graph tool invocation
func (s *Server) handleCallGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, source, err := sourceArg(request)
	if err != nil {
		return nil, err
	}

	res, err := parser.New().Parse(ctx, source)
	if err != nil {
		return nil, toolError(err)
	}
	graph := callgraph.Build(res)

	functions := make([]string, 0, len(res.Unit.Functions()))
	for _, fn := range res.Unit.Functions() {
		functions = append(functions, fn.Name)
	}

	edges := make([]map[string]interface{}, 0)
	for _, edge := range graph.Edges() {
		edges = append(edges, map[string]interface{}{
			"caller": edge.Caller,
			"callee": edge.Callee,
		})
	}

	response := map[string]interface{}{
		"functions": functions,
		"nodes":     graph.Nodes(),
		"edges":     edges,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleClusterSource handles the cluster_source tool invocation
func (s *Server) handleClusterSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, source, err := sourceArg(request)
	if err != nil {
		return nil, err
	}

	res, err := parser.New().Parse(ctx, source)
	if err != nil {
		return nil, toolError(err)
	}

	response := map[string]interface{}{
		"clusters": callgraph.Build(res).Components(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// sourceArg extracts the arguments map and the required source parameter
func sourceArg(request mcp.CallToolRequest) (map[string]interface{}, string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, "", newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	source, ok := args["source"].(string)
	if !ok || source == "" {
		return nil, "", newMCPError(ErrorCodeInvalidParams, "source parameter is required", map[string]interface{}{
			"param":  "source",
			"reason": "missing or empty",
		})
	}

	return args, source, nil
}

// toolError maps a core error onto an MCP error
func toolError(err error) error {
	var perr *types.ParseError
	if errors.As(err, &perr) {
		return newMCPError(ErrorCodeParseFailure, "source is not valid Python", map[string]interface{}{
			"line":    perr.Line,
			"column":  perr.Column,
			"message": perr.Message,
		})
	}
	return newMCPError(ErrorCodeInternalError, "operation failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
