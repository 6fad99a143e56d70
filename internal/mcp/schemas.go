package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// sizeKnobProperties are the chunking knobs shared by tool schemas
func sizeKnobProperties() map[string]interface{} {
	return map[string]interface{}{
		"max_lines": map[string]interface{}{
			"type":        "integer",
			"description": "Structural split line budget per chunk",
			"default":     50,
		},
		"cluster_max_lines": map[string]interface{}{
			"type":        "integer",
			"description": "Rendered line count above which a cluster is split per function",
			"default":     100,
		},
		"max_tokens": map[string]interface{}{
			"type":        "integer",
			"description": "Approximate token budget per chunk",
			"default":     4000,
		},
		"chars_per_token": map[string]interface{}{
			"type":        "integer",
			"description": "Characters-per-token estimation ratio",
			"default":     4,
		},
	}
}

// chunkSourceTool returns the tool definition for chunk_source
func chunkSourceTool() mcp.Tool {
	props := sizeKnobProperties()
	props["source"] = map[string]interface{}{
		"type":        "string",
		"description": "Python source text of a single module (must be syntactically valid)",
	}

	return mcp.Tool{
		Name:        "chunk_source",
		Description: "Partition Python source into semantically coherent, size-bounded chunks",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   []string{"source"},
		},
	}
}

// callGraphTool returns the tool definition for call_graph
func callGraphTool() mcp.Tool {
	return mcp.Tool{
		Name:        "call_graph",
		Description: "Build the call graph over a module's top-level functions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Python source text of a single module",
				},
			},
			Required: []string{"source"},
		},
	}
}

// clusterSourceTool returns the tool definition for cluster_source
func clusterSourceTool() mcp.Tool {
	return mcp.Tool{
		Name:        "cluster_source",
		Description: "Group a module's functions into mutually recursive clusters (strongly-connected components)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Python source text of a single module",
				},
			},
			Required: []string{"source"},
		},
	}
}
