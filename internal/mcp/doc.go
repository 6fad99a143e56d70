// Package mcp exposes the chunking core over the Model Context Protocol.
//
// The server speaks MCP on stdio and registers three tools:
//
//   - chunk_source: partition a Python module into size-bounded chunks
//   - call_graph: the direct-call graph over top-level functions
//   - cluster_source: the strongly-connected clusters of that graph
//
// Tool handlers are stateless; every invocation parses its own source
// argument from scratch. Parse failures map to a dedicated error code so
// clients can distinguish bad input from server faults.
package mcp
