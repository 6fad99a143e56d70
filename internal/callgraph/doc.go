// Package callgraph builds the directed call graph over a module's
// top-level functions and groups them into strongly-connected components.
//
// The graph is intentionally shallow: it records only direct, syntactically
// simple calls to named functions. No attribute access, dynamic dispatch,
// aliasing, or higher-order invocation is resolved. That is enough for its
// single purpose, keeping mutually recursive functions together in one
// translation unit.
//
//	g := callgraph.Build(parseResult)
//	for _, comp := range g.Components() {
//	    // comp is one cluster of mutually reachable functions
//	}
//
// Component order is deterministic (see Graph.Components); the graph is
// built once per chunking run and discarded after clustering.
package callgraph
