package callgraph

// Edge is a recorded call from one top-level function to a named callee
type Edge struct {
	Caller string `json:"caller"`
	Callee string `json:"callee"`
}

// Graph is a simple directed graph over function names. Nodes remember
// their insertion order, which makes every derived ordering (edges,
// successors, components) deterministic for a given input.
type Graph struct {
	order []string
	index map[string]int
	succ  map[string]map[string]struct{}
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		succ:  make(map[string]map[string]struct{}),
	}
}

// AddNode adds a node if not already present
func (g *Graph) AddNode(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	g.index[name] = len(g.order)
	g.order = append(g.order, name)
}

// AddEdge records caller -> callee, creating both nodes as needed.
// Duplicate edges collapse; self edges (recursion) are kept.
func (g *Graph) AddEdge(caller, callee string) {
	g.AddNode(caller)
	g.AddNode(callee)

	set, ok := g.succ[caller]
	if !ok {
		set = make(map[string]struct{})
		g.succ[caller] = set
	}
	set[callee] = struct{}{}
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// Nodes returns all node names in insertion order
func (g *Graph) Nodes() []string {
	nodes := make([]string, len(g.order))
	copy(nodes, g.order)
	return nodes
}

// HasEdge reports whether caller -> callee is recorded
func (g *Graph) HasEdge(caller, callee string) bool {
	_, ok := g.succ[caller][callee]
	return ok
}

// Successors returns the callees of a node in node insertion order
func (g *Graph) Successors(name string) []string {
	set := g.succ[name]
	if len(set) == 0 {
		return nil
	}

	out := make([]string, 0, len(set))
	for _, candidate := range g.order {
		if _, ok := set[candidate]; ok {
			out = append(out, candidate)
		}
	}
	return out
}

// Edges returns every edge, ordered by caller then callee insertion order
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for _, caller := range g.order {
		for _, callee := range g.Successors(caller) {
			edges = append(edges, Edge{Caller: caller, Callee: callee})
		}
	}
	return edges
}
