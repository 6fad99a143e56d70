package callgraph

import "sort"

// Components computes the strongly-connected components of the graph using
// Tarjan's algorithm. Two nodes share a component iff each is reachable
// from the other; a node with no mutual recursion forms a singleton.
//
// Component enumeration order is deliberately pinned down: components are
// sorted by the smallest insertion index of any member, and members within
// a component are listed in insertion index order. Since declared functions
// are inserted in declaration order before any phantom callee, chunk
// ordering follows source order and is reproducible.
func (g *Graph) Components() [][]string {
	t := &tarjanState{
		graph:   g,
		indexOf: make(map[string]int, len(g.order)),
		lowlink: make(map[string]int, len(g.order)),
		onStack: make(map[string]bool, len(g.order)),
	}

	for _, v := range g.order {
		if _, visited := t.indexOf[v]; !visited {
			t.strongConnect(v)
		}
	}

	for _, comp := range t.components {
		sort.Slice(comp, func(i, j int) bool {
			return g.index[comp[i]] < g.index[comp[j]]
		})
	}
	sort.Slice(t.components, func(i, j int) bool {
		return g.index[t.components[i][0]] < g.index[t.components[j][0]]
	})

	return t.components
}

type tarjanState struct {
	graph      *Graph
	counter    int
	indexOf    map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []string
	components [][]string
}

func (t *tarjanState) strongConnect(v string) {
	t.indexOf[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.graph.Successors(v) {
		if _, visited := t.indexOf[w]; !visited {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.indexOf[w] < t.lowlink[v] {
				t.lowlink[v] = t.indexOf[w]
			}
		}
	}

	if t.lowlink[v] != t.indexOf[v] {
		return
	}

	// v is the root of a component; pop it and everything above it
	var comp []string
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.components = append(t.components, comp)
}
