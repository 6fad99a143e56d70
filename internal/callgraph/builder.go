package callgraph

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/Hurricane2010/polygot-code-translator/internal/parser"
)

// Build constructs the call graph for a parsed source module.
//
// Every top-level function becomes a node, in declaration order. An edge
// (caller, callee) is recorded whenever a call expression whose callee is a
// simple unqualified name occurs anywhere inside the caller's definition;
// calls inside nested functions attribute to the enclosing top-level
// function. Callee names that match no top-level function still become
// nodes ("phantom" callees: builtins, imports), so they participate in
// component computation but never contribute source text.
func Build(res *parser.Result) *Graph {
	g := NewGraph()
	src := res.Source()

	funcs := res.Unit.Functions()
	for i := range funcs {
		g.AddNode(funcs[i].Name)
	}

	for i := range funcs {
		body := res.FunctionBody(&funcs[i])
		if body == nil {
			continue
		}
		collectCalls(body, src, funcs[i].Name, g)
	}

	return g
}

// collectCalls walks a function definition recording simple-name calls.
// A callee that is anything but a bare identifier (attribute access,
// subscript, call result) is silently skipped.
func collectCalls(node *sitter.Node, src []byte, caller string, g *Graph) {
	if node.Type() == "call" {
		if fn := node.ChildByFieldName("function"); fn != nil && fn.Type() == "identifier" {
			g.AddEdge(caller, fn.Content(src))
		}
	}

	count := int(node.NamedChildCount())
	for i := 0; i < count; i++ {
		collectCalls(node.NamedChild(i), src, caller, g)
	}
}
