package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// Parser handles tree-sitter based parsing of Python source text
type Parser struct {
	parser *sitter.Parser
}

// New creates a new Parser instance
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Parser{parser: p}
}

// Result is the output of parsing one source module. It owns the parse
// tree so later passes (call graph construction) can traverse it without
// re-parsing.
type Result struct {
	Unit *types.SourceUnit

	source []byte
	tree   *sitter.Tree
}

// Root returns the root node of the parse tree
func (r *Result) Root() *sitter.Node {
	return r.tree.RootNode()
}

// Source returns the raw source bytes the tree points into
func (r *Result) Source() []byte {
	return r.source
}

// Parse parses Python source text and extracts its top-level declarations.
// A syntax error anywhere in the input is fatal: Parse returns a
// *types.ParseError and no partial result.
func (p *Parser) Parse(ctx context.Context, source string) (*Result, error) {
	src := []byte(source)

	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root)
	}

	decls := extractDeclarations(root, src)
	unit := types.NewSourceUnit(source, decls)

	return &Result{
		Unit:   unit,
		source: src,
		tree:   tree,
	}, nil
}

// extractDeclarations walks the module's top-level statements and tags each
// as a function declaration or an other statement. Comments are not
// statements and are skipped.
func extractDeclarations(root *sitter.Node, src []byte) []types.Declaration {
	count := int(root.NamedChildCount())
	decls := make([]types.Declaration, 0, count)

	for i := 0; i < count; i++ {
		node := root.NamedChild(i)
		if node.Type() == "comment" {
			continue
		}

		decl := types.Declaration{
			Kind: types.DeclOther,
			Span: spanOf(node),
		}

		if fn := functionNode(node); fn != nil {
			if name := fn.ChildByFieldName("name"); name != nil {
				decl.Kind = types.DeclFunction
				decl.Name = name.Content(src)
			}
		}

		decls = append(decls, decl)
	}

	return decls
}

// functionNode unwraps a top-level statement to its function_definition,
// looking through decorators. Returns nil for non-function statements.
func functionNode(node *sitter.Node) *sitter.Node {
	switch node.Type() {
	case "function_definition":
		return node
	case "decorated_definition":
		def := node.ChildByFieldName("definition")
		if def != nil && def.Type() == "function_definition" {
			return def
		}
	}
	return nil
}

// FunctionBody returns the function_definition node for a top-level
// function declaration, or nil if the declaration at the span is not a
// function. Used by the call graph builder to scope its traversal.
func (r *Result) FunctionBody(decl *types.Declaration) *sitter.Node {
	if decl == nil || decl.Kind != types.DeclFunction {
		return nil
	}

	root := r.Root()
	count := int(root.NamedChildCount())
	for i := 0; i < count; i++ {
		node := root.NamedChild(i)
		if int(node.StartByte()) != decl.Span.StartByte {
			continue
		}
		return functionNode(node)
	}
	return nil
}

// spanOf converts a node's extent into a source span. Byte offsets are the
// authoritative slice bounds; line numbers are 1-based.
func spanOf(node *sitter.Node) types.Span {
	return types.Span{
		StartLine: int(node.StartPoint().Row) + 1,
		EndLine:   int(node.EndPoint().Row) + 1,
		StartByte: int(node.StartByte()),
		EndByte:   int(node.EndByte()),
	}
}

// syntaxError locates the first error node in the tree and reports its
// position. Tree-sitter is error tolerant; the chunker is not.
func syntaxError(root *sitter.Node) error {
	node := firstErrorNode(root)
	if node == nil {
		node = root
	}
	return &types.ParseError{
		Line:    int(node.StartPoint().Row) + 1,
		Column:  int(node.StartPoint().Column),
		Message: "invalid syntax",
	}
}

// firstErrorNode finds the earliest ERROR or missing node in the tree
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}

	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return node
}
