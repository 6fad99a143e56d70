// Package parser extracts top-level declarations from Python source text
// using tree-sitter.
//
// The parser produces a SourceUnit: the original text plus one Declaration
// per top-level statement, tagged as a function definition or an other
// statement. Each declaration carries an exact byte span, so the original
// text of any declaration can be re-extracted losslessly, including
// comments and formatting inside the span.
//
// # Basic Usage
//
//	p := parser.New()
//	result, err := p.Parse(ctx, source)
//	if err != nil {
//	    var perr *types.ParseError
//	    if errors.As(err, &perr) {
//	        // input is not valid Python; no partial result exists
//	    }
//	    return err
//	}
//
//	for _, decl := range result.Unit.Declarations {
//	    fmt.Printf("%s %s lines %d-%d\n",
//	        decl.Kind, decl.Name, decl.Span.StartLine, decl.Span.EndLine)
//	}
//
// # Error Handling
//
// Tree-sitter recovers from syntax errors and produces a partial tree; the
// chunking core must not. Parse inspects the tree for error nodes and
// returns a fatal *types.ParseError pointing at the first one.
//
// Decorated functions count as function declarations and their span covers
// the decorators. Classes and every other top-level statement are
// DeclOther and end up in the module-level chunk.
package parser
