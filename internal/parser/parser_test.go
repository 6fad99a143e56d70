package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

func TestNew(t *testing.T) {
	p := New()
	assert.NotNil(t, p)
}

func TestParse_SimpleModule(t *testing.T) {
	source := `import os

def greet(name):
    print("hello", name)

x = 1

def main():
    greet("world")
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)
	require.NotNil(t, res)

	decls := res.Unit.Declarations
	require.Len(t, decls, 4)

	assert.Equal(t, types.DeclOther, decls[0].Kind)
	assert.Equal(t, types.DeclFunction, decls[1].Kind)
	assert.Equal(t, "greet", decls[1].Name)
	assert.Equal(t, types.DeclOther, decls[2].Kind)
	assert.Equal(t, types.DeclFunction, decls[3].Kind)
	assert.Equal(t, "main", decls[3].Name)

	for i := range decls {
		assert.NoError(t, decls[i].Validate())
	}
}

func TestParse_SpanFidelity(t *testing.T) {
	source := `def weird(  a ,b ):
    # comment inside stays put
    return a+b

y = weird(1, 2)
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	decl, ok := res.Unit.Function("weird")
	require.True(t, ok)

	want := "def weird(  a ,b ):\n    # comment inside stays put\n    return a+b"
	assert.Equal(t, want, res.Unit.Text(decl.Span))

	// Byte offsets are authoritative: extraction is a plain slice of the input
	assert.Equal(t, source[decl.Span.StartByte:decl.Span.EndByte], res.Unit.Text(decl.Span))
	assert.Equal(t, 1, decl.Span.StartLine)
}

func TestParse_DecoratedFunction(t *testing.T) {
	source := `@cached
@retry(times=3)
def fetch():
    return load()
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	require.Len(t, res.Unit.Declarations, 1)
	decl := res.Unit.Declarations[0]
	assert.Equal(t, types.DeclFunction, decl.Kind)
	assert.Equal(t, "fetch", decl.Name)

	// Decorators are part of the function's span
	assert.True(t, strings.HasPrefix(res.Unit.Text(decl.Span), "@cached"))
}

func TestParse_NestedFunctionIsNotTopLevel(t *testing.T) {
	source := `def outer():
    def inner():
        pass
    inner()
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	funcs := res.Unit.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, "outer", funcs[0].Name)

	_, ok := res.Unit.Function("inner")
	assert.False(t, ok)
}

func TestParse_ClassIsOtherStatement(t *testing.T) {
	source := `class Greeter:
    def greet(self):
        pass
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	require.Len(t, res.Unit.Declarations, 1)
	assert.Equal(t, types.DeclOther, res.Unit.Declarations[0].Kind)
	assert.Empty(t, res.Unit.Functions())
}

func TestParse_TopLevelCommentsSkipped(t *testing.T) {
	source := `# leading comment
def f():
    pass
# trailing comment
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	require.Len(t, res.Unit.Declarations, 1)
	assert.Equal(t, "f", res.Unit.Declarations[0].Name)
}

func TestParse_SyntaxErrorIsFatal(t *testing.T) {
	p := New()
	res, err := p.Parse(context.Background(), "def broken(:\n    pass\n")

	require.Error(t, err)
	assert.Nil(t, res, "no partial result on parse failure")

	var perr *types.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Greater(t, perr.Line, 0)
	assert.Contains(t, perr.Error(), "parse error")
}

func TestParse_EmptySource(t *testing.T) {
	p := New()
	res, err := p.Parse(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, res.Unit.Declarations)
}

func TestFunctionBody(t *testing.T) {
	source := `def a():
    b()

def b():
    pass
`

	p := New()
	res, err := p.Parse(context.Background(), source)
	require.NoError(t, err)

	decl, ok := res.Unit.Function("a")
	require.True(t, ok)

	node := res.FunctionBody(decl)
	require.NotNil(t, node)
	assert.Equal(t, "function_definition", node.Type())

	other := types.Declaration{Kind: types.DeclOther}
	assert.Nil(t, res.FunctionBody(&other))
}
