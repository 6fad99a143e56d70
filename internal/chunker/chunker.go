package chunker

import (
	"context"
	"strings"

	"github.com/Hurricane2010/polygot-code-translator/internal/callgraph"
	"github.com/Hurricane2010/polygot-code-translator/internal/parser"
	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

const (
	// DefaultMaxLines is the structural split line budget per chunk
	DefaultMaxLines = 50

	// DefaultClusterMaxLines is the rendered-size threshold above which a
	// cluster is abandoned in favor of per-function splitting
	DefaultClusterMaxLines = 100

	// DefaultMaxTokens is the approximate token budget per chunk
	DefaultMaxTokens = 4000

	// DefaultCharsPerToken is the chars-per-token estimation ratio
	DefaultCharsPerToken = 4
)

// Config contains the size knobs for a chunking run. Zero fields fall back
// to the defaults.
type Config struct {
	MaxLines        int // structural split budget (default 50)
	ClusterMaxLines int // cluster fallback threshold (default 100)
	MaxTokens       int // token budget (default 4000)
	CharsPerToken   int // chars per token estimate (default 4)
}

// DefaultConfig returns the default chunking configuration
func DefaultConfig() Config {
	return Config{
		MaxLines:        DefaultMaxLines,
		ClusterMaxLines: DefaultClusterMaxLines,
		MaxTokens:       DefaultMaxTokens,
		CharsPerToken:   DefaultCharsPerToken,
	}
}

// MaxChars is the character budget the budget splitter enforces
func (c Config) MaxChars() int {
	return c.MaxTokens * c.CharsPerToken
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MaxLines <= 0 {
		c.MaxLines = d.MaxLines
	}
	if c.ClusterMaxLines <= 0 {
		c.ClusterMaxLines = d.ClusterMaxLines
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.CharsPerToken <= 0 {
		c.CharsPerToken = d.CharsPerToken
	}
	return c
}

// Chunker partitions source text into semantically coherent, size-bounded
// chunks. Each invocation is a pure function of its input; no state is
// retained between runs.
type Chunker struct {
	cfg    Config
	parser *parser.Parser
}

// New creates a Chunker with the given configuration
func New(cfg Config) *Chunker {
	return &Chunker{
		cfg:    cfg.withDefaults(),
		parser: parser.New(),
	}
}

// piece is a chunk body before final assembly
type piece struct {
	text string
	kind types.ChunkKind
}

// ChunkSource partitions one module's source text into the final ordered
// chunk sequence:
//
//  1. parse and build the call graph,
//  2. one chunk per strongly-connected cluster of functions, falling back
//     to per-function structural splits for oversized clusters,
//  3. a leading chunk of module-level statements when any exist,
//  4. a budget pass splitting any chunk over the character budget,
//  5. the whole trimmed source as a single chunk when nothing was produced.
//
// A syntax error is fatal and yields no partial sequence.
func (c *Chunker) ChunkSource(ctx context.Context, source string) ([]*types.Chunk, error) {
	res, err := c.parser.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	graph := callgraph.Build(res)
	unit := res.Unit

	var pieces []piece
	for _, cluster := range graph.Components() {
		pieces = append(pieces, c.clusterPieces(unit, cluster)...)
	}

	if moduleText := renderModule(unit); moduleText != "" {
		pieces = append([]piece{{moduleText, types.ChunkModule}}, pieces...)
	}

	if len(pieces) == 0 {
		pieces = []piece{{strings.TrimSpace(source), types.ChunkWhole}}
	}

	return c.assemble(pieces), nil
}

// clusterPieces renders one cluster, or splits its members individually
// when the merged rendering exceeds the cluster line threshold
func (c *Chunker) clusterPieces(unit *types.SourceUnit, cluster []string) []piece {
	var raw strings.Builder
	for _, name := range cluster {
		decl, ok := unit.Function(name)
		if !ok {
			// Phantom callee: participates in clustering, owns no source
			continue
		}
		raw.WriteString(unit.Text(decl.Span))
		raw.WriteString("\n\n")
	}

	// The threshold counts the raw concatenation, blank separators included
	if countLines(raw.String()) > c.cfg.ClusterMaxLines {
		var pieces []piece
		for _, name := range cluster {
			decl, ok := unit.Function(name)
			if !ok {
				continue
			}
			for _, part := range SplitStructural(unit.Text(decl.Span), c.cfg.MaxLines) {
				pieces = append(pieces, piece{part, types.ChunkFragment})
			}
		}
		return pieces
	}

	return []piece{{strings.TrimSpace(raw.String()), types.ChunkCluster}}
}

// renderModule concatenates the module-level (non-function) statements in
// source order, trimmed. Returns "" when the module has none.
func renderModule(unit *types.SourceUnit) string {
	var raw strings.Builder
	for _, decl := range unit.Declarations {
		if decl.IsFunction() {
			continue
		}
		raw.WriteString(unit.Text(decl.Span))
		raw.WriteString("\n\n")
	}
	return strings.TrimSpace(raw.String())
}

// assemble applies the budget pass and materializes the chunk sequence
func (c *Chunker) assemble(pieces []piece) []*types.Chunk {
	maxChars := c.cfg.MaxChars()

	var final []piece
	for _, p := range pieces {
		if len(p.text) > maxChars {
			for _, part := range SplitBudget(p.text, maxChars) {
				final = append(final, piece{part, types.ChunkFragment})
			}
		} else {
			final = append(final, p)
		}
	}

	chunks := make([]*types.Chunk, len(final))
	for i, p := range final {
		chunk := &types.Chunk{
			Index:   i,
			Content: p.text,
			Kind:    p.kind,
		}
		chunk.ComputeTokenCount(c.cfg.CharsPerToken)
		chunk.ComputeContentHash()
		chunks[i] = chunk
	}
	return chunks
}

// Contents returns just the chunk strings, in order
func Contents(chunks []*types.Chunk) []string {
	out := make([]string, len(chunks))
	for i, chunk := range chunks {
		out[i] = chunk.Content
	}
	return out
}
