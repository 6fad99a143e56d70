package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Hurricane2010/polygot-code-translator/internal/chunker"
	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// DefaultWorkers is the default size of the per-chunk worker pool
const DefaultWorkers = 5

// Translator turns a rendered prompt into transformed code.
// Implementations are external collaborators (an LLM service).
type Translator interface {
	Translate(ctx context.Context, prompt string) (string, error)
}

// Formatter validates and reformats code for a target language.
// A formatting failure is not fatal; the pipeline keeps the unformatted code.
type Formatter interface {
	Format(ctx context.Context, code string, target Target) (string, error)
}

// Executor runs code for a target language and reports the outcome
type Executor interface {
	Execute(ctx context.Context, code string, target Target) (*types.ExecResult, error)
}

// Config contains pipeline configuration
type Config struct {
	Workers  int // concurrent chunk workers (default 5)
	Chunking chunker.Config
}

// Pipeline chunks a source module and fans the chunks out to the
// translation collaborators on a bounded worker pool, preserving the
// positional correspondence between chunks and results.
type Pipeline struct {
	chunker    *chunker.Chunker
	translator Translator
	formatter  Formatter
	executor   Executor

	target   Target
	prompt   func(chunk string) string
	wrapMain bool
	workers  int
}

// NewTranslation creates a pipeline that translates Python chunks into the
// target language. The formatter and executor may be nil; the translator
// may not.
func NewTranslation(target Target, translator Translator, formatter Formatter, executor Executor, cfg Config) (*Pipeline, error) {
	if translator == nil {
		return nil, types.ErrNoTranslator
	}

	tmpl, ok := promptTemplates[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedTarget, target)
	}

	return &Pipeline{
		chunker:    chunker.New(cfg.Chunking),
		translator: translator,
		formatter:  formatter,
		executor:   executor,
		target:     target,
		prompt:     func(chunk string) string { return fmt.Sprintf(tmpl, chunk) },
		wrapMain:   target == TargetJava,
		workers:    cfg.Workers,
	}, nil
}

// NewVersionMigration creates a pipeline that rewrites Python chunks for a
// specific Python version. Results are formatted and executed as Python.
func NewVersionMigration(version string, translator Translator, formatter Formatter, executor Executor, cfg Config) (*Pipeline, error) {
	if translator == nil {
		return nil, types.ErrNoTranslator
	}

	return &Pipeline{
		chunker:    chunker.New(cfg.Chunking),
		translator: translator,
		formatter:  formatter,
		executor:   executor,
		target:     TargetPython,
		prompt:     func(chunk string) string { return RenderVersionPrompt(version, chunk) },
		workers:    cfg.Workers,
	}, nil
}

// Run chunks the source and processes every chunk. The returned result
// holds one ChunkResult per chunk in chunk order; blank chunks produce an
// empty code entry with a nil execution record. Per-chunk failures never
// abort the run, they become failure records in place.
func (p *Pipeline) Run(ctx context.Context, source string) (*types.RunResult, error) {
	chunks, err := p.chunker.ChunkSource(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("chunking failed: %w", err)
	}

	workers := p.workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]types.ChunkResult, len(chunks))
	semaphore := make(chan struct{}, workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := range chunks {
		g.Go(func() error {
			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-gctx.Done():
				return gctx.Err()
			}

			results[i] = p.processChunk(gctx, i, chunks[i].Content)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := make([]string, len(results))
	for i, r := range results {
		codes[i] = r.Code
	}

	return &types.RunResult{
		RunID:   uuid.NewString(),
		Code:    strings.Join(codes, "\n\n"),
		Results: results,
	}, nil
}

// processChunk runs one chunk through translate, format, wrap, execute
func (p *Pipeline) processChunk(ctx context.Context, index int, content string) types.ChunkResult {
	if strings.TrimSpace(content) == "" {
		return types.ChunkResult{Index: index}
	}

	translated, err := p.translator.Translate(ctx, p.prompt(content))
	if err != nil {
		return failureResult(index, content, err)
	}
	code := strings.TrimSpace(translated)

	if p.formatter != nil {
		if formatted, err := p.formatter.Format(ctx, code, p.target); err == nil {
			code = formatted
		}
	}

	if p.wrapMain {
		code = WrapJava(code)
	}

	result := types.ChunkResult{Index: index, Code: code}
	if p.executor != nil {
		exec, err := p.executor.Execute(ctx, code, p.target)
		if err != nil {
			exec = &types.ExecResult{Success: false, Error: err.Error()}
		}
		result.Exec = exec
	}

	return result
}

// failureResult is the fallback record for an untranslatable chunk: the
// error as a comment followed by the original chunk, so nothing is lost
func failureResult(index int, chunk string, err error) types.ChunkResult {
	return types.ChunkResult{
		Index: index,
		Code:  fmt.Sprintf("# Failed to translate chunk:\n# %v\n\n%s", err, chunk),
		Exec:  &types.ExecResult{Success: false, Error: err.Error()},
	}
}

// OverviewReport asks the translator for a developer-facing comparison of
// the original and transformed code
func OverviewReport(ctx context.Context, t Translator, original, modified string) (string, error) {
	if t == nil {
		return "", types.ErrNoTranslator
	}
	return t.Translate(ctx, OverviewPrompt(original, modified))
}
