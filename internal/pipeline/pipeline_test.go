package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hurricane2010/polygot-code-translator/pkg/types"
)

// fakeTranslator echoes the prompt through a transform, tracking call counts
type fakeTranslator struct {
	mu        sync.Mutex
	calls     int
	transform func(prompt string) (string, error)
}

func (f *fakeTranslator) Translate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.transform != nil {
		return f.transform(prompt)
	}
	return "translated: " + prompt, nil
}

type fakeFormatter struct {
	err error
}

func (f *fakeFormatter) Format(ctx context.Context, code string, target Target) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "formatted: " + code, nil
}

type fakeExecutor struct {
	err    error
	result *types.ExecResult
}

func (f *fakeExecutor) Execute(ctx context.Context, code string, target Target) (*types.ExecResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &types.ExecResult{Success: true, Output: "ok"}, nil
}

func TestNewTranslation_RequiresTranslator(t *testing.T) {
	_, err := NewTranslation(TargetR, nil, nil, nil, Config{})
	assert.ErrorIs(t, err, types.ErrNoTranslator)
}

func TestNewTranslation_RejectsUnknownTarget(t *testing.T) {
	_, err := NewTranslation(Target("cobol"), &fakeTranslator{}, nil, nil, Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnsupportedTarget)
	assert.Contains(t, err.Error(), "cobol")
}

func TestRun_TranslatesEveryChunk(t *testing.T) {
	tr := &fakeTranslator{}
	p, err := NewTranslation(TargetR, tr, nil, nil, Config{})
	require.NoError(t, err)

	source := `def a():
    return 1

def b():
    return 2
`
	run, err := p.Run(context.Background(), source)
	require.NoError(t, err)

	assert.NotEmpty(t, run.RunID)
	require.Len(t, run.Results, 2)
	assert.Equal(t, 2, tr.calls)

	assert.Contains(t, run.Results[0].Code, "def a")
	assert.Contains(t, run.Results[1].Code, "def b")
	assert.Equal(t, run.Code, run.Results[0].Code+"\n\n"+run.Results[1].Code)
	assert.Empty(t, run.Failed())
}

func TestRun_PositionalCorrespondence(t *testing.T) {
	// Many chunks through a small pool must land back in chunk order
	var b strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&b, "def f%d():\n    return %d\n\n", i, i)
	}

	p, err := NewTranslation(TargetPySpark, &fakeTranslator{}, nil, nil, Config{Workers: 3})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), b.String())
	require.NoError(t, err)

	require.Len(t, run.Results, 30)
	for i, r := range run.Results {
		assert.Equal(t, i, r.Index)
		assert.Contains(t, r.Code, fmt.Sprintf("def f%d", i))
	}
}

func TestRun_BlankChunkSkipsCollaborators(t *testing.T) {
	tr := &fakeTranslator{}
	p, err := NewTranslation(TargetR, tr, nil, &fakeExecutor{}, Config{})
	require.NoError(t, err)

	// caller clusters alone; the phantom cluster renders blank
	run, err := p.Run(context.Background(), "def caller():\n    library_call()\n")
	require.NoError(t, err)

	require.Len(t, run.Results, 2)
	assert.Equal(t, 1, tr.calls)

	blank := run.Results[1]
	assert.Empty(t, blank.Code)
	assert.Nil(t, blank.Exec)
}

func TestRun_TranslationFailureBecomesRecord(t *testing.T) {
	tr := &fakeTranslator{transform: func(string) (string, error) {
		return "", errors.New("model unavailable")
	}}
	p, err := NewTranslation(TargetR, tr, nil, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err, "per-chunk failures never abort the run")

	require.Len(t, run.Results, 1)
	r := run.Results[0]
	assert.True(t, strings.HasPrefix(r.Code, "# Failed to translate chunk:"))
	assert.Contains(t, r.Code, "model unavailable")
	assert.Contains(t, r.Code, "def f():", "original chunk is preserved")

	require.NotNil(t, r.Exec)
	assert.False(t, r.Exec.Success)
	assert.Equal(t, []int{0}, run.Failed())
}

func TestRun_FormatterFailureKeepsUnformatted(t *testing.T) {
	tr := &fakeTranslator{transform: func(string) (string, error) { return "x <- 1", nil }}
	p, err := NewTranslation(TargetR, tr, &fakeFormatter{err: errors.New("lint failed")}, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err)
	assert.Equal(t, "x <- 1", run.Results[0].Code)
}

func TestRun_FormatterOutputUsed(t *testing.T) {
	tr := &fakeTranslator{transform: func(string) (string, error) { return "x <- 1", nil }}
	p, err := NewTranslation(TargetR, tr, &fakeFormatter{}, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err)
	assert.Equal(t, "formatted: x <- 1", run.Results[0].Code)
}

func TestRun_JavaChunksAreWrapped(t *testing.T) {
	tr := &fakeTranslator{transform: func(string) (string, error) {
		return "System.out.println(1);", nil
	}}
	p, err := NewTranslation(TargetJava, tr, nil, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err)

	code := run.Results[0].Code
	assert.Contains(t, code, "public class TranslatedProgram {")
	assert.Contains(t, code, "        System.out.println(1);")
}

func TestRun_ExecutorErrorRecorded(t *testing.T) {
	p, err := NewTranslation(TargetR, &fakeTranslator{}, nil,
		&fakeExecutor{err: errors.New("runtime not installed")}, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err)

	exec := run.Results[0].Exec
	require.NotNil(t, exec)
	assert.False(t, exec.Success)
	assert.Equal(t, "runtime not installed", exec.Error)
}

func TestRun_ChunkingErrorIsFatal(t *testing.T) {
	p, err := NewTranslation(TargetR, &fakeTranslator{}, nil, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def broken(:\n")
	require.Error(t, err)
	assert.Nil(t, run)

	var perr *types.ParseError
	assert.True(t, errors.As(err, &perr))
}

func TestNewVersionMigration(t *testing.T) {
	_, err := NewVersionMigration("3.12", nil, nil, nil, Config{})
	assert.ErrorIs(t, err, types.ErrNoTranslator)

	var prompts []string
	var mu sync.Mutex
	tr := &fakeTranslator{transform: func(prompt string) (string, error) {
		mu.Lock()
		prompts = append(prompts, prompt)
		mu.Unlock()
		return "migrated", nil
	}}

	p, err := NewVersionMigration("3.12", tr, nil, nil, Config{})
	require.NoError(t, err)

	run, err := p.Run(context.Background(), "def f():\n    pass\n")
	require.NoError(t, err)
	assert.Equal(t, "migrated", run.Results[0].Code)

	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Python 3.12")
	assert.Contains(t, prompts[0], "def f():")
}

func TestOverviewReport(t *testing.T) {
	_, err := OverviewReport(context.Background(), nil, "a", "b")
	assert.ErrorIs(t, err, types.ErrNoTranslator)

	tr := &fakeTranslator{transform: func(prompt string) (string, error) {
		assert.Contains(t, prompt, "Original code:")
		assert.Contains(t, prompt, "old()")
		assert.Contains(t, prompt, "new()")
		return "report", nil
	}}

	report, err := OverviewReport(context.Background(), tr, "old()", "new()")
	require.NoError(t, err)
	assert.Equal(t, "report", report)
}
