package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk_IsBlank(t *testing.T) {
	assert.True(t, (&Chunk{Content: ""}).IsBlank())
	assert.True(t, (&Chunk{Content: "  \n\t "}).IsBlank())
	assert.False(t, (&Chunk{Content: "x = 1"}).IsBlank())
}

func TestChunk_ComputeTokenCount(t *testing.T) {
	c := &Chunk{Content: "0123456789ab"}

	assert.Equal(t, 3, c.ComputeTokenCount(4))
	assert.Equal(t, 3, c.TokenCount)

	assert.Equal(t, 6, c.ComputeTokenCount(2))
	assert.Equal(t, 3, c.ComputeTokenCount(0), "non-positive ratio falls back to 4")
}

func TestChunk_ContentHash(t *testing.T) {
	a := &Chunk{Content: "def f(): pass"}
	b := &Chunk{Content: "def f(): pass"}
	c := &Chunk{Content: "def g(): pass"}

	a.ComputeContentHash()
	b.ComputeContentHash()
	c.ComputeContentHash()

	assert.Equal(t, a.ContentHash, b.ContentHash)
	assert.NotEqual(t, a.ContentHash, c.ContentHash)
}

func TestChunk_Validate(t *testing.T) {
	c := &Chunk{Index: 0, Content: "x = 1", Kind: ChunkModule}
	c.ComputeContentHash()
	assert.NoError(t, c.Validate())

	// Blank content is legal once the hash is computed
	blank := &Chunk{Index: 1, Kind: ChunkCluster}
	blank.ComputeContentHash()
	assert.NoError(t, blank.Validate())

	noHash := &Chunk{Index: 0, Content: "x", Kind: ChunkWhole}
	assert.Error(t, noHash.Validate())

	negative := &Chunk{Index: -1, Kind: ChunkWhole}
	negative.ComputeContentHash()
	assert.Error(t, negative.Validate())

	badKind := &Chunk{Index: 0, Kind: ChunkKind("mystery")}
	badKind.ComputeContentHash()
	assert.Error(t, badKind.Validate())
}

func TestRunResult_Failed(t *testing.T) {
	run := &RunResult{
		Results: []ChunkResult{
			{Index: 0, Code: "ok", Exec: &ExecResult{Success: true}},
			{Index: 1, Code: "bad", Exec: &ExecResult{Success: false, Error: "boom"}},
			{Index: 2}, // blank chunk, never executed
			{Index: 3, Code: "bad too", Exec: &ExecResult{Success: false}},
		},
	}

	assert.Equal(t, []int{1, 3}, run.Failed())
	assert.Empty(t, (&RunResult{}).Failed())
}

func TestParseError(t *testing.T) {
	withPos := &ParseError{Line: 3, Column: 7, Message: "unexpected token"}
	assert.Equal(t, "parse error at 3:7: unexpected token", withPos.Error())

	withoutPos := &ParseError{Message: "invalid syntax"}
	assert.Equal(t, "parse error: invalid syntax", withoutPos.Error())
}
