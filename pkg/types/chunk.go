package types

import (
	"crypto/sha256"
	"errors"
	"strings"
)

// ChunkKind represents how a chunk was produced
type ChunkKind string

const (
	// ChunkModule holds the concatenated module-level (non-function) statements
	ChunkModule ChunkKind = "module"
	// ChunkCluster holds one strongly-connected group of functions
	ChunkCluster ChunkKind = "cluster"
	// ChunkFragment is a piece of an oversized cluster or chunk after splitting
	ChunkFragment ChunkKind = "fragment"
	// ChunkWhole is the whole-source fallback when nothing else was produced
	ChunkWhole ChunkKind = "whole"
)

// Chunk is one bounded piece of source text, the unit handed downstream
// for translation and execution
type Chunk struct {
	// Identification
	Index int

	// Content
	Content     string
	ContentHash [32]byte // SHA-256 hash for deduplication
	TokenCount  int

	// Metadata
	Kind ChunkKind
}

// IsBlank reports whether the chunk contains only whitespace.
// Blank chunks are legal output: downstream consumers skip them but the
// positional correspondence between chunks and results must be kept.
func (c *Chunk) IsBlank() bool {
	return strings.TrimSpace(c.Content) == ""
}

// ComputeTokenCount estimates the number of tokens in the chunk
// using the chars/4 heuristic shared with the budget splitter
func (c *Chunk) ComputeTokenCount(charsPerToken int) int {
	if charsPerToken <= 0 {
		charsPerToken = 4
	}
	c.TokenCount = len(c.Content) / charsPerToken
	return c.TokenCount
}

// ComputeContentHash computes the SHA-256 hash of the chunk content
func (c *Chunk) ComputeContentHash() {
	c.ContentHash = sha256.Sum256([]byte(c.Content))
}

// ValidateKind checks if the chunk kind is valid
func (c *Chunk) ValidateKind() error {
	switch c.Kind {
	case ChunkModule, ChunkCluster, ChunkFragment, ChunkWhole:
		return nil
	default:
		return errors.New("invalid chunk kind")
	}
}

// Validate performs comprehensive validation of the chunk
func (c *Chunk) Validate() error {
	if c.Index < 0 {
		return errors.New("chunk index must not be negative")
	}

	if err := c.ValidateKind(); err != nil {
		return err
	}

	// Blank content is allowed (phantom-only clusters, empty input fallback),
	// but a computed hash is still required
	var zeroHash [32]byte
	if c.ContentHash == zeroHash {
		return errors.New("content hash must be computed")
	}

	return nil
}
