// Package types provides shared type definitions for the polyglot code
// translator.
//
// This package defines the domain types used across the chunking core and
// the translation pipeline: source units, declarations, chunks, and
// per-chunk execution results.
//
// # Core Types
//
// SourceUnit holds a parsed source module and its top-level declarations.
// Declarations are a tagged variant: a function definition with a name, or
// any other top-level statement. Each declaration carries an exact source
// span so its original text can be re-extracted byte for byte:
//
//	unit := types.NewSourceUnit(source, decls)
//	text := unit.Text(decl.Span) // original formatting preserved
//
// Chunk represents one bounded piece of source text handed downstream as a
// single translation unit:
//
//	chunk := &types.Chunk{Content: clusterText, Kind: types.ChunkCluster}
//	chunk.ComputeContentHash()
//	chunk.ComputeTokenCount(4)
//
// # Results
//
// ChunkResult pairs a chunk's translated code with the execution record the
// downstream executor returned for it. Blank chunks carry a nil ExecResult.
// RunResult collects the per-chunk results of a whole pipeline run,
// positionally aligned with the input chunk sequence.
//
// # Errors
//
// ParseError is the fatal error returned for syntactically invalid input;
// chunking never produces a partial result. Sentinel errors for the
// pipeline live alongside it in errors.go.
package types
