// Package chunker partitions Python source text into semantically coherent,
// size-bounded chunks for downstream translation.
//
// Chunking balances two competing constraints: functions that call each
// other should travel together (context for the translator), and every
// chunk must stay under the hard size limits of a bounded-input consumer.
//
// # Basic Usage
//
//	c := chunker.New(chunker.DefaultConfig())
//	chunks, err := c.ChunkSource(ctx, source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, chunk := range chunks {
//	    fmt.Printf("chunk %d (%s): %d tokens\n",
//	        chunk.Index, chunk.Kind, chunk.TokenCount)
//	}
//
// # Pipeline
//
// Source text flows one way: parse tree, call graph, strongly-connected
// clusters, structurally split pieces, budget split pieces, ordered chunk
// sequence. Module-level statements lead the sequence; the whole trimmed
// source is the fallback when nothing else was produced, so any non-empty
// input yields at least one chunk.
//
// # Size Control
//
// Two splitters bound chunk size. SplitStructural cuts at control-flow
// keyword boundaries once a line budget (default 50) is reached, and is
// applied per function when a whole cluster renders over 100 lines.
// SplitBudget packs whole lines under a character budget derived from the
// token budget (default 4000 tokens at 4 chars each); only a single line
// longer than the whole budget may exceed it.
//
// Split pieces may be syntactically incomplete in isolation; consumers
// must tolerate that, and blank chunks, by contract.
package chunker
