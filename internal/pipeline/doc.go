// Package pipeline orchestrates per-chunk translation of a source module.
//
// The pipeline chunks the input, renders a prompt per chunk, and fans the
// chunks out to collaborator interfaces (Translator, Formatter, Executor)
// on a bounded worker pool. The collaborators themselves are external
// services; this package only owns the orchestration and the
// prompt/wrapping conventions.
//
//	p, err := pipeline.NewTranslation(pipeline.TargetJava, llm, fmtSvc, execSvc, pipeline.Config{})
//	result, err := p.Run(ctx, source)
//
// Results align positionally with the chunk sequence: result.Results[i]
// belongs to chunk i, blank chunks produce empty entries with nil
// execution records, and a failed chunk degrades to a failure record in
// place instead of aborting the run.
package pipeline
