package types

// ExecResult is the record an execution collaborator returns for one chunk
type ExecResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output"`
	Error   string `json:"error"`
}

// ChunkResult is the outcome of processing a single chunk downstream.
// Exec is nil for blank chunks that were skipped without running anything.
type ChunkResult struct {
	Index int         `json:"index"`
	Code  string      `json:"code"`
	Exec  *ExecResult `json:"exec,omitempty"`
}

// RunResult is the outcome of a whole pipeline run
type RunResult struct {
	RunID string `json:"run_id"`

	// Code is the per-chunk outputs joined by blank lines, in chunk order
	Code string `json:"code"`

	// Results holds one entry per chunk, positionally aligned with the
	// chunk sequence the run was fed
	Results []ChunkResult `json:"results"`
}

// Failed returns the indexes of chunks whose execution failed
func (r *RunResult) Failed() []int {
	var failed []int
	for _, res := range r.Results {
		if res.Exec != nil && !res.Exec.Success {
			failed = append(failed, res.Index)
		}
	}
	return failed
}
