package types

import (
	"errors"
	"fmt"
)

// Domain errors shared across packages
var (
	// ErrUnsupportedTarget is returned for a target language with no prompt template
	ErrUnsupportedTarget = errors.New("unsupported target language")
	// ErrNoTranslator is returned when a pipeline is run without a translator
	ErrNoTranslator = errors.New("no translator configured")
)

// ParseError reports a syntax error in the input source. It is fatal for
// the whole chunking operation: no partial chunk sequence is produced.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	if pe.Line > 0 {
		return fmt.Sprintf("parse error at %d:%d: %s", pe.Line, pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error: %s", pe.Message)
}
