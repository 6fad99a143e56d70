package types

import "errors"

// DeclKind represents the kind of a top-level declaration
type DeclKind string

const (
	// DeclFunction is a top-level function definition (including decorated ones)
	DeclFunction DeclKind = "function"
	// DeclOther is any other top-level statement (imports, classes, assignments, ...)
	DeclOther DeclKind = "other"
)

// Span is a half-open region of the original source text.
// Lines are 1-based and inclusive; byte offsets are half-open and are the
// authoritative way to re-extract the exact original text.
type Span struct {
	StartLine int
	EndLine   int
	StartByte int
	EndByte   int
}

// Declaration is a single top-level statement of a source module.
// Name is set only for DeclFunction.
type Declaration struct {
	Kind DeclKind
	Name string
	Span Span
}

// IsFunction returns true for top-level function definitions
func (d *Declaration) IsFunction() bool {
	return d.Kind == DeclFunction
}

// Validate checks declaration invariants
func (d *Declaration) Validate() error {
	switch d.Kind {
	case DeclFunction:
		if d.Name == "" {
			return errors.New("function declaration requires a name")
		}
	case DeclOther:
		if d.Name != "" {
			return errors.New("only function declarations carry a name")
		}
	default:
		return errors.New("invalid declaration kind")
	}

	if d.Span.StartLine <= 0 || d.Span.EndLine <= 0 {
		return errors.New("line numbers must be positive")
	}
	if d.Span.StartLine > d.Span.EndLine {
		return errors.New("start line must be before or equal to end line")
	}
	if d.Span.StartByte > d.Span.EndByte {
		return errors.New("start byte must be before or equal to end byte")
	}

	return nil
}

// SourceUnit is a parsed source module: the full original text plus its
// top-level declarations in source order. Immutable once created.
type SourceUnit struct {
	Source       string
	Declarations []Declaration

	funcIndex map[string]int
}

// NewSourceUnit creates a SourceUnit and indexes its function declarations
func NewSourceUnit(source string, decls []Declaration) *SourceUnit {
	u := &SourceUnit{
		Source:       source,
		Declarations: decls,
		funcIndex:    make(map[string]int),
	}
	for i := range decls {
		if decls[i].Kind != DeclFunction {
			continue
		}
		// Redefinition keeps the last occurrence, matching runtime semantics
		u.funcIndex[decls[i].Name] = i
	}
	return u
}

// Text extracts the exact original text covered by a span, byte for byte
func (u *SourceUnit) Text(s Span) string {
	start, end := s.StartByte, s.EndByte
	if start < 0 {
		start = 0
	}
	if end > len(u.Source) {
		end = len(u.Source)
	}
	if start >= end {
		return ""
	}
	return u.Source[start:end]
}

// Functions returns the top-level function declarations in source order
func (u *SourceUnit) Functions() []Declaration {
	funcs := make([]Declaration, 0, len(u.funcIndex))
	for _, d := range u.Declarations {
		if d.Kind == DeclFunction {
			funcs = append(funcs, d)
		}
	}
	return funcs
}

// Function looks up a top-level function declaration by name
func (u *SourceUnit) Function(name string) (*Declaration, bool) {
	i, ok := u.funcIndex[name]
	if !ok {
		return nil, false
	}
	return &u.Declarations[i], true
}
