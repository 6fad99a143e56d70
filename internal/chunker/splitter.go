package chunker

import "strings"

// structuralKeywords are the statement prefixes a structural split may end
// on: control flow and function definitions, checked after stripping
// leading whitespace.
var structuralKeywords = []string{"if ", "for ", "while ", "try", "except", "def "}

// startsControlFlow reports whether a line begins a control-flow or
// definition statement
func startsControlFlow(line string) bool {
	stripped := strings.TrimSpace(line)
	for _, kw := range structuralKeywords {
		if strings.HasPrefix(stripped, kw) {
			return true
		}
	}
	return false
}

// SplitStructural splits text at control-flow boundaries once a line budget
// is reached. Lines accumulate into a buffer; when the line just added
// begins a control-flow statement and the buffer holds at least maxLines
// lines, the buffer (keyword line included) is flushed as one chunk.
// Text within budget is returned unchanged as a single chunk.
//
// This is a heuristic boundary policy: a flushed piece need not be valid
// in isolation (a try may be separated from its except). Downstream
// consumers must tolerate syntactically incomplete chunks.
func SplitStructural(text string, maxLines int) []string {
	lines := splitLines(text)
	if len(lines) <= maxLines {
		return []string{text}
	}

	var chunks []string
	var buffer []string
	for _, line := range lines {
		buffer = append(buffer, line)
		if startsControlFlow(line) && len(buffer) >= maxLines {
			chunks = append(chunks, strings.Join(buffer, "\n"))
			buffer = nil
		}
	}
	if len(buffer) > 0 {
		chunks = append(chunks, strings.Join(buffer, "\n"))
	}

	return chunks
}

// SplitBudget splits text at line boundaries into sequential pieces that
// stay under maxChars, greedily packing whole lines. Each line costs its
// length plus one for the newline. A single line longer than the budget
// becomes its own oversized piece; lines are never split.
func SplitBudget(text string, maxChars int) []string {
	lines := splitLines(text)

	var chunks []string
	var buffer []string
	bufferLen := 0

	for _, line := range lines {
		lineLen := len(line) + 1
		if bufferLen+lineLen > maxChars && len(buffer) > 0 {
			chunks = append(chunks, strings.Join(buffer, "\n"))
			buffer = []string{line}
			bufferLen = lineLen
		} else {
			buffer = append(buffer, line)
			bufferLen += lineLen
		}
	}
	if len(buffer) > 0 {
		chunks = append(chunks, strings.Join(buffer, "\n"))
	}

	return chunks
}

// splitLines splits on newlines without producing a trailing empty line
// for newline-terminated text
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// countLines counts lines the way splitLines produces them
func countLines(text string) int {
	return len(splitLines(text))
}
