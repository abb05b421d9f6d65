package order

import "fmt"

// Warning is a non-fatal parse diagnostic. A single field's grammar failing,
// an unmapped addon, or an unmatched line each produce a Warning and parsing
// continues; tests assert on these instead of on log output.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Raw     string `json:"raw,omitempty"`
	Line    int    `json:"line,omitempty"` // 1-based source line for the text path, 0 otherwise
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d, field %s: %s", w.Line, w.Field, w.Message)
	}
	return fmt.Sprintf("field %s: %s", w.Field, w.Message)
}

// Warnings aggregates the diagnostics of one parse invocation.
type Warnings []Warning

// Add appends a warning for the given field.
func (ws *Warnings) Add(field, message, raw string) {
	*ws = append(*ws, Warning{Field: field, Message: message, Raw: raw})
}

// AddLine appends a warning tied to a 1-based source line.
func (ws *Warnings) AddLine(line int, field, message, raw string) {
	*ws = append(*ws, Warning{Field: field, Message: message, Raw: raw, Line: line})
}
