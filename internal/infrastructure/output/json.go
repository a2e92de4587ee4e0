package output

import (
	"encoding/json"
	"io"

	"github.com/rigbook/rigbook/internal/application/dto"
)

// JSONFormatter formats inventory listings as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the listing as JSON.
func (f *JSONFormatter) Format(view dto.InventoryView) error {
	return f.encode(view)
}

// FormatBatch writes a batch import result as JSON.
func (f *JSONFormatter) FormatBatch(resp *dto.BatchResponse) error {
	return f.encode(resp)
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	// Encode appends the trailing newline
	return encoder.Encode(v)
}
