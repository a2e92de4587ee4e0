package output

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/rigbook/rigbook/internal/application/dto"
)

// YAMLFormatter formats inventory listings as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the listing as YAML.
func (f *YAMLFormatter) Format(view dto.InventoryView) error {
	return f.encode(view)
}

// FormatBatch writes a batch import result as YAML.
func (f *YAMLFormatter) FormatBatch(resp *dto.BatchResponse) error {
	return f.encode(resp)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2), yaml.CustomMarshaler[string](quoteControl))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}

// quoteControl double-quotes strings holding tabs or other control
// characters, which a plain scalar would not carry through a decode.
func quoteControl(s string) ([]byte, error) {
	if strings.ContainsFunc(s, unicode.IsControl) {
		return []byte(strconv.Quote(s)), nil
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(out, "\n"), nil
}
