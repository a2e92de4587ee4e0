package output

import (
	"fmt"
	"io"

	"github.com/rigbook/rigbook/internal/application/dto"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorCyan  = "\033[36m"
	colorBold  = "\033[1m"
)

// TableFormatter prints the inventory as numbered display lines:
//
//	=========
//	LIST OF COMPUTERS:-
//	1: Type:Laptop	CPU:i5	RAM:16	Disk:512	Screen:13
//	=========
//
// Display lines are written verbatim; color only touches the frame and numbers.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the inventory listing.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(view dto.InventoryView) error {
	fmt.Fprintln(f.writer, f.colorize("=========", colorGray))
	fmt.Fprintln(f.writer, f.colorize("LIST OF COMPUTERS:-", colorBold))

	if view.Filter != "" {
		fmt.Fprintf(f.writer, "Filter: %s (%d of %d)\n", view.Filter, len(view.Devices), view.Total)
	}

	for _, d := range view.Devices {
		fmt.Fprintf(f.writer, "%s: %s\n", f.colorize(fmt.Sprint(d.Position), colorCyan), d.Display)
	}

	_, err := fmt.Fprintln(f.writer, f.colorize("=========", colorGray))
	return err
}

// FormatBatch writes rejected manifest entries, then the resulting listing.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatBatch(resp *dto.BatchResponse) error {
	for _, r := range resp.Rejections {
		fmt.Fprintf(f.writer, "%s #%d: %s\n", f.colorize("Rejected", colorBold), r.Position, r.Message)
	}
	return f.Format(resp.Inventory)
}
