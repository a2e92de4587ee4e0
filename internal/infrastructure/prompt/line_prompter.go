// Package prompt provides terminal implementations of ports.Prompter.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// Ensure interface compliance
var _ ports.Prompter = (*LinePrompter)(nil)

// LinePrompter reads one answer per line. It works on pipes and files as
// well as terminals, and is what tests and scripted sessions use.
type LinePrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLinePrompter creates a prompter reading from r and writing prompts to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// IsInteractive checks if f is a terminal rather than a pipe or file.
func IsInteractive(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Menu prints the main menu and reads a selection.
//
//nolint:errcheck // Best-effort terminal output
func (p *LinePrompter) Menu(ctx context.Context) (ports.MenuChoice, error) {
	fmt.Fprintln(p.writer, "----------")
	fmt.Fprintln(p.writer, "A) Add Computer")
	fmt.Fprintln(p.writer, "D) Delete Computer")
	fmt.Fprintln(p.writer, "E) Edit Computer")
	fmt.Fprintln(p.writer, "S) Search Computers")
	fmt.Fprintln(p.writer, "X) eXit")
	fmt.Fprintln(p.writer, "----------")

	answer, err := p.ask(ctx, "Enter menu selection:")
	if err != nil {
		return "", err
	}
	return ports.MenuChoice(strings.ToLower(answer)), nil
}

// Kind asks for the device type by letter.
func (p *LinePrompter) Kind(ctx context.Context) (values.DeviceKind, bool, error) {
	answer, err := p.ask(ctx, "Enter type of computer to add ('L' for Laptop, 'D' for Desktop):\n")
	if err != nil {
		return values.KindUnknown, false, err
	}
	kind, err := values.ParseDeviceKind(answer)
	if err != nil {
		return values.KindUnknown, false, nil
	}
	return kind, true, nil
}

// Field re-prompts until the answer is whitelisted.
func (p *LinePrompter) Field(ctx context.Context, field policy.Field) (string, error) {
	for {
		answer, err := p.ask(ctx, field.Prompt)
		if err != nil {
			return "", err
		}
		if v, ok := field.Match(answer); ok {
			return v, nil
		}
		p.Notify("Invalid input! Valid values are: " + field.Options())
	}
}

// Text asks a free-form question.
func (p *LinePrompter) Text(ctx context.Context, prompt string) (string, error) {
	return p.ask(ctx, prompt)
}

// Notify prints msg on its own line.
func (p *LinePrompter) Notify(msg string) {
	_, _ = fmt.Fprintln(p.writer, msg)
}

func (p *LinePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.writer, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			// Last line without a trailing newline
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ports.ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
