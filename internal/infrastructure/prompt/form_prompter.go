package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// Ensure interface compliance
var _ ports.Prompter = (*FormPrompter)(nil)

// FormPrompter asks questions with huh select and input widgets. Whitelisted
// fields become select lists, so the answer is always valid.
//
// In accessible mode every form reads exactly one line from a shared reader.
// A form that asks for a second line rejected the first and is run again.
type FormPrompter struct {
	input      io.Reader
	reader     *bufio.Reader
	output     io.Writer
	accessible bool
}

// NewFormPrompter creates a form-based prompter. Accessible mode replaces the
// TUI widgets with plain numbered prompts.
func NewFormPrompter(in io.Reader, out io.Writer, accessible bool) *FormPrompter {
	p := &FormPrompter{input: in, output: out, accessible: accessible}
	if in != nil {
		p.reader = bufio.NewReader(in)
	}
	return p
}

// menuOptions lists the main menu entries in display order.
func menuOptions() []huh.Option[ports.MenuChoice] {
	return []huh.Option[ports.MenuChoice]{
		huh.NewOption("Add Computer", ports.MenuAdd),
		huh.NewOption("Delete Computer", ports.MenuDelete),
		huh.NewOption("Edit Computer", ports.MenuEdit),
		huh.NewOption("Search Computers", ports.MenuSearch),
		huh.NewOption("Exit", ports.MenuExit),
	}
}

// kindOptions lists the device kinds that can be added.
func kindOptions() []huh.Option[values.DeviceKind] {
	return []huh.Option[values.DeviceKind]{
		huh.NewOption(values.KindDesktop.String(), values.KindDesktop),
		huh.NewOption(values.KindLaptop.String(), values.KindLaptop),
	}
}

// Menu shows the main menu as a select list.
func (p *FormPrompter) Menu(ctx context.Context) (ports.MenuChoice, error) {
	var choice ports.MenuChoice
	field := func() huh.Field {
		return huh.NewSelect[ports.MenuChoice]().
			Title("Menu").
			Options(menuOptions()...).
			Value(&choice)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return choice, nil
}

// Kind asks for the device type. Every selectable answer is valid.
func (p *FormPrompter) Kind(ctx context.Context) (values.DeviceKind, bool, error) {
	kind := values.KindDesktop
	field := func() huh.Field {
		return huh.NewSelect[values.DeviceKind]().
			Title("Type of computer to add").
			Options(kindOptions()...).
			Value(&kind)
	}

	if err := p.run(ctx, field); err != nil {
		return values.KindUnknown, false, err
	}
	return kind, true, nil
}

// Field offers the whitelist as a select list.
func (p *FormPrompter) Field(ctx context.Context, f policy.Field) (string, error) {
	var v string
	field := func() huh.Field {
		return huh.NewSelect[string]().
			Title(f.Title()).
			Options(huh.NewOptions(f.Values...)...).
			Value(&v)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Text asks a free-form question.
func (p *FormPrompter) Text(ctx context.Context, prompt string) (string, error) {
	var v string
	field := func() huh.Field {
		return huh.NewInput().
			Title(prompt).
			Value(&v)
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return v, nil
}

// Notify prints msg below the form.
func (p *FormPrompter) Notify(msg string) {
	_, _ = fmt.Fprintln(p.output, msg)
}

func (p *FormPrompter) run(ctx context.Context, field func() huh.Field) error {
	if !p.accessible {
		return formError(p.form(field(), p.input).RunWithContext(ctx))
	}

	for {
		in := &lineReader{src: p.reader}
		err := p.form(field(), in).RunWithContext(ctx)
		switch {
		case in.eof:
			return ports.ErrInputClosed
		case in.err != nil:
			return fmt.Errorf("failed to read input: %w", in.err)
		case in.overrun:
			// The form rejected the line and asked again
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			continue
		}
		return formError(err)
	}
}

func (p *FormPrompter) form(field huh.Field, in io.Reader) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithInput(in).
		WithOutput(p.output).
		WithAccessible(p.accessible).
		WithShowHelp(false)
}

// lineReader hands a single form one line of the shared input. Asking for
// more marks the read as an overrun.
type lineReader struct {
	src     *bufio.Reader
	buf     []byte
	err     error
	served  bool
	eof     bool // the shared input is exhausted
	overrun bool // the form wanted more than one line
}

func (r *lineReader) Read(b []byte) (int, error) {
	if !r.served {
		r.served = true
		if r.src == nil {
			r.eof = true
			return 0, io.EOF
		}

		line, err := r.src.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF) && line == "":
			r.eof = true
			return 0, io.EOF
		case errors.Is(err, io.EOF):
			// Last line without a trailing newline
			line += "\n"
		case err != nil:
			r.err = err
			return 0, err
		}
		r.buf = []byte(line)
	}

	if len(r.buf) == 0 {
		if r.overrun {
			return 0, io.EOF
		}
		// A blank line makes the form settle on its default so it returns
		// and can be run again.
		r.overrun = true
		r.buf = []byte("\n")
	}
	n := copy(b, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// formError maps huh's abort errors onto ports.ErrInputClosed.
func formError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, io.EOF):
		return ports.ErrInputClosed
	default:
		return fmt.Errorf("prompt failed: %w", err)
	}
}
