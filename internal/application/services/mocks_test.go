package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rigbook/rigbook/internal/application/dto"
	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// scriptedPrompter answers prompts from a fixed list of lines.
// Field prompts skip non-whitelisted answers the way a real prompter re-asks.
type scriptedPrompter struct {
	answers  []string
	notices  []string
	reprompt int
}

func newScriptedPrompter(answers ...string) *scriptedPrompter {
	return &scriptedPrompter{answers: answers}
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", ports.ErrInputClosed
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Menu(_ context.Context) (ports.MenuChoice, error) {
	a, err := p.next()
	return ports.MenuChoice(strings.ToLower(a)), err
}

func (p *scriptedPrompter) Kind(_ context.Context) (values.DeviceKind, bool, error) {
	a, err := p.next()
	if err != nil {
		return values.KindUnknown, false, err
	}
	k, err := values.ParseDeviceKind(a)
	return k, err == nil, nil
}

func (p *scriptedPrompter) Field(_ context.Context, f policy.Field) (string, error) {
	for {
		a, err := p.next()
		if err != nil {
			return "", err
		}
		if v, ok := f.Match(a); ok {
			return v, nil
		}
		p.reprompt++
	}
}

func (p *scriptedPrompter) Text(_ context.Context, _ string) (string, error) {
	return p.next()
}

func (p *scriptedPrompter) Notify(msg string) {
	p.notices = append(p.notices, msg)
}

// recordingFormatter keeps every view it was asked to format.
type recordingFormatter struct {
	views []dto.InventoryView
	err   error
}

func (f *recordingFormatter) Format(view dto.InventoryView) error {
	f.views = append(f.views, view)
	return f.err
}

func (f *recordingFormatter) FormatBatch(resp *dto.BatchResponse) error {
	return f.Format(resp.Inventory)
}

func (f *recordingFormatter) last() dto.InventoryView {
	return f.views[len(f.views)-1]
}

// countingMetrics counts calls per event.
type countingMetrics struct {
	added, edited, deleted map[values.DeviceKind]int
	rejected               map[string]int
	size                   int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{
		added:    map[values.DeviceKind]int{},
		edited:   map[values.DeviceKind]int{},
		deleted:  map[values.DeviceKind]int{},
		rejected: map[string]int{},
	}
}

func (m *countingMetrics) DeviceAdded(k values.DeviceKind)   { m.added[k]++ }
func (m *countingMetrics) DeviceEdited(k values.DeviceKind)  { m.edited[k]++ }
func (m *countingMetrics) DeviceDeleted(k values.DeviceKind) { m.deleted[k]++ }
func (m *countingMetrics) InputRejected(field string)        { m.rejected[field]++ }
func (m *countingMetrics) InventorySize(n int)               { m.size = n }

// stubLoader returns a fixed manifest.
type stubLoader struct {
	manifest *ports.Manifest
	err      error
}

func (l *stubLoader) LoadManifest(_ string) (*ports.Manifest, error) {
	return l.manifest, l.err
}

var errBoom = errors.New("boom")
