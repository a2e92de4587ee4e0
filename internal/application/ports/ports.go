// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"errors"
	"io"

	"github.com/rigbook/rigbook/internal/application/dto"
	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// ErrInputClosed is returned by a Prompter when no more input can be read
// (EOF on a pipe, or the user aborting a form).
var ErrInputClosed = errors.New("input closed")

// MenuChoice is one entry of the main menu.
type MenuChoice string

const (
	MenuAdd    MenuChoice = "a"
	MenuDelete MenuChoice = "d"
	MenuEdit   MenuChoice = "e"
	MenuSearch MenuChoice = "s"
	MenuExit   MenuChoice = "x"
)

// Prompter collects raw input from the user.
type Prompter interface {
	// Menu shows the main menu and returns the selection, lower-cased.
	// Unknown selections are returned as-is so the caller can ignore them.
	Menu(ctx context.Context) (MenuChoice, error)

	// Kind asks which device type to add. ok is false when the answer
	// names no known kind.
	Kind(ctx context.Context) (kind values.DeviceKind, ok bool, err error)

	// Field asks for a whitelisted value, re-prompting until the answer
	// matches, and returns the canonical spelling.
	Field(ctx context.Context, field policy.Field) (string, error)

	// Text asks a free-form question, e.g. a list number or a filter.
	Text(ctx context.Context, prompt string) (string, error)

	// Notify shows a one-line message.
	Notify(msg string)
}

// FormatterOptions configures output formatters.
type FormatterOptions struct {
	Indent      bool
	EnableColor bool
}

// OutputFormatter formats inventory listings and batch import results.
type OutputFormatter interface {
	Format(view dto.InventoryView) error
	FormatBatch(resp *dto.BatchResponse) error
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}

// Manifest is a list of device requests read from a file.
type Manifest struct {
	APIVersion string              `json:"apiVersion" yaml:"apiVersion"`
	Devices    []dto.DeviceRequest `json:"devices" yaml:"devices"`
}

// ManifestLoader reads and structurally validates manifests.
type ManifestLoader interface {
	LoadManifest(path string) (*Manifest, error)
}

// InventoryMetrics records session activity.
type InventoryMetrics interface {
	DeviceAdded(kind values.DeviceKind)
	DeviceEdited(kind values.DeviceKind)
	DeviceDeleted(kind values.DeviceKind)
	InputRejected(field string)
	InventorySize(n int)
}
