// Package policy holds the input whitelists applied by the interactive
// loop and the batch importer before any device is constructed.
//
// CPU, RAM and disk are checked again by values.NewComputer. GPU type and
// screen size are checked only here: the Desktop and Laptop constructors
// store them as given.
package policy

import (
	"fmt"
	"strings"
)

// Field is a named whitelist used to validate one prompt.
type Field struct {
	Name   string
	Prompt string
	Values []string
}

// Input whitelists.
var (
	CPU    = Field{Name: "cpu", Prompt: "Enter CPU (i5/i7): ", Values: []string{"i5", "i7"}}
	RAM    = Field{Name: "ram", Prompt: "Enter RAM (16/32): ", Values: []string{"16", "32"}}
	Disk   = Field{Name: "disk", Prompt: "Enter Disk (512/1024): ", Values: []string{"512", "1024"}}
	GPU    = Field{Name: "gpu", Prompt: "Enter GPU (Nvidia/AMD): ", Values: []string{"Nvidia", "AMD"}}
	Screen = Field{Name: "screen", Prompt: "Enter Screen Size (13/14): ", Values: []string{"13", "14"}}
)

// Match returns the whitelist spelling of input, compared case-insensitively
// after trimming. ok is false when input is not whitelisted.
func (f Field) Match(input string) (canonical string, ok bool) {
	input = strings.TrimSpace(input)
	for _, v := range f.Values {
		if strings.EqualFold(v, input) {
			return v, true
		}
	}
	return "", false
}

// Validate returns an error naming the accepted values when input is not whitelisted.
func (f Field) Validate(input string) error {
	if _, ok := f.Match(input); !ok {
		return fmt.Errorf("invalid input! valid values are: %s", f.Options())
	}
	return nil
}

// Options returns the accepted values joined for display.
func (f Field) Options() string {
	return strings.Join(f.Values, ", ")
}

// Title returns the prompt without its trailing separator, for form widgets.
func (f Field) Title() string {
	return strings.TrimSuffix(strings.TrimSpace(f.Prompt), ":")
}
