// Package services contains domain logic that spans entities.
package services

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rigbook/rigbook/internal/domain/entities"
)

// DeviceEnv defines the variables available during filter expression evaluation.
type DeviceEnv struct {
	Kind   string `expr:"kind"`
	CPU    string `expr:"cpu"`
	RAM    string `expr:"ram"`
	Disk   string `expr:"disk"`
	GPU    string `expr:"gpu"`
	Screen string `expr:"screen"`
}

// NewDeviceEnv builds the evaluation environment for a device.
// gpu is empty for laptops and screen is empty for desktops.
func NewDeviceEnv(d entities.Device) DeviceEnv {
	env := DeviceEnv{
		Kind: d.Kind().String(),
		CPU:  d.CPU(),
		RAM:  d.RAM(),
		Disk: d.Disk(),
	}
	switch v := d.(type) {
	case entities.Desktop:
		env.GPU = v.GPUType()
	case entities.Laptop:
		env.Screen = v.ScreenSize()
	}
	return env
}

// DeviceFilter selects devices with a boolean expr program,
// e.g. `kind == "Laptop" && ram == "32"`.
type DeviceFilter struct {
	program *vm.Program
	source  string
}

// CompileDeviceFilter compiles expression. An empty expression matches everything.
func CompileDeviceFilter(expression string) (*DeviceFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return &DeviceFilter{}, nil
	}

	program, err := expr.Compile(expression, expr.Env(DeviceEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &DeviceFilter{program: program, source: expression}, nil
}

// Matches evaluates the filter against d.
func (f *DeviceFilter) Matches(d entities.Device) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	output, err := expr.Run(f.program, NewDeviceEnv(d))
	if err != nil {
		return false, fmt.Errorf("filter expression error: %w", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return boolean: %v", output)
	}
	return result, nil
}

// IsEmpty reports whether the filter matches everything.
func (f *DeviceFilter) IsEmpty() bool {
	return f == nil || f.program == nil
}

// String returns the source expression
func (f *DeviceFilter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}
