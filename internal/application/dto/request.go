// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// DeviceRequest carries raw, unvalidated device fields from a prompt,
// flags or a manifest. A nil field was not supplied.
type DeviceRequest struct {
	Kind   *string `json:"kind" yaml:"kind"`
	CPU    *string `json:"cpu" yaml:"cpu"`
	RAM    *string `json:"ram" yaml:"ram"`
	Disk   *string `json:"disk" yaml:"disk"`
	GPU    *string `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	Screen *string `json:"screen,omitempty" yaml:"screen,omitempty"`
}

// NewDesktopRequest builds a request with every desktop field present.
func NewDesktopRequest(cpu, ram, disk, gpu string) DeviceRequest {
	kind := "desktop"
	return DeviceRequest{Kind: &kind, CPU: &cpu, RAM: &ram, Disk: &disk, GPU: &gpu}
}

// NewLaptopRequest builds a request with every laptop field present.
func NewLaptopRequest(cpu, ram, disk, screen string) DeviceRequest {
	kind := "laptop"
	return DeviceRequest{Kind: &kind, CPU: &cpu, RAM: &ram, Disk: &disk, Screen: &screen}
}

// DeviceKind parses the requested kind.
func (r DeviceRequest) DeviceKind() (values.DeviceKind, error) {
	if r.Kind == nil {
		return values.KindUnknown, apperrors.NewValidationError("kind", "must not be absent")
	}
	kind, err := values.ParseDeviceKind(*r.Kind)
	if err != nil {
		return values.KindUnknown, apperrors.WrapValidationError("kind", err)
	}
	return kind, nil
}

// ToDevice validates the request and constructs the device.
//
// Profile fields go through values.NewComputer, which normalizes them.
// The variant field is checked against the input whitelist here, since the
// Desktop and Laptop constructors accept any value.
func (r DeviceRequest) ToDevice() (entities.Device, error) {
	kind, err := r.DeviceKind()
	if err != nil {
		return nil, err
	}
	return r.ToDeviceOfKind(kind)
}

// ToDeviceOfKind is ToDevice with the kind decided by the caller; the Kind
// field is ignored.
func (r DeviceRequest) ToDeviceOfKind(kind values.DeviceKind) (entities.Device, error) {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{values.FieldCPU, r.CPU},
		{values.FieldRAM, r.RAM},
		{values.FieldDisk, r.Disk},
	} {
		if f.value == nil {
			return nil, values.NewAbsentArgumentError(f.name)
		}
	}

	var (
		field     policy.Field
		raw       *string
		misplaced *string
		other     string
	)
	switch kind {
	case values.KindDesktop:
		field, raw, misplaced, other = policy.GPU, r.GPU, r.Screen, policy.Screen.Name
	case values.KindLaptop:
		field, raw, misplaced, other = policy.Screen, r.Screen, r.GPU, policy.GPU.Name
	default:
		return nil, &entities.UnknownKindError{Kind: kind}
	}

	if misplaced != nil {
		return nil, apperrors.NewValidationError(other, "not applicable to a "+kind.String())
	}
	if raw == nil {
		return nil, values.NewAbsentArgumentError(field.Name)
	}
	attribute, ok := field.Match(*raw)
	if !ok {
		return nil, values.NewInvalidArgumentError(field.Name, *raw, field.Values)
	}

	return entities.NewDevice(kind, *r.CPU, *r.RAM, *r.Disk, attribute)
}

// BatchRequest encapsulates inputs for importing a manifest.
type BatchRequest struct {
	ManifestPath string
	Filter       string
	FailFast     bool
}
