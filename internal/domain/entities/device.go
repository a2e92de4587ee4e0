// Package entities contains the computer variants and inventory entries.
package entities

import "github.com/rigbook/rigbook/internal/domain/values"

// Device is the sum of the two computer variants. Only Desktop and Laptop
// implement it; callers switch on Kind() or on the concrete type.
type Device interface {
	Kind() values.DeviceKind
	CPU() string
	RAM() string
	Disk() string
	// Attribute returns the variant field: GPU type or screen size.
	Attribute() string
	Key() string
	String() string

	sealed()
}

var (
	_ Device = Desktop{}
	_ Device = Laptop{}
)

// NewDevice builds the variant named by kind. The attribute is the GPU type
// for desktops and the screen size for laptops.
func NewDevice(kind values.DeviceKind, cpu, ram, disk, attribute string) (Device, error) {
	switch kind {
	case values.KindDesktop:
		return NewDesktop(cpu, ram, disk, attribute)
	case values.KindLaptop:
		return NewLaptop(cpu, ram, disk, attribute)
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

// EqualDevices reports whether a and b are the same variant with equal fields.
func EqualDevices(a, b Device) bool {
	switch x := a.(type) {
	case Desktop:
		y, ok := b.(Desktop)
		return ok && x.Equals(y)
	case Laptop:
		y, ok := b.(Laptop)
		return ok && x.Equals(y)
	default:
		return false
	}
}
