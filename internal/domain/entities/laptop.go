package entities

import "github.com/rigbook/rigbook/internal/domain/values"

// Laptop is a Computer profile plus a screen size.
// Like Desktop, the extra field is not validated at this layer.
type Laptop struct {
	computer   values.Computer
	screenSize string
}

// NewLaptop validates the profile fields and returns the first
// *values.InvalidArgumentError unchanged.
func NewLaptop(cpu, ram, disk, screenSize string) (Laptop, error) {
	c, err := values.NewComputer(cpu, ram, disk)
	if err != nil {
		return Laptop{}, err
	}
	return Laptop{computer: c, screenSize: screenSize}, nil
}

// MustNewLaptop creates a Laptop or panics (for tests/constants)
func MustNewLaptop(cpu, ram, disk, screenSize string) Laptop {
	l, err := NewLaptop(cpu, ram, disk, screenSize)
	if err != nil {
		panic(err)
	}
	return l
}

func (Laptop) sealed() {}

func (l Laptop) Kind() values.DeviceKind { return values.KindLaptop }

func (l Laptop) CPU() string { return l.computer.CPU() }

func (l Laptop) RAM() string { return l.computer.RAM() }

func (l Laptop) Disk() string { return l.computer.Disk() }

// ScreenSize returns the screen size in inches as supplied
func (l Laptop) ScreenSize() string { return l.screenSize }

func (l Laptop) Attribute() string { return l.screenSize }

// Equals checks profile and screen size
func (l Laptop) Equals(other Laptop) bool {
	return l.computer.Equals(other.computer) && l.screenSize == other.screenSize
}

func (l Laptop) Key() string {
	return "laptop/" + l.computer.Key() + "/" + l.screenSize
}

func (l Laptop) String() string {
	return "Type:Laptop\t" + l.computer.String() + "\tScreen:" + l.screenSize
}
