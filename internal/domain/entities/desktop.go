package entities

import "github.com/rigbook/rigbook/internal/domain/values"

// Desktop is a Computer profile plus a GPU type.
//
// The GPU type is stored exactly as given. Whitelisting it (Nvidia/AMD) is
// done by the input layer before construction, not here.
type Desktop struct {
	computer values.Computer
	gpuType  string
}

// NewDesktop validates the profile fields and returns the first
// *values.InvalidArgumentError unchanged.
func NewDesktop(cpu, ram, disk, gpuType string) (Desktop, error) {
	c, err := values.NewComputer(cpu, ram, disk)
	if err != nil {
		return Desktop{}, err
	}
	return Desktop{computer: c, gpuType: gpuType}, nil
}

// MustNewDesktop creates a Desktop or panics (for tests/constants)
func MustNewDesktop(cpu, ram, disk, gpuType string) Desktop {
	d, err := NewDesktop(cpu, ram, disk, gpuType)
	if err != nil {
		panic(err)
	}
	return d
}

func (Desktop) sealed() {}

// Kind returns values.KindDesktop
func (d Desktop) Kind() values.DeviceKind { return values.KindDesktop }

// CPU returns the canonical CPU model
func (d Desktop) CPU() string { return d.computer.CPU() }

// RAM returns the RAM size in GB
func (d Desktop) RAM() string { return d.computer.RAM() }

// Disk returns the disk size in GB
func (d Desktop) Disk() string { return d.computer.Disk() }

// GPUType returns the GPU type as supplied
func (d Desktop) GPUType() string { return d.gpuType }

// Attribute returns the GPU type
func (d Desktop) Attribute() string { return d.gpuType }

// Equals checks profile and GPU type
func (d Desktop) Equals(other Desktop) bool {
	return d.computer.Equals(other.computer) && d.gpuType == other.gpuType
}

// Key returns a map key that differs whenever Equals would be false.
func (d Desktop) Key() string {
	return "desktop/" + d.computer.Key() + "/" + d.gpuType
}

func (d Desktop) String() string {
	return "Type:Desktop\t" + d.computer.String() + "\tGPU:" + d.gpuType
}
