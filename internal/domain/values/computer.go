package values

import (
	"strings"
	"unicode"
)

// Field names reported by InvalidArgumentError.
const (
	FieldCPU  = "cpu"
	FieldRAM  = "ram"
	FieldDisk = "disk"
)

// Accepted canonical values. These are fixed policy and are not configurable.
var (
	ValidCPUs  = []string{"i5", "i7"}
	ValidRAM   = []string{"16", "32"}
	ValidDisks = []string{"512", "1024"}
)

// Computer is the validated CPU/RAM/disk profile shared by every device.
// A Computer can only be obtained through NewComputer, so its fields are
// always canonical whitelist members. There are no setters; editing means
// building a new value.
type Computer struct {
	cpu  string
	ram  string
	disk string
}

// NewComputer normalizes and validates the raw inputs.
// Fields are checked in the order cpu, ram, disk and the first failure is
// returned as an *InvalidArgumentError carrying the raw input.
func NewComputer(cpu, ram, disk string) (Computer, error) {
	cpuNorm := normalizeCPU(strings.ToLower(strings.TrimSpace(cpu)))
	ramNorm := normalizeNumber(strings.ToLower(strings.TrimSpace(ram)))
	diskNorm := normalizeNumber(strings.ToLower(strings.TrimSpace(disk)))

	if !contains(ValidCPUs, cpuNorm) {
		return Computer{}, NewInvalidArgumentError(FieldCPU, cpu, ValidCPUs)
	}
	if !contains(ValidRAM, ramNorm) {
		return Computer{}, NewInvalidArgumentError(FieldRAM, ram, ValidRAM)
	}
	if !contains(ValidDisks, diskNorm) {
		return Computer{}, NewInvalidArgumentError(FieldDisk, disk, ValidDisks)
	}

	return Computer{cpu: cpuNorm, ram: ramNorm, disk: diskNorm}, nil
}

// MustNewComputer creates a Computer or panics (for tests/constants)
func MustNewComputer(cpu, ram, disk string) Computer {
	c, err := NewComputer(cpu, ram, disk)
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeCPU reduces vendor-decorated input such as "intel i5" to its
// model token. Input that matches no token is returned unchanged so the
// whitelist check rejects it.
func normalizeCPU(input string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
	s = strings.ReplaceAll(s, "intel", "")
	s = strings.ReplaceAll(s, "amd", "")

	switch {
	case strings.Contains(s, "i5"):
		return "i5"
	case strings.Contains(s, "i7"):
		return "i7"
	default:
		return input
	}
}

// normalizeNumber drops unit suffixes and other non-digits ("16gb" -> "16").
// An input with no digits at all is returned unchanged.
func normalizeNumber(input string) string {
	s := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
	if s == "" {
		return input
	}
	return s
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// CPU returns the canonical CPU model ("i5" or "i7").
func (c Computer) CPU() string {
	return c.cpu
}

// RAM returns the RAM size in GB ("16" or "32").
func (c Computer) RAM() string {
	return c.ram
}

// Disk returns the disk size in GB ("512" or "1024").
func (c Computer) Disk() string {
	return c.disk
}

// IsZero returns true if this is the zero value
func (c Computer) IsZero() bool {
	return c.cpu == ""
}

// Equals checks if two profiles hold the same canonical values
func (c Computer) Equals(other Computer) bool {
	return c == other
}

// Key returns a string usable as a map key; equal profiles yield equal keys.
func (c Computer) Key() string {
	return c.cpu + "/" + c.ram + "/" + c.disk
}

// String returns the canonical display form, e.g. "CPU:i5\tRAM:16\tDisk:512".
func (c Computer) String() string {
	return "CPU:" + c.cpu + "\tRAM:" + c.ram + "\tDisk:" + c.disk
}
