package values

import (
	"fmt"
	"strings"
)

// DeviceKind tags which device variant an entry holds.
type DeviceKind int

const (
	KindUnknown DeviceKind = iota
	KindDesktop
	KindLaptop
)

// ParseDeviceKind accepts the menu letters ("d", "l") as well as the full
// names, case-insensitively.
func ParseDeviceKind(s string) (DeviceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "desktop":
		return KindDesktop, nil
	case "l", "laptop":
		return KindLaptop, nil
	default:
		return KindUnknown, fmt.Errorf("invalid computer type: %q (valid: desktop, laptop)", s)
	}
}

// String returns the name used in display lines ("Desktop", "Laptop").
func (k DeviceKind) String() string {
	switch k {
	case KindDesktop:
		return "Desktop"
	case KindLaptop:
		return "Laptop"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (k DeviceKind) MarshalText() ([]byte, error) {
	if k == KindUnknown {
		return nil, fmt.Errorf("cannot marshal unknown device kind")
	}
	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *DeviceKind) UnmarshalText(data []byte) error {
	kind, err := ParseDeviceKind(string(data))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
