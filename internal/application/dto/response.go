package dto

import (
	"github.com/rigbook/rigbook/internal/domain/entities"
)

// DeviceView is the presentation form of one inventory entry.
type DeviceView struct {
	ID       string `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	CPU      string `json:"cpu" yaml:"cpu"`
	RAM      string `json:"ram" yaml:"ram"`
	Disk     string `json:"disk" yaml:"disk"`
	GPU      string `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	Screen   string `json:"screen,omitempty" yaml:"screen,omitempty"`
	Display  string `json:"display" yaml:"display"`
	Position int    `json:"position" yaml:"position"`
}

// NewDeviceView converts an entry held at the given 1-based position.
func NewDeviceView(position int, e entities.Entry) DeviceView {
	v := DeviceView{
		Position: position,
		ID:       e.ID.String(),
		Kind:     e.Device.Kind().String(),
		CPU:      e.Device.CPU(),
		RAM:      e.Device.RAM(),
		Disk:     e.Device.Disk(),
		Display:  e.Device.String(),
	}
	switch d := e.Device.(type) {
	case entities.Desktop:
		v.GPU = d.GPUType()
	case entities.Laptop:
		v.Screen = d.ScreenSize()
	}
	return v
}

// InventoryView is a listing of the inventory, possibly filtered.
// Positions in Devices always refer to the unfiltered list.
type InventoryView struct {
	Filter  string       `json:"filter,omitempty" yaml:"filter,omitempty"`
	Devices []DeviceView `json:"devices" yaml:"devices"`
	Total   int          `json:"total" yaml:"total"`
}

// Rejection describes one manifest entry that could not be imported.
type Rejection struct {
	Field    string `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string `json:"message" yaml:"message"`
	Position int    `json:"position" yaml:"position"`
}

// BatchResponse is the outcome of importing a manifest.
type BatchResponse struct {
	Inventory  InventoryView `json:"inventory" yaml:"inventory"`
	Rejections []Rejection   `json:"rejections,omitempty" yaml:"rejections,omitempty"`
}
