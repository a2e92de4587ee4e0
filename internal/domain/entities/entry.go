package entities

import "github.com/rigbook/rigbook/internal/domain/values"

// Entry is one slot of the inventory: a stable ID and the device it
// currently holds. Editing swaps the device and keeps the ID.
type Entry struct {
	Device Device
	ID     values.EntryID
}

// NewEntry wraps a device in a fresh slot.
func NewEntry(d Device) Entry {
	return Entry{ID: values.NewEntryID(), Device: d}
}

// WithDevice returns a copy of the entry holding d.
func (e Entry) WithDevice(d Device) Entry {
	e.Device = d
	return e
}
