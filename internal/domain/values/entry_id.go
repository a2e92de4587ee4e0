// Package values contains domain value objects that encapsulate
// primitive types with validation and such.
package values

import (
	"fmt"

	"github.com/google/uuid"
)

// EntryID identifies one slot of the inventory. It survives edits, which
// replace the device but not the slot.
type EntryID struct {
	value uuid.UUID
}

// NewEntryID creates a new random entry ID
func NewEntryID() EntryID {
	return EntryID{value: uuid.New()}
}

// ParseEntryID parses a string into an EntryID
func ParseEntryID(s string) (EntryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EntryID{}, fmt.Errorf("invalid entry ID: %w", err)
	}
	return EntryID{value: id}, nil
}

// String returns the string representation
func (e EntryID) String() string {
	return e.value.String()
}

// Short returns the first eight characters, enough to tell entries apart on screen.
func (e EntryID) Short() string {
	return e.value.String()[:8]
}

// IsZero returns true if this is the zero value
func (e EntryID) IsZero() bool {
	return e.value == uuid.Nil
}

// Equals checks if two EntryIDs are equal
func (e EntryID) Equals(other EntryID) bool {
	return e.value == other.value
}

// MarshalText implements encoding.TextMarshaler
func (e EntryID) MarshalText() ([]byte, error) {
	return []byte(e.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (e *EntryID) UnmarshalText(data []byte) error {
	id, err := ParseEntryID(string(data))
	if err != nil {
		return err
	}
	*e = id
	return nil
}
