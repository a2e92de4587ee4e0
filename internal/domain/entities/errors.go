package entities

import (
	"errors"
	"fmt"

	"github.com/rigbook/rigbook/internal/domain/values"
)

// ErrPositionOutOfRange is matched by *PositionOutOfRangeError via errors.Is.
var ErrPositionOutOfRange = errors.New("position out of range")

// PositionOutOfRangeError indicates a list number past the end of the inventory.
type PositionOutOfRangeError struct {
	Position values.Position
	Len      int
}

func (e *PositionOutOfRangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("invalid computer number %s: inventory is empty", e.Position)
	}
	return fmt.Sprintf("invalid computer number %s: valid range is 1-%d", e.Position, e.Len)
}

// Is reports whether target is ErrPositionOutOfRange.
func (e *PositionOutOfRangeError) Is(target error) bool {
	return target == ErrPositionOutOfRange
}

// UnknownKindError indicates a device kind with no matching variant.
type UnknownKindError struct {
	Kind values.DeviceKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown device kind: %s", e.Kind)
}
