package values

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParsePosition for non-numeric input.
var ErrNotANumber = errors.New("please enter a valid number")

// Position is a 1-based list number as shown to the user.
type Position struct {
	value int
}

// NewPosition creates a Position, rejecting numbers below 1.
func NewPosition(n int) (Position, error) {
	if n < 1 {
		return Position{}, fmt.Errorf("position must be 1 or greater, got %d", n)
	}
	return Position{value: n}, nil
}

// MustNewPosition creates a Position or panics
func MustNewPosition(n int) Position {
	p, err := NewPosition(n)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePosition parses user input such as " 2 ".
func ParsePosition(s string) (Position, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return NewPosition(n)
}

// Int returns the 1-based number
func (p Position) Int() int {
	return p.value
}

// Index returns the 0-based slice offset
func (p Position) Index() int {
	return p.value - 1
}

// IsZero returns true if this is the zero value
func (p Position) IsZero() bool {
	return p.value == 0
}

// String returns the string representation
func (p Position) String() string {
	return strconv.Itoa(p.value)
}
