// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// InventoryRepository holds the ordered list of devices for one session.
// Positions are 1-based; out-of-range positions return
// *entities.PositionOutOfRangeError.
type InventoryRepository interface {
	// Add appends a device and returns its new entry.
	Add(ctx context.Context, device entities.Device) (entities.Entry, error)

	// List returns all entries in insertion order.
	List(ctx context.Context) ([]entities.Entry, error)

	// Get returns the entry at pos.
	Get(ctx context.Context, pos values.Position) (entities.Entry, error)

	// Replace swaps the device at pos, keeping the entry ID and its place.
	Replace(ctx context.Context, pos values.Position, device entities.Device) (entities.Entry, error)

	// Delete removes the entry at pos; later entries move up by one.
	Delete(ctx context.Context, pos values.Position) (entities.Entry, error)

	// Len returns the number of entries.
	Len(ctx context.Context) (int, error)
}
