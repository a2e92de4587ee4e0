// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/repositories"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// Ensure interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// InventoryRepository is an in-memory implementation of InventoryRepository.
// Entries live for the lifetime of the process only.
type InventoryRepository struct {
	entries []entities.Entry
	mu      sync.RWMutex
}

// NewInventoryRepository creates a new in-memory repository.
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

// Add appends a device and returns its new entry.
func (r *InventoryRepository) Add(_ context.Context, device entities.Device) (entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := entities.NewEntry(device)
	r.entries = append(r.entries, entry)
	return entry, nil
}

// List returns a copy of all entries in insertion order.
func (r *InventoryRepository) List(_ context.Context) ([]entities.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries), nil
}

// Get returns the entry at pos.
func (r *InventoryRepository) Get(_ context.Context, pos values.Position) (entities.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.checkBounds(pos); err != nil {
		return entities.Entry{}, err
	}
	return r.entries[pos.Index()], nil
}

// Replace swaps the device at pos, keeping the entry ID and its place.
func (r *InventoryRepository) Replace(_ context.Context, pos values.Position, device entities.Device) (entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkBounds(pos); err != nil {
		return entities.Entry{}, err
	}
	updated := r.entries[pos.Index()].WithDevice(device)
	r.entries[pos.Index()] = updated
	return updated, nil
}

// Delete removes the entry at pos and returns it.
func (r *InventoryRepository) Delete(_ context.Context, pos values.Position) (entities.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkBounds(pos); err != nil {
		return entities.Entry{}, err
	}
	removed := r.entries[pos.Index()]
	r.entries = slices.Delete(r.entries, pos.Index(), pos.Index()+1)
	return removed, nil
}

// Len returns the number of entries.
func (r *InventoryRepository) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries), nil
}

// checkBounds must be called with mu held.
func (r *InventoryRepository) checkBounds(pos values.Position) error {
	if pos.IsZero() || pos.Index() >= len(r.entries) {
		return &entities.PositionOutOfRangeError{Position: pos, Len: len(r.entries)}
	}
	return nil
}
