// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rigbook/rigbook/internal/application/dto"
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/repositories"
	"github.com/rigbook/rigbook/internal/domain/services"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// InventoryService implements the add/edit/delete/list use cases over an
// InventoryRepository. Positions are 1-based as shown to the user.
type InventoryService struct {
	repo    repositories.InventoryRepository
	metrics ports.InventoryMetrics
	logger  *slog.Logger
}

// NewInventoryService creates an inventory service. metrics may be nil.
func NewInventoryService(
	repo repositories.InventoryRepository,
	metrics ports.InventoryMetrics,
	logger *slog.Logger,
) *InventoryService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &InventoryService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Add validates req and appends the resulting device.
func (s *InventoryService) Add(ctx context.Context, req dto.DeviceRequest) (entities.Entry, error) {
	device, err := req.ToDevice()
	if err != nil {
		s.rejected(err)
		return entities.Entry{}, err
	}

	entry, err := s.repo.Add(ctx, device)
	if err != nil {
		return entities.Entry{}, fmt.Errorf("failed to add device: %w", err)
	}

	s.metrics.DeviceAdded(device.Kind())
	s.updateSize(ctx)
	s.logger.Debug("device added", "id", entry.ID.String(), "device", device.String())
	return entry, nil
}

// Edit replaces the device at pos with one built from req. The entry keeps
// its kind: editing a laptop yields a laptop whatever req.Kind says.
func (s *InventoryService) Edit(ctx context.Context, pos values.Position, req dto.DeviceRequest) (entities.Entry, error) {
	current, err := s.repo.Get(ctx, pos)
	if err != nil {
		return entities.Entry{}, err
	}

	device, err := req.ToDeviceOfKind(current.Device.Kind())
	if err != nil {
		s.rejected(err)
		return entities.Entry{}, err
	}

	entry, err := s.repo.Replace(ctx, pos, device)
	if err != nil {
		return entities.Entry{}, err
	}

	s.metrics.DeviceEdited(device.Kind())
	s.logger.Debug("device updated",
		"id", entry.ID.String(),
		"position", pos.Int(),
		"from", current.Device.String(),
		"to", device.String())
	return entry, nil
}

// Delete removes the entry at pos.
func (s *InventoryService) Delete(ctx context.Context, pos values.Position) (entities.Entry, error) {
	removed, err := s.repo.Delete(ctx, pos)
	if err != nil {
		return entities.Entry{}, err
	}

	s.metrics.DeviceDeleted(removed.Device.Kind())
	s.updateSize(ctx)
	s.logger.Debug("device deleted", "id", removed.ID.String(), "position", pos.Int())
	return removed, nil
}

// Get returns the entry at pos.
func (s *InventoryService) Get(ctx context.Context, pos values.Position) (entities.Entry, error) {
	return s.repo.Get(ctx, pos)
}

// List returns the inventory, keeping only devices matching filterExpr.
// An empty expression lists everything.
func (s *InventoryService) List(ctx context.Context, filterExpr string) (dto.InventoryView, error) {
	filter, err := services.CompileDeviceFilter(filterExpr)
	if err != nil {
		return dto.InventoryView{}, apperrors.WrapValidationError("filter", err)
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return dto.InventoryView{}, fmt.Errorf("failed to list devices: %w", err)
	}

	view := dto.InventoryView{
		Filter:  filter.String(),
		Total:   len(entries),
		Devices: make([]dto.DeviceView, 0, len(entries)),
	}
	for i, e := range entries {
		ok, err := filter.Matches(e.Device)
		if err != nil {
			return dto.InventoryView{}, apperrors.WrapValidationError("filter", err)
		}
		if ok {
			view.Devices = append(view.Devices, dto.NewDeviceView(i+1, e))
		}
	}
	return view, nil
}

func (s *InventoryService) rejected(err error) {
	field := "unknown"
	var argErr *values.InvalidArgumentError
	var valErr *apperrors.ValidationError
	switch {
	case errors.As(err, &argErr):
		field = argErr.Field
	case errors.As(err, &valErr):
		field = valErr.Field
	}

	s.metrics.InputRejected(field)
	s.logger.Debug("device rejected", "field", field, "error", err)
}

func (s *InventoryService) updateSize(ctx context.Context) {
	n, err := s.repo.Len(ctx)
	if err != nil {
		s.logger.Debug("failed to read inventory size", "error", err)
		return
	}
	s.metrics.InventorySize(n)
}

type noopMetrics struct{}

func (noopMetrics) DeviceAdded(values.DeviceKind)   {}
func (noopMetrics) DeviceEdited(values.DeviceKind)  {}
func (noopMetrics) DeviceDeleted(values.DeviceKind) {}
func (noopMetrics) InputRejected(string)            {}
func (noopMetrics) InventorySize(int)               {}
