package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rigbook/rigbook/internal/application/dto"
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/services"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// BatchUseCase imports every device of a manifest through the inventory
// service, collecting rejections instead of stopping at the first one.
type BatchUseCase struct {
	loader    ports.ManifestLoader
	inventory *InventoryService
	logger    *slog.Logger
}

// NewBatchUseCase creates a batch import use case.
func NewBatchUseCase(loader ports.ManifestLoader, inventory *InventoryService, logger *slog.Logger) *BatchUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchUseCase{loader: loader, inventory: inventory, logger: logger}
}

// Execute loads the manifest, imports its devices in order, and lists the
// resulting inventory. Rejected devices are reported by their 1-based
// manifest position.
func (uc *BatchUseCase) Execute(ctx context.Context, req dto.BatchRequest) (*dto.BatchResponse, error) {
	// Reject a bad filter before doing any work
	if _, err := services.CompileDeviceFilter(req.Filter); err != nil {
		return nil, apperrors.WrapValidationError("filter", err)
	}

	manifest, err := uc.loader.LoadManifest(req.ManifestPath)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("importing manifest", "path", req.ManifestPath, "devices", len(manifest.Devices))

	resp := &dto.BatchResponse{}
	for i, deviceReq := range manifest.Devices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := uc.inventory.Add(ctx, deviceReq); err != nil {
			rejection, ok := toRejection(i+1, err)
			if !ok {
				return nil, err
			}
			resp.Rejections = append(resp.Rejections, rejection)
			if req.FailFast {
				break
			}
		}
	}

	view, err := uc.inventory.List(ctx, req.Filter)
	if err != nil {
		return nil, err
	}
	resp.Inventory = view
	return resp, nil
}

func toRejection(position int, err error) (dto.Rejection, bool) {
	var argErr *values.InvalidArgumentError
	var valErr *apperrors.ValidationError
	switch {
	case errors.As(err, &argErr):
		return dto.Rejection{Position: position, Field: argErr.Field, Message: argErr.Error()}, true
	case errors.As(err, &valErr):
		return dto.Rejection{Position: position, Field: valErr.Field, Message: valErr.Error()}, true
	default:
		return dto.Rejection{}, false
	}
}
