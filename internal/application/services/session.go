package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rigbook/rigbook/internal/application/dto"
	apperrors "github.com/rigbook/rigbook/internal/application/errors"
	"github.com/rigbook/rigbook/internal/application/policy"
	"github.com/rigbook/rigbook/internal/application/ports"
	"github.com/rigbook/rigbook/internal/domain/entities"
	"github.com/rigbook/rigbook/internal/domain/values"
)

// Messages shown by the interactive session.
const (
	msgInvalidType   = "Invalid computer type entered!"
	msgInvalidNumber = "Invalid computer number entered!"
	msgNotANumber    = "Please enter a valid number!"
	msgDeleted       = "Computer deleted successfully!"
	msgEmptySearch   = "No computers match the filter."
)

// SessionUseCase drives the interactive menu: show the list, read a menu
// choice, run it, repeat until exit or end of input.
type SessionUseCase struct {
	inventory *InventoryService
	prompter  ports.Prompter
	lister    ports.OutputFormatter
	logger    *slog.Logger
}

// NewSessionUseCase creates a session over an inventory.
func NewSessionUseCase(
	inventory *InventoryService,
	prompter ports.Prompter,
	lister ports.OutputFormatter,
	logger *slog.Logger,
) *SessionUseCase {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionUseCase{
		inventory: inventory,
		prompter:  prompter,
		lister:    lister,
		logger:    logger,
	}
}

// Run loops until the user exits, input ends, or ctx is cancelled.
// End of input is a normal exit and returns nil.
func (uc *SessionUseCase) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := uc.show(ctx, ""); err != nil {
			return err
		}

		choice, err := uc.prompter.Menu(ctx)
		if err != nil {
			return uc.finish(err)
		}

		uc.logger.Debug("menu selection", "choice", string(choice))

		switch choice {
		case ports.MenuAdd:
			err = uc.add(ctx)
		case ports.MenuDelete:
			err = uc.remove(ctx)
		case ports.MenuEdit:
			err = uc.edit(ctx)
		case ports.MenuSearch:
			err = uc.search(ctx)
		case ports.MenuExit:
			return nil
		}
		if err != nil {
			return uc.finish(err)
		}
	}
}

func (uc *SessionUseCase) finish(err error) error {
	if errors.Is(err, ports.ErrInputClosed) {
		uc.logger.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (uc *SessionUseCase) show(ctx context.Context, filter string) error {
	view, err := uc.inventory.List(ctx, filter)
	if err != nil {
		return err
	}
	if err := uc.lister.Format(view); err != nil {
		return fmt.Errorf("failed to display inventory: %w", err)
	}
	return nil
}

func (uc *SessionUseCase) add(ctx context.Context) error {
	uc.prompter.Notify("ADDING COMPUTER:-")

	kind, ok, err := uc.prompter.Kind(ctx)
	if err != nil {
		return err
	}
	if !ok {
		uc.prompter.Notify(msgInvalidType)
		return nil
	}

	req, err := uc.collect(ctx, kind)
	if err != nil {
		return err
	}

	if _, err := uc.inventory.Add(ctx, req); err != nil {
		return uc.report(err)
	}
	uc.prompter.Notify(kind.String() + " added successfully!")
	return nil
}

func (uc *SessionUseCase) remove(ctx context.Context) error {
	uc.prompter.Notify("DELETE COMPUTER:-")

	pos, ok, err := uc.position(ctx, "Enter number of computer to delete:")
	if err != nil || !ok {
		return err
	}

	if _, err := uc.inventory.Delete(ctx, pos); err != nil {
		return uc.report(err)
	}
	uc.prompter.Notify(msgDeleted)
	return nil
}

func (uc *SessionUseCase) edit(ctx context.Context) error {
	uc.prompter.Notify("EDIT COMPUTER:-")

	pos, ok, err := uc.position(ctx, "Enter number of computer to edit:")
	if err != nil || !ok {
		return err
	}

	current, err := uc.inventory.Get(ctx, pos)
	if err != nil {
		return uc.report(err)
	}

	kind := current.Device.Kind()
	uc.prompter.Notify("Editing a " + kind.String() + ":")

	req, err := uc.collect(ctx, kind)
	if err != nil {
		return err
	}

	if _, err := uc.inventory.Edit(ctx, pos, req); err != nil {
		return uc.report(err)
	}
	uc.prompter.Notify(kind.String() + " updated successfully!")
	return nil
}

func (uc *SessionUseCase) search(ctx context.Context) error {
	uc.prompter.Notify("SEARCH COMPUTERS:-")

	expression, err := uc.prompter.Text(ctx, `Enter filter (e.g. kind == "Laptop" && ram == "32"):`)
	if err != nil {
		return err
	}

	view, err := uc.inventory.List(ctx, expression)
	if err != nil {
		return uc.report(err)
	}
	if len(view.Devices) == 0 {
		uc.prompter.Notify(msgEmptySearch)
		return nil
	}
	if err := uc.lister.Format(view); err != nil {
		return fmt.Errorf("failed to display search results: %w", err)
	}
	return nil
}

// collect prompts for every field of a device of the given kind.
func (uc *SessionUseCase) collect(ctx context.Context, kind values.DeviceKind) (dto.DeviceRequest, error) {
	fields := []policy.Field{policy.CPU, policy.RAM, policy.Disk}
	switch kind {
	case values.KindDesktop:
		fields = append(fields, policy.GPU)
	case values.KindLaptop:
		fields = append(fields, policy.Screen)
	}

	answers := make([]string, 0, len(fields))
	for _, f := range fields {
		v, err := uc.prompter.Field(ctx, f)
		if err != nil {
			return dto.DeviceRequest{}, err
		}
		answers = append(answers, v)
	}

	if kind == values.KindDesktop {
		return dto.NewDesktopRequest(answers[0], answers[1], answers[2], answers[3]), nil
	}
	return dto.NewLaptopRequest(answers[0], answers[1], answers[2], answers[3]), nil
}

// position reads a list number. ok is false when the answer was rejected
// and already reported to the user.
func (uc *SessionUseCase) position(ctx context.Context, prompt string) (values.Position, bool, error) {
	answer, err := uc.prompter.Text(ctx, prompt)
	if err != nil {
		return values.Position{}, false, err
	}

	pos, err := values.ParsePosition(answer)
	switch {
	case errors.Is(err, values.ErrNotANumber):
		uc.prompter.Notify(msgNotANumber)
		return values.Position{}, false, nil
	case err != nil:
		uc.prompter.Notify(msgInvalidNumber)
		return values.Position{}, false, nil
	}
	return pos, true, nil
}

// report shows recoverable errors to the user and returns the rest.
func (uc *SessionUseCase) report(err error) error {
	var valErr *apperrors.ValidationError
	switch {
	case errors.Is(err, entities.ErrPositionOutOfRange):
		uc.prompter.Notify(msgInvalidNumber)
	case errors.Is(err, values.ErrInvalidArgument):
		uc.prompter.Notify(err.Error())
	case errors.As(err, &valErr):
		uc.prompter.Notify(valErr.Message)
	default:
		return err
	}
	return nil
}
