package commands

import (
	"context"
	"errors"

	"portops/internal/core/domain/model/dock"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrCreateDockCommandIsNotConstructed = errors.New(
		"CreateDockCommand must be created via NewCreateDockCommand constructor",
	)
	ErrUpdateDockLengthCommandIsNotConstructed = errors.New(
		"UpdateDockLengthCommand must be created via NewUpdateDockLengthCommand constructor",
	)
	ErrUpdateDockCargoCommandIsNotConstructed = errors.New(
		"UpdateDockCargoCommand must be created via NewUpdateDockCargoCommand constructor",
	)
	ErrDeleteDockCommandIsNotConstructed = errors.New(
		"DeleteDockCommand must be created via NewDeleteDockCommand constructor",
	)
	// ErrDockHasBookings blocks dock deletion while any booking still
	// references the dock.
	ErrDockHasBookings = errors.New("dock cannot be deleted while bookings reference it")
)

// CreateDockCommand represents a request to register a new dock together
// with the cargo types it accepts.
type CreateDockCommand struct { //nolint:recvcheck //using for validation
	code         string
	length       int
	cargoTypeIDs []int64

	guard guard.ConstructorGuard
}

// NewCreateDockCommand creates a command to register a dock. Code and length
// invariants are enforced by the Dock constructor.
func NewCreateDockCommand(code string, length int, cargoTypeIDs []int64) (CreateDockCommand, error) {
	for _, id := range cargoTypeIDs {
		if id <= 0 {
			return CreateDockCommand{}, errs.NewValueIsRequiredError("cargo_type_id")
		}
	}

	return CreateDockCommand{
		code:         code,
		length:       length,
		cargoTypeIDs: cargoTypeIDs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDockCommand) Validate() error {
	return c.guard.Validate(ErrCreateDockCommandIsNotConstructed)
}

// UpdateDockLengthCommand represents a request to change a dock's length.
type UpdateDockLengthCommand struct { //nolint:recvcheck //using for validation
	dockID int64
	length int

	guard guard.ConstructorGuard
}

// NewUpdateDockLengthCommand creates a command to change a dock's length.
func NewUpdateDockLengthCommand(dockID int64, length int) (UpdateDockLengthCommand, error) {
	if dockID <= 0 {
		return UpdateDockLengthCommand{}, errs.NewValueIsRequiredError("dock_id")
	}
	return UpdateDockLengthCommand{dockID: dockID, length: length, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDockLengthCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDockLengthCommandIsNotConstructed)
}

// UpdateDockCargoCommand represents a request to replace a dock's accepted
// cargo type set.
type UpdateDockCargoCommand struct { //nolint:recvcheck //using for validation
	dockID       int64
	cargoTypeIDs []int64

	guard guard.ConstructorGuard
}

// NewUpdateDockCargoCommand creates a command to replace a dock's cargo set.
func NewUpdateDockCargoCommand(dockID int64, cargoTypeIDs []int64) (UpdateDockCargoCommand, error) {
	if dockID <= 0 {
		return UpdateDockCargoCommand{}, errs.NewValueIsRequiredError("dock_id")
	}
	if len(cargoTypeIDs) == 0 {
		return UpdateDockCargoCommand{}, errs.NewValueIsRequiredError("cargo_type_ids")
	}
	for _, id := range cargoTypeIDs {
		if id <= 0 {
			return UpdateDockCargoCommand{}, errs.NewValueIsRequiredError("cargo_type_id")
		}
	}

	return UpdateDockCargoCommand{
		dockID:       dockID,
		cargoTypeIDs: cargoTypeIDs,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDockCargoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDockCargoCommandIsNotConstructed)
}

// DeleteDockCommand represents a request to remove a dock.
type DeleteDockCommand struct { //nolint:recvcheck //using for validation
	dockID int64

	guard guard.ConstructorGuard
}

// NewDeleteDockCommand creates a command to delete a dock by ID.
func NewDeleteDockCommand(dockID int64) (DeleteDockCommand, error) {
	if dockID <= 0 {
		return DeleteDockCommand{}, errs.NewValueIsRequiredError("dock_id")
	}
	return DeleteDockCommand{dockID: dockID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDockCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDockCommandIsNotConstructed)
}

// DockCommandHandler handles dock registration, updates and deletion.
// Every referenced cargo type must exist; deletion is blocked while any
// booking references the dock.
type DockCommandHandler struct {
	uowFactory UoWFactory
}

// NewDockCommandHandler creates a handler for dock write operations.
func NewDockCommandHandler(uowFactory UoWFactory) DockCommandHandler {
	return DockCommandHandler{uowFactory: uowFactory}
}

// HandleCreate registers a new dock and returns it with its storage ID.
func (h DockCommandHandler) HandleCreate(ctx context.Context, cmd CreateDockCommand) (*dock.Dock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargoTypes, err := uow.CargoTypeRepository().GetByIDs(ctx, cmd.cargoTypeIDs)
	if err != nil {
		return nil, err
	}

	newDock, err := dock.NewDock(cmd.code, cmd.length, cargoTypes)
	if err != nil {
		return nil, err
	}

	if err = uow.DockRepository().Add(ctx, newDock); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDock, nil
}

// HandleUpdateLength changes a dock's length and returns the updated dock.
func (h DockCommandHandler) HandleUpdateLength(
	ctx context.Context, cmd UpdateDockLengthCommand,
) (*dock.Dock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dockRepo := uow.DockRepository()
	existing, err := dockRepo.Get(ctx, cmd.dockID)
	if err != nil {
		return nil, err
	}

	if err = existing.ChangeLength(cmd.length); err != nil {
		return nil, err
	}

	if err = dockRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

// HandleUpdateCargo replaces a dock's accepted cargo type set. Submitting
// the set the dock already has is rejected as a no-op.
func (h DockCommandHandler) HandleUpdateCargo(
	ctx context.Context, cmd UpdateDockCargoCommand,
) (*dock.Dock, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dockRepo := uow.DockRepository()
	existing, err := dockRepo.Get(ctx, cmd.dockID)
	if err != nil {
		return nil, err
	}

	cargoTypes, err := uow.CargoTypeRepository().GetByIDs(ctx, cmd.cargoTypeIDs)
	if err != nil {
		return nil, err
	}

	if err = existing.ReplaceCargoTypes(cargoTypes); err != nil {
		return nil, err
	}

	if err = dockRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

// HandleDelete removes a dock unless bookings still reference it.
func (h DockCommandHandler) HandleDelete(ctx context.Context, cmd DeleteDockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dockRepo := uow.DockRepository()
	if _, err := dockRepo.Get(ctx, cmd.dockID); err != nil {
		return err
	}

	booked, err := uow.BookingRepository().ExistsForDock(ctx, cmd.dockID)
	if err != nil {
		return err
	}
	if booked {
		return ErrDockHasBookings
	}

	if err = dockRepo.Delete(ctx, cmd.dockID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
