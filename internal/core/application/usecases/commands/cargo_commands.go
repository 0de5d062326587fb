package commands

import (
	"context"
	"errors"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrCreateCargoTypeCommandIsNotConstructed = errors.New(
		"CreateCargoTypeCommand must be created via NewCreateCargoTypeCommand constructor",
	)
	ErrDeleteCargoTypeCommandIsNotConstructed = errors.New(
		"DeleteCargoTypeCommand must be created via NewDeleteCargoTypeCommand constructor",
	)
	// ErrCargoTypeInUse blocks cargo type deletion while ships or docks
	// still reference it.
	ErrCargoTypeInUse = errors.New("cargo type cannot be deleted while ships or docks reference it")
)

// CreateCargoTypeCommand represents a request to register a new cargo type.
type CreateCargoTypeCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateCargoTypeCommand creates a command to register a cargo type.
func NewCreateCargoTypeCommand(name string) (CreateCargoTypeCommand, error) {
	return CreateCargoTypeCommand{name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCargoTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCargoTypeCommandIsNotConstructed)
}

// DeleteCargoTypeCommand represents a request to remove a cargo type.
type DeleteCargoTypeCommand struct { //nolint:recvcheck //using for validation
	cargoTypeID int64

	guard guard.ConstructorGuard
}

// NewDeleteCargoTypeCommand creates a command to delete a cargo type by ID.
func NewDeleteCargoTypeCommand(cargoTypeID int64) (DeleteCargoTypeCommand, error) {
	if cargoTypeID <= 0 {
		return DeleteCargoTypeCommand{}, errs.NewValueIsRequiredError("cargo_type_id")
	}
	return DeleteCargoTypeCommand{cargoTypeID: cargoTypeID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCargoTypeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCargoTypeCommandIsNotConstructed)
}

// CargoTypeCommandHandler handles cargo type registration and deletion.
type CargoTypeCommandHandler struct {
	uowFactory UoWFactory
}

// NewCargoTypeCommandHandler creates a handler for cargo type write operations.
func NewCargoTypeCommandHandler(uowFactory UoWFactory) CargoTypeCommandHandler {
	return CargoTypeCommandHandler{uowFactory: uowFactory}
}

// HandleCreate registers a new cargo type and returns it with its storage ID.
func (h CargoTypeCommandHandler) HandleCreate(
	ctx context.Context, cmd CreateCargoTypeCommand,
) (*cargo.CargoType, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCargoType, err := cargo.NewCargoType(cmd.name)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CargoTypeRepository().Add(ctx, newCargoType); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCargoType, nil
}

// HandleDelete removes a cargo type unless ships or docks still reference it.
func (h CargoTypeCommandHandler) HandleDelete(ctx context.Context, cmd DeleteCargoTypeCommand) error {
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

	cargoRepo := uow.CargoTypeRepository()
	if _, err := cargoRepo.Get(ctx, cmd.cargoTypeID); err != nil {
		return err
	}

	inUse, err := cargoRepo.InUse(ctx, cmd.cargoTypeID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCargoTypeInUse
	}

	if err = cargoRepo.Delete(ctx, cmd.cargoTypeID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
