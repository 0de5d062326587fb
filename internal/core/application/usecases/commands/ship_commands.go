package commands

import (
	"context"
	"errors"

	"portops/internal/core/domain/model/ship"
	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrCreateShipCommandIsNotConstructed = errors.New(
		"CreateShipCommand must be created via NewCreateShipCommand constructor",
	)
	ErrUpdateShipCommandIsNotConstructed = errors.New(
		"UpdateShipCommand must be created via NewUpdateShipCommand constructor",
	)
	ErrDeleteShipCommandIsNotConstructed = errors.New(
		"DeleteShipCommand must be created via NewDeleteShipCommand constructor",
	)
	// ErrShipHasBookings blocks ship deletion while any booking, regardless
	// of status, still references the ship.
	ErrShipHasBookings = errors.New("ship cannot be deleted while bookings reference it")
)

// CreateShipCommand represents a request to register a new ship.
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	name                string
	length              int
	registrationCountry string
	cargoTypeID         int64
	companyID           int64

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a ship. Field-level
// invariants are enforced by the Ship constructor; the command only rejects
// missing references.
func NewCreateShipCommand(
	name string, length int, registrationCountry string, cargoTypeID, companyID int64,
) (CreateShipCommand, error) {
	if cargoTypeID <= 0 {
		return CreateShipCommand{}, errs.NewValueIsRequiredError("cargo_type_id")
	}
	if companyID <= 0 {
		return CreateShipCommand{}, errs.NewValueIsRequiredError("company_id")
	}

	return CreateShipCommand{
		name:                name,
		length:              length,
		registrationCountry: registrationCountry,
		cargoTypeID:         cargoTypeID,
		companyID:           companyID,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

// UpdateShipCommand represents a partial ship update. Only the registration
// country, the cargo type and the owning company can change; a ship's name
// and length are fixed at registration.
type UpdateShipCommand struct { //nolint:recvcheck //using for validation
	shipID              int64
	registrationCountry *string
	cargoTypeID         *int64
	companyID           *int64

	guard guard.ConstructorGuard
}

// NewUpdateShipCommand creates a command to patch a ship. Nil fields are
// left untouched; at least one must be set.
func NewUpdateShipCommand(
	shipID int64, registrationCountry *string, cargoTypeID, companyID *int64,
) (UpdateShipCommand, error) {
	if shipID <= 0 {
		return UpdateShipCommand{}, errs.NewValueIsRequiredError("ship_id")
	}
	if registrationCountry == nil && cargoTypeID == nil && companyID == nil {
		return UpdateShipCommand{}, ErrNoUpdatableFields
	}

	return UpdateShipCommand{
		shipID:              shipID,
		registrationCountry: registrationCountry,
		cargoTypeID:         cargoTypeID,
		companyID:           companyID,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipCommandIsNotConstructed)
}

// DeleteShipCommand represents a request to remove a ship.
type DeleteShipCommand struct { //nolint:recvcheck //using for validation
	shipID int64

	guard guard.ConstructorGuard
}

// NewDeleteShipCommand creates a command to delete a ship by ID.
func NewDeleteShipCommand(shipID int64) (DeleteShipCommand, error) {
	if shipID <= 0 {
		return DeleteShipCommand{}, errs.NewValueIsRequiredError("ship_id")
	}
	return DeleteShipCommand{shipID: shipID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipCommandIsNotConstructed)
}

// ShipCommandHandler handles ship registration, updates and deletion.
// Referenced cargo types and companies must exist; deletion is blocked
// while any booking references the ship.
type ShipCommandHandler struct {
	uowFactory UoWFactory
}

// NewShipCommandHandler creates a handler for ship write operations.
func NewShipCommandHandler(uowFactory UoWFactory) ShipCommandHandler {
	return ShipCommandHandler{uowFactory: uowFactory}
}

// HandleCreate registers a new ship and returns it with its storage ID.
func (h ShipCommandHandler) HandleCreate(ctx context.Context, cmd CreateShipCommand) (*ship.Ship, error) {
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

	cargoType, err := uow.CargoTypeRepository().Get(ctx, cmd.cargoTypeID)
	if err != nil {
		return nil, err
	}

	if _, err = uow.CompanyRepository().Get(ctx, cmd.companyID); err != nil {
		return nil, err
	}

	newShip, err := ship.NewShip(cmd.name, cmd.length, cmd.registrationCountry, *cargoType, cmd.companyID)
	if err != nil {
		return nil, err
	}

	if err = uow.ShipRepository().Add(ctx, newShip); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShip, nil
}

// HandleUpdate patches a ship and returns the updated aggregate.
func (h ShipCommandHandler) HandleUpdate(ctx context.Context, cmd UpdateShipCommand) (*ship.Ship, error) {
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

	shipRepo := uow.ShipRepository()
	existing, err := shipRepo.Get(ctx, cmd.shipID)
	if err != nil {
		return nil, err
	}

	if cmd.registrationCountry != nil {
		if err = existing.ChangeRegistrationCountry(*cmd.registrationCountry); err != nil {
			return nil, err
		}
	}

	if cmd.cargoTypeID != nil {
		cargoType, err := uow.CargoTypeRepository().Get(ctx, *cmd.cargoTypeID)
		if err != nil {
			return nil, err
		}
		if err = existing.ChangeCargoType(*cargoType); err != nil {
			return nil, err
		}
	}

	if cmd.companyID != nil {
		if _, err = uow.CompanyRepository().Get(ctx, *cmd.companyID); err != nil {
			return nil, err
		}
		if err = existing.TransferToCompany(*cmd.companyID); err != nil {
			return nil, err
		}
	}

	if err = shipRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

// HandleDelete removes a ship unless bookings still reference it.
func (h ShipCommandHandler) HandleDelete(ctx context.Context, cmd DeleteShipCommand) error {
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

	shipRepo := uow.ShipRepository()
	if _, err := shipRepo.Get(ctx, cmd.shipID); err != nil {
		return err
	}

	booked, err := uow.BookingRepository().ExistsForShip(ctx, cmd.shipID)
	if err != nil {
		return err
	}
	if booked {
		return ErrShipHasBookings
	}

	if err = shipRepo.Delete(ctx, cmd.shipID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
