package queries

import (
	"errors"

	"portops/internal/pkg/errs"
	"portops/internal/pkg/guard"
)

var (
	ErrGetShipQueryIsNotConstructed = errors.New(
		"GetShipQuery must be created via NewGetShipQuery constructor",
	)
	ErrGetDockQueryIsNotConstructed = errors.New(
		"GetDockQuery must be created via NewGetDockQuery constructor",
	)
	ErrListShipsQueryIsNotConstructed = errors.New(
		"ListShipsQuery must be created via NewListShipsQuery constructor",
	)
	ErrListDocksQueryIsNotConstructed = errors.New(
		"ListDocksQuery must be created via NewListDocksQuery constructor",
	)
	ErrListCargoTypesQueryIsNotConstructed = errors.New(
		"ListCargoTypesQuery must be created via NewListCargoTypesQuery constructor",
	)
)

// GetShipQuery retrieves a single ship with its cargo type resolved.
type GetShipQuery struct {
	shipID int64

	guard guard.ConstructorGuard
}

// NewGetShipQuery creates a query to retrieve a ship by ID.
func NewGetShipQuery(shipID int64) (GetShipQuery, error) {
	if shipID <= 0 {
		return GetShipQuery{}, errs.NewValueIsRequiredError("ship_id")
	}
	return GetShipQuery{shipID: shipID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipQuery) Validate() error {
	return q.guard.Validate(ErrGetShipQueryIsNotConstructed)
}

// ShipID returns the identifier of the ship being retrieved.
func (q GetShipQuery) ShipID() int64 { return q.shipID }

// GetDockQuery retrieves a single dock with its accepted cargo types.
type GetDockQuery struct {
	dockID int64

	guard guard.ConstructorGuard
}

// NewGetDockQuery creates a query to retrieve a dock by ID.
func NewGetDockQuery(dockID int64) (GetDockQuery, error) {
	if dockID <= 0 {
		return GetDockQuery{}, errs.NewValueIsRequiredError("dock_id")
	}
	return GetDockQuery{dockID: dockID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDockQuery) Validate() error {
	return q.guard.Validate(ErrGetDockQueryIsNotConstructed)
}

// DockID returns the identifier of the dock being retrieved.
func (q GetDockQuery) DockID() int64 { return q.dockID }

// ListShipsQuery retrieves the whole ship catalog.
type ListShipsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShipsQuery creates a parameterless query over all ships.
func NewListShipsQuery() ListShipsQuery {
	return ListShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListShipsQuery) Validate() error {
	return q.guard.Validate(ErrListShipsQueryIsNotConstructed)
}

// ListDocksQuery retrieves the whole dock catalog.
type ListDocksQuery struct {
	guard guard.ConstructorGuard
}

// NewListDocksQuery creates a parameterless query over all docks.
func NewListDocksQuery() ListDocksQuery {
	return ListDocksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDocksQuery) Validate() error {
	return q.guard.Validate(ErrListDocksQueryIsNotConstructed)
}

// ListCargoTypesQuery retrieves all registered cargo types.
type ListCargoTypesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCargoTypesQuery creates a parameterless query over all cargo types.
func NewListCargoTypesQuery() ListCargoTypesQuery {
	return ListCargoTypesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCargoTypesQuery) Validate() error {
	return q.guard.Validate(ErrListCargoTypesQueryIsNotConstructed)
}

// CargoTypeResponse represents a cargo type row.
type CargoTypeResponse struct {
	ID   int64
	Name string
}

// ShipResponse represents a ship with its cargo type resolved.
type ShipResponse struct {
	ID                  int64
	Name                string
	Length              int
	RegistrationCountry string
	CargoTypeID         int64
	CargoTypeName       string
	CompanyID           int64
}

// DockResponse represents a dock with its accepted cargo types.
type DockResponse struct {
	ID         int64
	Code       string
	Length     int
	CargoTypes []CargoTypeResponse
}
