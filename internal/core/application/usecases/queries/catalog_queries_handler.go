package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"portops/internal/pkg/errs"
)

// CatalogQueryHandler serves read models over ships, docks and cargo types.
type CatalogQueryHandler struct {
	db *gorm.DB
}

// NewCatalogQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewCatalogQueryHandler(db *gorm.DB) CatalogQueryHandler {
	return CatalogQueryHandler{db: db}
}

// HandleGetShip retrieves a single ship with its cargo type name.
func (h CatalogQueryHandler) HandleGetShip(ctx context.Context, query GetShipQuery) (ShipResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.ship_name,
			s.ship_length,
			s.registration_country,
			s.cargo_type_id,
			ct.cargo_name,
			s.company_id
		FROM ships s
		JOIN cargo_types ct ON ct.id = s.cargo_type_id
		WHERE s.id = ?
	`, query.ShipID()).Row()

	var resp ShipResponse
	err := row.Scan(
		&resp.ID,
		&resp.Name,
		&resp.Length,
		&resp.RegistrationCountry,
		&resp.CargoTypeID,
		&resp.CargoTypeName,
		&resp.CompanyID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ShipResponse{}, errs.NewObjectNotFoundError("ship_id", query.ShipID())
	}
	if err != nil {
		return ShipResponse{}, err
	}

	return resp, nil
}

// HandleListShips retrieves all ships ordered by ID.
func (h CatalogQueryHandler) HandleListShips(ctx context.Context, query ListShipsQuery) ([]ShipResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.ship_name,
			s.ship_length,
			s.registration_country,
			s.cargo_type_id,
			ct.cargo_name,
			s.company_id
		FROM ships s
		JOIN cargo_types ct ON ct.id = s.cargo_type_id
		ORDER BY s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ships := make([]ShipResponse, 0)
	for rows.Next() {
		var resp ShipResponse
		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Length,
			&resp.RegistrationCountry,
			&resp.CargoTypeID,
			&resp.CargoTypeName,
			&resp.CompanyID,
		)
		if err != nil {
			return nil, err
		}
		ships = append(ships, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ships, nil
}

// HandleGetDock retrieves a single dock with its accepted cargo types.
func (h CatalogQueryHandler) HandleGetDock(ctx context.Context, query GetDockQuery) (DockResponse, error) {
	if err := query.Validate(); err != nil {
		return DockResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, dock_code, dock_length
		FROM docks
		WHERE id = ?
	`, query.DockID()).Row()

	var resp DockResponse
	err := row.Scan(&resp.ID, &resp.Code, &resp.Length)
	if errors.Is(err, sql.ErrNoRows) {
		return DockResponse{}, errs.NewObjectNotFoundError("dock_id", query.DockID())
	}
	if err != nil {
		return DockResponse{}, err
	}

	resp.CargoTypes, err = h.acceptedCargo(ctx, resp.ID)
	if err != nil {
		return DockResponse{}, err
	}

	return resp, nil
}

// HandleListDocks retrieves all docks with their accepted cargo types,
// ordered by ID.
func (h CatalogQueryHandler) HandleListDocks(ctx context.Context, query ListDocksQuery) ([]DockResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, dock_code, dock_length
		FROM docks
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docks := make([]DockResponse, 0)
	for rows.Next() {
		var resp DockResponse
		if err = rows.Scan(&resp.ID, &resp.Code, &resp.Length); err != nil {
			return nil, err
		}
		docks = append(docks, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range docks {
		docks[i].CargoTypes, err = h.acceptedCargo(ctx, docks[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return docks, nil
}

// HandleListCargoTypes retrieves all cargo types ordered by ID.
func (h CatalogQueryHandler) HandleListCargoTypes(
	ctx context.Context, query ListCargoTypesQuery,
) ([]CargoTypeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, cargo_name
		FROM cargo_types
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cargoTypes := make([]CargoTypeResponse, 0)
	for rows.Next() {
		var resp CargoTypeResponse
		if err = rows.Scan(&resp.ID, &resp.Name); err != nil {
			return nil, err
		}
		cargoTypes = append(cargoTypes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargoTypes, nil
}

func (h CatalogQueryHandler) acceptedCargo(ctx context.Context, dockID int64) ([]CargoTypeResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ct.id, ct.cargo_name
		FROM dock_cargo dc
		JOIN cargo_types ct ON ct.id = dc.cargo_type_id
		WHERE dc.dock_id = ?
		ORDER BY ct.id
	`, dockID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cargoTypes := make([]CargoTypeResponse, 0)
	for rows.Next() {
		var resp CargoTypeResponse
		if err = rows.Scan(&resp.ID, &resp.Name); err != nil {
			return nil, err
		}
		cargoTypes = append(cargoTypes, resp)
	}

	return cargoTypes, rows.Err()
}
