// Package ship contains the Ship entity: a vessel with a fixed length,
// a single configured cargo type, and an owning company.
package ship

import (
	"errors"
	"fmt"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/pkg/errs"
)

// ErrShipIsNotConstructed is returned when a Ship instance was not created
// through NewShip or RestoreShip.
var ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip or RestoreShip constructor")

// Ship represents a vessel that can be booked into docks.
//
// Ship maintains these invariants:
//   - Name between 4 and 100 characters
//   - Length in metres is positive
//   - Registration country between 4 and 50 characters
//   - References exactly one cargo type and one owning company
type Ship struct {
	id                  int64
	name                string
	length              int
	registrationCountry string
	cargoType           cargo.CargoType
	companyID           int64
	isConstructed       bool
}

// NewShip creates a Ship ready to be persisted; storage assigns the ID.
// The cargo type must already be persisted - the compatibility checker
// relies on its name when reporting mismatches.
func NewShip(name string, length int, registrationCountry string, cargoType cargo.CargoType, companyID int64) (*Ship, error) {
	s := &Ship{isConstructed: true}

	if err := errors.Join(
		s.setName(name),
		s.setLength(length),
		s.setRegistrationCountry(registrationCountry),
		s.setCargoType(cargoType),
		s.setCompanyID(companyID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShip reconstructs a Ship from persistence.
func RestoreShip(
	id int64, name string, length int, registrationCountry string, cargoType cargo.CargoType, companyID int64,
) (*Ship, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("ship id")
	}
	s, err := NewShip(name, length, registrationCountry, cargoType, companyID)
	if err != nil {
		return nil, err
	}
	s.id = id
	return s, nil
}

// Validate ensures the Ship instance was properly constructed.
func (s *Ship) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipIsNotConstructed
	}
	return nil
}

// ID returns the ship's persistent identifier, or zero if not yet persisted.
func (s *Ship) ID() int64 {
	return s.id
}

// SetID assigns the storage-generated identifier after the first insert.
func (s *Ship) SetID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidError("ship id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("ship id")
	}
	s.id = id
	return nil
}

// Name returns the ship's name.
func (s *Ship) Name() string {
	return s.name
}

// Length returns the ship's length in metres.
func (s *Ship) Length() int {
	return s.length
}

// RegistrationCountry returns the country where the ship is registered.
func (s *Ship) RegistrationCountry() string {
	return s.registrationCountry
}

// CargoType returns the cargo type the ship is configured for.
func (s *Ship) CargoType() cargo.CargoType {
	return s.cargoType
}

// CompanyID returns the owning company's identifier.
func (s *Ship) CompanyID() int64 {
	return s.companyID
}

// ChangeRegistrationCountry updates the ship's registration country.
func (s *Ship) ChangeRegistrationCountry(country string) error {
	return s.setRegistrationCountry(country)
}

// ChangeCargoType reconfigures the ship for a different cargo type.
func (s *Ship) ChangeCargoType(cargoType cargo.CargoType) error {
	return s.setCargoType(cargoType)
}

// TransferToCompany moves the ship to a different owning company.
func (s *Ship) TransferToCompany(companyID int64) error {
	return s.setCompanyID(companyID)
}

func (s *Ship) setName(name string) error {
	if len(name) < 4 || len(name) > 100 {
		return errs.NewValueIsInvalidErrorWithCause("ship_name",
			fmt.Errorf("ship name must be between 4 and 100 characters"))
	}
	s.name = name
	return nil
}

func (s *Ship) setLength(length int) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ship_length",
			fmt.Errorf("%d is not greater than 0", length))
	}
	s.length = length
	return nil
}

func (s *Ship) setRegistrationCountry(country string) error {
	if len(country) < 4 || len(country) > 50 {
		return errs.NewValueIsInvalidErrorWithCause("registration_country",
			fmt.Errorf("country name must be between 4 and 50 characters"))
	}
	s.registrationCountry = country
	return nil
}

func (s *Ship) setCargoType(cargoType cargo.CargoType) error {
	if err := cargoType.Validate(); err != nil {
		return err
	}
	if cargoType.ID() <= 0 {
		return errs.NewValueIsRequiredError("cargo_type_id")
	}
	s.cargoType = cargoType
	return nil
}

func (s *Ship) setCompanyID(companyID int64) error {
	if companyID <= 0 {
		return errs.NewValueIsRequiredError("company_id")
	}
	s.companyID = companyID
	return nil
}
