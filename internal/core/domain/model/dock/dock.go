// Package dock contains the Dock aggregate: a physical berth with a maximum
// ship length and the set of cargo types it accepts.
package dock

import (
	"errors"
	"fmt"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/pkg/errs"
)

const (
	dockCodeMinLen = 2
	dockCodeMaxLen = 10
)

// ErrDockIsNotConstructed is returned when a Dock instance was not created
// through NewDock or RestoreDock.
var ErrDockIsNotConstructed = errors.New("Dock must be created via NewDock or RestoreDock constructor")

// Dock represents a berth ships can be booked into.
//
// Dock maintains these invariants:
//   - Code is unique, alphanumeric, between 2 and 10 characters
//   - Length in metres is positive and caps the length of visiting ships
//   - Accepted cargo types form a set (the dock_cargo junction enforces
//     uniqueness per (cargo_type_id, dock_id))
type Dock struct {
	id            int64
	code          string
	length        int
	cargoTypes    []cargo.CargoType
	isConstructed bool
}

// NewDock creates a Dock ready to be persisted; storage assigns the ID.
func NewDock(code string, length int, cargoTypes []cargo.CargoType) (*Dock, error) {
	d := &Dock{isConstructed: true}

	if err := errors.Join(
		d.setCode(code),
		d.setLength(length),
		d.setCargoTypes(cargoTypes),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDock reconstructs a Dock from persistence.
func RestoreDock(id int64, code string, length int, cargoTypes []cargo.CargoType) (*Dock, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("dock id")
	}
	d, err := NewDock(code, length, cargoTypes)
	if err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

// Validate ensures the Dock instance was properly constructed.
func (d *Dock) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDockIsNotConstructed
	}
	return nil
}

// ID returns the dock's persistent identifier, or zero if not yet persisted.
func (d *Dock) ID() int64 {
	return d.id
}

// SetID assigns the storage-generated identifier after the first insert.
func (d *Dock) SetID(id int64) error {
	if d.id != 0 {
		return errs.NewValueIsInvalidError("dock id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("dock id")
	}
	d.id = id
	return nil
}

// Code returns the dock's unique alphanumeric code.
func (d *Dock) Code() string {
	return d.code
}

// Length returns the dock's length in metres, which is also the maximum
// length of a ship that may book it.
func (d *Dock) Length() int {
	return d.length
}

// CargoTypes returns the cargo types this dock accepts.
func (d *Dock) CargoTypes() []cargo.CargoType {
	return d.cargoTypes
}

// AcceptsCargoType reports whether the dock accepts the given cargo type.
func (d *Dock) AcceptsCargoType(cargoTypeID int64) bool {
	for _, ct := range d.cargoTypes {
		if ct.ID() == cargoTypeID {
			return true
		}
	}
	return false
}

// ChangeLength updates the dock's length.
func (d *Dock) ChangeLength(length int) error {
	return d.setLength(length)
}

// ReplaceCargoTypes swaps the accepted cargo type set for a new one.
// An identical set is rejected so callers hear about no-op updates.
func (d *Dock) ReplaceCargoTypes(cargoTypes []cargo.CargoType) error {
	if sameCargoTypeSet(d.cargoTypes, cargoTypes) {
		return errs.NewValueIsInvalidErrorWithCause("cargo_types",
			fmt.Errorf("cargo types unchanged"))
	}
	return d.setCargoTypes(cargoTypes)
}

func sameCargoTypeSet(a, b []cargo.CargoType) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[int64]bool, len(a))
	for _, ct := range a {
		ids[ct.ID()] = true
	}
	for _, ct := range b {
		if !ids[ct.ID()] {
			return false
		}
	}
	return true
}

func (d *Dock) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("dock_code")
	}
	if len(code) < dockCodeMinLen || len(code) > dockCodeMaxLen {
		return errs.NewValueIsInvalidErrorWithCause("dock_code",
			fmt.Errorf("dock code must be between %d and %d characters", dockCodeMinLen, dockCodeMaxLen))
	}
	for _, r := range code {
		isDigit := r >= '0' && r <= '9'
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isDigit && !isAlpha {
			return errs.NewValueIsInvalidErrorWithCause("dock_code",
				fmt.Errorf("dock code must contain letters and numbers only"))
		}
	}
	d.code = code
	return nil
}

func (d *Dock) setLength(length int) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dock_length",
			fmt.Errorf("%d is not greater than 0", length))
	}
	d.length = length
	return nil
}

func (d *Dock) setCargoTypes(cargoTypes []cargo.CargoType) error {
	seen := make(map[int64]bool, len(cargoTypes))
	for _, ct := range cargoTypes {
		if err := ct.Validate(); err != nil {
			return err
		}
		if ct.ID() <= 0 {
			return errs.NewValueIsRequiredError("cargo_type_id")
		}
		if seen[ct.ID()] {
			return errs.NewValueIsInvalidErrorWithCause("cargo_types",
				fmt.Errorf("cargo type %d appears more than once", ct.ID()))
		}
		seen[ct.ID()] = true
	}
	d.cargoTypes = cargoTypes
	return nil
}
