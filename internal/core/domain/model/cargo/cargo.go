// Package cargo contains the CargoType entity: the named category of goods a
// ship carries and a dock accepts.
package cargo

import (
	"errors"
	"fmt"

	"portops/internal/pkg/errs"
)

const (
	cargoNameMinLen = 3
	cargoNameMaxLen = 50
)

// ErrCargoTypeIsNotConstructed is returned when a CargoType instance was not
// created through NewCargoType or RestoreCargoType.
var ErrCargoTypeIsNotConstructed = errors.New(
	"CargoType must be created via NewCargoType or RestoreCargoType constructor")

// CargoType represents a category of cargo. Names are unique across the
// system and between 3 and 50 characters long.
type CargoType struct {
	id            int64
	name          string
	isConstructed bool
}

// NewCargoType creates a CargoType ready to be persisted; storage assigns the ID.
func NewCargoType(name string) (*CargoType, error) {
	c := &CargoType{isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCargoType reconstructs a CargoType from persistence.
func RestoreCargoType(id int64, name string) (*CargoType, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("cargo type id")
	}
	c := &CargoType{id: id, isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the CargoType instance was properly constructed.
func (c CargoType) Validate() error {
	if !c.isConstructed {
		return ErrCargoTypeIsNotConstructed
	}
	return nil
}

// ID returns the cargo type's persistent identifier, or zero if not yet persisted.
func (c CargoType) ID() int64 {
	return c.id
}

// SetID assigns the storage-generated identifier after the first insert.
func (c *CargoType) SetID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("cargo type id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("cargo type id")
	}
	c.id = id
	return nil
}

// Name returns the cargo type's unique name.
func (c CargoType) Name() string {
	return c.name
}

func (c *CargoType) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("cargo_name")
	}
	if len(name) < cargoNameMinLen || len(name) > cargoNameMaxLen {
		return errs.NewValueIsInvalidErrorWithCause("cargo_name",
			fmt.Errorf("cargo name must be between %d and %d characters", cargoNameMinLen, cargoNameMaxLen))
	}
	c.name = name
	return nil
}
