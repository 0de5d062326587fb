// Package company contains the Company entity: the shipping company that
// owns and registers ships.
package company

import (
	"errors"
	"fmt"
	"strings"

	"portops/internal/pkg/errs"
)

// ErrCompanyIsNotConstructed is returned when a Company instance was not
// created through NewCompany or RestoreCompany.
var ErrCompanyIsNotConstructed = errors.New(
	"Company must be created via NewCompany or RestoreCompany constructor")

// Company represents a shipping company. Each ship is exclusively owned by
// one company; a company may own many ships.
type Company struct {
	id            int64
	name          string
	country       string
	email         string
	phone         string
	address       string
	isConstructed bool
}

// NewCompany creates a Company ready to be persisted; storage assigns the ID.
// Format-level validation (email shape, international phone prefix) happens
// at the transport boundary; this constructor enforces the structural rules.
func NewCompany(name, country, email, phone, address string) (*Company, error) {
	c := &Company{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setCountry(country),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCompany reconstructs a Company from persistence.
func RestoreCompany(id int64, name, country, email, phone, address string) (*Company, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("company id")
	}
	c, err := NewCompany(name, country, email, phone, address)
	if err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the Company instance was properly constructed.
func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

// ID returns the company's persistent identifier, or zero if not yet persisted.
func (c *Company) ID() int64 {
	return c.id
}

// SetID assigns the storage-generated identifier after the first insert.
func (c *Company) SetID(id int64) error {
	if c.id != 0 {
		return errs.NewValueIsInvalidError("company id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("company id")
	}
	c.id = id
	return nil
}

// Name returns the company name.
func (c *Company) Name() string { return c.name }

// Country returns the company's home country.
func (c *Company) Country() string { return c.country }

// Email returns the contact email address.
func (c *Company) Email() string { return c.email }

// Phone returns the contact phone number.
func (c *Company) Phone() string { return c.phone }

// Address returns the company street address.
func (c *Company) Address() string { return c.address }

func (c *Company) setName(name string) error {
	if len(name) < 3 || len(name) > 100 {
		return errs.NewValueIsInvalidErrorWithCause("company_name",
			fmt.Errorf("company name must be between 3 and 100 characters"))
	}
	c.name = name
	return nil
}

func (c *Company) setCountry(country string) error {
	if len(country) < 4 || len(country) > 50 {
		return errs.NewValueIsInvalidErrorWithCause("country",
			fmt.Errorf("country name must be between 4 and 50 characters"))
	}
	c.country = country
	return nil
}

func (c *Company) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > 150 || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *Company) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if len(phone) > 20 {
		return errs.NewValueIsInvalidError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Company) setAddress(address string) error {
	if len(address) < 10 {
		return errs.NewValueIsInvalidErrorWithCause("address",
			fmt.Errorf("address must be greater than 10 characters"))
	}
	c.address = address
	return nil
}
