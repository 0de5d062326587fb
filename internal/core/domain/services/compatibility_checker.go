package services

import (
	"fmt"
	"strings"

	"portops/internal/core/domain/model/dock"
	"portops/internal/core/domain/model/ship"
	"portops/internal/pkg/errs"
)

// CompatibilityChecker is a domain service that decides whether a ship can
// physically and operationally use a dock.
//
// Business rules:
//   - The ship must not be longer than the dock
//   - The dock must accept the ship's configured cargo type
//
// Every failure is reported as an errs.IncompatibleError so callers can map
// the whole family of mismatches to a single response class.
type CompatibilityChecker struct{}

// NewCompatibilityChecker creates a new CompatibilityChecker instance.
func NewCompatibilityChecker() CompatibilityChecker {
	return CompatibilityChecker{}
}

// Check validates a ship against a dock. It returns nil when the ship fits
// the dock and its cargo type is accepted, and an errs.IncompatibleError
// naming the failing dimension otherwise.
func (c CompatibilityChecker) Check(s *ship.Ship, d *dock.Dock) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	if s.Length() > d.Length() {
		return errs.NewIncompatibleError("ship_length",
			fmt.Sprintf("ship length %dm exceeds dock %s length %dm", s.Length(), d.Code(), d.Length()))
	}

	if !d.AcceptsCargoType(s.CargoType().ID()) {
		return errs.NewIncompatibleError("cargo_type",
			fmt.Sprintf("dock %s does not accept %s cargo, accepted types: %s",
				d.Code(), s.CargoType().Name(), acceptedCargoNames(d)))
	}

	return nil
}

func acceptedCargoNames(d *dock.Dock) string {
	accepted := d.CargoTypes()
	if len(accepted) == 0 {
		return "none"
	}
	names := make([]string, 0, len(accepted))
	for _, ct := range accepted {
		names = append(names, ct.Name())
	}
	return strings.Join(names, ", ")
}
