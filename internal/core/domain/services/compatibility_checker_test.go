package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/dock"
	"portops/internal/core/domain/model/ship"
	"portops/internal/core/domain/services"
	"portops/internal/pkg/errs"
)

func restoreCargo(t *testing.T, id int64, name string) cargo.CargoType {
	t.Helper()
	ct, err := cargo.RestoreCargoType(id, name)
	require.NoError(t, err)
	return *ct
}

func TestCompatibilityChecker_Check(t *testing.T) {
	containers := restoreCargo(t, 1, "Containers")
	grain := restoreCargo(t, 2, "Grain")

	checker := services.NewCompatibilityChecker()

	t.Run("should accept a ship that fits and carries accepted cargo", func(t *testing.T) {
		s, err := ship.RestoreShip(10, "Ever Given", 200, "Panama", containers, 3)
		require.NoError(t, err)
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers, grain})
		require.NoError(t, err)

		assert.NoError(t, checker.Check(s, d))
	})

	t.Run("should accept a ship exactly as long as the dock", func(t *testing.T) {
		s, err := ship.RestoreShip(10, "Ever Given", 250, "Panama", containers, 3)
		require.NoError(t, err)
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers})
		require.NoError(t, err)

		assert.NoError(t, checker.Check(s, d))
	})

	t.Run("should reject a ship longer than the dock", func(t *testing.T) {
		s, err := ship.RestoreShip(10, "Ever Given", 300, "Panama", containers, 3)
		require.NoError(t, err)
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers})
		require.NoError(t, err)

		err = checker.Check(s, d)
		require.ErrorIs(t, err, errs.ErrIncompatible)
		assert.Contains(t, err.Error(), "ship length 300m exceeds dock D1 length 250m")
	})

	t.Run("should reject cargo the dock does not accept", func(t *testing.T) {
		s, err := ship.RestoreShip(10, "Golden Wheat", 100, "Liberia", grain, 3)
		require.NoError(t, err)
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers})
		require.NoError(t, err)

		err = checker.Check(s, d)
		require.ErrorIs(t, err, errs.ErrIncompatible)
		assert.Contains(t, err.Error(), "does not accept Grain cargo")
		assert.Contains(t, err.Error(), "Containers")
	})

	t.Run("should report length before cargo when both mismatch", func(t *testing.T) {
		s, err := ship.RestoreShip(10, "Golden Wheat", 300, "Liberia", grain, 3)
		require.NoError(t, err)
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers})
		require.NoError(t, err)

		err = checker.Check(s, d)
		require.ErrorIs(t, err, errs.ErrIncompatible)
		assert.Contains(t, err.Error(), "ship length")
	})

	t.Run("should reject unconstructed aggregates", func(t *testing.T) {
		d, err := dock.RestoreDock(4, "D1", 250, []cargo.CargoType{containers})
		require.NoError(t, err)

		assert.ErrorIs(t, checker.Check(nil, d), ship.ErrShipIsNotConstructed)

		s, err := ship.RestoreShip(10, "Ever Given", 200, "Panama", containers, 3)
		require.NoError(t, err)
		assert.ErrorIs(t, checker.Check(s, nil), dock.ErrDockIsNotConstructed)
	})
}
