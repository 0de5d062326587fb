package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/ship"
	"portops/internal/pkg/errs"
)

func containersCargo(t *testing.T) cargo.CargoType {
	t.Helper()
	ct, err := cargo.RestoreCargoType(7, "Containers")
	require.NoError(t, err)
	return *ct
}

func Test_NewShip(t *testing.T) {
	ct := containersCargo(t)

	s, err := ship.NewShip("Ever Given", 400, "Panama", ct, 3)
	require.NoError(t, err)

	assert.NoError(t, s.Validate())
	assert.Equal(t, int64(0), s.ID())
	assert.Equal(t, "Ever Given", s.Name())
	assert.Equal(t, 400, s.Length())
	assert.Equal(t, "Panama", s.RegistrationCountry())
	assert.Equal(t, int64(7), s.CargoType().ID())
	assert.Equal(t, int64(3), s.CompanyID())
}

func Test_NewShipValidation(t *testing.T) {
	ct := containersCargo(t)

	tests := map[string]struct {
		name      string
		length    int
		country   string
		cargoType cargo.CargoType
		companyID int64
		wantErr   error
	}{
		"name_too_short":       {"Eve", 400, "Panama", ct, 3, errs.ErrValueIsInvalid},
		"zero_length":          {"Ever Given", 0, "Panama", ct, 3, errs.ErrValueIsInvalid},
		"negative_length":      {"Ever Given", -10, "Panama", ct, 3, errs.ErrValueIsInvalid},
		"country_too_short":    {"Ever Given", 400, "UK", ct, 3, errs.ErrValueIsInvalid},
		"unconstructed_cargo":  {"Ever Given", 400, "Panama", cargo.CargoType{}, 3, cargo.ErrCargoTypeIsNotConstructed},
		"missing_company":      {"Ever Given", 400, "Panama", ct, 0, errs.ErrValueIsRequired},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ship.NewShip(tc.name, tc.length, tc.country, tc.cargoType, tc.companyID)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_ShipSetID(t *testing.T) {
	s, err := ship.NewShip("Ever Given", 400, "Panama", containersCargo(t), 3)
	require.NoError(t, err)

	require.NoError(t, s.SetID(42))
	assert.Equal(t, int64(42), s.ID())

	assert.ErrorIs(t, s.SetID(43), errs.ErrValueIsInvalid)
	assert.Equal(t, int64(42), s.ID())
}

func Test_ShipMutators(t *testing.T) {
	s, err := ship.RestoreShip(42, "Ever Given", 400, "Panama", containersCargo(t), 3)
	require.NoError(t, err)

	grain, err := cargo.RestoreCargoType(9, "Grain")
	require.NoError(t, err)

	require.NoError(t, s.ChangeRegistrationCountry("Liberia"))
	require.NoError(t, s.ChangeCargoType(*grain))
	require.NoError(t, s.TransferToCompany(5))

	assert.Equal(t, "Liberia", s.RegistrationCountry())
	assert.Equal(t, "Grain", s.CargoType().Name())
	assert.Equal(t, int64(5), s.CompanyID())

	assert.ErrorIs(t, s.ChangeRegistrationCountry("UK"), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, s.TransferToCompany(0), errs.ErrValueIsRequired)
	assert.Equal(t, "Liberia", s.RegistrationCountry())
}
