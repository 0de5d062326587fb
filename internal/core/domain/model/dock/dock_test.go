package dock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portops/internal/core/domain/model/cargo"
	"portops/internal/core/domain/model/dock"
	"portops/internal/pkg/errs"
)

func cargoTypes(t *testing.T, pairs ...any) []cargo.CargoType {
	t.Helper()
	var out []cargo.CargoType
	for i := 0; i < len(pairs); i += 2 {
		ct, err := cargo.RestoreCargoType(pairs[i].(int64), pairs[i+1].(string))
		require.NoError(t, err)
		out = append(out, *ct)
	}
	return out
}

func Test_NewDock(t *testing.T) {
	accepted := cargoTypes(t, int64(1), "Containers", int64(2), "Grain")

	d, err := dock.NewDock("D1", 250, accepted)
	require.NoError(t, err)

	assert.NoError(t, d.Validate())
	assert.Equal(t, "D1", d.Code())
	assert.Equal(t, 250, d.Length())
	assert.Len(t, d.CargoTypes(), 2)
	assert.True(t, d.AcceptsCargoType(1))
	assert.True(t, d.AcceptsCargoType(2))
	assert.False(t, d.AcceptsCargoType(3))
}

func Test_NewDockValidation(t *testing.T) {
	accepted := cargoTypes(t, int64(1), "Containers")

	tests := map[string]struct {
		code    string
		length  int
		cargo   []cargo.CargoType
		wantErr error
	}{
		"empty_code":        {"", 250, accepted, errs.ErrValueIsRequired},
		"code_too_short":    {"D", 250, accepted, errs.ErrValueIsInvalid},
		"code_too_long":     {"DOCKNUMBER1", 250, accepted, errs.ErrValueIsInvalid},
		"code_not_alnum":    {"D-1", 250, accepted, errs.ErrValueIsInvalid},
		"code_with_space":   {"D 1", 250, accepted, errs.ErrValueIsInvalid},
		"zero_length":       {"D1", 0, accepted, errs.ErrValueIsInvalid},
		"negative_length":   {"D1", -5, accepted, errs.ErrValueIsInvalid},
		"unpersisted_cargo": {"D1", 250, []cargo.CargoType{{}}, cargo.ErrCargoTypeIsNotConstructed},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := dock.NewDock(tc.code, tc.length, tc.cargo)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func Test_NewDockRejectsDuplicateCargoTypes(t *testing.T) {
	dup := cargoTypes(t, int64(1), "Containers", int64(1), "Containers")

	_, err := dock.NewDock("D1", 250, dup)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func Test_DockNoCargoTypesIsValid(t *testing.T) {
	d, err := dock.NewDock("D9", 100, nil)
	require.NoError(t, err)

	assert.Empty(t, d.CargoTypes())
	assert.False(t, d.AcceptsCargoType(1))
}

func Test_DockChangeLength(t *testing.T) {
	d, err := dock.RestoreDock(4, "D1", 250, cargoTypes(t, int64(1), "Containers"))
	require.NoError(t, err)

	require.NoError(t, d.ChangeLength(300))
	assert.Equal(t, 300, d.Length())

	assert.ErrorIs(t, d.ChangeLength(0), errs.ErrValueIsInvalid)
	assert.Equal(t, 300, d.Length())
}

func Test_DockReplaceCargoTypes(t *testing.T) {
	d, err := dock.RestoreDock(4, "D1", 250, cargoTypes(t, int64(1), "Containers"))
	require.NoError(t, err)

	// Same set, different order of construction: still a no-op.
	err = d.ReplaceCargoTypes(cargoTypes(t, int64(1), "Containers"))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.NoError(t, d.ReplaceCargoTypes(cargoTypes(t, int64(2), "Grain", int64(3), "Oil")))
	assert.False(t, d.AcceptsCargoType(1))
	assert.True(t, d.AcceptsCargoType(2))
	assert.True(t, d.AcceptsCargoType(3))
}
