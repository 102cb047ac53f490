package outfitting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

func newTestModule(t *testing.T) *outfitting.Module {
	t.Helper()

	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)
	return module
}

func TestNewLoadout(t *testing.T) {
	module := newTestModule(t)

	loadout, err := outfitting.NewLoadout("lo-1", "Trade Cobra", module)

	require.NoError(t, err)
	assert.Equal(t, "lo-1", loadout.ID())
	assert.Equal(t, "Trade Cobra", loadout.Name())
	assert.Same(t, module, loadout.Module())
}

func TestNewLoadout_Validation(t *testing.T) {
	module := newTestModule(t)

	_, err := outfitting.NewLoadout("", "Trade Cobra", module)
	assert.IsType(t, &shared.InvalidLoadoutDataError{}, err)

	_, err = outfitting.NewLoadout("lo-1", "", module)
	assert.IsType(t, &shared.InvalidLoadoutDataError{}, err)

	_, err = outfitting.NewLoadout("lo-1", "Trade Cobra", nil)
	assert.IsType(t, &shared.InvalidLoadoutDataError{}, err)
}

func TestLoadout_Rename(t *testing.T) {
	loadout, err := outfitting.NewLoadout("lo-1", "Trade Cobra", newTestModule(t))
	require.NoError(t, err)

	require.NoError(t, loadout.Rename("Combat Cobra"))
	assert.Equal(t, "Combat Cobra", loadout.Name())

	assert.Error(t, loadout.Rename(""))
	assert.Equal(t, "Combat Cobra", loadout.Name())
}
