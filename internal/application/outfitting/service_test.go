package outfitting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonmobile/coriolis/internal/adapters/persistence"
	app "github.com/robsonmobile/coriolis/internal/application/outfitting"
	"github.com/robsonmobile/coriolis/internal/domain/shared"
	"github.com/robsonmobile/coriolis/test/helpers"
)

func newService(t *testing.T) *app.Service {
	t.Helper()

	db := helpers.NewTestDB(t)
	cat := helpers.NewTestCatalog(t)
	repo := persistence.NewGormLoadoutRepository(db, cat)

	return app.NewService(cat, repo)
}

func TestService_ShowModule(t *testing.T) {
	svc := newService(t)

	module, err := svc.ShowModule(context.Background(), "bl", "1E")

	require.NoError(t, err)
	assert.Equal(t, "Beam Laser", module.Name())
	assert.InDelta(t, 9.82, module.DamagePerSecond(), 1e-9)
}

func TestService_ShowModule_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.ShowModule(context.Background(), "bl", "9Z")

	var notFound *shared.ModuleNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestService_CreateLoadout(t *testing.T) {
	svc := newService(t)

	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")

	require.NoError(t, err)
	assert.NotEmpty(t, loadout.ID())
	assert.Equal(t, "Trade Cobra", loadout.Name())

	// Persisted and retrievable
	found, err := svc.GetLoadout(context.Background(), loadout.ID())
	require.NoError(t, err)
	assert.Equal(t, loadout.ID(), found.ID())
}

func TestService_CreateLoadout_EmptyName(t *testing.T) {
	svc := newService(t)

	_, err := svc.CreateLoadout(context.Background(), "", "sg", "3A")

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestService_SetModification(t *testing.T) {
	svc := newService(t)
	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")
	require.NoError(t, err)

	updated, err := svc.SetModification(context.Background(), loadout.ID(), "mass", 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 11.0, updated.Module().Mass(), 1e-9)

	// Modification survives a reload
	found, err := svc.GetLoadout(context.Background(), loadout.ID())
	require.NoError(t, err)
	assert.InDelta(t, 11.0, found.Module().Mass(), 1e-9)
}

func TestService_SetModification_UnknownAttribute(t *testing.T) {
	svc := newService(t)
	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")
	require.NoError(t, err)

	_, err = svc.SetModification(context.Background(), loadout.ID(), "warpspeed", 0.1)

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "attribute", validationErr.Field)
}

func TestService_SetModification_OutOfRange(t *testing.T) {
	svc := newService(t)
	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")
	require.NoError(t, err)

	_, err = svc.SetModification(context.Background(), loadout.ID(), "mass", 1.5)

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "value", validationErr.Field)
}

func TestService_SetModification_LoadoutNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.SetModification(context.Background(), "missing", "mass", 0.1)

	var notFound *shared.LoadoutNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestService_ClearModification(t *testing.T) {
	svc := newService(t)
	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")
	require.NoError(t, err)

	_, err = svc.SetModification(context.Background(), loadout.ID(), "mass", 0.1)
	require.NoError(t, err)

	cleared, err := svc.ClearModification(context.Background(), loadout.ID(), "mass")
	require.NoError(t, err)
	assert.False(t, cleared.Module().HasModifications())

	found, err := svc.GetLoadout(context.Background(), loadout.ID())
	require.NoError(t, err)
	assert.Equal(t, 10.0, found.Module().Mass())
}

func TestService_ListTemplates(t *testing.T) {
	svc := newService(t)

	templates, err := svc.ListTemplates(context.Background(), "sg")
	require.NoError(t, err)
	assert.Len(t, templates, 2)
}

func TestService_DeleteLoadout(t *testing.T) {
	svc := newService(t)
	loadout, err := svc.CreateLoadout(context.Background(), "Trade Cobra", "sg", "3A")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLoadout(context.Background(), loadout.ID()))

	loadouts, err := svc.ListLoadouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loadouts)
}
