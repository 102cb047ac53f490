package outfitting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robsonmobile/coriolis/internal/domain/outfitting"
)

func newShieldTemplate(t *testing.T) *outfitting.Template {
	t.Helper()

	tmpl, err := outfitting.NewTemplate("sg", "3A")
	require.NoError(t, err)

	tmpl.SetAttribute(outfitting.AttrMass, 10)
	tmpl.SetAttribute(outfitting.AttrPowerUsage, 2.52)
	tmpl.SetAttribute(outfitting.AttrIntegrity, 88)
	tmpl.SetAttribute(outfitting.AttrKineticResistance, 0)
	tmpl.SetExtra("name", "Shield Generator")
	tmpl.SetExtra("rating", "A")

	return tmpl
}

func TestNewFromTemplate_CopiesAttributesAndStartsUnmodified(t *testing.T) {
	// Arrange
	tmpl := newShieldTemplate(t)

	// Act
	module, err := outfitting.NewFromTemplate(tmpl)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sg", module.Grp())
	assert.Equal(t, "3A", module.ID())
	assert.Equal(t, "Shield Generator", module.Name())
	assert.Equal(t, "A", module.Extra("rating"))

	mass, ok := module.BaseValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, 10.0, mass)

	// Fresh modules carry no modifications
	assert.False(t, module.HasModifications())
	_, ok = module.ModValue(outfitting.AttrMass)
	assert.False(t, ok)
}

func TestNewFromTemplate_NilTemplate(t *testing.T) {
	module, err := outfitting.NewFromTemplate(nil)

	assert.Nil(t, module)
	assert.Error(t, err)
}

func TestNewFromTemplate_TemplateEditsDoNotLeak(t *testing.T) {
	tmpl := newShieldTemplate(t)

	module, err := outfitting.NewFromTemplate(tmpl)
	require.NoError(t, err)

	// Mutating the template after construction must not affect the module
	tmpl.SetAttribute(outfitting.AttrMass, 99)
	tmpl.SetExtra("rating", "E")

	assert.Equal(t, 10.0, module.Mass())
	assert.Equal(t, "A", module.Extra("rating"))
}

func TestSetModValue_RoundTripAtFourDecimals(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	// 0.0534 * 10000 = 534 exactly; the stored integer divides back out
	module.SetModValue(outfitting.AttrMass, 0.0534)

	value, ok := module.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, 0.0534, value)

	// Re-reading never drifts
	value2, ok := module.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, value, value2)
}

func TestSetModValue_RoundsToNearestTenThousandth(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.05339)

	value, ok := module.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, 0.0534, value)
}

func TestSetModValue_ZeroRemoves(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)
	require.True(t, module.HasModifications())

	module.SetModValue(outfitting.AttrMass, 0)

	_, ok := module.ModValue(outfitting.AttrMass)
	assert.False(t, ok)
	assert.False(t, module.HasModifications())
}

func TestSetModValue_ValueRoundingToZeroRemoves(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)
	module.SetModValue(outfitting.AttrMass, 0.00004)

	_, ok := module.ModValue(outfitting.AttrMass)
	assert.False(t, ok)
}

func TestClearModValue_IsIdempotent(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)
	module.ClearModValue(outfitting.AttrMass)
	module.ClearModValue(outfitting.AttrMass)

	_, ok := module.ModValue(outfitting.AttrMass)
	assert.False(t, ok)
}

func TestSetModValue_OverwritesPriorValue(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)
	module.SetModValue(outfitting.AttrMass, -0.25)

	value, ok := module.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, -0.25, value)
}

func TestEffectiveValue_AppliesModification(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)

	// mass 10 with +10% -> 11
	assert.InDelta(t, 11.0, module.Mass(), 1e-9)
}

func TestEffectiveValue_UnmodifiedReturnsBase(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	assert.Equal(t, 88.0, module.Integrity())
}

func TestEffectiveValue_NegativeModification(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrPowerUsage, -0.5)

	assert.InDelta(t, 1.26, module.PowerUsage(), 1e-9)
}

func TestEffectiveValue_ZeroBaseIsNeverScaled(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	// kinres is present on the template with a base of 0
	module.SetModValue(outfitting.AttrKineticResistance, 0.5)

	assert.Equal(t, 0.0, module.KineticResistance())
}

func TestEffectiveValue_AbsentAttributeIsZero(t *testing.T) {
	tmpl, err := outfitting.NewTemplate("pl", "1E")
	require.NoError(t, err)

	module, err := outfitting.NewFromTemplate(tmpl)
	require.NoError(t, err)

	assert.Equal(t, 0.0, module.Mass())

	_, ok := module.BaseValue(outfitting.AttrMass)
	assert.False(t, ok)
}

func TestScaledMods_RoundTripThroughSetScaledMods(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.0534)
	module.SetModValue(outfitting.AttrPowerUsage, -0.15)

	scaled := module.ScaledMods()
	assert.Equal(t, 534, scaled[outfitting.AttrMass])
	assert.Equal(t, -1500, scaled[outfitting.AttrPowerUsage])

	// Reconstruction path: a fresh module loaded from persisted state
	restored, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)
	restored.SetScaledMods(scaled)

	value, ok := restored.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, 0.0534, value)
	assert.InDelta(t, 10.534, restored.Mass(), 1e-9)
}

func TestSetScaledMods_DropsZeroEntries(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetScaledMods(map[outfitting.Attribute]int{
		outfitting.AttrMass:       534,
		outfitting.AttrPowerUsage: 0,
	})

	_, ok := module.ModValue(outfitting.AttrPowerUsage)
	assert.False(t, ok)

	value, ok := module.ModValue(outfitting.AttrMass)
	require.True(t, ok)
	assert.Equal(t, 0.0534, value)
}

func TestStats_ReturnsEffectiveValues(t *testing.T) {
	module, err := outfitting.NewFromTemplate(newShieldTemplate(t))
	require.NoError(t, err)

	module.SetModValue(outfitting.AttrMass, 0.1)

	stats := module.Stats()
	assert.InDelta(t, 11.0, stats[outfitting.AttrMass], 1e-9)
	assert.Equal(t, 88.0, stats[outfitting.AttrIntegrity])
	assert.Equal(t, 0.0, stats[outfitting.AttrKineticResistance])
}
