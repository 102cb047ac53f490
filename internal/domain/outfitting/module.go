package outfitting

import (
	"fmt"
	"math"

	"github.com/robsonmobile/coriolis/internal/domain/shared"
)

// modScale is the fixed-point denominator for stored modification values.
// A logical modification v in [-1, 1] is stored as round(v * 10000),
// giving four decimal places of precision. Reads divide the stored
// integer back out, so repeated reads never drift.
const modScale = 10000

// Module entity - a single equippable ship component: base stats copied
// from a catalog template plus a sparse map of percentage modifications.
//
// Invariants:
// - mods is always non-nil once a module is constructed
// - a key present in mods implies a non-zero modification; setting a
//   modification to zero removes the key instead of storing zero
// - a stored modification equals round(v * 10000) for the logical value v
//
// Safe for concurrent reads. Concurrent writes to the same instance must
// be serialized by the caller.
type Module struct {
	grp   string
	id    string
	attrs map[Attribute]float64
	extra map[string]string
	mods  map[Attribute]int
}

// NewFromTemplate builds a fresh Module from a catalog template.
// Recognized stat values and extra fields are copied, so later template
// edits do not leak into the module. The modification map starts empty.
func NewFromTemplate(t *Template) (*Module, error) {
	if t == nil {
		return nil, shared.NewInvalidTemplateError("template cannot be nil")
	}

	attrs := make(map[Attribute]float64, len(t.Attributes))
	for name, value := range t.Attributes {
		attrs[name] = value
	}

	extra := make(map[string]string, len(t.Extra))
	for key, value := range t.Extra {
		extra[key] = value
	}

	return &Module{
		grp:   t.Grp,
		id:    t.ID,
		attrs: attrs,
		extra: extra,
		mods:  make(map[Attribute]int),
	}, nil
}

// Getters

func (m *Module) Grp() string {
	return m.grp
}

func (m *Module) ID() string {
	return m.id
}

// Name returns the module's display name from the catalog, if any
func (m *Module) Name() string {
	return m.extra["name"]
}

// Extra returns a non-stat catalog field copied from the template
func (m *Module) Extra(key string) string {
	return m.extra[key]
}

// BaseValue returns the unmodified template value for a stat.
// ok is false when the template did not supply the stat.
func (m *Module) BaseValue(name Attribute) (float64, bool) {
	value, ok := m.attrs[name]
	return value, ok
}

// Modification Management

// SetModValue stores the logical modification for a named attribute.
// value is fractional: 0.05 means +5%. A value that is exactly zero, or
// that rounds to zero at four decimal places, removes the modification
// (removing an absent modification is a no-op). Values outside [-1, 1]
// are stored as given; range enforcement is the caller's concern.
func (m *Module) SetModValue(name Attribute, value float64) {
	scaled := int(math.Round(value * modScale))
	if scaled == 0 {
		delete(m.mods, name)
		return
	}
	m.mods[name] = scaled
}

// ClearModValue removes any stored modification for the attribute
func (m *Module) ClearModValue(name Attribute) {
	delete(m.mods, name)
}

// ModValue returns the logical modification for an attribute.
// ok is false when no modification is stored.
func (m *Module) ModValue(name Attribute) (float64, bool) {
	scaled, ok := m.mods[name]
	if !ok {
		return 0, false
	}
	return float64(scaled) / modScale, true
}

// HasModifications reports whether any modification is stored
func (m *Module) HasModifications() bool {
	return len(m.mods) > 0
}

// ScaledMods returns a copy of the stored modifications as scaled
// integers. Used by repositories to persist the fixed-point values
// without a float round trip.
func (m *Module) ScaledMods() map[Attribute]int {
	mods := make(map[Attribute]int, len(m.mods))
	for name, scaled := range m.mods {
		mods[name] = scaled
	}
	return mods
}

// SetScaledMods replaces the stored modifications wholesale.
// Used by repositories when loading a persisted loadout. Zero entries
// are dropped to preserve the non-zero invariant.
func (m *Module) SetScaledMods(mods map[Attribute]int) {
	m.mods = make(map[Attribute]int, len(mods))
	for name, scaled := range mods {
		if scaled == 0 {
			continue
		}
		m.mods[name] = scaled
	}
}

// Effective Values

// EffectiveValue returns the attribute's base value scaled by its
// modification: base * (1 + mod). An absent or zero base is never
// scaled - zero means the module does not have the stat, and a
// modification cannot create it.
func (m *Module) EffectiveValue(name Attribute) float64 {
	base := m.attrs[name]
	if base == 0 {
		return 0
	}
	if mult, ok := m.ModValue(name); ok {
		return base * (1 + mult)
	}
	return base
}

// Stats returns the effective value of every stat present on the module
func (m *Module) Stats() map[Attribute]float64 {
	stats := make(map[Attribute]float64, len(m.attrs))
	for name := range m.attrs {
		stats[name] = m.EffectiveValue(name)
	}
	return stats
}

// Named accessors - thin wrappers over EffectiveValue, kept for callers
// that address stats by method rather than by attribute key.

func (m *Module) PowerUsage() float64          { return m.EffectiveValue(AttrPowerUsage) }
func (m *Module) PowerGeneration() float64     { return m.EffectiveValue(AttrPowerGeneration) }
func (m *Module) Integrity() float64           { return m.EffectiveValue(AttrIntegrity) }
func (m *Module) Mass() float64                { return m.EffectiveValue(AttrMass) }
func (m *Module) ThermalEfficiency() float64   { return m.EffectiveValue(AttrThermalEfficiency) }
func (m *Module) MaxMass() float64             { return m.EffectiveValue(AttrMaxMass) }
func (m *Module) OptimalMass() float64         { return m.EffectiveValue(AttrOptimalMass) }
func (m *Module) OptimalMultiplier() float64   { return m.EffectiveValue(AttrOptimalMultiplier) }
func (m *Module) DamagePerSecond() float64     { return m.EffectiveValue(AttrDamagePerSecond) }
func (m *Module) EnergyPerSecond() float64     { return m.EffectiveValue(AttrEnergyPerSecond) }
func (m *Module) HeatPerSecond() float64       { return m.EffectiveValue(AttrHeatPerSecond) }
func (m *Module) MaxFuelPerJump() float64      { return m.EffectiveValue(AttrMaxFuelPerJump) }
func (m *Module) SystemsCapacity() float64     { return m.EffectiveValue(AttrSystemsCapacity) }
func (m *Module) EnginesCapacity() float64     { return m.EffectiveValue(AttrEnginesCapacity) }
func (m *Module) WeaponsCapacity() float64     { return m.EffectiveValue(AttrWeaponsCapacity) }
func (m *Module) SystemsRecharge() float64     { return m.EffectiveValue(AttrSystemsRecharge) }
func (m *Module) EnginesRecharge() float64     { return m.EffectiveValue(AttrEnginesRecharge) }
func (m *Module) WeaponsRecharge() float64     { return m.EffectiveValue(AttrWeaponsRecharge) }
func (m *Module) KineticResistance() float64   { return m.EffectiveValue(AttrKineticResistance) }
func (m *Module) ThermalResistance() float64   { return m.EffectiveValue(AttrThermalResistance) }
func (m *Module) ExplosiveResistance() float64 { return m.EffectiveValue(AttrExplosiveResistance) }
func (m *Module) RegenerationRate() float64    { return m.EffectiveValue(AttrRegenerationRate) }
func (m *Module) BrokenRegenRate() float64     { return m.EffectiveValue(AttrBrokenRegenRate) }
func (m *Module) Range() float64               { return m.EffectiveValue(AttrRange) }
func (m *Module) CaptureArc() float64          { return m.EffectiveValue(AttrCaptureArc) }
func (m *Module) Armour() float64              { return m.EffectiveValue(AttrArmour) }
func (m *Module) Delay() float64               { return m.EffectiveValue(AttrDelay) }
func (m *Module) Duration() float64            { return m.EffectiveValue(AttrDuration) }
func (m *Module) ShieldReinforcement() float64 { return m.EffectiveValue(AttrShieldReinforcement) }

func (m *Module) String() string {
	return fmt.Sprintf("Module(grp=%s, id=%s, mods=%d)", m.grp, m.id, len(m.mods))
}
