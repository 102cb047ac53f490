package outfitting

// Attribute identifies a single numeric stat on a module.
// The raw string values are the catalog's JSON keys.
type Attribute string

const (
	AttrPowerUsage          Attribute = "power"
	AttrPowerGeneration     Attribute = "pGen"
	AttrIntegrity           Attribute = "integrity"
	AttrMass                Attribute = "mass"
	AttrThermalEfficiency   Attribute = "eff"
	AttrMaxMass             Attribute = "maxmass"
	AttrOptimalMass         Attribute = "optmass"
	AttrOptimalMultiplier   Attribute = "optmul"
	AttrDamagePerSecond     Attribute = "dps"
	AttrEnergyPerSecond     Attribute = "eps"
	AttrHeatPerSecond       Attribute = "hps"
	AttrMaxFuelPerJump      Attribute = "maxfuel"
	AttrSystemsCapacity     Attribute = "syscap"
	AttrEnginesCapacity     Attribute = "engcap"
	AttrWeaponsCapacity     Attribute = "wepcap"
	AttrSystemsRecharge     Attribute = "sysrate"
	AttrEnginesRecharge     Attribute = "engrate"
	AttrWeaponsRecharge     Attribute = "weprate"
	AttrKineticResistance   Attribute = "kinres"
	AttrThermalResistance   Attribute = "thermres"
	AttrExplosiveResistance Attribute = "explres"
	AttrRegenerationRate    Attribute = "regen"
	AttrBrokenRegenRate     Attribute = "brokenregen"
	AttrRange               Attribute = "range"
	AttrCaptureArc          Attribute = "arc"
	AttrArmour              Attribute = "armour"
	AttrDelay               Attribute = "delay"
	AttrDuration            Attribute = "duration"
	AttrShieldReinforcement Attribute = "shieldreinforcement"
)

// KnownAttributes lists every stat key the outfitting core recognizes,
// in display order. Template keys outside this table are not treated as
// numeric stats; they are preserved on the module as extra fields.
var KnownAttributes = []Attribute{
	AttrPowerUsage,
	AttrPowerGeneration,
	AttrIntegrity,
	AttrMass,
	AttrThermalEfficiency,
	AttrMaxMass,
	AttrOptimalMass,
	AttrOptimalMultiplier,
	AttrDamagePerSecond,
	AttrEnergyPerSecond,
	AttrHeatPerSecond,
	AttrMaxFuelPerJump,
	AttrSystemsCapacity,
	AttrEnginesCapacity,
	AttrWeaponsCapacity,
	AttrSystemsRecharge,
	AttrEnginesRecharge,
	AttrWeaponsRecharge,
	AttrKineticResistance,
	AttrThermalResistance,
	AttrExplosiveResistance,
	AttrRegenerationRate,
	AttrBrokenRegenRate,
	AttrRange,
	AttrCaptureArc,
	AttrArmour,
	AttrDelay,
	AttrDuration,
	AttrShieldReinforcement,
}

var knownAttributeSet = buildKnownAttributeSet()

func buildKnownAttributeSet() map[Attribute]bool {
	set := make(map[Attribute]bool, len(KnownAttributes))
	for _, attr := range KnownAttributes {
		set[attr] = true
	}
	return set
}

// IsKnownAttribute reports whether name is a recognized stat key
func IsKnownAttribute(name string) bool {
	return knownAttributeSet[Attribute(name)]
}

// ParseAttribute converts a raw stat key into an Attribute.
// Returns false if the key is not in the recognized table.
func ParseAttribute(name string) (Attribute, bool) {
	attr := Attribute(name)
	return attr, knownAttributeSet[attr]
}
