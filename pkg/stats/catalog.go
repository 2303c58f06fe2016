// Package stats holds the static catalog of named character attributes and
// their display semantics. The catalog is pure data: it is consulted when a
// character build is initialized and never mutated.
package stats

// Unit describes how a stat value is displayed.
type Unit string

const (
	UnitFlat    Unit = "flat"
	UnitPercent Unit = "percent"
)

// Definition describes one named attribute.
type Definition struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Unit    Unit    `json:"unit"`
	Default float64 `json:"default"`
}

// Set maps every catalog definition id to a numeric value. Overrides on top
// of the defaults are applied by external build tooling, not here.
type Set map[string]float64

var catalog = []Definition{
	{ID: "primary_ability", Label: "Primary Ability", Unit: UnitFlat, Default: 0},
	{ID: "secondary_ability", Label: "Secondary Ability", Unit: UnitPercent, Default: 0},

	{ID: "strength", Label: "Strength", Unit: UnitFlat, Default: 0},
	{ID: "agility", Label: "Agility", Unit: UnitFlat, Default: 0},
	{ID: "intellect", Label: "Intellect", Unit: UnitFlat, Default: 0},
	{ID: "will", Label: "Will", Unit: UnitFlat, Default: 0},

	{ID: "attack", Label: "Attack", Unit: UnitPercent, Default: 0},
	{ID: "hp", Label: "HP", Unit: UnitPercent, Default: 0},
	{ID: "crit_rate", Label: "Crit Rate", Unit: UnitPercent, Default: 0},

	{ID: "blaze_dmg", Label: "Blaze Damage", Unit: UnitPercent, Default: 0},
	{ID: "emag_dmg", Label: "Electromagnetic Damage", Unit: UnitPercent, Default: 0},
	{ID: "cold_dmg", Label: "Cold Damage", Unit: UnitPercent, Default: 0},
	{ID: "nature_dmg", Label: "Nature Damage", Unit: UnitPercent, Default: 0},

	{ID: "healing_effect", Label: "Healing Effect", Unit: UnitPercent, Default: 0},
	{ID: "physical_dmg", Label: "Physical Damage", Unit: UnitPercent, Default: 0},
	{ID: "arts_dmg", Label: "Arts Damage", Unit: UnitPercent, Default: 0},

	{ID: "originium_arts_power", Label: "Originium Arts Power", Unit: UnitFlat, Default: 0},
	{ID: "ult_charge_eff", Label: "Ultimate Charge Efficiency", Unit: UnitPercent, Default: 100},
	{ID: "link_cd_reduction", Label: "Link Cooldown Reduction", Unit: UnitPercent, Default: 0},
}

// Definitions returns the catalog in display order. The returned slice is a
// copy; callers may reorder it freely.
func Definitions() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// DefaultSet returns a Set with every definition mapped to its default.
func DefaultSet() Set {
	set := make(Set, len(catalog))
	for _, def := range catalog {
		set[def.ID] = def.Default
	}
	return set
}
