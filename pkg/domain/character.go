package domain

// AbilityKind identifies one of the four ability slots every operator has.
type AbilityKind string

const (
	AbilityAttack   AbilityKind = "attack"
	AbilitySkill    AbilityKind = "skill"
	AbilityLink     AbilityKind = "link"
	AbilityUltimate AbilityKind = "ultimate"
)

// AbilityKinds returns the slots in canonical order (attack, skill, link,
// ultimate). Skill derivation and display both rely on this order.
func AbilityKinds() []AbilityKind {
	return []AbilityKind{AbilityAttack, AbilitySkill, AbilityLink, AbilityUltimate}
}

// Anomaly describes a physical anomaly effect attached to an ability.
type Anomaly struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Potency float64 `json:"potency" yaml:"potency"`
}

// AbilityStats holds the raw numbers for a single ability slot.
type AbilityStats struct {
	Duration     float64   `json:"duration"`
	Cooldown     float64   `json:"cooldown"`
	SPCost       float64   `json:"spCost"`
	SPGain       float64   `json:"spGain"`
	AllowedTypes []string  `json:"allowed_types,omitempty"`
	Anomalies    []Anomaly `json:"anomalies,omitempty"`
}

// Character is an operator record from the game-data document. It is
// read-only input: the planner never mutates roster entries.
//
// The document stores ability numbers as flat prefixed fields
// (attack_duration, skill_spCost, ...) rather than nested objects, so the
// struct mirrors that layout and Ability reassembles the per-slot view.
type Character struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rarity int    `json:"rarity"`

	AttackDuration     float64   `json:"attack_duration"`
	AttackCooldown     float64   `json:"attack_cooldown"`
	AttackSPCost       float64   `json:"attack_spCost"`
	AttackSPGain       float64   `json:"attack_spGain"`
	AttackAllowedTypes []string  `json:"attack_allowed_types,omitempty"`
	AttackAnomalies    []Anomaly `json:"attack_anomalies,omitempty"`

	SkillDuration     float64   `json:"skill_duration"`
	SkillCooldown     float64   `json:"skill_cooldown"`
	SkillSPCost       float64   `json:"skill_spCost"`
	SkillSPGain       float64   `json:"skill_spGain"`
	SkillAllowedTypes []string  `json:"skill_allowed_types,omitempty"`
	SkillAnomalies    []Anomaly `json:"skill_anomalies,omitempty"`

	LinkDuration     float64   `json:"link_duration"`
	LinkCooldown     float64   `json:"link_cooldown"`
	LinkSPCost       float64   `json:"link_spCost"`
	LinkSPGain       float64   `json:"link_spGain"`
	LinkAllowedTypes []string  `json:"link_allowed_types,omitempty"`
	LinkAnomalies    []Anomaly `json:"link_anomalies,omitempty"`

	UltimateDuration     float64   `json:"ultimate_duration"`
	UltimateCooldown     float64   `json:"ultimate_cooldown"`
	UltimateSPCost       float64   `json:"ultimate_spCost"`
	UltimateSPGain       float64   `json:"ultimate_spGain"`
	UltimateAllowedTypes []string  `json:"ultimate_allowed_types,omitempty"`
	UltimateAnomalies    []Anomaly `json:"ultimate_anomalies,omitempty"`
}

// Ability returns the raw stats for the given slot.
func (c *Character) Ability(kind AbilityKind) AbilityStats {
	switch kind {
	case AbilityAttack:
		return AbilityStats{
			Duration:     c.AttackDuration,
			Cooldown:     c.AttackCooldown,
			SPCost:       c.AttackSPCost,
			SPGain:       c.AttackSPGain,
			AllowedTypes: c.AttackAllowedTypes,
			Anomalies:    c.AttackAnomalies,
		}
	case AbilitySkill:
		return AbilityStats{
			Duration:     c.SkillDuration,
			Cooldown:     c.SkillCooldown,
			SPCost:       c.SkillSPCost,
			SPGain:       c.SkillSPGain,
			AllowedTypes: c.SkillAllowedTypes,
			Anomalies:    c.SkillAnomalies,
		}
	case AbilityLink:
		return AbilityStats{
			Duration:     c.LinkDuration,
			Cooldown:     c.LinkCooldown,
			SPCost:       c.LinkSPCost,
			SPGain:       c.LinkSPGain,
			AllowedTypes: c.LinkAllowedTypes,
			Anomalies:    c.LinkAnomalies,
		}
	case AbilityUltimate:
		return AbilityStats{
			Duration:     c.UltimateDuration,
			Cooldown:     c.UltimateCooldown,
			SPCost:       c.UltimateSPCost,
			SPGain:       c.UltimateSPGain,
			AllowedTypes: c.UltimateAllowedTypes,
			Anomalies:    c.UltimateAnomalies,
		}
	}
	return AbilityStats{}
}

// Document is the static game-data payload fetched at startup.
type Document struct {
	Roster []Character       `json:"characterRoster"`
	Icons  map[string]string `json:"ICON_DATABASE"`
}
