package domain

// SkillTemplate is a per-slot view of a character's raw fields, computed on
// demand and never persisted. Templates are value types: callers receive a
// copy and must go through CloneSkill (pkg/skills) to place one on a track.
type SkillTemplate struct {
	ID              string      `json:"id"` // "{characterID}_{kind}"
	Kind            AbilityKind `json:"kind"`
	Name            string      `json:"name"`
	Duration        float64     `json:"duration"`
	Cooldown        float64     `json:"cooldown"`
	SPCost          float64     `json:"spCost"`
	SPGain          float64     `json:"spGain"`
	AllowedTypes    []string    `json:"allowedTypes"`
	PhysicalAnomaly []Anomaly   `json:"physicalAnomaly"`
}

// ActionInstance is a placed, independently mutable copy of a skill template.
// Exactly one track owns an instance at any time.
type ActionInstance struct {
	SkillTemplate

	// InstanceID is unique within the live model; opaque to callers.
	InstanceID string `json:"instanceId"`

	// Offset is the placement position on the shared timeline, in seconds.
	Offset float64 `json:"offset"`
}

// ActionPatch is the closed set of fields a caller may update on a placed
// action. Nil fields are left untouched. Unknown fields are rejected at the
// transport boundary, not silently merged.
type ActionPatch struct {
	Offset   *float64 `json:"offset,omitempty" mapstructure:"offset"`
	Duration *float64 `json:"duration,omitempty" mapstructure:"duration"`
	Cooldown *float64 `json:"cooldown,omitempty" mapstructure:"cooldown"`
	SPCost   *float64 `json:"spCost,omitempty" mapstructure:"spCost"`
	SPGain   *float64 `json:"spGain,omitempty" mapstructure:"spGain"`
}

// IsZero reports whether the patch changes nothing.
func (p ActionPatch) IsZero() bool {
	return p.Offset == nil && p.Duration == nil && p.Cooldown == nil &&
		p.SPCost == nil && p.SPGain == nil
}

// Apply merges the set fields into the instance.
func (p ActionPatch) Apply(a *ActionInstance) {
	if p.Offset != nil {
		a.Offset = *p.Offset
	}
	if p.Duration != nil {
		a.Duration = *p.Duration
	}
	if p.Cooldown != nil {
		a.Cooldown = *p.Cooldown
	}
	if p.SPCost != nil {
		a.SPCost = *p.SPCost
	}
	if p.SPGain != nil {
		a.SPGain = *p.SPGain
	}
}
