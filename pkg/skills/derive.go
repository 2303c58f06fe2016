// Package skills derives the per-operator skill library from raw character
// records and clones templates into placeable action instances.
package skills

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// displayNames maps each ability slot to its library display name.
var displayNames = map[domain.AbilityKind]string{
	domain.AbilityAttack:   "Heavy Strike",
	domain.AbilitySkill:    "Battle Skill",
	domain.AbilityLink:     "Link Strike",
	domain.AbilityUltimate: "Ultimate",
}

// Derive computes the four skill templates of a character, in canonical
// order attack/skill/link/ultimate. A nil character yields an empty slice.
//
// Absent allowed-type and anomaly fields become empty (never nil) slices so
// downstream consumers can iterate without nil checks. Derive is side-effect
// free and cheap; callers recompute instead of caching.
func Derive(ch *domain.Character) []domain.SkillTemplate {
	if ch == nil {
		return []domain.SkillTemplate{}
	}

	kinds := domain.AbilityKinds()
	templates := make([]domain.SkillTemplate, 0, len(kinds))
	for _, kind := range kinds {
		raw := ch.Ability(kind)
		templates = append(templates, domain.SkillTemplate{
			ID:              fmt.Sprintf("%s_%s", ch.ID, kind),
			Kind:            kind,
			Name:            displayNames[kind],
			Duration:        raw.Duration,
			Cooldown:        raw.Cooldown,
			SPCost:          raw.SPCost,
			SPGain:          raw.SPGain,
			AllowedTypes:    copyStrings(raw.AllowedTypes),
			PhysicalAnomaly: copyAnomalies(raw.Anomalies),
		})
	}
	return templates
}

// Clone turns a template into a placeable action instance with a fresh
// unique id. The anomaly list is deep-copied so mutating one placed copy
// never leaks into the template or sibling instances.
func Clone(tmpl domain.SkillTemplate) domain.ActionInstance {
	inst := domain.ActionInstance{
		SkillTemplate: tmpl,
		InstanceID:    domain.NewID("inst"),
	}
	inst.AllowedTypes = copyStrings(tmpl.AllowedTypes)
	inst.PhysicalAnomaly = copyAnomalies(tmpl.PhysicalAnomaly)
	return inst
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyAnomalies(in []domain.Anomaly) []domain.Anomaly {
	out := make([]domain.Anomaly, len(in))
	copy(out, in)
	return out
}
