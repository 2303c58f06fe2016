package skills_test

import (
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCharacter() *domain.Character {
	return &domain.Character{
		ID:     "op_ash",
		Name:   "Ash",
		Rarity: 5,

		AttackDuration: 1.2,
		AttackCooldown: 0.5,
		AttackSPCost:   0,
		AttackSPGain:   10,

		SkillDuration:     3,
		SkillCooldown:     8,
		SkillSPCost:       30,
		SkillAllowedTypes: []string{"ground", "aerial"},
		SkillAnomalies:    []domain.Anomaly{{Kind: "blaze", Potency: 1.5}},

		LinkDuration: 2,
		LinkCooldown: 12,

		UltimateDuration: 5,
		UltimateCooldown: 60,
		UltimateSPCost:   100,
	}
}

func TestDerive_FourSkillsInOrder(t *testing.T) {
	templates := skills.Derive(sampleCharacter())
	require.Len(t, templates, 4)

	wantKinds := []domain.AbilityKind{
		domain.AbilityAttack, domain.AbilitySkill, domain.AbilityLink, domain.AbilityUltimate,
	}
	for i, tmpl := range templates {
		assert.Equal(t, wantKinds[i], tmpl.Kind)
		assert.Equal(t, "op_ash_"+string(wantKinds[i]), tmpl.ID)
		assert.NotEmpty(t, tmpl.Name)
	}

	skill := templates[1]
	assert.Equal(t, 3.0, skill.Duration)
	assert.Equal(t, 8.0, skill.Cooldown)
	assert.Equal(t, 30.0, skill.SPCost)
	assert.Equal(t, []string{"ground", "aerial"}, skill.AllowedTypes)
	assert.Equal(t, []domain.Anomaly{{Kind: "blaze", Potency: 1.5}}, skill.PhysicalAnomaly)
}

func TestDerive_NilCharacter(t *testing.T) {
	templates := skills.Derive(nil)
	assert.NotNil(t, templates)
	assert.Empty(t, templates)
}

func TestDerive_AbsentFieldsBecomeEmptySequences(t *testing.T) {
	// No allowed types or anomalies anywhere on the record.
	templates := skills.Derive(&domain.Character{ID: "op_bare"})
	require.Len(t, templates, 4)

	for _, tmpl := range templates {
		assert.NotNil(t, tmpl.AllowedTypes, "%s allowedTypes must be a sequence", tmpl.Kind)
		assert.NotNil(t, tmpl.PhysicalAnomaly, "%s physicalAnomaly must be a sequence", tmpl.Kind)
		assert.Empty(t, tmpl.AllowedTypes)
		assert.Empty(t, tmpl.PhysicalAnomaly)
	}
}

func TestDerive_DoesNotAliasCharacterSlices(t *testing.T) {
	ch := sampleCharacter()
	templates := skills.Derive(ch)

	templates[1].AllowedTypes[0] = "mutated"
	assert.Equal(t, "ground", ch.SkillAllowedTypes[0])
}

func TestClone_FreshIDs(t *testing.T) {
	tmpl := skills.Derive(sampleCharacter())[1]

	a := skills.Clone(tmpl)
	b := skills.Clone(tmpl)

	assert.NotEmpty(t, a.InstanceID)
	assert.NotEmpty(t, b.InstanceID)
	assert.NotEqual(t, a.InstanceID, b.InstanceID)
}

func TestClone_DeepCopiesAnomalies(t *testing.T) {
	tmpl := skills.Derive(sampleCharacter())[1]

	a := skills.Clone(tmpl)
	b := skills.Clone(tmpl)
	require.Equal(t, a.PhysicalAnomaly, b.PhysicalAnomaly)

	a.PhysicalAnomaly[0].Potency = 99

	assert.Equal(t, 1.5, b.PhysicalAnomaly[0].Potency, "sibling clone must not alias")
	assert.Equal(t, 1.5, tmpl.PhysicalAnomaly[0].Potency, "template must not alias")
}

func TestClone_EmptyAnomalyListStaysSequence(t *testing.T) {
	inst := skills.Clone(domain.SkillTemplate{ID: "x_attack", Kind: domain.AbilityAttack})
	assert.NotNil(t, inst.PhysicalAnomaly)
	assert.Empty(t, inst.PhysicalAnomaly)
}
