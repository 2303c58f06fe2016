package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lattice/internal/presentation/graph"
	"github.com/aretw0/lattice/pkg/domain"
)

func view(name, operator string, actions ...domain.ActionInstance) domain.TrackView {
	return domain.TrackView{
		Track: domain.Track{Operator: operator, Actions: actions},
		Name:  name,
	}
}

func action(id string, kind domain.AbilityKind, name string) domain.ActionInstance {
	inst := domain.ActionInstance{InstanceID: id}
	inst.Kind = kind
	inst.Name = name
	return inst
}

func TestGenerateMermaid(t *testing.T) {
	idx := 1

	tests := []struct {
		name        string
		tracks      []domain.TrackView
		connections []domain.Connection
		contains    []string
	}{
		{
			name:   "Ultimate Shape",
			tracks: []domain.TrackView{view("Ash", "op_ash", action("inst_u1", domain.AbilityUltimate, "Ultimate"))},
			contains: []string{
				`inst_u1(("Ultimate @0.0s"))`,
			},
		},
		{
			name:   "Link Shape",
			tracks: []domain.TrackView{view("Ash", "op_ash", action("inst_l1", domain.AbilityLink, "Link Strike"))},
			contains: []string{
				`inst_l1[["Link Strike @0.0s"]]`,
			},
		},
		{
			name:   "Skill Shape",
			tracks: []domain.TrackView{view("Ash", "op_ash", action("inst_s1", domain.AbilitySkill, "Battle Skill"))},
			contains: []string{
				`inst_s1[/"Battle Skill @0.0s"/]`,
			},
		},
		{
			name:   "Unassigned Track Title",
			tracks: []domain.TrackView{view("Unknown", "")},
			contains: []string{
				`subgraph track0["Unassigned"]`,
			},
		},
		{
			name: "Connection Arrows",
			tracks: []domain.TrackView{
				view("Ash", "op_ash", action("inst_a", domain.AbilityAttack, "Heavy Strike")),
				view("Frost", "op_frost", action("inst_b", domain.AbilityAttack, "Heavy Strike")),
			},
			connections: []domain.Connection{
				{ID: "conn_1", From: "inst_a", To: "inst_b"},
				{ID: "conn_2", From: "inst_b", To: "inst_a", EffectIndex: &idx},
			},
			contains: []string{
				"inst_a --> inst_b",
				`inst_b -- "effect 1" --> inst_a`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.tracks, tt.connections)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}
