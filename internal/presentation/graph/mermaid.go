package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart from the planner state: one
// subgraph per track (labeled with the operator display name), one node per
// placed action, and an arrow per connection. Effect-tagged connections get
// the index rendered on the edge label.
//
// Action node shapes follow the ability kind:
//   - ultimate: ((Circle))
//   - link:     [[Subroutine]]
//   - skill:    [/Parallelogram/]
//   - attack:   [Rectangle]
func GenerateMermaid(tracks []domain.TrackView, connections []domain.Connection) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, track := range tracks {
		title := track.Name
		if !track.Bound() {
			title = "Unassigned"
		}
		sb.WriteString(fmt.Sprintf("    subgraph track%d[\"%s\"]\n", i, escapeMermaidLabel(title)))
		for _, action := range track.Actions {
			safeID := sanitizeMermaidID(action.InstanceID)

			opener, closer := "[", "]"
			switch action.Kind {
			case domain.AbilityUltimate:
				opener, closer = "((", "))"
			case domain.AbilityLink:
				opener, closer = "[[", "]]"
			case domain.AbilitySkill:
				opener, closer = "[/", "/]"
			}

			label := fmt.Sprintf("%s @%.1fs", action.Name, action.Offset)
			sb.WriteString(fmt.Sprintf("        %s%s\"%s\"%s\n", safeID, opener, escapeMermaidLabel(label), closer))
		}
		sb.WriteString("    end\n")
	}

	for _, conn := range connections {
		from := sanitizeMermaidID(conn.From)
		to := sanitizeMermaidID(conn.To)
		arrow := "-->"
		if conn.EffectIndex != nil {
			arrow = fmt.Sprintf("-- \"effect %d\" -->", *conn.EffectIndex)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", from, arrow, to))
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
