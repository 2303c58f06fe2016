package skills

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Effect is one cell of an ability's effect grid, as authored in game data.
type Effect struct {
	ID       string  `json:"_id"`
	Type     string  `json:"type"`
	Offset   float64 `json:"offset"`
	Duration float64 `json:"duration"`
	Stacks   int     `json:"stacks"`
}

// BindingOption is a selectable effect row, flattened from the grid and
// labeled for display. Serial suffixes ("#2") are added only when the same
// effect type appears more than once.
type BindingOption struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Hint        string  `json:"hint"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Offset      float64 `json:"offset"`
	Duration    float64 `json:"duration"`
	Stacks      int     `json:"stacks"`
}

// NameFunc resolves a display name for an effect type. A nil resolver or an
// empty result falls back to the raw type string.
type NameFunc func(effectType string, e Effect) string

// BindingOptions flattens an effect grid into deduplicated, labeled options.
// Effects without an id, and repeats of an id already seen, are skipped.
// Grid positions and offsets are preserved in the hints so a user can tell
// two same-typed effects apart.
func BindingOptions(rows [][]Effect, name NameFunc) []BindingOption {
	type entry struct {
		effect   Effect
		kind     string
		row, col int
	}

	var flattened []entry
	typeCounts := make(map[string]int)
	seen := make(map[string]bool)

	for rowIdx, row := range rows {
		for colIdx, effect := range row {
			if effect.ID == "" || seen[effect.ID] {
				continue
			}
			seen[effect.ID] = true

			kind := effect.Type
			if kind == "" {
				kind = "unknown"
			}
			typeCounts[kind]++
			flattened = append(flattened, entry{effect: effect, kind: kind, row: rowIdx, col: colIdx})
		}
	}

	typeSerials := make(map[string]int)
	options := make([]BindingOption, 0, len(flattened))
	for _, e := range flattened {
		base := ""
		if name != nil {
			base = name(e.kind, e.effect)
		}
		if base == "" {
			base = e.kind
		}

		typeSerials[e.kind]++
		label := base
		if typeCounts[e.kind] > 1 {
			label = fmt.Sprintf("%s#%d", base, typeSerials[e.kind])
		}

		stacks := e.effect.Stacks
		if stacks < 1 {
			stacks = 1
		}

		hintParts := []string{
			fmt.Sprintf("R%dC%d", e.row+1, e.col+1),
			formatSeconds(e.effect.Offset) + "s",
		}
		parts := append([]string{}, hintParts...)
		if e.effect.Duration > 0 {
			parts = append(parts, "lasts "+formatSeconds(e.effect.Duration)+"s")
		}
		if stacks > 1 {
			parts = append(parts, fmt.Sprintf("x%d", stacks))
		}

		options = append(options, BindingOption{
			Value:       e.effect.ID,
			Label:       label,
			Hint:        strings.Join(hintParts, " · "),
			Description: strings.Join(parts, " · "),
			Type:        e.kind,
			Row:         e.row,
			Col:         e.col,
			Offset:      e.effect.Offset,
			Duration:    e.effect.Duration,
			Stacks:      stacks,
		})
	}
	return options
}

// formatSeconds renders a duration rounded to one decimal, dropping the
// fraction when it is whole ("3", "3.5").
func formatSeconds(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	rounded := math.Round(v*10) / 10
	if math.Abs(rounded-math.Round(rounded)) < 1e-9 {
		return strconv.FormatInt(int64(math.Round(rounded)), 10)
	}
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
