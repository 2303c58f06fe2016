package domain

// Track is a lane on the shared timeline. Operator is the bound character id,
// or empty while the lane is unassigned. Actions keeps placement order.
type Track struct {
	Operator string           `json:"operator"`
	Actions  []ActionInstance `json:"actions"`
}

// Bound reports whether the track has an operator assigned.
func (t *Track) Bound() bool { return t.Operator != "" }

// TrackView merges a track with the display fields of its bound character.
// Tracks whose operator is missing from the roster fall back to placeholder
// display values instead of failing.
type TrackView struct {
	Track

	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Rarity int    `json:"rarity"`
}
