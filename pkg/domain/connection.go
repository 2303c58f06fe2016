package domain

// Connection is a directed edge between two placed actions, optionally
// tagged with the index of the source effect that triggers it.
//
// Invariants (enforced by the linking machine in pkg/timeline):
// From != To, and at most one connection exists per (From, To, EffectIndex).
type Connection struct {
	ID          string `json:"id"`
	From        string `json:"from"`
	To          string `json:"to"`
	EffectIndex *int   `json:"fromEffectIndex"`
}

// SameEdge reports whether two connections describe the same
// (from, to, effect index) triple, ignoring ids.
func (c Connection) SameEdge(o Connection) bool {
	if c.From != o.From || c.To != o.To {
		return false
	}
	if (c.EffectIndex == nil) != (o.EffectIndex == nil) {
		return false
	}
	return c.EffectIndex == nil || *c.EffectIndex == *o.EffectIndex
}

// LinkPhase is the state of the in-progress linking gesture.
type LinkPhase string

const (
	// LinkIdle means no linking gesture is in progress.
	LinkIdle LinkPhase = "idle"
	// LinkActive means a source action has been designated and the machine
	// is waiting for a target.
	LinkActive LinkPhase = "linking"
)

// LinkSession is the transient state of the linking machine. It is never
// exported in snapshots.
type LinkSession struct {
	Phase       LinkPhase `json:"phase"`
	SourceID    string    `json:"sourceId,omitempty"`
	EffectIndex *int      `json:"effectIndex,omitempty"`
}

// Active reports whether a linking gesture is in progress.
func (s LinkSession) Active() bool { return s.Phase == LinkActive }
