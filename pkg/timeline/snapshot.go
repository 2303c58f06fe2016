package timeline

import (
	"fmt"

	"github.com/aretw0/lattice/pkg/domain"
)

// SnapshotVersion tags the snapshot layout so codecs can reject payloads
// from incompatible releases.
const SnapshotVersion = 1

// Snapshot is the portable form of a board: track bindings, placed action
// field values, and the connection triples. Instance ids are deliberately
// absent — connections reference actions by ordinal position, and fresh ids
// are minted on restore. Transient state (selections, link session, drag
// offset) is never part of a snapshot.
type Snapshot struct {
	Version     int             `json:"v"`
	Tracks      []TrackSnapshot `json:"tracks"`
	Connections []EdgeSnapshot  `json:"connections"`
}

// TrackSnapshot is one lane: its operator binding and actions in order.
type TrackSnapshot struct {
	Operator string           `json:"operator"`
	Actions  []ActionSnapshot `json:"actions"`
}

// ActionSnapshot carries every persisted field of a placed action except its
// instance id.
type ActionSnapshot struct {
	TemplateID      string             `json:"id"`
	Kind            domain.AbilityKind `json:"kind"`
	Name            string             `json:"name"`
	Duration        float64            `json:"duration"`
	Cooldown        float64            `json:"cooldown"`
	SPCost          float64            `json:"spCost"`
	SPGain          float64            `json:"spGain"`
	AllowedTypes    []string           `json:"allowedTypes"`
	PhysicalAnomaly []domain.Anomaly   `json:"physicalAnomaly"`
	Offset          float64            `json:"offset"`
}

// EdgeSnapshot references its endpoints by ordinal: the position of the
// action in the snapshot's track-order flattening. The ordinal scheme keeps
// the edge multiset stable across id regeneration.
type EdgeSnapshot struct {
	From        int  `json:"from"`
	To          int  `json:"to"`
	EffectIndex *int `json:"fromEffectIndex"`
}

// Snapshot exports the persisted portion of the board.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Version: SnapshotVersion,
		Tracks:  make([]TrackSnapshot, len(b.tracks)),
	}

	ordinals := make(map[string]int)
	next := 0
	for i, track := range b.tracks {
		ts := TrackSnapshot{Operator: track.Operator, Actions: make([]ActionSnapshot, len(track.Actions))}
		for j, action := range track.Actions {
			ts.Actions[j] = snapshotAction(action)
			ordinals[action.InstanceID] = next
			next++
		}
		snap.Tracks[i] = ts
	}

	snap.Connections = make([]EdgeSnapshot, 0, len(b.connections))
	for _, conn := range b.connections {
		from, okFrom := ordinals[conn.From]
		to, okTo := ordinals[conn.To]
		if !okFrom || !okTo {
			// Dangling edges cannot exist by construction; skip defensively
			// rather than exporting an unresolvable reference.
			continue
		}
		snap.Connections = append(snap.Connections, EdgeSnapshot{
			From:        from,
			To:          to,
			EffectIndex: copyIndex(conn.EffectIndex),
		})
	}
	return snap
}

// Restore replaces the board's persisted state with the snapshot's,
// minting fresh instance ids with a consistent endpoint remap. Validation
// happens before any mutation: a malformed snapshot leaves the board
// exactly as it was and returns an error wrapping domain.ErrDecodeFailed.
// Transient state is reset, matching a freshly opened project.
func (b *Board) Restore(snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: unsupported snapshot version %d", domain.ErrDecodeFailed, snap.Version)
	}

	tracks := make([]domain.Track, len(snap.Tracks))
	var ids []string
	for i, ts := range snap.Tracks {
		track := domain.Track{Operator: ts.Operator, Actions: make([]domain.ActionInstance, len(ts.Actions))}
		for j, as := range ts.Actions {
			inst := restoreAction(as)
			track.Actions[j] = inst
			ids = append(ids, inst.InstanceID)
		}
		tracks[i] = track
	}

	connections := make([]domain.Connection, 0, len(snap.Connections))
	for i, edge := range snap.Connections {
		if edge.From < 0 || edge.From >= len(ids) || edge.To < 0 || edge.To >= len(ids) {
			return fmt.Errorf("%w: connection %d references a missing action", domain.ErrDecodeFailed, i)
		}
		if edge.From == edge.To {
			return fmt.Errorf("%w: connection %d is a self loop", domain.ErrDecodeFailed, i)
		}
		conn := domain.Connection{
			ID:          domain.NewID("conn"),
			From:        ids[edge.From],
			To:          ids[edge.To],
			EffectIndex: copyIndex(edge.EffectIndex),
		}
		for _, existing := range connections {
			if existing.SameEdge(conn) {
				return fmt.Errorf("%w: connection %d duplicates an earlier edge", domain.ErrDecodeFailed, i)
			}
		}
		connections = append(connections, conn)
	}

	b.tracks = tracks
	b.connections = connections
	b.active = NoTrack()
	b.selectedAction = ""
	b.resetLink()
	return nil
}

func snapshotAction(a domain.ActionInstance) ActionSnapshot {
	return ActionSnapshot{
		TemplateID:      a.ID,
		Kind:            a.Kind,
		Name:            a.Name,
		Duration:        a.Duration,
		Cooldown:        a.Cooldown,
		SPCost:          a.SPCost,
		SPGain:          a.SPGain,
		AllowedTypes:    append([]string{}, a.AllowedTypes...),
		PhysicalAnomaly: append([]domain.Anomaly{}, a.PhysicalAnomaly...),
		Offset:          a.Offset,
	}
}

func restoreAction(s ActionSnapshot) domain.ActionInstance {
	return domain.ActionInstance{
		SkillTemplate: domain.SkillTemplate{
			ID:              s.TemplateID,
			Kind:            s.Kind,
			Name:            s.Name,
			Duration:        s.Duration,
			Cooldown:        s.Cooldown,
			SPCost:          s.SPCost,
			SPGain:          s.SPGain,
			AllowedTypes:    append([]string{}, s.AllowedTypes...),
			PhysicalAnomaly: append([]domain.Anomaly{}, s.PhysicalAnomaly...),
		},
		InstanceID: domain.NewID("inst"),
		Offset:     s.Offset,
	}
}
