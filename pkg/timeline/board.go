// Package timeline implements the planner core: the track/roster model, the
// linking state machine, and snapshot export/import. A Board is an explicit
// owned state object; every mutation funnels through its methods and nothing
// here relies on ambient globals.
//
// Board is not safe for concurrent use. The facade in the root package
// serializes access; within a single caller the model is event-driven and
// every operation runs to completion before the next.
package timeline

import (
	"log/slog"
	"sort"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/skills"
)

// DefaultTrackCount is the number of lanes a fresh board pre-allocates.
const DefaultTrackCount = 4

// TrackSelection is the "no active track" vs "active track = operator id"
// variant. The zero value means nothing is selected.
type TrackSelection struct {
	operator string
	ok       bool
}

// SelectedTrack marks the track bound to the given operator as active.
func SelectedTrack(operatorID string) TrackSelection {
	return TrackSelection{operator: operatorID, ok: true}
}

// NoTrack is the empty selection.
func NoTrack() TrackSelection { return TrackSelection{} }

// Operator returns the selected operator id, if any.
func (s TrackSelection) Operator() (string, bool) { return s.operator, s.ok }

// Matches reports whether the selection points at the given operator.
func (s TrackSelection) Matches(operatorID string) bool {
	return s.ok && s.operator == operatorID
}

// Board holds the whole editable model: tracks, placed actions, connections,
// the roster they are resolved against, and the transient UI-adjacent state
// (active track, selected action, drag offset, link session).
type Board struct {
	tracks      []domain.Track
	connections []domain.Connection

	roster []domain.Character
	icons  map[string]string

	active         TrackSelection
	selectedAction string
	dragOffset     float64
	session        domain.LinkSession

	logger *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithTrackCount overrides the number of pre-allocated lanes.
func WithTrackCount(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.tracks = make([]domain.Track, n)
		}
	}
}

// WithLogger sets a structured logger for rejected operations.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates an empty board with unbound tracks.
func New(opts ...Option) *Board {
	b := &Board{
		tracks:  make([]domain.Track, DefaultTrackCount),
		icons:   make(map[string]string),
		session: domain.LinkSession{Phase: domain.LinkIdle},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ApplyDocument replaces the roster and icon database from a freshly loaded
// game-data document. The roster is ordered by rarity descending; ties keep
// their input order (stable sort). Existing tracks and connections are kept:
// a reload only refreshes the reference data.
func (b *Board) ApplyDocument(doc domain.Document) {
	roster := make([]domain.Character, len(doc.Roster))
	copy(roster, doc.Roster)
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].Rarity > roster[j].Rarity
	})

	icons := make(map[string]string, len(doc.Icons))
	for id, ref := range doc.Icons {
		icons[id] = ref
	}

	b.roster = roster
	b.icons = icons
}

// Roster returns the loaded characters, rarity-descending.
func (b *Board) Roster() []domain.Character {
	out := make([]domain.Character, len(b.roster))
	copy(out, b.roster)
	return out
}

// Icons returns the icon database.
func (b *Board) Icons() map[string]string {
	out := make(map[string]string, len(b.icons))
	for id, ref := range b.icons {
		out[id] = ref
	}
	return out
}

// characterByID resolves a roster entry, or nil when absent.
func (b *Board) characterByID(id string) *domain.Character {
	if id == "" {
		return nil
	}
	for i := range b.roster {
		if b.roster[i].ID == id {
			return &b.roster[i]
		}
	}
	return nil
}

// TrackViews merges each track with the display fields of its bound
// character. Unresolved operators fall back to placeholder display values.
func (b *Board) TrackViews() []domain.TrackView {
	views := make([]domain.TrackView, len(b.tracks))
	for i, track := range b.tracks {
		view := domain.TrackView{Track: copyTrack(track), Name: "Unknown", Avatar: "", Rarity: 0}
		if ch := b.characterByID(track.Operator); ch != nil {
			view.Name = ch.Name
			view.Avatar = ch.Avatar
			view.Rarity = ch.Rarity
		}
		views[i] = view
	}
	return views
}

// TrackCount returns the number of lanes.
func (b *Board) TrackCount() int { return len(b.tracks) }

// SelectTrack makes the given operator's track the active one. It clears the
// action selection and aborts any in-progress link gesture.
func (b *Board) SelectTrack(operatorID string) {
	b.active = SelectedTrack(operatorID)
	b.selectedAction = ""
	b.resetLink()
}

// ActiveTrack returns the active operator id, if a track is selected.
func (b *Board) ActiveTrack() (string, bool) { return b.active.Operator() }

// ChangeTrackOperator rebinds a track to a new operator. The binding
// uniqueness invariant is enforced here: an operator already bound to a
// different track is rejected with domain.ErrOperatorInUse and no state
// changes. On success the track's placed actions are discarded, and if the
// active-track pointer referred to the old operator it follows the rebind so
// the same physical lane stays selected.
func (b *Board) ChangeTrackOperator(trackIndex int, oldOperatorID, newOperatorID string) error {
	if trackIndex < 0 || trackIndex >= len(b.tracks) {
		return domain.ErrTrackNotFound
	}
	for i := range b.tracks {
		if i != trackIndex && b.tracks[i].Operator == newOperatorID && newOperatorID != "" {
			b.logger.Warn("operator already in use", "operator", newOperatorID, "track", i)
			return domain.ErrOperatorInUse
		}
	}

	b.tracks[trackIndex].Operator = newOperatorID
	b.tracks[trackIndex].Actions = nil
	if b.active.Matches(oldOperatorID) {
		b.active = SelectedTrack(newOperatorID)
	}
	return nil
}

// SkillLibrary derives the four skills of the active track's operator. An
// empty selection, or an operator missing from the roster, yields an empty
// library.
func (b *Board) SkillLibrary() []domain.SkillTemplate {
	operatorID, ok := b.active.Operator()
	if !ok {
		return []domain.SkillTemplate{}
	}
	return skills.Derive(b.characterByID(operatorID))
}

// PlaceSkill clones the given ability of a track's bound operator onto that
// track and returns the new instance.
func (b *Board) PlaceSkill(trackIndex int, kind domain.AbilityKind) (domain.ActionInstance, error) {
	if trackIndex < 0 || trackIndex >= len(b.tracks) {
		return domain.ActionInstance{}, domain.ErrTrackNotFound
	}
	track := &b.tracks[trackIndex]
	ch := b.characterByID(track.Operator)
	if ch == nil {
		return domain.ActionInstance{}, domain.ErrUnknownOperator
	}

	for _, tmpl := range skills.Derive(ch) {
		if tmpl.Kind == kind {
			inst := skills.Clone(tmpl)
			track.Actions = append(track.Actions, inst)
			return copyAction(inst), nil
		}
	}
	// Derive always yields all four kinds for a known operator.
	return domain.ActionInstance{}, domain.ErrUnknownOperator
}

// UpdateAction merges the patch into the placed action with the given id.
// Unknown ids are a silent no-op: callers only hold ids they got from the
// model, so there is nothing useful to report.
func (b *Board) UpdateAction(instanceID string, patch domain.ActionPatch) {
	if instanceID == "" || patch.IsZero() {
		return
	}
	for t := range b.tracks {
		for a := range b.tracks[t].Actions {
			if b.tracks[t].Actions[a].InstanceID == instanceID {
				patch.Apply(&b.tracks[t].Actions[a])
				return
			}
		}
	}
}

// RemoveAction deletes a placed action and cascades: every connection whose
// endpoint references the removed instance is dropped, and the action
// selection is cleared if it pointed at it. An empty or unknown id is a
// silent no-op.
func (b *Board) RemoveAction(instanceID string) {
	if instanceID == "" {
		return
	}

	// An instance lives on exactly one track, so stop at the first match.
search:
	for t := range b.tracks {
		actions := b.tracks[t].Actions
		for a := range actions {
			if actions[a].InstanceID == instanceID {
				b.tracks[t].Actions = append(actions[:a], actions[a+1:]...)
				break search
			}
		}
	}

	kept := b.connections[:0]
	for _, conn := range b.connections {
		if conn.From != instanceID && conn.To != instanceID {
			kept = append(kept, conn)
		}
	}
	b.connections = kept

	if b.selectedAction == instanceID {
		b.selectedAction = ""
	}
}

// SelectAction toggles the action selection: selecting the already selected
// instance clears it.
func (b *Board) SelectAction(instanceID string) {
	if b.selectedAction == instanceID {
		b.selectedAction = ""
		return
	}
	b.selectedAction = instanceID
}

// SelectedAction returns the selected instance id, if any.
func (b *Board) SelectedAction() (string, bool) {
	return b.selectedAction, b.selectedAction != ""
}

// SetDragOffset records the global drag offset used by the presentation
// layer while a placement gesture is in flight.
func (b *Board) SetDragOffset(offset float64) { b.dragOffset = offset }

// DragOffset returns the global drag offset.
func (b *Board) DragOffset() float64 { return b.dragOffset }

func copyTrack(t domain.Track) domain.Track {
	out := domain.Track{Operator: t.Operator, Actions: make([]domain.ActionInstance, len(t.Actions))}
	for i, a := range t.Actions {
		out.Actions[i] = copyAction(a)
	}
	return out
}

func copyAction(a domain.ActionInstance) domain.ActionInstance {
	out := a
	out.AllowedTypes = append([]string{}, a.AllowedTypes...)
	out.PhysicalAnomaly = append([]domain.Anomaly{}, a.PhysicalAnomaly...)
	return out
}
