package lattice

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/ports"
	"github.com/aretw0/lattice/pkg/share"
	"github.com/aretw0/lattice/pkg/timeline"
)

// Version is the library release, reported by the CLI.
var Version = "0.1.0"

// ErrNoScenarioStore is returned by Publish/Resolve when no store is
// configured.
var ErrNoScenarioStore = errors.New("no scenario store configured")

// Planner is the high-level entry point. It wraps the board with a mutex so
// the model keeps its single-writer, run-to-completion semantics even when
// driven from an HTTP adapter.
type Planner struct {
	mu    sync.Mutex
	board *timeline.Board

	// loadMu serializes LoadRoster calls: a second load issued while one is
	// in flight waits for the first to finish instead of racing it to a
	// stale overwrite.
	loadMu  sync.Mutex
	loading bool

	source ports.RosterSource
	codec  ports.ShareCodec
	store  ports.ScenarioStore
	logger *slog.Logger

	trackCount int
}

// Option configures a Planner.
type Option func(*Planner)

// WithSource sets the game-data source used by LoadRoster.
func WithSource(source ports.RosterSource) Option {
	return func(pl *Planner) { pl.source = source }
}

// WithCodec substitutes the share codec. Defaults to share.New().
func WithCodec(codec ports.ShareCodec) Option {
	return func(pl *Planner) { pl.codec = codec }
}

// WithScenarioStore enables Publish/Resolve against the given store.
func WithScenarioStore(store ports.ScenarioStore) Option {
	return func(pl *Planner) { pl.store = store }
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(pl *Planner) {
		if logger != nil {
			pl.logger = logger
		}
	}
}

// WithTrackCount overrides the default lane count.
func WithTrackCount(n int) Option {
	return func(pl *Planner) { pl.trackCount = n }
}

// New creates a Planner with an empty board.
func New(opts ...Option) *Planner {
	pl := &Planner{
		codec:      share.New(),
		logger:     logging.NewNop(),
		trackCount: timeline.DefaultTrackCount,
	}
	for _, opt := range opts {
		opt(pl)
	}
	pl.board = timeline.New(
		timeline.WithTrackCount(pl.trackCount),
		timeline.WithLogger(pl.logger),
	)
	return pl
}

// LoadRoster fetches the game-data document and applies it to the board.
// On failure the roster state is left untouched and the error is returned
// after logging. Concurrent calls are serialized; each applies its own
// fetched document in completion order.
func (pl *Planner) LoadRoster(ctx context.Context) error {
	if pl.source == nil {
		return domain.ErrLoadFailed
	}

	pl.loadMu.Lock()
	defer pl.loadMu.Unlock()

	pl.setLoading(true)
	defer pl.setLoading(false)

	doc, err := pl.source.Fetch(ctx)
	if err != nil {
		pl.logger.Error("failed to load game data", "error", err)
		return err
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.ApplyDocument(doc)
	pl.logger.Info("game data loaded", "characters", len(doc.Roster))
	return nil
}

func (pl *Planner) setLoading(v bool) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.loading = v
}

// IsLoading reports whether a roster load is in flight. The presentation
// layer is expected to block roster-dependent controls while true.
func (pl *Planner) IsLoading() bool {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.loading
}

// Roster returns the loaded characters, rarity-descending.
func (pl *Planner) Roster() []domain.Character {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.Roster()
}

// Icons returns the icon database.
func (pl *Planner) Icons() map[string]string {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.Icons()
}

// TrackViews returns each track merged with its operator's display fields.
func (pl *Planner) TrackViews() []domain.TrackView {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.TrackViews()
}

// SelectTrack activates the given operator's track, clearing the action
// selection and aborting any link gesture.
func (pl *Planner) SelectTrack(operatorID string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.SelectTrack(operatorID)
}

// ActiveTrack returns the active operator id, if any.
func (pl *Planner) ActiveTrack() (string, bool) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.ActiveTrack()
}

// ChangeTrackOperator rebinds a track, enforcing operator uniqueness.
func (pl *Planner) ChangeTrackOperator(trackIndex int, oldOperatorID, newOperatorID string) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.ChangeTrackOperator(trackIndex, oldOperatorID, newOperatorID)
}

// SkillLibrary derives the active operator's four skills.
func (pl *Planner) SkillLibrary() []domain.SkillTemplate {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.SkillLibrary()
}

// PlaceSkill clones an ability of a track's operator onto that track.
func (pl *Planner) PlaceSkill(trackIndex int, kind domain.AbilityKind) (domain.ActionInstance, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.PlaceSkill(trackIndex, kind)
}

// UpdateAction merges a patch into a placed action.
func (pl *Planner) UpdateAction(instanceID string, patch domain.ActionPatch) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.UpdateAction(instanceID, patch)
}

// RemoveAction deletes a placed action and every connection touching it.
func (pl *Planner) RemoveAction(instanceID string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.RemoveAction(instanceID)
}

// SelectAction toggles the action selection.
func (pl *Planner) SelectAction(instanceID string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.SelectAction(instanceID)
}

// SelectedAction returns the selected instance id, if any.
func (pl *Planner) SelectedAction() (string, bool) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.SelectedAction()
}

// SetDragOffset records the global drag offset.
func (pl *Planner) SetDragOffset(offset float64) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.SetDragOffset(offset)
}

// DragOffset returns the global drag offset.
func (pl *Planner) DragOffset() float64 {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.DragOffset()
}

// StartLinking opens a link session from the selected action.
func (pl *Planner) StartLinking(effectIndex *int) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.StartLinking(effectIndex)
}

// ConfirmLinking completes the link gesture against a target.
func (pl *Planner) ConfirmLinking(targetID string) (domain.Connection, error) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.ConfirmLinking(targetID)
}

// CancelLinking resets the link session.
func (pl *Planner) CancelLinking() {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.CancelLinking()
}

// LinkSession returns the link machine state.
func (pl *Planner) LinkSession() domain.LinkSession {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.LinkSession()
}

// Connections returns the persisted edges.
func (pl *Planner) Connections() []domain.Connection {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.Connections()
}

// RemoveConnection deletes a single edge.
func (pl *Planner) RemoveConnection(connID string) {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.board.RemoveConnection(connID)
}

// Snapshot exports the persisted board state.
func (pl *Planner) Snapshot() timeline.Snapshot {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return pl.board.Snapshot()
}

// ExportShare encodes the current board as a share string.
func (pl *Planner) ExportShare() (string, error) {
	return pl.codec.Encode(pl.Snapshot())
}

// ImportShare decodes a share string and replaces the board state. Any
// failure leaves the model unchanged.
func (pl *Planner) ImportShare(shareStr string) error {
	snap, err := pl.codec.Decode(shareStr)
	if err != nil {
		pl.logger.Warn("rejected share string", "error", err)
		return err
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	if err := pl.board.Restore(snap); err != nil {
		pl.logger.Warn("rejected share snapshot", "error", err)
		return err
	}
	return nil
}

// Publish exports the board and stores the share string under a short slug.
func (pl *Planner) Publish(ctx context.Context) (string, error) {
	if pl.store == nil {
		return "", ErrNoScenarioStore
	}
	shareStr, err := pl.ExportShare()
	if err != nil {
		return "", err
	}
	return pl.store.Put(ctx, shareStr)
}

// Resolve fetches a published scenario by slug and imports it.
func (pl *Planner) Resolve(ctx context.Context, slug string) error {
	if pl.store == nil {
		return ErrNoScenarioStore
	}
	shareStr, err := pl.store.Get(ctx, slug)
	if err != nil {
		return err
	}
	return pl.ImportShare(shareStr)
}
