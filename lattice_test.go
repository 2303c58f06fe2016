package lattice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/pkg/adapters/memory"
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/gamedata"
)

func rosterDocument() domain.Document {
	return domain.Document{
		Roster: []domain.Character{
			{ID: "op_frost", Name: "Frost", Rarity: 3, SkillDuration: 2},
			{ID: "op_ash", Name: "Ash", Rarity: 5, SkillDuration: 3},
		},
		Icons: map[string]string{"blaze": "icons/blaze.webp"},
	}
}

// newPlanner loads the test roster and binds the first two tracks.
func newPlanner(t *testing.T, opts ...lattice.Option) *lattice.Planner {
	t.Helper()
	opts = append([]lattice.Option{lattice.WithSource(gamedata.NewStatic(rosterDocument()))}, opts...)
	pl := lattice.New(opts...)
	require.NoError(t, pl.LoadRoster(context.Background()))
	require.NoError(t, pl.ChangeTrackOperator(0, "", "op_ash"))
	require.NoError(t, pl.ChangeTrackOperator(1, "", "op_frost"))
	return pl
}

func TestPlanner_LoadRoster(t *testing.T) {
	pl := lattice.New(lattice.WithSource(gamedata.NewStatic(rosterDocument())))

	require.NoError(t, pl.LoadRoster(context.Background()))

	roster := pl.Roster()
	require.Len(t, roster, 2)
	assert.Equal(t, "op_ash", roster[0].ID, "rarity-descending order")
	assert.False(t, pl.IsLoading())
}

func TestPlanner_LoadRosterWithoutSource(t *testing.T) {
	pl := lattice.New()
	assert.ErrorIs(t, pl.LoadRoster(context.Background()), domain.ErrLoadFailed)
}

func TestPlanner_LoadRosterFailureKeepsState(t *testing.T) {
	src := &flakySource{doc: rosterDocument()}
	pl := lattice.New(lattice.WithSource(src))
	require.NoError(t, pl.LoadRoster(context.Background()))
	require.Len(t, pl.Roster(), 2)

	src.fail = true
	err := pl.LoadRoster(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
	assert.Len(t, pl.Roster(), 2, "failed reload keeps the prior roster")
	assert.False(t, pl.IsLoading())
}

type flakySource struct {
	doc  domain.Document
	fail bool
}

func (s *flakySource) Fetch(ctx context.Context) (domain.Document, error) {
	if s.fail {
		return domain.Document{}, domain.ErrLoadFailed
	}
	return s.doc, nil
}

func TestPlanner_PlanningFlow(t *testing.T) {
	pl := newPlanner(t)

	pl.SelectTrack("op_ash")
	library := pl.SkillLibrary()
	require.Len(t, library, 4)

	i1, err := pl.PlaceSkill(0, domain.AbilitySkill)
	require.NoError(t, err)
	i2, err := pl.PlaceSkill(1, domain.AbilitySkill)
	require.NoError(t, err)

	offset := 2.5
	pl.UpdateAction(i1.InstanceID, domain.ActionPatch{Offset: &offset})

	pl.SelectAction(i1.InstanceID)
	require.NoError(t, pl.StartLinking(nil))
	conn, err := pl.ConfirmLinking(i2.InstanceID)
	require.NoError(t, err)
	assert.Equal(t, i1.InstanceID, conn.From)

	views := pl.TrackViews()
	assert.Equal(t, 2.5, views[0].Actions[0].Offset)
	assert.Len(t, pl.Connections(), 1)
}

func TestPlanner_ShareRoundTrip(t *testing.T) {
	pl := newPlanner(t)
	i1, err := pl.PlaceSkill(0, domain.AbilitySkill)
	require.NoError(t, err)
	i2, err := pl.PlaceSkill(1, domain.AbilitySkill)
	require.NoError(t, err)

	pl.SelectAction(i1.InstanceID)
	require.NoError(t, pl.StartLinking(nil))
	_, err = pl.ConfirmLinking(i2.InstanceID)
	require.NoError(t, err)

	shareStr, err := pl.ExportShare()
	require.NoError(t, err)

	other := newPlanner(t)
	require.NoError(t, other.ImportShare(shareStr))

	views := other.TrackViews()
	assert.Equal(t, "op_ash", views[0].Operator)
	assert.Equal(t, "Ash", views[0].Name, "imported bindings resolve against the local roster")
	require.Len(t, views[0].Actions, 1)
	assert.NotEqual(t, i1.InstanceID, views[0].Actions[0].InstanceID, "import mints fresh ids")
	assert.Len(t, other.Connections(), 1)
}

func TestPlanner_ImportShareRejectsGarbage(t *testing.T) {
	pl := newPlanner(t)
	_, err := pl.PlaceSkill(0, domain.AbilitySkill)
	require.NoError(t, err)
	before := pl.Snapshot()

	err = pl.ImportShare("not-a-share-string")
	assert.ErrorIs(t, err, domain.ErrDecodeFailed)
	assert.Equal(t, before, pl.Snapshot(), "rejected import leaves the board unchanged")
}

func TestPlanner_PublishResolve(t *testing.T) {
	store := memory.NewStore()
	pl := newPlanner(t, lattice.WithScenarioStore(store))
	_, err := pl.PlaceSkill(0, domain.AbilityUltimate)
	require.NoError(t, err)

	slug, err := pl.Publish(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, slug)

	other := newPlanner(t, lattice.WithScenarioStore(store))
	require.NoError(t, other.Resolve(context.Background(), slug))

	views := other.TrackViews()
	require.Len(t, views[0].Actions, 1)
	assert.Equal(t, domain.AbilityUltimate, views[0].Actions[0].Kind)

	err = other.Resolve(context.Background(), "missing-slug")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestPlanner_PublishResolveWithoutStore(t *testing.T) {
	pl := newPlanner(t)

	_, err := pl.Publish(context.Background())
	assert.ErrorIs(t, err, lattice.ErrNoScenarioStore)
	assert.ErrorIs(t, pl.Resolve(context.Background(), "any"), lattice.ErrNoScenarioStore)
}

func TestPlanner_OperatorUniquenessAcrossFacade(t *testing.T) {
	pl := newPlanner(t)

	err := pl.ChangeTrackOperator(2, "", "op_ash")
	assert.ErrorIs(t, err, domain.ErrOperatorInUse)

	views := pl.TrackViews()
	assert.Equal(t, "op_ash", views[0].Operator)
	assert.Empty(t, views[2].Operator)
}

func TestPlanner_ErrorsAreDistinct(t *testing.T) {
	pl := newPlanner(t)

	assert.ErrorIs(t, pl.StartLinking(nil), domain.ErrNoSelection)

	i1, err := pl.PlaceSkill(0, domain.AbilitySkill)
	require.NoError(t, err)
	pl.SelectAction(i1.InstanceID)
	require.NoError(t, pl.StartLinking(nil))
	_, err = pl.ConfirmLinking(i1.InstanceID)
	assert.ErrorIs(t, err, domain.ErrSelfLink)
	assert.NotErrorIs(t, err, domain.ErrDuplicateLink)
	assert.NotErrorIs(t, errors.New("other"), domain.ErrSelfLink)
}
