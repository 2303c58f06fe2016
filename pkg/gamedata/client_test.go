package gamedata_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/gamedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentJSON = `{
	"characterRoster": [
		{"id": "op_ash", "name": "Ash", "rarity": 5, "skill_duration": 3},
		{"id": "op_frost", "name": "Frost", "rarity": 3}
	],
	"ICON_DATABASE": {"blaze": "icons/blaze.webp"}
}`

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(documentJSON))
	}))
	defer srv.Close()

	client := gamedata.NewClient(srv.URL + gamedata.DefaultPath)
	doc, err := client.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.Roster, 2)
	assert.Equal(t, "op_ash", doc.Roster[0].ID)
	assert.Equal(t, 5, doc.Roster[0].Rarity)
	assert.Equal(t, 3.0, doc.Roster[0].SkillDuration)
	assert.Equal(t, "icons/blaze.webp", doc.Icons["blaze"])
}

func TestClient_FetchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := gamedata.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
}

func TestClient_FetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"characterRoster": [`))
	}))
	defer srv.Close()

	client := gamedata.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
}

func TestClient_FetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := gamedata.NewClient(srv.URL)
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
}

func TestClient_FetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := gamedata.NewClient(srv.URL)
	_, err := client.Fetch(ctx)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)
}

func TestStatic(t *testing.T) {
	doc := domain.Document{Roster: []domain.Character{{ID: "op_x"}}}

	got, err := gamedata.NewStatic(doc).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	boom := errors.New("boom")
	_, err = gamedata.NewFailing(boom).Fetch(context.Background())
	assert.ErrorIs(t, err, boom)
}
