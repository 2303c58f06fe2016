// Package http exposes the planner operations as a JSON API. The adapter is
// a thin boundary: it decodes requests, calls the planner, and maps domain
// errors to status codes and stable reason codes. The presentation layer
// decides how to surface those reasons to the user.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/lattice"
	"github.com/aretw0/lattice/internal/logging"
	"github.com/aretw0/lattice/pkg/domain"
)

// Planner is the surface this adapter needs from the core.
type Planner interface {
	LoadRoster(ctx context.Context) error
	IsLoading() bool
	Roster() []domain.Character
	Icons() map[string]string

	TrackViews() []domain.TrackView
	SelectTrack(operatorID string)
	ActiveTrack() (string, bool)
	ChangeTrackOperator(trackIndex int, oldOperatorID, newOperatorID string) error
	SkillLibrary() []domain.SkillTemplate
	PlaceSkill(trackIndex int, kind domain.AbilityKind) (domain.ActionInstance, error)

	UpdateAction(instanceID string, patch domain.ActionPatch)
	RemoveAction(instanceID string)
	SelectAction(instanceID string)
	SelectedAction() (string, bool)

	StartLinking(effectIndex *int) error
	ConfirmLinking(targetID string) (domain.Connection, error)
	CancelLinking()
	LinkSession() domain.LinkSession
	Connections() []domain.Connection
	RemoveConnection(connID string)

	ExportShare() (string, error)
	ImportShare(shareStr string) error
	Publish(ctx context.Context) (string, error)
	Resolve(ctx context.Context, slug string) error
}

// Server wires the planner into a chi router.
type Server struct {
	planner Planner
	logger  *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewHandler creates the HTTP handler for the planner.
func NewHandler(planner Planner, opts ...Option) http.Handler {
	s := &Server{planner: planner, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/board", s.getBoard)
	r.Post("/roster/load", s.loadRoster)
	r.Get("/roster", s.getRoster)

	r.Post("/tracks/select", s.selectTrack)
	r.Post("/tracks/{index}/operator", s.changeOperator)
	r.Post("/tracks/{index}/actions", s.placeSkill)
	r.Get("/skills", s.getSkillLibrary)

	r.Patch("/actions/{id}", s.updateAction)
	r.Delete("/actions/{id}", s.removeAction)
	r.Post("/actions/{id}/select", s.selectAction)

	r.Post("/link/start", s.startLinking)
	r.Post("/link/confirm", s.confirmLinking)
	r.Post("/link/cancel", s.cancelLinking)
	r.Delete("/connections/{id}", s.removeConnection)

	r.Get("/share", s.exportShare)
	r.Post("/share", s.importShare)
	r.Post("/scenarios", s.publish)
	r.Get("/scenarios/{slug}", s.getScenario)
	r.Post("/scenarios/{slug}/import", s.importScenario)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// boardResponse is the read-only projection consumed by the presentation
// layer.
type boardResponse struct {
	Loading        bool                   `json:"loading"`
	ActiveTrack    *string                `json:"activeTrack"`
	SelectedAction *string                `json:"selectedAction"`
	Tracks         []domain.TrackView     `json:"tracks"`
	Connections    []domain.Connection    `json:"connections"`
	LinkSession    domain.LinkSession     `json:"linkSession"`
	SkillLibrary   []domain.SkillTemplate `json:"skillLibrary"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": lattice.Version})
}

func (s *Server) getBoard(w http.ResponseWriter, r *http.Request) {
	resp := boardResponse{
		Loading:      s.planner.IsLoading(),
		Tracks:       s.planner.TrackViews(),
		Connections:  s.planner.Connections(),
		LinkSession:  s.planner.LinkSession(),
		SkillLibrary: s.planner.SkillLibrary(),
	}
	if id, ok := s.planner.ActiveTrack(); ok {
		resp.ActiveTrack = &id
	}
	if id, ok := s.planner.SelectedAction(); ok {
		resp.SelectedAction = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) loadRoster(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.LoadRoster(r.Context()); err != nil {
		rosterLoadsTotal.WithLabelValues(outcomeError).Inc()
		s.writeError(w, "loadRoster", err)
		return
	}
	rosterLoadsTotal.WithLabelValues(outcomeOK).Inc()
	writeJSON(w, http.StatusOK, map[string]int{"characters": len(s.planner.Roster())})
}

func (s *Server) getRoster(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"characterRoster": s.planner.Roster(),
		"iconDatabase":    s.planner.Icons(),
	})
}

func (s *Server) selectTrack(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Operator string `json:"operator"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	s.planner.SelectTrack(body.Operator)
	operationsTotal.WithLabelValues("selectTrack", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) changeOperator(w http.ResponseWriter, r *http.Request) {
	index, ok := s.trackIndex(w, r)
	if !ok {
		return
	}
	var body struct {
		Old string `json:"old"`
		New string `json:"new"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	if err := s.planner.ChangeTrackOperator(index, body.Old, body.New); err != nil {
		operationsTotal.WithLabelValues("changeOperator", outcomeRejected).Inc()
		s.writeError(w, "changeOperator", err)
		return
	}
	operationsTotal.WithLabelValues("changeOperator", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) placeSkill(w http.ResponseWriter, r *http.Request) {
	index, ok := s.trackIndex(w, r)
	if !ok {
		return
	}
	var body struct {
		Kind domain.AbilityKind `json:"kind"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	inst, err := s.planner.PlaceSkill(index, body.Kind)
	if err != nil {
		operationsTotal.WithLabelValues("placeSkill", outcomeRejected).Inc()
		s.writeError(w, "placeSkill", err)
		return
	}
	operationsTotal.WithLabelValues("placeSkill", outcomeOK).Inc()
	writeJSON(w, http.StatusCreated, inst)
}

func (s *Server) getSkillLibrary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.SkillLibrary())
}

func (s *Server) updateAction(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "id")

	// Decode into a raw map first so unknown fields are rejected instead of
	// silently merged.
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.badRequest(w, "invalid request body")
		return
	}

	var patch domain.ActionPatch
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &patch,
		ErrorUnused: true,
	})
	if err != nil {
		s.writeError(w, "updateAction", err)
		return
	}
	if err := dec.Decode(raw); err != nil {
		operationsTotal.WithLabelValues("updateAction", outcomeRejected).Inc()
		s.badRequest(w, "unknown patch field: "+err.Error())
		return
	}

	s.planner.UpdateAction(instanceID, patch)
	operationsTotal.WithLabelValues("updateAction", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeAction(w http.ResponseWriter, r *http.Request) {
	s.planner.RemoveAction(chi.URLParam(r, "id"))
	operationsTotal.WithLabelValues("removeAction", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) selectAction(w http.ResponseWriter, r *http.Request) {
	s.planner.SelectAction(chi.URLParam(r, "id"))
	operationsTotal.WithLabelValues("selectAction", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) startLinking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EffectIndex *int `json:"effectIndex"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	if err := s.planner.StartLinking(body.EffectIndex); err != nil {
		operationsTotal.WithLabelValues("startLinking", outcomeRejected).Inc()
		s.writeError(w, "startLinking", err)
		return
	}
	operationsTotal.WithLabelValues("startLinking", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) confirmLinking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Target string `json:"target"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	conn, err := s.planner.ConfirmLinking(body.Target)
	if err != nil {
		operationsTotal.WithLabelValues("confirmLinking", outcomeRejected).Inc()
		s.writeError(w, "confirmLinking", err)
		return
	}
	operationsTotal.WithLabelValues("confirmLinking", outcomeOK).Inc()
	if conn.ID == "" {
		// Confirm while idle is an implicit cancel.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, conn)
}

func (s *Server) cancelLinking(w http.ResponseWriter, r *http.Request) {
	s.planner.CancelLinking()
	operationsTotal.WithLabelValues("cancelLinking", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeConnection(w http.ResponseWriter, r *http.Request) {
	s.planner.RemoveConnection(chi.URLParam(r, "id"))
	operationsTotal.WithLabelValues("removeConnection", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) exportShare(w http.ResponseWriter, r *http.Request) {
	shareStr, err := s.planner.ExportShare()
	if err != nil {
		shareExchangesTotal.WithLabelValues("export", outcomeError).Inc()
		s.writeError(w, "exportShare", err)
		return
	}
	shareExchangesTotal.WithLabelValues("export", outcomeOK).Inc()
	writeJSON(w, http.StatusOK, map[string]string{"share": shareStr})
}

func (s *Server) importShare(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Share string `json:"share"`
	}
	if !s.decode(w, r, &body) {
		return
	}
	if err := s.planner.ImportShare(body.Share); err != nil {
		shareExchangesTotal.WithLabelValues("import", outcomeRejected).Inc()
		s.writeError(w, "importShare", err)
		return
	}
	shareExchangesTotal.WithLabelValues("import", outcomeOK).Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) publish(w http.ResponseWriter, r *http.Request) {
	slug, err := s.planner.Publish(r.Context())
	if err != nil {
		s.writeError(w, "publish", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"slug": slug})
}

func (s *Server) getScenario(w http.ResponseWriter, r *http.Request) {
	// Resolving applies the scenario; a plain GET only previews the payload,
	// so route it through Resolve's store via the planner import path.
	slug := chi.URLParam(r, "slug")
	if err := s.planner.Resolve(r.Context(), slug); err != nil {
		s.writeError(w, "getScenario", err)
		return
	}
	shareStr, err := s.planner.ExportShare()
	if err != nil {
		s.writeError(w, "getScenario", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"share": shareStr})
}

func (s *Server) importScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.planner.Resolve(r.Context(), chi.URLParam(r, "slug")); err != nil {
		s.writeError(w, "importScenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) trackIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.badRequest(w, "invalid track index")
		return 0, false
	}
	return index, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.badRequest(w, "invalid request body")
		return false
	}
	return true
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg, "code": "bad_request"})
}

// writeError maps domain errors to status codes and stable reason codes.
// The three constraint violations keep distinct codes so clients can show a
// specific message for each.
func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	code := "internal"

	switch {
	case errors.Is(err, domain.ErrOperatorInUse):
		status, code = http.StatusConflict, "operator_in_use"
	case errors.Is(err, domain.ErrSelfLink):
		status, code = http.StatusConflict, "self_link"
	case errors.Is(err, domain.ErrDuplicateLink):
		status, code = http.StatusConflict, "duplicate_link"
	case errors.Is(err, domain.ErrNoSelection):
		status, code = http.StatusConflict, "no_selection"
	case errors.Is(err, domain.ErrTrackNotFound):
		status, code = http.StatusNotFound, "track_not_found"
	case errors.Is(err, domain.ErrUnknownOperator):
		status, code = http.StatusNotFound, "unknown_operator"
	case errors.Is(err, domain.ErrScenarioNotFound):
		status, code = http.StatusNotFound, "scenario_not_found"
	case errors.Is(err, domain.ErrDecodeFailed):
		status, code = http.StatusBadRequest, "decode_failed"
	case errors.Is(err, domain.ErrLoadFailed):
		status, code = http.StatusBadGateway, "load_failed"
	case errors.Is(err, lattice.ErrNoScenarioStore):
		status, code = http.StatusNotImplemented, "no_scenario_store"
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "op", op, "error", err)
	} else {
		s.logger.Warn("request rejected", "op", op, "code", code, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error(), "code": code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}
