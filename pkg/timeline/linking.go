package timeline

import "github.com/aretw0/lattice/pkg/domain"

// The linking machine turns the two-step UI gesture (designate a source,
// then a target) into a persisted connection. It has two states, idle and
// linking, and is the only writer of the connection set; every other
// mutation path only deletes from it.

// StartLinking opens a link session from the currently selected action,
// remembering which source effect (if any) the link originates from. With no
// selection the machine stays idle and domain.ErrNoSelection is returned.
//
// Starting while a session is already active silently replaces it: the
// single-slot session matches the "pick a different source, start again"
// interaction, so stacking would only preserve stale state.
func (b *Board) StartLinking(effectIndex *int) error {
	source, ok := b.SelectedAction()
	if !ok {
		return domain.ErrNoSelection
	}
	b.session = domain.LinkSession{
		Phase:       domain.LinkActive,
		SourceID:    source,
		EffectIndex: copyIndex(effectIndex),
	}
	return nil
}

// ConfirmLinking completes the gesture against a target action. Whatever the
// outcome, the session resets to idle.
//
// A self-link (source == target) is rejected with domain.ErrSelfLink, and a
// triple that already has a connection with domain.ErrDuplicateLink; both
// leave the connection set untouched. Confirming while idle is an implicit
// cancel: it returns no connection and no error.
func (b *Board) ConfirmLinking(targetID string) (domain.Connection, error) {
	session := b.session
	b.resetLink()

	if !session.Active() || session.SourceID == "" {
		return domain.Connection{}, nil
	}

	if session.SourceID == targetID {
		b.logger.Warn("rejected self link", "instance", targetID)
		return domain.Connection{}, domain.ErrSelfLink
	}

	candidate := domain.Connection{
		From:        session.SourceID,
		To:          targetID,
		EffectIndex: session.EffectIndex,
	}
	for _, existing := range b.connections {
		if existing.SameEdge(candidate) {
			b.logger.Warn("rejected duplicate link", "from", candidate.From, "to", candidate.To)
			return domain.Connection{}, domain.ErrDuplicateLink
		}
	}

	candidate.ID = domain.NewID("conn")
	b.connections = append(b.connections, candidate)
	return candidate, nil
}

// CancelLinking unconditionally resets the session. The connection set is
// never touched.
func (b *Board) CancelLinking() { b.resetLink() }

// LinkSession returns the current session state.
func (b *Board) LinkSession() domain.LinkSession {
	return domain.LinkSession{
		Phase:       b.session.Phase,
		SourceID:    b.session.SourceID,
		EffectIndex: copyIndex(b.session.EffectIndex),
	}
}

// Connections returns the persisted edges in creation order.
func (b *Board) Connections() []domain.Connection {
	out := make([]domain.Connection, len(b.connections))
	for i, conn := range b.connections {
		conn.EffectIndex = copyIndex(conn.EffectIndex)
		out[i] = conn
	}
	return out
}

// RemoveConnection deletes a single edge by id. Unknown ids are a no-op.
func (b *Board) RemoveConnection(connID string) {
	for i, conn := range b.connections {
		if conn.ID == connID {
			b.connections = append(b.connections[:i], b.connections[i+1:]...)
			return
		}
	}
}

func (b *Board) resetLink() {
	b.session = domain.LinkSession{Phase: domain.LinkIdle}
}

func copyIndex(idx *int) *int {
	if idx == nil {
		return nil
	}
	v := *idx
	return &v
}
