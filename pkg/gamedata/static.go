package gamedata

import (
	"context"

	"github.com/aretw0/lattice/pkg/domain"
)

// Static serves a fixed document from memory. Useful for tests and for
// embedding a bundled dataset.
type Static struct {
	doc domain.Document
	err error
}

// NewStatic returns a source that always yields doc.
func NewStatic(doc domain.Document) *Static {
	return &Static{doc: doc}
}

// NewFailing returns a source that always fails with err. Tests use it to
// exercise load-failure paths.
func NewFailing(err error) *Static {
	return &Static{err: err}
}

// Fetch implements ports.RosterSource.
func (s *Static) Fetch(ctx context.Context) (domain.Document, error) {
	if s.err != nil {
		return domain.Document{}, s.err
	}
	return s.doc, nil
}
