package ports

import (
	"context"

	"github.com/aretw0/lattice/pkg/domain"
)

// RosterSource fetches the static game-data document. Implementations must
// return an error wrapping domain.ErrLoadFailed on a non-success response or
// an unparseable document; callers leave prior roster state untouched on
// failure.
type RosterSource interface {
	Fetch(ctx context.Context) (domain.Document, error)
}
