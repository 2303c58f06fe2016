package ports

import "context"

// ScenarioStore keeps published share strings under short slugs so a
// scenario can be passed around as a link instead of a full payload. It is
// a share cache: the timeline model itself is never persisted here.
type ScenarioStore interface {
	// Put stores the share string and returns its slug.
	Put(ctx context.Context, share string) (string, error)

	// Get returns the share string for a slug, or an error wrapping
	// domain.ErrScenarioNotFound.
	Get(ctx context.Context, slug string) (string, error)

	// Delete removes a published scenario. Unknown slugs are a no-op.
	Delete(ctx context.Context, slug string) error
}
