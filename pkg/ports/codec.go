package ports

import "github.com/aretw0/lattice/pkg/timeline"

// ShareCodec converts board snapshots to and from a compact string safe for
// URLs and clipboards.
//
// Contract: Decode(Encode(snap)) must reconstruct the same track operator
// bindings in the same order, the same action field values per track, and
// the same multiset of connection triples. Encoding need not be
// byte-stable; meaning is what round-trips. Decode must reject malformed
// input with an error wrapping domain.ErrDecodeFailed and never return a
// partially decoded snapshot.
type ShareCodec interface {
	Encode(snap timeline.Snapshot) (string, error)
	Decode(share string) (timeline.Snapshot, error)
}
