// Package share implements the compact share-string codec: a versioned JSON
// snapshot, deflate-compressed and base64url-encoded, suitable for embedding
// in a URL query parameter or the clipboard.
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/aretw0/lattice/pkg/timeline"
)

// prefix marks the codec generation. Decoders reject strings without it, so
// a future layout change can coexist with old links.
const prefix = "L1."

// QueryParam is the URL query key share links use for the payload.
const QueryParam = "scenario"

// Codec is the default ShareCodec implementation.
type Codec struct{}

// New returns the default codec.
func New() *Codec { return &Codec{} }

// Encode serializes the snapshot. The output is URL-safe without further
// escaping.
func (c *Codec) Encode(snap timeline.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("share: marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("share: init compressor: %w", err)
	}
	if _, err := zw.Write(payload); err != nil {
		return "", fmt.Errorf("share: compress snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("share: flush compressor: %w", err)
	}

	return prefix + base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. Any malformed input fails with an error wrapping
// domain.ErrDecodeFailed; a partially decoded snapshot is never returned.
func (c *Codec) Decode(shareStr string) (timeline.Snapshot, error) {
	raw, ok := strings.CutPrefix(shareStr, prefix)
	if !ok || raw == "" {
		return timeline.Snapshot{}, fmt.Errorf("%w: missing %q prefix", domain.ErrDecodeFailed, prefix)
	}

	compressed, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return timeline.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}

	zr := flate.NewReader(bytes.NewReader(compressed))
	defer zr.Close()
	payload, err := io.ReadAll(io.LimitReader(zr, maxSnapshotBytes+1))
	if err != nil {
		return timeline.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}
	if len(payload) > maxSnapshotBytes {
		return timeline.Snapshot{}, fmt.Errorf("%w: snapshot exceeds %d bytes", domain.ErrDecodeFailed, maxSnapshotBytes)
	}

	var snap timeline.Snapshot
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return timeline.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrDecodeFailed, err)
	}
	return snap, nil
}

// maxSnapshotBytes bounds decompression so a hostile share string cannot
// balloon memory.
const maxSnapshotBytes = 1 << 20

// Link builds a shareable URL by attaching the encoded payload to the given
// base URL under QueryParam.
func Link(baseURL, shareStr string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("share: parse base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, shareStr)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FromLink extracts the share payload from a URL, if present.
func FromLink(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	payload := u.Query().Get(QueryParam)
	return payload, payload != ""
}
