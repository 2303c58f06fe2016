package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID returns a collision-resistant identifier with the given prefix,
// e.g. "inst_9f2c03a481". Uniqueness within the live model is all the
// contract requires; the ids are opaque and carry no ordering.
func NewID(prefix string) string {
	var buf [5]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("domain: rand.Read: " + err.Error())
	}
	return prefix + "_" + hex.EncodeToString(buf[:])
}
