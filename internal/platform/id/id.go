package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Entity prefixes keep ids self-describing in logs and payloads.
const (
	PrefixLeague       = "lg"
	PrefixParticipant  = "pt"
	PrefixPick         = "pk"
	PrefixPlayer       = "pl"
	PrefixSubscription = "ps"
)

// New returns a prefixed 16-byte random identifier, e.g. "lg_3f9a...".
func New(prefix string) string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	if prefix == "" {
		return hex.EncodeToString(buf)
	}
	return prefix + "_" + hex.EncodeToString(buf)
}
