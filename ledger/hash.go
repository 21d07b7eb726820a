package ledger

import (
	"crypto/sha256"
	"encoding/hex"
)

// canonicalID computes the content-addressed identifier of a serialized
// entity: SHA-256 over the wire bytes, hex-encoded, then SHA-256 over the
// UTF-8 bytes of that hex string. The second pass runs over the hex text
// rather than the raw digest; every implementation on the network hashes
// this way, so the convention is load-bearing and must not be collapsed
// into a binary double SHA-256.
func canonicalID(serialized []byte) string {
	first := sha256.Sum256(serialized)
	hexed := hex.EncodeToString(first[:])
	second := sha256.Sum256([]byte(hexed))
	return hex.EncodeToString(second[:])
}
