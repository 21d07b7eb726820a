package ledger

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// SignatureLength is the serialized size of a Schnorr signature.
const SignatureLength = 64

// Signature is a 64-byte Schnorr signature carried verbatim.
type Signature [SignatureLength]byte

// Serialize returns the signature's canonical wire bytes.
func (s Signature) Serialize() []byte {
	out := make([]byte, SignatureLength)
	copy(out, s[:])
	return out
}

// String renders the signature in base58.
func (s Signature) String() string {
	return base58.Encode(s[:])
}

// SignatureFromSlice decodes a signature from exactly SignatureLength bytes.
func SignatureFromSlice(b []byte) (Signature, error) {
	if len(b) < SignatureLength {
		return Signature{}, fmt.Errorf("signature: %w", ErrBufferTooShort)
	}
	var s Signature
	copy(s[:], b[:SignatureLength])
	return s, nil
}
