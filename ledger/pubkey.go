package ledger

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeyLength is the serialized size of a public key.
const PubkeyLength = 32

// Pubkey is a 32-byte account or program identifier. The bytes are carried
// verbatim; curve membership is not checked at this layer.
type Pubkey [PubkeyLength]byte

// SystemProgramID is the program id of the builtin system program.
var SystemProgramID = Pubkey{}

// Serialize returns the key's canonical wire bytes.
func (p Pubkey) Serialize() []byte {
	out := make([]byte, PubkeyLength)
	copy(out, p[:])
	return out
}

// String renders the key in base58, the form used in logs and CLI output.
func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

// Equals reports whether two keys hold the same bytes.
func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

// PubkeyFromSlice decodes a key from exactly PubkeyLength bytes.
func PubkeyFromSlice(b []byte) (Pubkey, error) {
	if len(b) < PubkeyLength {
		return Pubkey{}, fmt.Errorf("pubkey: %w", ErrBufferTooShort)
	}
	var p Pubkey
	copy(p[:], b[:PubkeyLength])
	return p, nil
}

// PubkeyFromBase58 parses a base58-encoded key from untrusted input.
func PubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	if len(data) != PubkeyLength {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want %d", len(data), PubkeyLength)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}
