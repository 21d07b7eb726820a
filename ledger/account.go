package ledger

import "fmt"

// AccountMetaLength is the fixed 34-byte stride of a serialized AccountMeta:
// pubkey(32) | is_signer(1) | is_writable(1). Decoding always advances by
// this literal stride, never by a host structure size.
const AccountMetaLength = PubkeyLength + 2

// AccountMeta describes how an instruction touches one account.
type AccountMeta struct {
	Pubkey     Pubkey
	IsSigner   bool
	IsWritable bool
}

// Serialize returns the fixed 34-byte wire form.
func (m AccountMeta) Serialize() []byte {
	out := make([]byte, 0, AccountMetaLength)
	out = append(out, m.Pubkey[:]...)
	out = append(out, boolByte(m.IsSigner), boolByte(m.IsWritable))
	return out
}

// AccountMetaFromSlice decodes one AccountMeta from exactly
// AccountMetaLength bytes.
func AccountMetaFromSlice(b []byte) (AccountMeta, error) {
	if len(b) < AccountMetaLength {
		return AccountMeta{}, fmt.Errorf("account meta: %w", ErrBufferTooShort)
	}
	var m AccountMeta
	copy(m.Pubkey[:], b[:PubkeyLength])
	m.IsSigner = b[PubkeyLength] != 0
	m.IsWritable = b[PubkeyLength+1] != 0
	return m, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
