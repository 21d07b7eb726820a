package ledger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// UtxoMetaLength is the serialized size of a Bitcoin outpoint reference:
// txid(32) | vout(u32,4).
const UtxoMetaLength = 36

// UtxoMeta references the Bitcoin output an account is anchored to. The
// txid bytes are carried exactly as supplied; no byte-order normalization
// happens here.
type UtxoMeta struct {
	Txid [32]byte
	Vout uint32
}

// Serialize returns the fixed 36-byte wire form.
func (u UtxoMeta) Serialize() []byte {
	out := make([]byte, 0, UtxoMetaLength)
	out = append(out, u.Txid[:]...)
	out = binary.LittleEndian.AppendUint32(out, u.Vout)
	return out
}

// String renders the outpoint as txid:vout with the txid hex-encoded.
func (u UtxoMeta) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(u.Txid[:]), u.Vout)
}

// UtxoMetaFromSlice decodes an outpoint from exactly UtxoMetaLength bytes.
func UtxoMetaFromSlice(b []byte) (UtxoMeta, error) {
	if len(b) < UtxoMetaLength {
		return UtxoMeta{}, fmt.Errorf("utxo meta: %w", ErrBufferTooShort)
	}
	var u UtxoMeta
	copy(u.Txid[:], b[:32])
	u.Vout = binary.LittleEndian.Uint32(b[32:UtxoMetaLength])
	return u, nil
}
