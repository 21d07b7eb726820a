package ledger

import (
	"encoding/binary"
	"fmt"
)

// Transaction limits.
const (
	// MaxTransactionSize is the transport ceiling for a fully assembled
	// transaction. Exceeding it is a rejection, never a truncation.
	MaxTransactionSize = 10240

	// MaxTransactionSignatures is the most signatures a transaction may
	// carry; the wire count is one byte.
	MaxTransactionSignatures = 255
)

// RuntimeTransaction is a message plus the signatures authorizing it,
// ready for submission to the ledger.
type RuntimeTransaction struct {
	Version    uint32
	Signatures []Signature
	Message    Message
}

// NewRuntimeTransaction builds a transaction, rejecting signature lists
// that cannot be expressed in the one-byte wire count.
func NewRuntimeTransaction(version uint32, signatures []Signature, message Message) (RuntimeTransaction, error) {
	if len(signatures) > MaxTransactionSignatures {
		return RuntimeTransaction{}, fmt.Errorf("too many signatures: got %d, max %d", len(signatures), MaxTransactionSignatures)
	}
	return RuntimeTransaction{Version: version, Signatures: signatures, Message: message}, nil
}

// Serialize returns the transaction's canonical wire bytes:
// version(u32,4) | signatures_count(u8) | signatures(64 each) | message.
// Assembled forms larger than MaxTransactionSize are rejected.
func (tx RuntimeTransaction) Serialize() ([]byte, error) {
	out := binary.LittleEndian.AppendUint32(nil, tx.Version)
	out = append(out, byte(len(tx.Signatures)))
	for _, sig := range tx.Signatures {
		out = append(out, sig[:]...)
	}
	out = append(out, tx.Message.Serialize()...)
	if len(out) > MaxTransactionSize {
		return nil, fmt.Errorf("serialized transaction is %d bytes, exceeds limit of %d", len(out), MaxTransactionSize)
	}
	return out, nil
}

// TxID returns the transaction's content-addressed identifier.
func (tx RuntimeTransaction) TxID() (string, error) {
	serialized, err := tx.Serialize()
	if err != nil {
		return "", err
	}
	return canonicalID(serialized), nil
}

// RuntimeTransactionFromSlice decodes a transaction occupying the whole
// buffer.
func RuntimeTransactionFromSlice(b []byte) (RuntimeTransaction, error) {
	return decodeRuntimeTransaction(newDecoder(b))
}

// decodeRuntimeTransaction reads one self-delimiting transaction from d.
func decodeRuntimeTransaction(d *decoder) (RuntimeTransaction, error) {
	var tx RuntimeTransaction

	version, err := d.u32()
	if err != nil {
		return tx, fmt.Errorf("transaction version: %w", err)
	}
	tx.Version = version

	sigCount, err := d.u8()
	if err != nil {
		return tx, fmt.Errorf("transaction signatures count: %w", err)
	}
	if sigCount > 0 {
		tx.Signatures = make([]Signature, 0, sigCount)
	}
	for i := 0; i < int(sigCount); i++ {
		raw, err := d.take(SignatureLength)
		if err != nil {
			return tx, fmt.Errorf("transaction signature %d: %w", i, err)
		}
		var sig Signature
		copy(sig[:], raw)
		tx.Signatures = append(tx.Signatures, sig)
	}

	tx.Message, err = decodeMessage(d)
	if err != nil {
		return tx, err
	}
	return tx, nil
}
