package ledger

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// StatusKind is where a transaction sits in the execution pipeline.
type StatusKind byte

const (
	StatusProcessing StatusKind = 0
	StatusProcessed  StatusKind = 1
	StatusFailed     StatusKind = 2
)

// String returns the human-readable status name.
func (k StatusKind) String() string {
	switch k {
	case StatusProcessing:
		return "processing"
	case StatusProcessed:
		return "processed"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", byte(k))
	}
}

// Status is a transaction's execution outcome. Err is set only when
// Kind == StatusFailed.
type Status struct {
	Kind StatusKind
	Err  string
}

// AccountTag is an opaque 32-byte tag the runtime attaches to a processed
// transaction's touched accounts.
type AccountTag [32]byte

// ProcessedTransaction is a runtime transaction together with its execution
// status, the Bitcoin transaction it was anchored in (when anchored), and
// the runtime's account tags.
type ProcessedTransaction struct {
	Transaction RuntimeTransaction
	Status      Status
	BitcoinTxid *[32]byte
	AccountTags []AccountTag
}

// Serialize returns the record's canonical wire bytes:
// runtime_tx_len(u64) | runtime_tx | has_bitcoin_txid(1) | [txid(32)] |
// tags_count(u64) | tags(32 each) | status_tag(1) | [err_len(u64) | err].
func (pt ProcessedTransaction) Serialize() ([]byte, error) {
	txBytes, err := pt.Transaction.Serialize()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize runtime transaction: %w", err)
	}

	out := binary.LittleEndian.AppendUint64(nil, uint64(len(txBytes)))
	out = append(out, txBytes...)

	if pt.BitcoinTxid != nil {
		out = append(out, 1)
		out = append(out, pt.BitcoinTxid[:]...)
	} else {
		out = append(out, 0)
	}

	out = binary.LittleEndian.AppendUint64(out, uint64(len(pt.AccountTags)))
	for _, tag := range pt.AccountTags {
		out = append(out, tag[:]...)
	}

	out = append(out, byte(pt.Status.Kind))
	if pt.Status.Kind == StatusFailed {
		msg := []byte(pt.Status.Err)
		out = binary.LittleEndian.AppendUint64(out, uint64(len(msg)))
		out = append(out, msg...)
	}
	return out, nil
}

// ProcessedTransactionFromSlice decodes a record occupying the whole buffer.
func ProcessedTransactionFromSlice(b []byte) (ProcessedTransaction, error) {
	var pt ProcessedTransaction
	d := newDecoder(b)

	txLen, err := d.u64()
	if err != nil {
		return pt, fmt.Errorf("runtime transaction length: %w", err)
	}
	txBytes, err := d.variable(txLen)
	if err != nil {
		return pt, fmt.Errorf("runtime transaction: %w", err)
	}
	pt.Transaction, err = RuntimeTransactionFromSlice(txBytes)
	if err != nil {
		return pt, err
	}

	hasTxid, err := d.u8()
	if err != nil {
		return pt, fmt.Errorf("bitcoin txid flag: %w", err)
	}
	switch hasTxid {
	case 0:
	case 1:
		raw, err := d.take(32)
		if err != nil {
			return pt, fmt.Errorf("bitcoin txid: %w", err)
		}
		var txid [32]byte
		copy(txid[:], raw)
		pt.BitcoinTxid = &txid
	default:
		return pt, fmt.Errorf("bitcoin txid flag %d: %w", hasTxid, ErrInvalidTag)
	}

	tagCount, err := d.u64()
	if err != nil {
		return pt, fmt.Errorf("account tags count: %w", err)
	}
	if tagCount > uint64(d.remaining())/32 {
		return pt, fmt.Errorf("account tags: %w", ErrLengthOverflow)
	}
	if tagCount > 0 {
		pt.AccountTags = make([]AccountTag, 0, tagCount)
	}
	for i := uint64(0); i < tagCount; i++ {
		raw, err := d.take(32)
		if err != nil {
			return pt, fmt.Errorf("account tag %d: %w", i, err)
		}
		var tag AccountTag
		copy(tag[:], raw)
		pt.AccountTags = append(pt.AccountTags, tag)
	}

	statusTag, err := d.u8()
	if err != nil {
		return pt, fmt.Errorf("status tag: %w", err)
	}
	switch StatusKind(statusTag) {
	case StatusProcessing, StatusProcessed:
		pt.Status.Kind = StatusKind(statusTag)
	case StatusFailed:
		pt.Status.Kind = StatusFailed
		errLen, err := d.u64()
		if err != nil {
			return pt, fmt.Errorf("status error length: %w", err)
		}
		msg, err := d.variable(errLen)
		if err != nil {
			return pt, fmt.Errorf("status error: %w", err)
		}
		if !utf8.Valid(msg) {
			return pt, fmt.Errorf("status error: %w", ErrUtf8Decode)
		}
		pt.Status.Err = string(msg)
	default:
		return pt, fmt.Errorf("status tag %d: %w", statusTag, ErrInvalidTag)
	}
	return pt, nil
}
