package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransaction(t *testing.T) RuntimeTransaction {
	t.Helper()
	tx, err := NewRuntimeTransaction(1, []Signature{{0xab}, {0xcd}}, testMessage(t))
	require.NoError(t, err)
	return tx
}

func TestRuntimeTransaction_RoundTrip(t *testing.T) {
	tx := testTransaction(t)

	encoded, err := tx.Serialize()
	require.NoError(t, err)

	decoded, err := RuntimeTransactionFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
}

func TestRuntimeTransaction_TooManySignaturesRejected(t *testing.T) {
	sigs := make([]Signature, MaxTransactionSignatures+1)
	_, err := NewRuntimeTransaction(1, sigs, Message{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many signatures")
}

func TestRuntimeTransaction_SizeCeilingRejected(t *testing.T) {
	// A single instruction with a data payload larger than the transport
	// ceiling must be rejected at serialization, not truncated.
	ix, err := NewInstruction(Pubkey{}, nil, make([]byte, MaxTransactionSize))
	require.NoError(t, err)
	msg, err := NewMessage(nil, []Instruction{ix})
	require.NoError(t, err)
	tx, err := NewRuntimeTransaction(0, nil, msg)
	require.NoError(t, err)

	_, err = tx.Serialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")

	_, err = tx.TxID()
	assert.Error(t, err)
}

func TestRuntimeTransaction_SizeCeilingBoundary(t *testing.T) {
	// Fixed overhead: version(4) | sig_count(1) | signer_count(1) |
	// ix_count(1) | program_id(32) | accounts_count(1) | data_len(8).
	overhead := 4 + 1 + 1 + 1 + PubkeyLength + 1 + 8
	ix, err := NewInstruction(Pubkey{}, nil, make([]byte, MaxTransactionSize-overhead))
	require.NoError(t, err)
	msg, err := NewMessage(nil, []Instruction{ix})
	require.NoError(t, err)
	tx, err := NewRuntimeTransaction(0, nil, msg)
	require.NoError(t, err)

	encoded, err := tx.Serialize()
	require.NoError(t, err)
	assert.Len(t, encoded, MaxTransactionSize)
}

func TestRuntimeTransaction_TxIDDeterministic(t *testing.T) {
	tx := testTransaction(t)

	first, err := tx.TxID()
	require.NoError(t, err)
	second, err := tx.TxID()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestRuntimeTransaction_TxIDChangesWithSignature(t *testing.T) {
	tx := testTransaction(t)
	baseline, err := tx.TxID()
	require.NoError(t, err)

	tx.Signatures[0][0] ^= 0x01
	mutated, err := tx.TxID()
	require.NoError(t, err)

	assert.NotEqual(t, baseline, mutated)
}

func TestRuntimeTransaction_DecodeTruncated(t *testing.T) {
	encoded, err := testTransaction(t).Serialize()
	require.NoError(t, err)

	for i := 0; i < len(encoded); i++ {
		_, err := RuntimeTransactionFromSlice(encoded[:i])
		require.Error(t, err, "prefix of %d bytes", i)
		ok := errors.Is(err, ErrBufferTooShort) || errors.Is(err, ErrLengthOverflow)
		assert.True(t, ok, "prefix of %d bytes: %v", i, err)
	}
}
