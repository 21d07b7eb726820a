package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInstruction(t *testing.T) Instruction {
	t.Helper()
	ix, err := NewInstruction(
		Pubkey{0xaa},
		[]AccountMeta{
			{Pubkey: Pubkey{1}, IsSigner: true, IsWritable: true},
			{Pubkey: Pubkey{2}, IsSigner: false, IsWritable: true},
		},
		[]byte{0xde, 0xad, 0xbe, 0xef},
	)
	require.NoError(t, err)
	return ix
}

func TestInstruction_RoundTrip(t *testing.T) {
	ix := testInstruction(t)

	encoded := ix.Serialize()
	decoded, err := InstructionFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, ix, decoded)
}

func TestInstruction_RoundTripEmpty(t *testing.T) {
	ix, err := NewInstruction(Pubkey{0x01}, nil, nil)
	require.NoError(t, err)

	encoded := ix.Serialize()
	// program_id(32) | count(1) | data_len(8)
	require.Len(t, encoded, 41)

	decoded, err := InstructionFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, ix, decoded)
}

func TestInstruction_MaxAccountsRoundTrip(t *testing.T) {
	accounts := make([]AccountMeta, MaxInstructionAccounts)
	for i := range accounts {
		accounts[i] = AccountMeta{Pubkey: Pubkey{byte(i), byte(i >> 8)}}
	}

	ix, err := NewInstruction(Pubkey{0xcc}, accounts, []byte{1})
	require.NoError(t, err)

	decoded, err := InstructionFromSlice(ix.Serialize())
	require.NoError(t, err)
	assert.Len(t, decoded.Accounts, MaxInstructionAccounts)
	assert.Equal(t, ix, decoded)
}

func TestInstruction_TooManyAccountsRejected(t *testing.T) {
	accounts := make([]AccountMeta, MaxInstructionAccounts+1)
	_, err := NewInstruction(Pubkey{}, accounts, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many accounts")
}

func TestInstruction_DecodeTruncated(t *testing.T) {
	encoded := testInstruction(t).Serialize()

	// Every strictly shorter prefix must fail with a typed error, never
	// panic.
	for i := 0; i < len(encoded); i++ {
		_, err := InstructionFromSlice(encoded[:i])
		require.Error(t, err, "prefix of %d bytes", i)
		ok := errors.Is(err, ErrBufferTooShort) || errors.Is(err, ErrLengthOverflow)
		assert.True(t, ok, "prefix of %d bytes: %v", i, err)
	}
}

func TestInstruction_DecodeDataLengthOverflow(t *testing.T) {
	ix := testInstruction(t)
	encoded := ix.Serialize()

	// Bump the declared data length beyond the remaining buffer.
	lenOffset := PubkeyLength + 1 + len(ix.Accounts)*AccountMetaLength
	encoded[lenOffset] = 0xff

	_, err := InstructionFromSlice(encoded)
	assert.ErrorIs(t, err, ErrLengthOverflow)
}

func TestInstruction_HashDeterministic(t *testing.T) {
	ix := testInstruction(t)
	assert.Equal(t, ix.Hash(), ix.Hash())
	assert.Len(t, ix.Hash(), 64)
}

func TestInstruction_HashChangesWithContent(t *testing.T) {
	ix := testInstruction(t)
	other := testInstruction(t)
	other.Data[0] ^= 0x01

	assert.NotEqual(t, ix.Hash(), other.Hash())
}
