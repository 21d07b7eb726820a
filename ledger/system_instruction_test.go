package ledger

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_SerializesTo37Bytes(t *testing.T) {
	utxo := UtxoMeta{Vout: 3}
	for i := range utxo.Txid {
		utxo.Txid[i] = byte(i)
	}

	encoded := CreateAccount{Utxo: utxo}.Serialize()
	require.Len(t, encoded, 37)
	assert.Equal(t, byte(0), encoded[0])

	decoded, err := SystemInstructionFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, CreateAccount{Utxo: utxo}, decoded)
}

func TestExtendBytes_RoundTrip(t *testing.T) {
	payload := []byte{9, 8, 7, 6}
	encoded := ExtendBytes{Payload: payload}.Serialize()
	require.Equal(t, byte(1), encoded[0])

	decoded, err := SystemInstructionFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, ExtendBytes{Payload: payload}, decoded)
}

func TestExtendBytes_EmptyPayload(t *testing.T) {
	decoded, err := SystemInstructionFromSlice([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, ExtendBytes{}, decoded)
}

func TestSystemInstruction_InvalidTag(t *testing.T) {
	_, err := SystemInstructionFromSlice([]byte{7, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestSystemInstruction_EmptyBuffer(t *testing.T) {
	_, err := SystemInstructionFromSlice(nil)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestSystemInstruction_CreateAccountTruncated(t *testing.T) {
	encoded := CreateAccount{}.Serialize()
	_, err := SystemInstructionFromSlice(encoded[:20])
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestNewCreateAccountInstruction(t *testing.T) {
	utxo := UtxoMeta{Txid: [32]byte{0xaa}, Vout: 1}
	account := Pubkey{0x42}

	ix := NewCreateAccountInstruction(utxo, account)
	assert.Equal(t, SystemProgramID, ix.ProgramID)
	require.Len(t, ix.Accounts, 1)
	assert.Equal(t, account, ix.Accounts[0].Pubkey)
	assert.True(t, ix.Accounts[0].IsSigner)
	assert.True(t, ix.Accounts[0].IsWritable)

	decoded, err := SystemInstructionFromSlice(ix.Data)
	require.NoError(t, err)
	assert.Equal(t, CreateAccount{Utxo: utxo}, decoded)
}

func TestNewExtendBytesInstruction_FramesPayload(t *testing.T) {
	chunk := []byte{1, 2, 3, 4, 5}
	ix := NewExtendBytesInstruction(Pubkey{0x42}, 128, chunk)

	decoded, err := SystemInstructionFromSlice(ix.Data)
	require.NoError(t, err)
	extend, ok := decoded.(ExtendBytes)
	require.True(t, ok)

	// The caller-level framing is offset(u32) | len(u32) | chunk.
	require.Len(t, extend.Payload, 8+len(chunk))
	assert.Equal(t, uint32(128), binary.LittleEndian.Uint32(extend.Payload[0:4]))
	assert.Equal(t, uint32(len(chunk)), binary.LittleEndian.Uint32(extend.Payload[4:8]))
	assert.Equal(t, chunk, extend.Payload[8:])
}
