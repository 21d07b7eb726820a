package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubkey_RoundTrip(t *testing.T) {
	var p Pubkey
	for i := range p {
		p[i] = byte(i)
	}

	encoded := p.Serialize()
	require.Len(t, encoded, PubkeyLength)

	decoded, err := PubkeyFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestPubkey_Base58RoundTrip(t *testing.T) {
	var p Pubkey
	p[0] = 0xff
	p[31] = 0x01

	decoded, err := PubkeyFromBase58(p.String())
	require.NoError(t, err)
	assert.True(t, p.Equals(decoded))
}

func TestPubkey_FromSliceTooShort(t *testing.T) {
	_, err := PubkeyFromSlice(make([]byte, PubkeyLength-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestAccountMeta_RoundTrip(t *testing.T) {
	meta := AccountMeta{
		Pubkey:     Pubkey{1, 2, 3},
		IsSigner:   true,
		IsWritable: false,
	}

	encoded := meta.Serialize()
	require.Len(t, encoded, AccountMetaLength)
	assert.Equal(t, byte(1), encoded[32])
	assert.Equal(t, byte(0), encoded[33])

	decoded, err := AccountMetaFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, meta, decoded)
}

func TestAccountMeta_FixedStride(t *testing.T) {
	// The stride is the literal 34 bytes, independent of how the host
	// lays out the struct.
	assert.Equal(t, 34, AccountMetaLength)
}

func TestSignature_RoundTrip(t *testing.T) {
	var sig Signature
	for i := range sig {
		sig[i] = byte(64 - i)
	}

	encoded := sig.Serialize()
	require.Len(t, encoded, SignatureLength)

	decoded, err := SignatureFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, sig, decoded)
}

func TestSignature_FromSliceTooShort(t *testing.T) {
	_, err := SignatureFromSlice(make([]byte, SignatureLength-1))
	assert.ErrorIs(t, err, ErrBufferTooShort)
}

func TestUtxoMeta_RoundTrip(t *testing.T) {
	utxo := UtxoMeta{Vout: 7}
	for i := range utxo.Txid {
		utxo.Txid[i] = byte(i * 3)
	}

	encoded := utxo.Serialize()
	require.Len(t, encoded, UtxoMetaLength)

	decoded, err := UtxoMetaFromSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, utxo, decoded)
}

func TestUtxoMeta_FromSliceTooShort(t *testing.T) {
	_, err := UtxoMetaFromSlice(make([]byte, UtxoMetaLength-1))
	assert.ErrorIs(t, err, ErrBufferTooShort)
}
