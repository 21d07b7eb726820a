// Package bip322 implements BIP-322 generic message signing and
// verification for Taproot key-spend addresses. A signature proves control
// of a key by signing a virtual Bitcoin transaction that can never be
// broadcast; nothing here touches the network.
package bip322

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SignatureSize is the length of a raw Schnorr signature.
const SignatureSize = 64

// messageTag is the BIP-340-style domain separation tag for signed
// messages.
var messageTag = []byte("BIP0322-signed-message")

// MessageHash returns the tagged hash of a message:
// SHA256(SHA256(tag) || SHA256(tag) || msg).
func MessageHash(message []byte) []byte {
	return chainhash.TaggedHash(messageTag, message)[:]
}

// TaprootAddress derives the key-spend-only Taproot address for the given
// internal key, applying the key tweak with no script-path merkle root.
func TaprootAddress(pubKey *btcec.PublicKey, params *chaincfg.Params) (*btcutil.AddressTaproot, error) {
	outputKey := txscript.ComputeTaprootKeyNoScript(pubKey)
	addr, err := btcutil.NewAddressTaproot(schnorr.SerializePubKey(outputKey), params)
	if err != nil {
		return nil, fmt.Errorf("failed to derive taproot address: %w", err)
	}
	return addr, nil
}

// BuildToSpend constructs the deterministic virtual transaction that
// commits to (address, message): version 0, a single input spending the
// null outpoint with scriptSig OP_0 <message_hash> and sequence 0, and a
// single zero-value output paying the address.
func BuildToSpend(addr btcutil.Address, message []byte) (*wire.MsgTx, error) {
	pkScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to build output script: %w", err)
	}

	scriptSig, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(MessageHash(message)).
		Script()
	if err != nil {
		return nil, fmt.Errorf("failed to build scriptSig: %w", err)
	}

	tx := wire.NewMsgTx(0)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex)
	txIn := wire.NewTxIn(prevOut, scriptSig, nil)
	txIn.Sequence = 0
	tx.AddTxIn(txIn)
	tx.AddTxOut(wire.NewTxOut(0, pkScript))
	return tx, nil
}

// BuildToSign constructs the virtual spend of to_spend's output 0 as a
// partially-signed transaction: empty scriptSig, sequence 0, a single
// zero-value OP_RETURN output, the spent output attached as the witness
// utxo, and the supplied witness (when non-empty) attached as the
// finalized witness.
func BuildToSign(toSpend *wire.MsgTx, witness wire.TxWitness) (*psbt.Packet, error) {
	tx := wire.NewMsgTx(0)
	prevHash := toSpend.TxHash()
	txIn := wire.NewTxIn(wire.NewOutPoint(&prevHash, 0), nil, nil)
	txIn.Sequence = 0
	tx.AddTxIn(txIn)

	opReturn, err := txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN).Script()
	if err != nil {
		return nil, fmt.Errorf("failed to build op_return script: %w", err)
	}
	tx.AddTxOut(wire.NewTxOut(0, opReturn))

	packet, err := psbt.NewFromUnsignedTx(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap to_sign transaction: %w", err)
	}
	packet.Inputs[0].WitnessUtxo = toSpend.TxOut[0]

	if len(witness) > 0 {
		serialized, err := serializeWitness(witness)
		if err != nil {
			return nil, err
		}
		packet.Inputs[0].FinalScriptWitness = serialized
	}
	return packet, nil
}

// serializeWitness encodes a witness stack in wire format: an item count
// followed by length-prefixed items.
func serializeWitness(witness wire.TxWitness) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarInt(&buf, 0, uint64(len(witness))); err != nil {
		return nil, fmt.Errorf("failed to serialize witness count: %w", err)
	}
	for _, item := range witness {
		if err := wire.WriteVarBytes(&buf, 0, item); err != nil {
			return nil, fmt.Errorf("failed to serialize witness item: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// taprootOnly rejects anything that is not a version-1 witness address
// with a 32-byte program.
func taprootOnly(addr btcutil.Address) (*btcutil.AddressTaproot, error) {
	taproot, ok := addr.(*btcutil.AddressTaproot)
	if !ok {
		return nil, ErrUnsupportedAddress
	}
	if len(taproot.WitnessProgram()) != 32 {
		return nil, ErrUnsupportedAddress
	}
	return taproot, nil
}
