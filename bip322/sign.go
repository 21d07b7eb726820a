package bip322

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Sign produces a BIP-322 signature over message for the key's Taproot
// key-spend address on the given network. The key-spend sighash is
// computed with SIGHASH_ALL and the trailing sighash-type byte is stripped
// from the returned signature, leaving the raw 64 Schnorr bytes.
func Sign(privKey *btcec.PrivateKey, message []byte, params *chaincfg.Params) ([SignatureSize]byte, error) {
	var sig64 [SignatureSize]byte

	addr, err := TaprootAddress(privKey.PubKey(), params)
	if err != nil {
		return sig64, err
	}
	if _, err := taprootOnly(addr); err != nil {
		return sig64, err
	}

	toSpend, err := BuildToSpend(addr, message)
	if err != nil {
		return sig64, err
	}
	toSign, err := BuildToSign(toSpend, nil)
	if err != nil {
		return sig64, err
	}

	prevOut := toSpend.TxOut[0]
	prevFetcher := txscript.NewCannedPrevOutputFetcher(prevOut.PkScript, prevOut.Value)
	sigHashes := txscript.NewTxSigHashes(toSign.UnsignedTx, prevFetcher)

	// Key-spend signature with the BIP-86 tweak (no script-path root).
	sig, err := txscript.RawTxInTaprootSignature(
		toSign.UnsignedTx, sigHashes, 0,
		prevOut.Value, prevOut.PkScript,
		nil, txscript.SigHashAll, privKey,
	)
	if err != nil {
		return sig64, fmt.Errorf("failed to sign to_sign transaction: %w", err)
	}

	copy(sig64[:], sig[:SignatureSize])
	return sig64, nil
}
