package bip322

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Verify checks a raw 64-byte BIP-322 signature over message against an
// x-only public key. The Taproot key-spend address is derived from the key
// the same way Sign derives it. When sigHashAll is set, an explicit
// SIGHASH_ALL byte is appended to the witness signature item.
func Verify(message []byte, xonlyPubKey []byte, signature [SignatureSize]byte, sigHashAll bool, params *chaincfg.Params) error {
	internalKey, err := schnorr.ParsePubKey(xonlyPubKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	addr, err := TaprootAddress(internalKey, params)
	if err != nil {
		return err
	}

	item := make([]byte, 0, SignatureSize+1)
	item = append(item, signature[:]...)
	if sigHashAll {
		item = append(item, byte(txscript.SigHashAll))
	}
	return VerifyFull(addr, message, wire.TxWitness{item})
}

// VerifySimple checks a BIP-322 simple signature: the witness stack of the
// to_sign input, verified against the address the message was signed for.
func VerifySimple(addr btcutil.Address, message []byte, witness wire.TxWitness) error {
	return VerifyFull(addr, message, witness)
}

// VerifyFull rebuilds the virtual to_spend and to_sign transactions from
// (address, message) — nothing about the spend is trusted from the caller
// beyond the witness — and checks the witness signature against the
// address's embedded output key. Only Taproot key-spend addresses are
// supported. A nil return means the signature is valid.
func VerifyFull(addr btcutil.Address, message []byte, witness wire.TxWitness) error {
	taproot, err := taprootOnly(addr)
	if err != nil {
		return err
	}

	toSpend, err := BuildToSpend(addr, message)
	if err != nil {
		return err
	}
	toSign, err := BuildToSign(toSpend, witness)
	if err != nil {
		return err
	}

	// The reconstructed spend must consume output 0 of to_spend.
	spendTxid := toSpend.TxHash()
	prevOut := toSign.UnsignedTx.TxIn[0].PreviousOutPoint
	if prevOut.Hash != spendTxid || prevOut.Index != 0 {
		return ErrToSignInvalid
	}

	if len(witness) == 0 {
		return ErrWitnessEmpty
	}

	encoded := witness[0]
	var sigBytes []byte
	switch len(encoded) {
	case SignatureSize:
		// Raw signature, implicit SIGHASH_DEFAULT.
		sigBytes = encoded
	case SignatureSize + 1:
		sigBytes = encoded[:SignatureSize]
		hashType := txscript.SigHashType(encoded[SignatureSize])
		if !definedSigHashType(hashType) {
			return ErrSigHashTypeInvalid
		}
		if hashType != txscript.SigHashDefault && hashType != txscript.SigHashAll {
			return ErrSigHashTypeUnsupported
		}
	default:
		return &SignatureLengthError{Length: len(encoded)}
	}

	pubKey, err := schnorr.ParsePubKey(taproot.WitnessProgram())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureInvalid, err)
	}

	// The digest is always the SIGHASH_ALL key-spend digest; DEFAULT is
	// accepted as an alias of ALL rather than hashed with its own type
	// byte, so 64-byte signatures produced by Sign verify unchanged.
	spentOut := toSpend.TxOut[0]
	prevFetcher := txscript.NewCannedPrevOutputFetcher(spentOut.PkScript, spentOut.Value)
	sigHashes := txscript.NewTxSigHashes(toSign.UnsignedTx, prevFetcher)
	sigHash, err := txscript.CalcTaprootSignatureHash(
		sigHashes, txscript.SigHashAll, toSign.UnsignedTx, 0, prevFetcher,
	)
	if err != nil {
		return fmt.Errorf("failed to compute taproot sighash: %w", err)
	}

	if !sig.Verify(sigHash, pubKey) {
		return ErrSignatureInvalid
	}
	return nil
}

// definedSigHashType reports whether t is a sighash type defined by
// consensus: DEFAULT, ALL, NONE, SINGLE, or the latter three combined with
// ANYONECANPAY.
func definedSigHashType(t txscript.SigHashType) bool {
	switch t {
	case txscript.SigHashDefault,
		txscript.SigHashAll,
		txscript.SigHashNone,
		txscript.SigHashSingle,
		txscript.SigHashAll | txscript.SigHashAnyOneCanPay,
		txscript.SigHashNone | txscript.SigHashAnyOneCanPay,
		txscript.SigHashSingle | txscript.SigHashAnyOneCanPay:
		return true
	default:
		return false
	}
}
