package bip322

import (
	"errors"
	"fmt"
)

// Verification failures form a closed set so callers can branch on the
// exact cause with errors.Is / errors.As.
var (
	// ErrUnsupportedAddress means the address is not a Taproot key-spend
	// address with a 32-byte witness program.
	ErrUnsupportedAddress = errors.New("unsupported address type, only taproot key-spend addresses work")

	// ErrInvalidPublicKey means the x-only public key bytes do not parse.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrToSignInvalid means the to_sign transaction does not spend the
	// to_spend output.
	ErrToSignInvalid = errors.New("to_sign input does not spend the to_spend output")

	// ErrWitnessEmpty means no witness was supplied for the signing input.
	ErrWitnessEmpty = errors.New("witness is empty")

	// ErrSignatureInvalid means the Schnorr signature does not parse or
	// does not verify against the address's key.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrSigHashTypeInvalid means the trailing sighash byte is not a
	// defined sighash type.
	ErrSigHashTypeInvalid = errors.New("invalid sighash type")

	// ErrSigHashTypeUnsupported means the sighash type is defined but only
	// ALL and DEFAULT are accepted here.
	ErrSigHashTypeUnsupported = errors.New("unsupported sighash type, only ALL and DEFAULT work")
)

// SignatureLengthError reports a witness signature item that is neither 64
// nor 65 bytes.
type SignatureLengthError struct {
	Length int
}

func (e *SignatureLengthError) Error() string {
	return fmt.Sprintf("invalid signature length %d, want 64 or 65", e.Length)
}
