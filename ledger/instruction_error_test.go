package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructionErrorFromCode_BuiltinTable(t *testing.T) {
	cases := []struct {
		code uint64
		kind InstructionErrorKind
	}{
		{builtinCode(2), InstrErrInvalidArgument},
		{builtinCode(5), InstrErrAccountDataTooSmall},
		{builtinCode(6), InstrErrInsufficientFunds},
		{builtinCode(10), InstrErrUninitializedAccount},
		{builtinCode(13), InstrErrMaxSeedLengthExceeded},
		{builtinCode(21), InstrErrArithmeticOverflow},
		{builtinCode(23), InstrErrIncorrectAuthority},
	}
	for _, tc := range cases {
		e := InstructionErrorFromCode(tc.code)
		assert.Equal(t, tc.kind, e.Kind, "code %#x", tc.code)
	}
}

func TestInstructionErrorFromCode_BuiltinRoundTrip(t *testing.T) {
	for code := range builtinCodeKinds {
		e := InstructionErrorFromCode(code)
		back, ok := e.Code()
		require.True(t, ok, "code %#x", code)
		assert.Equal(t, code, back, "kind %v", e.Kind)
	}
}

func TestInstructionErrorFromCode_CustomLow32Bits(t *testing.T) {
	for _, code := range []uint64{1, 42, 0xdeadbeef, 0xffffffff} {
		e := InstructionErrorFromCode(code)
		require.Equal(t, InstrErrCustom, e.Kind, "code %#x", code)
		assert.Equal(t, uint32(code), e.Custom)

		back, ok := e.Code()
		require.True(t, ok)
		assert.Equal(t, code, back)
	}
}

func TestInstructionErrorFromCode_CustomZeroSentinel(t *testing.T) {
	// Custom code zero travels as its own builtin sentinel, not as a bare
	// zero, so it stays distinguishable from "no error".
	e := InstructionErrorFromCode(builtinCode(1))
	require.Equal(t, InstrErrCustom, e.Kind)
	assert.Equal(t, uint32(0), e.Custom)

	back, ok := e.Code()
	require.True(t, ok)
	assert.Equal(t, builtinCode(1), back)
}

func TestInstructionErrorFromCode_HighBitsInvalid(t *testing.T) {
	// Codes with bits above 32 set that are not in the sentinel table are
	// rejected as InvalidError, never an error-of-errors.
	for _, code := range []uint64{builtinCode(24), builtinCode(999), 1 << 63, builtinCode(2) | 1} {
		e := InstructionErrorFromCode(code)
		assert.Equal(t, InstrErrInvalidError, e.Kind, "code %#x", code)

		_, ok := e.Code()
		assert.False(t, ok)
	}
}

func TestInstructionError_ErrorStrings(t *testing.T) {
	assert.Equal(t, "custom program error: 0x2a", InstructionError{Kind: InstrErrCustom, Custom: 42}.Error())
	assert.Equal(t, "insufficient funds for instruction", InstructionError{Kind: InstrErrInsufficientFunds}.Error())
	assert.Contains(t, InstructionError{Kind: InstrErrBorshIoError, Msg: "eof"}.Error(), "eof")
}

func TestInstructionErrorKind_AllNamed(t *testing.T) {
	for kind := InstrErrGenericError; kind <= InstrErrBuiltinProgramsMustConsumeComputeUnits; kind++ {
		assert.NotContains(t, kind.String(), "unknown", "kind %d", int(kind))
	}
}
