package ledger

import "fmt"

// InstructionErrorKind enumerates the runtime's instruction failure
// taxonomy. Variant order matches the runtime's own declaration order.
type InstructionErrorKind int

const (
	InstrErrGenericError InstructionErrorKind = iota
	InstrErrInvalidArgument
	InstrErrInvalidInstructionData
	InstrErrInvalidAccountData
	InstrErrAccountDataTooSmall
	InstrErrInsufficientFunds
	InstrErrIncorrectProgramId
	InstrErrMissingRequiredSignature
	InstrErrAccountAlreadyInitialized
	InstrErrUninitializedAccount
	InstrErrUnbalancedInstruction
	InstrErrModifiedProgramId
	InstrErrExternalAccountLamportSpend
	InstrErrExternalAccountDataModified
	InstrErrReadonlyLamportChange
	InstrErrReadonlyDataModified
	InstrErrDuplicateAccountIndex
	InstrErrExecutableModified
	InstrErrRentEpochModified
	InstrErrNotEnoughAccountKeys
	InstrErrAccountDataSizeChanged
	InstrErrAccountNotExecutable
	InstrErrAccountBorrowFailed
	InstrErrAccountBorrowOutstanding
	InstrErrDuplicateAccountOutOfSync
	InstrErrCustom
	InstrErrInvalidError
	InstrErrExecutableDataModified
	InstrErrExecutableLamportChange
	InstrErrExecutableAccountNotRentExempt
	InstrErrUnsupportedProgramId
	InstrErrCallDepth
	InstrErrMissingAccount
	InstrErrReentrancyNotAllowed
	InstrErrMaxSeedLengthExceeded
	InstrErrInvalidSeeds
	InstrErrInvalidRealloc
	InstrErrComputationalBudgetExceeded
	InstrErrPrivilegeEscalation
	InstrErrProgramEnvironmentSetupFailure
	InstrErrProgramFailedToComplete
	InstrErrProgramFailedToCompile
	InstrErrImmutable
	InstrErrIncorrectAuthority
	InstrErrBorshIoError
	InstrErrAccountNotRentExempt
	InstrErrInvalidAccountOwner
	InstrErrArithmeticOverflow
	InstrErrUnsupportedSysvar
	InstrErrIllegalOwner
	InstrErrMaxAccountsDataAllocationsExceeded
	InstrErrMaxAccountsExceeded
	InstrErrMaxInstructionTraceLengthExceeded
	InstrErrBuiltinProgramsMustConsumeComputeUnits
)

var instructionErrorNames = map[InstructionErrorKind]string{
	InstrErrGenericError:                           "generic instruction error",
	InstrErrInvalidArgument:                        "invalid program argument",
	InstrErrInvalidInstructionData:                 "invalid instruction data",
	InstrErrInvalidAccountData:                     "invalid account data for instruction",
	InstrErrAccountDataTooSmall:                    "account data too small for instruction",
	InstrErrInsufficientFunds:                      "insufficient funds for instruction",
	InstrErrIncorrectProgramId:                     "incorrect program id for instruction",
	InstrErrMissingRequiredSignature:               "missing required signature for instruction",
	InstrErrAccountAlreadyInitialized:              "instruction requires an uninitialized account",
	InstrErrUninitializedAccount:                   "instruction requires an initialized account",
	InstrErrUnbalancedInstruction:                  "sum of account balances before and after instruction do not match",
	InstrErrModifiedProgramId:                      "instruction illegally modified the program id of an account",
	InstrErrExternalAccountLamportSpend:            "instruction spent from the balance of an account it does not own",
	InstrErrExternalAccountDataModified:            "instruction modified data of an account it does not own",
	InstrErrReadonlyLamportChange:                  "instruction changed the balance of a read-only account",
	InstrErrReadonlyDataModified:                   "instruction modified data of a read-only account",
	InstrErrDuplicateAccountIndex:                  "instruction contains duplicate accounts",
	InstrErrExecutableModified:                     "instruction changed executable bit of an account",
	InstrErrRentEpochModified:                      "instruction modified rent epoch of an account",
	InstrErrNotEnoughAccountKeys:                   "insufficient account keys for instruction",
	InstrErrAccountDataSizeChanged:                 "program other than the account's owner changed the size of the account data",
	InstrErrAccountNotExecutable:                   "instruction expected an executable account",
	InstrErrAccountBorrowFailed:                    "instruction tries to borrow reference for an account which is already borrowed",
	InstrErrAccountBorrowOutstanding:               "instruction left account with an outstanding borrowed reference",
	InstrErrDuplicateAccountOutOfSync:              "instruction modifications of multiply-passed account differ",
	InstrErrCustom:                                 "custom program error",
	InstrErrInvalidError:                           "program returned invalid error code",
	InstrErrExecutableDataModified:                 "instruction changed executable accounts data",
	InstrErrExecutableLamportChange:                "instruction changed the balance of an executable account",
	InstrErrExecutableAccountNotRentExempt:         "executable accounts must be rent exempt",
	InstrErrUnsupportedProgramId:                   "unsupported program id",
	InstrErrCallDepth:                              "cross-program invocation call depth too deep",
	InstrErrMissingAccount:                         "an account required by the instruction is missing",
	InstrErrReentrancyNotAllowed:                   "cross-program invocation reentrancy not allowed for this instruction",
	InstrErrMaxSeedLengthExceeded:                  "length of the seed is too long for address generation",
	InstrErrInvalidSeeds:                           "provided seeds do not result in a valid address",
	InstrErrInvalidRealloc:                         "failed to reallocate account data",
	InstrErrComputationalBudgetExceeded:            "computational budget exceeded",
	InstrErrPrivilegeEscalation:                    "cross-program invocation with unauthorized signer or writable account",
	InstrErrProgramEnvironmentSetupFailure:         "failed to create program execution environment",
	InstrErrProgramFailedToComplete:                "program failed to complete",
	InstrErrProgramFailedToCompile:                 "program failed to compile",
	InstrErrImmutable:                              "account is immutable",
	InstrErrIncorrectAuthority:                     "incorrect authority provided",
	InstrErrBorshIoError:                           "failed to serialize or deserialize account data",
	InstrErrAccountNotRentExempt:                   "an account does not have enough lamports to be rent-exempt",
	InstrErrInvalidAccountOwner:                    "invalid account owner",
	InstrErrArithmeticOverflow:                     "program arithmetic overflowed",
	InstrErrUnsupportedSysvar:                      "unsupported sysvar",
	InstrErrIllegalOwner:                           "provided owner is not allowed",
	InstrErrMaxAccountsDataAllocationsExceeded:     "accounts data allocations exceeded the maximum allowed per transaction",
	InstrErrMaxAccountsExceeded:                    "max accounts exceeded",
	InstrErrMaxInstructionTraceLengthExceeded:      "max instruction trace length exceeded",
	InstrErrBuiltinProgramsMustConsumeComputeUnits: "builtin programs must consume compute units",
}

// String returns the kind's human-readable description.
func (k InstructionErrorKind) String() string {
	if name, ok := instructionErrorNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown instruction error kind %d", int(k))
}

// InstructionError is a tagged instruction failure. Custom is meaningful
// only when Kind is InstrErrCustom; Msg only when Kind is
// InstrErrBorshIoError.
type InstructionError struct {
	Kind   InstructionErrorKind
	Custom uint32
	Msg    string
}

// Error implements the error interface.
func (e InstructionError) Error() string {
	switch e.Kind {
	case InstrErrCustom:
		return fmt.Sprintf("custom program error: %#x", e.Custom)
	case InstrErrBorshIoError:
		return fmt.Sprintf("failed to serialize or deserialize account data: %s", e.Msg)
	default:
		return e.Kind.String()
	}
}

// builtinBitShift separates the builtin discriminator from the 32 bits a
// program may use for its own error codes. Builtin error n travels as
// n << 32; anything with only the low 32 bits set is a program-defined
// custom code.
const builtinBitShift = 32

func builtinCode(n uint64) uint64 { return n << builtinBitShift }

// Sentinel codes for errors a program may return across the ABI boundary.
var builtinCodeKinds = map[uint64]InstructionErrorKind{
	builtinCode(1):  InstrErrCustom, // custom error with code zero
	builtinCode(2):  InstrErrInvalidArgument,
	builtinCode(3):  InstrErrInvalidInstructionData,
	builtinCode(4):  InstrErrInvalidAccountData,
	builtinCode(5):  InstrErrAccountDataTooSmall,
	builtinCode(6):  InstrErrInsufficientFunds,
	builtinCode(7):  InstrErrIncorrectProgramId,
	builtinCode(8):  InstrErrMissingRequiredSignature,
	builtinCode(9):  InstrErrAccountAlreadyInitialized,
	builtinCode(10): InstrErrUninitializedAccount,
	builtinCode(11): InstrErrNotEnoughAccountKeys,
	builtinCode(12): InstrErrAccountBorrowFailed,
	builtinCode(13): InstrErrMaxSeedLengthExceeded,
	builtinCode(14): InstrErrInvalidSeeds,
	builtinCode(15): InstrErrBorshIoError,
	builtinCode(16): InstrErrAccountNotRentExempt,
	builtinCode(17): InstrErrUnsupportedSysvar,
	builtinCode(18): InstrErrIllegalOwner,
	builtinCode(19): InstrErrMaxAccountsDataAllocationsExceeded,
	builtinCode(20): InstrErrInvalidAccountOwner,
	builtinCode(21): InstrErrArithmeticOverflow,
	builtinCode(22): InstrErrImmutable,
	builtinCode(23): InstrErrIncorrectAuthority,
}

// builtinKindCodes is the reverse of builtinCodeKinds, excluding the
// custom-zero sentinel which is handled explicitly.
var builtinKindCodes = func() map[InstructionErrorKind]uint64 {
	m := make(map[InstructionErrorKind]uint64, len(builtinCodeKinds))
	for code, kind := range builtinCodeKinds {
		if kind == InstrErrCustom {
			continue
		}
		m[kind] = code
	}
	return m
}()

// InstructionErrorFromCode maps a 64-bit error code to its tagged form.
// The mapping never fails: codes outside the sentinel table resolve to
// Custom when only the low 32 bits are set, and to InvalidError otherwise.
func InstructionErrorFromCode(code uint64) InstructionError {
	if kind, ok := builtinCodeKinds[code]; ok {
		if kind == InstrErrCustom {
			return InstructionError{Kind: InstrErrCustom, Custom: 0}
		}
		return InstructionError{Kind: kind}
	}
	if code>>builtinBitShift == 0 {
		return InstructionError{Kind: InstrErrCustom, Custom: uint32(code)}
	}
	return InstructionError{Kind: InstrErrInvalidError}
}

// Code returns the 64-bit wire code for errors that have one. Custom codes
// round-trip through the low 32 bits (with zero mapped to its dedicated
// sentinel); kinds outside the sentinel table report ok=false.
func (e InstructionError) Code() (code uint64, ok bool) {
	if e.Kind == InstrErrCustom {
		if e.Custom == 0 {
			return builtinCode(1), true
		}
		return uint64(e.Custom), true
	}
	code, ok = builtinKindCodes[e.Kind]
	return code, ok
}
