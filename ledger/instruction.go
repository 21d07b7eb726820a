package ledger

import (
	"encoding/binary"
	"fmt"
)

// MaxInstructionAccounts is the most accounts a single instruction may
// reference. The wire format stores the count in one byte, so the cap is
// enforced at construction time rather than silently wrapping.
const MaxInstructionAccounts = 255

// Instruction is one program invocation: the program to run, the accounts
// it may read or write, and an opaque payload the program interprets.
type Instruction struct {
	ProgramID Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// NewInstruction builds an instruction, rejecting account lists that cannot
// be expressed in the one-byte wire count.
func NewInstruction(programID Pubkey, accounts []AccountMeta, data []byte) (Instruction, error) {
	if len(accounts) > MaxInstructionAccounts {
		return Instruction{}, fmt.Errorf("too many accounts: got %d, max %d", len(accounts), MaxInstructionAccounts)
	}
	return Instruction{ProgramID: programID, Accounts: accounts, Data: data}, nil
}

// Serialize returns the instruction's canonical wire bytes:
// program_id(32) | accounts_count(u8) | accounts(34 each) | data_len(u64) | data.
func (ix Instruction) Serialize() []byte {
	out := make([]byte, 0, PubkeyLength+1+len(ix.Accounts)*AccountMetaLength+8+len(ix.Data))
	out = append(out, ix.ProgramID[:]...)
	out = append(out, byte(len(ix.Accounts)))
	for _, meta := range ix.Accounts {
		out = append(out, meta.Serialize()...)
	}
	out = binary.LittleEndian.AppendUint64(out, uint64(len(ix.Data)))
	out = append(out, ix.Data...)
	return out
}

// Hash returns the instruction's content-addressed identifier.
func (ix Instruction) Hash() string {
	return canonicalID(ix.Serialize())
}

// InstructionFromSlice decodes a single instruction occupying the whole
// buffer. Trailing bytes are not an error; use decodeInstruction when the
// instruction is embedded in a larger structure.
func InstructionFromSlice(b []byte) (Instruction, error) {
	return decodeInstruction(newDecoder(b))
}

// decodeInstruction reads one self-delimiting instruction from d.
func decodeInstruction(d *decoder) (Instruction, error) {
	var ix Instruction

	program, err := d.take(PubkeyLength)
	if err != nil {
		return ix, fmt.Errorf("instruction program id: %w", err)
	}
	copy(ix.ProgramID[:], program)

	count, err := d.u8()
	if err != nil {
		return ix, fmt.Errorf("instruction accounts count: %w", err)
	}
	if count > 0 {
		ix.Accounts = make([]AccountMeta, 0, count)
	}
	for i := 0; i < int(count); i++ {
		raw, err := d.take(AccountMetaLength)
		if err != nil {
			return ix, fmt.Errorf("instruction account %d: %w", i, err)
		}
		meta, err := AccountMetaFromSlice(raw)
		if err != nil {
			return ix, err
		}
		ix.Accounts = append(ix.Accounts, meta)
	}

	dataLen, err := d.u64()
	if err != nil {
		return ix, fmt.Errorf("instruction data length: %w", err)
	}
	ix.Data, err = d.variable(dataLen)
	if err != nil {
		return ix, fmt.Errorf("instruction data: %w", err)
	}
	return ix, nil
}
