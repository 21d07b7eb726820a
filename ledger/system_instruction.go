package ledger

import (
	"encoding/binary"
	"fmt"
)

// System program instruction tags.
const (
	systemTagCreateAccount byte = 0
	systemTagExtendBytes   byte = 1
)

// SystemInstruction is one of the builtin system program's instruction
// kinds. Concrete kinds are CreateAccount and ExtendBytes.
type SystemInstruction interface {
	// Serialize returns the tagged wire form of the instruction payload.
	Serialize() []byte

	systemInstruction()
}

// CreateAccount binds a fresh ledger account to a Bitcoin outpoint.
// Wire form: tag=0(1) | txid(32) | vout(u32,4) — 37 bytes total.
type CreateAccount struct {
	Utxo UtxoMeta
}

func (CreateAccount) systemInstruction() {}

// Serialize returns the 37-byte tagged wire form.
func (c CreateAccount) Serialize() []byte {
	out := make([]byte, 0, 1+UtxoMetaLength)
	out = append(out, systemTagCreateAccount)
	out = append(out, c.Utxo.Serialize()...)
	return out
}

// ExtendBytes appends opaque bytes to an account's data. The codec treats
// the payload as-is; NewExtendBytesInstruction frames it as
// offset(u32) | len(u32) | chunk before wrapping.
type ExtendBytes struct {
	Payload []byte
}

func (ExtendBytes) systemInstruction() {}

// Serialize returns tag=1 followed by the raw payload.
func (e ExtendBytes) Serialize() []byte {
	out := make([]byte, 0, 1+len(e.Payload))
	out = append(out, systemTagExtendBytes)
	out = append(out, e.Payload...)
	return out
}

// SystemInstructionFromSlice decodes a tagged system instruction. An
// ExtendBytes payload consumes the remainder of the buffer.
func SystemInstructionFromSlice(b []byte) (SystemInstruction, error) {
	d := newDecoder(b)
	tag, err := d.u8()
	if err != nil {
		return nil, fmt.Errorf("system instruction tag: %w", err)
	}
	switch tag {
	case systemTagCreateAccount:
		raw, err := d.take(UtxoMetaLength)
		if err != nil {
			return nil, fmt.Errorf("create account utxo: %w", err)
		}
		utxo, err := UtxoMetaFromSlice(raw)
		if err != nil {
			return nil, err
		}
		return CreateAccount{Utxo: utxo}, nil
	case systemTagExtendBytes:
		payload, err := d.variable(uint64(d.remaining()))
		if err != nil {
			return nil, err
		}
		return ExtendBytes{Payload: payload}, nil
	default:
		return nil, fmt.Errorf("system instruction tag %d: %w", tag, ErrInvalidTag)
	}
}

// NewCreateAccountInstruction builds the system program invocation that
// binds account to the given Bitcoin outpoint. The account must sign.
func NewCreateAccountInstruction(utxo UtxoMeta, account Pubkey) Instruction {
	return Instruction{
		ProgramID: SystemProgramID,
		Accounts: []AccountMeta{
			{Pubkey: account, IsSigner: true, IsWritable: true},
		},
		Data: CreateAccount{Utxo: utxo}.Serialize(),
	}
}

// NewExtendBytesInstruction builds the system program invocation that
// writes chunk into account's data at the given offset. The
// offset | len | chunk framing happens here, at the caller level; the
// ExtendBytes codec carries the framed payload opaquely.
func NewExtendBytesInstruction(account Pubkey, offset uint32, chunk []byte) Instruction {
	payload := make([]byte, 0, 8+len(chunk))
	payload = binary.LittleEndian.AppendUint32(payload, offset)
	payload = binary.LittleEndian.AppendUint32(payload, uint32(len(chunk)))
	payload = append(payload, chunk...)
	return Instruction{
		ProgramID: SystemProgramID,
		Accounts: []AccountMeta{
			{Pubkey: account, IsSigner: true, IsWritable: true},
		},
		Data: ExtendBytes{Payload: payload}.Serialize(),
	}
}
