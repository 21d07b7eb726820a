package ledger

import "fmt"

// Per-message caps. Both counts travel as one byte on the wire, so the caps
// are enforced when the message is built.
const (
	MaxMessageSigners      = 255
	MaxMessageInstructions = 255
)

// Message is the signed payload of a transaction: the ordered signer set
// and the ordered instruction list.
type Message struct {
	Signers      []Pubkey
	Instructions []Instruction
}

// NewMessage builds a message, rejecting signer or instruction lists that
// cannot be expressed in the one-byte wire counts.
func NewMessage(signers []Pubkey, instructions []Instruction) (Message, error) {
	if len(signers) > MaxMessageSigners {
		return Message{}, fmt.Errorf("too many signers: got %d, max %d", len(signers), MaxMessageSigners)
	}
	if len(instructions) > MaxMessageInstructions {
		return Message{}, fmt.Errorf("too many instructions: got %d, max %d", len(instructions), MaxMessageInstructions)
	}
	return Message{Signers: signers, Instructions: instructions}, nil
}

// Serialize returns the message's canonical wire bytes:
// signers_count(u8) | signers(32 each) | instructions_count(u8) | instructions.
func (m Message) Serialize() []byte {
	out := []byte{byte(len(m.Signers))}
	for _, signer := range m.Signers {
		out = append(out, signer[:]...)
	}
	out = append(out, byte(len(m.Instructions)))
	for _, ix := range m.Instructions {
		out = append(out, ix.Serialize()...)
	}
	return out
}

// Hash returns the message's content-addressed identifier.
func (m Message) Hash() string {
	return canonicalID(m.Serialize())
}

// MessageFromSlice decodes a message occupying the whole buffer.
func MessageFromSlice(b []byte) (Message, error) {
	return decodeMessage(newDecoder(b))
}

// decodeMessage reads one self-delimiting message from d.
func decodeMessage(d *decoder) (Message, error) {
	var m Message

	signerCount, err := d.u8()
	if err != nil {
		return m, fmt.Errorf("message signers count: %w", err)
	}
	if signerCount > 0 {
		m.Signers = make([]Pubkey, 0, signerCount)
	}
	for i := 0; i < int(signerCount); i++ {
		raw, err := d.take(PubkeyLength)
		if err != nil {
			return m, fmt.Errorf("message signer %d: %w", i, err)
		}
		var signer Pubkey
		copy(signer[:], raw)
		m.Signers = append(m.Signers, signer)
	}

	ixCount, err := d.u8()
	if err != nil {
		return m, fmt.Errorf("message instructions count: %w", err)
	}
	if ixCount > 0 {
		m.Instructions = make([]Instruction, 0, ixCount)
	}
	for i := 0; i < int(ixCount); i++ {
		ix, err := decodeInstruction(d)
		if err != nil {
			return m, fmt.Errorf("message instruction %d: %w", i, err)
		}
		m.Instructions = append(m.Instructions, ix)
	}
	return m, nil
}
