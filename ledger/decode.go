package ledger

import (
	"encoding/binary"
	"errors"
)

// Typed decode failures. Every decode path rejects malformed input with one
// of these rather than indexing past the end of the buffer.
var (
	// ErrBufferTooShort means a fixed-width field ran past the end of the input.
	ErrBufferTooShort = errors.New("buffer too short")

	// ErrInvalidTag means a discriminator byte is not a recognized variant.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrLengthOverflow means a declared length exceeds the remaining buffer.
	ErrLengthOverflow = errors.New("declared length exceeds remaining buffer")

	// ErrUtf8Decode means a status message is not valid UTF-8.
	ErrUtf8Decode = errors.New("invalid utf-8")
)

// decoder walks a byte slice with explicit bounds checks. All integers are
// little-endian. Methods never panic on truncated input; they return
// ErrBufferTooShort (fixed-width reads) or ErrLengthOverflow (declared
// lengths) instead.
type decoder struct {
	buf []byte
	off int
}

func newDecoder(buf []byte) *decoder {
	return &decoder{buf: buf}
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.off
}

func (d *decoder) u8() (byte, error) {
	if d.remaining() < 1 {
		return 0, ErrBufferTooShort
	}
	v := d.buf[d.off]
	d.off++
	return v, nil
}

func (d *decoder) u32() (uint32, error) {
	if d.remaining() < 4 {
		return 0, ErrBufferTooShort
	}
	v := binary.LittleEndian.Uint32(d.buf[d.off : d.off+4])
	d.off += 4
	return v, nil
}

func (d *decoder) u64() (uint64, error) {
	if d.remaining() < 8 {
		return 0, ErrBufferTooShort
	}
	v := binary.LittleEndian.Uint64(d.buf[d.off : d.off+8])
	d.off += 8
	return v, nil
}

// take reads n bytes of a fixed-width field.
func (d *decoder) take(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, ErrBufferTooShort
	}
	v := d.buf[d.off : d.off+n]
	d.off += n
	return v, nil
}

// variable reads n bytes previously declared by a length prefix. The caller
// owns the returned slice; it is copied out of the input buffer.
func (d *decoder) variable(n uint64) ([]byte, error) {
	if n > uint64(d.remaining()) {
		return nil, ErrLengthOverflow
	}
	if n == 0 {
		return nil, nil
	}
	v := make([]byte, n)
	copy(v, d.buf[d.off:d.off+int(n)])
	d.off += int(n)
	return v, nil
}
