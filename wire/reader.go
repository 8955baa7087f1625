package wire

import "github.com/canwire/canwire/errs"

// scratchSize bounds the borrowed string/bytes buffer: the wire format caps
// a single string/bytes field at 15 bytes (4-bit length). Package serde
// never calls ResetScratch, so every string/bytes field of one decode
// accumulates here; the register delivers at most 8 bytes in total, so 15
// bytes suffices for the lifetime of the Reader.
const scratchSize = 15

// Reader consumes fixed-width fields MSB-first from a byte slice, mirroring
// Writer's bit layout. It owns a small scratch buffer so that string/bytes
// decodes can return borrowed slices. Scratch appends after earlier data,
// so a returned slice stays valid until ResetScratch lets a later Scratch
// call reuse its bytes.
type Reader struct {
	acc       uint64
	remaining int8 // bits remaining; goes negative if the shape over-reads

	scratch    [scratchSize]byte
	scratchLen uint8
}

// NewReader builds a Reader over up to the first 8 bytes of data. Bytes
// beyond the 8th are ignored by the register (a shape that tries to read
// past them will observe remaining go negative and fail with
// errs.ErrMsgTooLong, matching a too-short frame).
func NewReader(data []byte) *Reader {
	r := &Reader{}

	n := len(data)
	if n > 8 {
		n = 8
	}

	var acc uint64
	var bits int8
	for i := 0; i < n; i++ {
		acc = (acc << 8) | uint64(data[i])
		bits += 8
	}

	if bits > 0 && bits < 64 {
		acc <<= uint(64 - bits)
	}

	r.acc = acc
	r.remaining = bits

	return r
}

// Remaining reports the number of bits left in the register. It goes
// negative once a shape has requested more bits than were available.
func (r *Reader) Remaining() int8 { return r.remaining }

// CheckLen fails with errs.ErrMsgTooLong if the register has been
// over-consumed. Bits calls it before every primitive read, and package
// serde calls it once more after a whole decode (Decoder.Finish).
func (r *Reader) CheckLen() error {
	if r.remaining < 0 {
		return errs.ErrMsgTooLong
	}

	return nil
}

// Bool decodes a single bit.
func (r *Reader) Bool() (bool, error) {
	v, err := r.Bits(1)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// Bits decodes the top n bits of the register. n must be one of 1, 4, 8,
// 16, 32, 64.
func (r *Reader) Bits(n uint8) (uint64, error) {
	if err := r.CheckLen(); err != nil {
		return 0, err
	}

	var v uint64
	if n < 64 {
		v = r.acc >> (64 - n)
		r.acc <<= n
	} else {
		v = r.acc
		r.acc = 0
	}

	r.remaining -= int8(n)

	return v, nil
}

// Scratch appends n bytes (n <= scratchSize) decoded via Bits(8) into the
// Reader's scratch buffer and returns the borrowed slice. Used by package
// serde to decode length-prefixed strings/bytes.
func (r *Reader) Scratch(n int) ([]byte, error) {
	if n < 0 || n > scratchSize || int(r.scratchLen)+n > scratchSize {
		return nil, errs.ErrMsgTooLong
	}

	start := r.scratchLen
	for i := 0; i < n; i++ {
		b, err := r.Bits(8)
		if err != nil {
			return nil, err
		}

		r.scratch[int(start)+i] = byte(b)
	}

	r.scratchLen += uint8(n)

	return r.scratch[start : int(start)+n], nil
}

// ResetScratch rewinds the scratch buffer, reclaiming its capacity for a
// later string/bytes decode against the same Reader.
func (r *Reader) ResetScratch() { r.scratchLen = 0 }
