// Package wire implements the primitive bit register codec that backs
// package serde: a 64-bit accumulator that packs and unpacks fixed-width
// fields (1, 4, 8, 16, 32, or 64 bits) MSB-first, bounded to one CAN
// payload (8 bytes).
//
// Writer and Reader are stack-resident and allocation-free except for the
// final Bytes slice Writer.Finish returns. Neither type is safe for
// concurrent use; each encode/decode call is expected to build its own
// Writer/Reader.
package wire

import "github.com/canwire/canwire/errs"

// Writer accumulates fixed-width fields into a 64-bit register, earliest
// field occupying the most-significant position once Finish left-aligns
// the register.
type Writer struct {
	acc uint64
	len uint8 // bits used so far, 0 <= len <= 64
}

// NewWriter returns a Writer with an empty register.
func NewWriter() *Writer {
	return &Writer{}
}

// Len reports the number of bits written so far.
func (w *Writer) Len() uint8 { return w.len }

// AppendBool appends a single bit: 1 for true, 0 for false. Used for bool
// fields and option tags.
func (w *Writer) AppendBool(v bool) error {
	var bit uint64
	if v {
		bit = 1
	}

	return w.AppendBits(bit, 1)
}

// AppendBits appends the low n bits of v to the register. n must be one of
// 1, 4, 8, 16, 32, 64; the caller (package serde) is responsible for only
// ever requesting those widths.
func (w *Writer) AppendBits(v uint64, n uint8) error {
	mask := widthMask(n)
	w.acc = (w.acc << n) | (v & mask)
	w.len += n

	if w.len > 64 {
		return errs.ErrMsgTooLong
	}

	return nil
}

// Finish left-shifts the accumulated bits to MSB alignment and returns the
// ceil(len/8)-byte big-endian-ordered payload. The returned slice aliases
// no Writer state and is safe to retain.
func (w *Writer) Finish() ([]byte, error) {
	if w.len > 64 {
		return nil, errs.ErrMsgTooLong
	}

	acc := w.acc
	if w.len > 0 {
		acc <<= 64 - w.len
	}

	n := int(w.len+7) / 8
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(acc >> 56)
		acc <<= 8
	}

	return out, nil
}

func widthMask(n uint8) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << n) - 1
}
