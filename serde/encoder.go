package serde

import (
	"math"
	"unicode/utf8"

	"github.com/canwire/canwire/errs"
	"github.com/canwire/canwire/wire"
)

// Marshaler is implemented by any value this codec can encode. MarshalCAN
// writes the value's fields to e in declaration order; it must not retain
// e past the call.
type Marshaler interface {
	MarshalCAN(e *Encoder) error
}

// Encoder drives primitive writes into a bit register bounded to one CAN
// payload (8 bytes). A zero Encoder is not usable; use NewEncoder.
type Encoder struct {
	w *wire.Writer
}

// NewEncoder returns an Encoder with an empty register.
func NewEncoder() *Encoder {
	return &Encoder{w: wire.NewWriter()}
}

// Marshal encodes v and returns the packed payload, at most 8 bytes.
func Marshal(v Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := v.MarshalCAN(e); err != nil {
		return nil, err
	}

	return e.Finish()
}

// Finish left-aligns and byte-packs everything written so far. Callers
// normally use Marshal instead of calling Finish directly.
func (e *Encoder) Finish() ([]byte, error) {
	return e.w.Finish()
}

// Bool encodes a single bit: 1 for true, 0 for false.
func (e *Encoder) Bool(v bool) error {
	return e.w.AppendBool(v)
}

// Uint8 encodes an 8-bit unsigned integer.
func (e *Encoder) Uint8(v uint8) error { return e.w.AppendBits(uint64(v), 8) }

// Uint16 encodes a 16-bit unsigned integer, big-endian on the wire.
func (e *Encoder) Uint16(v uint16) error { return e.w.AppendBits(uint64(v), 16) }

// Uint32 encodes a 32-bit unsigned integer, big-endian on the wire.
func (e *Encoder) Uint32(v uint32) error { return e.w.AppendBits(uint64(v), 32) }

// Uint64 encodes a 64-bit unsigned integer, big-endian on the wire.
func (e *Encoder) Uint64(v uint64) error { return e.w.AppendBits(v, 64) }

// Int8 encodes an 8-bit signed integer as its two's-complement bit
// pattern.
func (e *Encoder) Int8(v int8) error { return e.Uint8(uint8(v)) }

// Int16 encodes a 16-bit signed integer as its two's-complement bit
// pattern.
func (e *Encoder) Int16(v int16) error { return e.Uint16(uint16(v)) }

// Int32 encodes a 32-bit signed integer as its two's-complement bit
// pattern.
func (e *Encoder) Int32(v int32) error { return e.Uint32(uint32(v)) }

// Int64 encodes a 64-bit signed integer as its two's-complement bit
// pattern.
func (e *Encoder) Int64(v int64) error { return e.Uint64(uint64(v)) }

// Float32 encodes the IEEE-754 bit pattern of v.
func (e *Encoder) Float32(v float32) error { return e.Uint32(math.Float32bits(v)) }

// Float64 encodes the IEEE-754 bit pattern of v.
func (e *Encoder) Float64(v float64) error { return e.Uint64(math.Float64bits(v)) }

// Char encodes a single code point the same way a one-rune string would:
// 4-bit byte length, then the UTF-8 bytes of v.
func (e *Encoder) Char(v rune) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], v)

	return e.bytesWithKind(buf[:n], "char")
}

// String encodes v as a 4-bit length followed by its UTF-8 bytes. len(v)
// must be at most 15.
func (e *Encoder) String(v string) error {
	return e.bytesWithKind([]byte(v), "string")
}

// Bytes encodes v as a 4-bit length followed by its bytes. len(v) must be
// at most 15.
func (e *Encoder) Bytes(v []byte) error {
	return e.bytesWithKind(v, "bytes")
}

func (e *Encoder) bytesWithKind(v []byte, kind string) error {
	if len(v) >= 16 {
		return errs.LengthTooLarge(kind, len(v))
	}

	if err := e.w.AppendBits(uint64(len(v)), 4); err != nil {
		return err
	}

	for _, b := range v {
		if err := e.Uint8(b); err != nil {
			return err
		}
	}

	return nil
}

// OptionTag writes the option discriminant: 0 for None, 1 for Some.
// Callers encode the payload themselves immediately after a true tag:
//
//	if v == nil {
//		return e.OptionTag(false)
//	}
//	if err := e.OptionTag(true); err != nil {
//		return err
//	}
//	return e.Uint32(*v)
func (e *Encoder) OptionTag(present bool) error {
	return e.Bool(present)
}

// SeqLen writes a sequence's 4-bit length header. n must be in [0, 15]; a
// negative n (length not known ahead of the walk) fails with
// errs.ErrLengthUnknown.
func (e *Encoder) SeqLen(n int) error {
	if n < 0 {
		return errs.ErrLengthUnknown
	}

	if n >= 16 {
		return errs.LengthTooLarge("seq", n)
	}

	return e.w.AppendBits(uint64(n), 4)
}

// Variant writes a tagged union's 4-bit variant index. typeName and
// variant are used only to build the error message when idx does not fit.
func (e *Encoder) Variant(typeName, variant string, idx int) error {
	if idx < 0 || idx >= 16 {
		return errs.FieldIndexTooLarge(typeName, variant, idx)
	}

	return e.w.AppendBits(uint64(idx), 4)
}

// Unsupported always fails with errs.ErrUnsupported; MarshalCAN
// implementations call it for shapes this codec deliberately refuses
// (maps, dynamic any, display-collected strings).
func (e *Encoder) Unsupported(name string) error {
	return errs.Unsupported(name)
}

// EncodeOption is a generic helper over OptionTag for the common case of
// encoding a *T field: writes the None tag if v is nil, else the Some tag
// followed by enc(e, *v).
func EncodeOption[T any](e *Encoder, v *T, enc func(*Encoder, T) error) error {
	if v == nil {
		return e.OptionTag(false)
	}

	if err := e.OptionTag(true); err != nil {
		return err
	}

	return enc(e, *v)
}
