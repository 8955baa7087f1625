package serde

import (
	"math"
	"unicode/utf8"

	"github.com/canwire/canwire/errs"
	"github.com/canwire/canwire/wire"
)

// Unmarshaler is implemented by any value this codec can decode.
// UnmarshalCAN reads fields from d in the same order MarshalCAN wrote
// them; it must not retain d past the call, and any []byte it receives
// from d (via Bytes) is only valid until the next call on d.
type Unmarshaler interface {
	UnmarshalCAN(d *Decoder) error
}

// Decoder consumes primitive fields from a bit register built over a
// caller-supplied byte slice. A zero Decoder is not usable; use
// NewDecoder.
type Decoder struct {
	r *wire.Reader
}

// NewDecoder builds a Decoder over data. Only the first 8 bytes of data
// are consulted; a shape that tries to read past what was available fails
// with errs.ErrMsgTooLong.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{r: wire.NewReader(data)}
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v Unmarshaler) error {
	d := NewDecoder(data)
	if err := v.UnmarshalCAN(d); err != nil {
		return err
	}

	return d.Finish()
}

// Finish checks that the register was not over-consumed. Trailing unread
// bits (padding, or a shorter shape than the input implied) are not an
// error; only reading past what was available is.
func (d *Decoder) Finish() error {
	return d.r.CheckLen()
}

// Bool decodes a single bit.
func (d *Decoder) Bool() (bool, error) { return d.r.Bool() }

// Uint8 decodes an 8-bit unsigned integer.
func (d *Decoder) Uint8() (uint8, error) {
	v, err := d.r.Bits(8)
	return uint8(v), err
}

// Uint16 decodes a 16-bit unsigned integer.
func (d *Decoder) Uint16() (uint16, error) {
	v, err := d.r.Bits(16)
	return uint16(v), err
}

// Uint32 decodes a 32-bit unsigned integer.
func (d *Decoder) Uint32() (uint32, error) {
	v, err := d.r.Bits(32)
	return uint32(v), err
}

// Uint64 decodes a 64-bit unsigned integer.
func (d *Decoder) Uint64() (uint64, error) {
	return d.r.Bits(64)
}

// Int8 decodes an 8-bit signed integer from its two's-complement bit
// pattern.
func (d *Decoder) Int8() (int8, error) {
	v, err := d.Uint8()
	return int8(v), err
}

// Int16 decodes a 16-bit signed integer from its two's-complement bit
// pattern.
func (d *Decoder) Int16() (int16, error) {
	v, err := d.Uint16()
	return int16(v), err
}

// Int32 decodes a 32-bit signed integer from its two's-complement bit
// pattern.
func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

// Int64 decodes a 64-bit signed integer from its two's-complement bit
// pattern.
func (d *Decoder) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

// Float32 decodes the IEEE-754 bit pattern of a float32.
func (d *Decoder) Float32() (float32, error) {
	v, err := d.Uint32()
	return math.Float32frombits(v), err
}

// Float64 decodes the IEEE-754 bit pattern of a float64.
func (d *Decoder) Float64() (float64, error) {
	v, err := d.Uint64()
	return math.Float64frombits(v), err
}

// Char decodes a length-prefixed byte sequence and returns its first code
// point. Fails with errs.ErrCharFail if the sequence is empty, or
// errs.ErrUtf8DecodeFail if it is not valid UTF-8.
func (d *Decoder) Char() (rune, error) {
	b, err := d.decodeBytes()
	if err != nil {
		return 0, err
	}

	if len(b) == 0 {
		return 0, errs.ErrCharFail
	}

	if !utf8.Valid(b) {
		return 0, errs.ErrUtf8DecodeFail
	}

	r, _ := utf8.DecodeRune(b)

	return r, nil
}

// String decodes a 4-bit length followed by that many UTF-8 bytes. Unlike
// Bytes, the returned string is a fresh copy (Go strings are immutable, so
// no aliasing of Decoder-owned memory is possible), but the decode still
// uses the Decoder's scratch buffer internally.
func (d *Decoder) String() (string, error) {
	b, err := d.decodeBytes()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.ErrUtf8DecodeFail
	}

	return string(b), nil
}

// Bytes decodes a 4-bit length followed by that many bytes. The returned
// slice aliases the Decoder's scratch buffer and is only valid until the
// next call on this Decoder that writes to scratch (String, Bytes, or
// Char).
func (d *Decoder) Bytes() ([]byte, error) {
	return d.decodeBytes()
}

func (d *Decoder) decodeBytes() ([]byte, error) {
	n, err := d.r.Bits(4)
	if err != nil {
		return nil, err
	}

	return d.r.Scratch(int(n))
}

// OptionTag decodes the option discriminant written by Encoder.OptionTag:
// false means None, true means Some (with the payload immediately
// following).
func (d *Decoder) OptionTag() (bool, error) {
	return d.Bool()
}

// SeqLen decodes a sequence's 4-bit length header.
func (d *Decoder) SeqLen() (int, error) {
	v, err := d.r.Bits(4)
	return int(v), err
}

// Variant decodes a tagged union's 4-bit variant index.
func (d *Decoder) Variant() (int, error) {
	v, err := d.r.Bits(4)
	return int(v), err
}

// Unsupported always fails with errs.ErrUnsupported.
func (d *Decoder) Unsupported(name string) error {
	return errs.Unsupported(name)
}

// DecodeOption is a generic helper over OptionTag: returns nil if the tag
// is None, else decodes one T via dec and returns a pointer to it.
func DecodeOption[T any](d *Decoder, dec func(*Decoder) (T, error)) (*T, error) {
	present, err := d.OptionTag()
	if err != nil {
		return nil, err
	}

	if !present {
		return nil, nil
	}

	v, err := dec(d)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
