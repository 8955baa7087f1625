// Package serde implements the structured codec that walks composite
// values (scalars, tuples, structs, tagged unions, options, sequences,
// strings, byte blobs) and drives them through package wire's bit
// register.
//
// Go has no derive macros, so the visitor protocol spec.md describes is
// expressed as two interfaces a type implements by hand, the same way the
// teacher hand-writes one ColumnarEncoder/ColumnarDecoder per wire shape:
//
//	type Point struct{ X, Y int16 }
//
//	func (p Point) MarshalCAN(e *serde.Encoder) error {
//		if err := e.Int16(p.X); err != nil {
//			return err
//		}
//		return e.Int16(p.Y)
//	}
//
//	func (p *Point) UnmarshalCAN(d *serde.Decoder) error {
//		x, err := d.Int16()
//		if err != nil {
//			return err
//		}
//		y, err := d.Int16()
//		if err != nil {
//			return err
//		}
//		p.X, p.Y = x, y
//		return nil
//	}
//
// Field order is the sole ordering contract: tuples, structs, and fixed
// sequences are written as the concatenation of their members in
// declaration order, with no length header (spec.md §4.2). Sequences of
// runtime-determined length, tagged unions, and options each carry their
// own small header (SeqLen, Variant, OptionTag respectively); see the
// method docs on Encoder/Decoder.
package serde
