package serde

import (
	"fmt"

	"github.com/canwire/canwire/errs"
)

// MarshalValue encodes v and returns its packed payload. v must either
// implement Marshaler, or be one of the built-in kinds this codec knows
// natively — bool, int8/16/32/64, int, uint8/16/32/64, uint, float32/64,
// string, or []byte — mirroring serde's blanket impls for primitive types
// in the Rust source this package is modeled on (isize/usize map to Go's
// platform-width int/uint, encoded as 64 bits on the wire).
//
// Package nodegroup uses MarshalValue so that a type list can mix
// primitive message types (spec.md's scenario 6: u32, isize, u8, i8,
// usize) with hand-written Marshaler structs/enums without requiring
// every primitive to carry its own named wrapper type.
func MarshalValue(v any) ([]byte, error) {
	e := NewEncoder()
	if err := e.encodeAny(v); err != nil {
		return nil, err
	}

	return e.Finish()
}

func (e *Encoder) encodeAny(v any) error {
	switch x := v.(type) {
	case bool:
		return e.Bool(x)
	case int8:
		return e.Int8(x)
	case int16:
		return e.Int16(x)
	case int32:
		return e.Int32(x)
	case int64:
		return e.Int64(x)
	case int:
		return e.Int64(int64(x))
	case uint8:
		return e.Uint8(x)
	case uint16:
		return e.Uint16(x)
	case uint32:
		return e.Uint32(x)
	case uint64:
		return e.Uint64(x)
	case uint:
		return e.Uint64(uint64(x))
	case float32:
		return e.Float32(x)
	case float64:
		return e.Float64(x)
	case string:
		return e.String(x)
	case []byte:
		return e.Bytes(x)
	case Marshaler:
		return x.MarshalCAN(e)
	default:
		return fmt.Errorf("%w: %T has no MarshalCAN method and is not a built-in primitive", errs.ErrUnsupported, v)
	}
}

// UnmarshalValue decodes data into out, which must be a pointer to one of
// the built-in kinds MarshalValue knows, or implement Unmarshaler.
func UnmarshalValue(data []byte, out any) error {
	d := NewDecoder(data)
	if err := d.decodeAnyPtr(out); err != nil {
		return err
	}

	return d.Finish()
}

func (d *Decoder) decodeAnyPtr(out any) error {
	switch p := out.(type) {
	case *bool:
		v, err := d.Bool()
		*p, _ = v, err
		return err
	case *int8:
		v, err := d.Int8()
		*p, _ = v, err
		return err
	case *int16:
		v, err := d.Int16()
		*p, _ = v, err
		return err
	case *int32:
		v, err := d.Int32()
		*p, _ = v, err
		return err
	case *int64:
		v, err := d.Int64()
		*p, _ = v, err
		return err
	case *int:
		v, err := d.Int64()
		if err != nil {
			return err
		}

		*p = int(v)

		return nil
	case *uint8:
		v, err := d.Uint8()
		*p, _ = v, err
		return err
	case *uint16:
		v, err := d.Uint16()
		*p, _ = v, err
		return err
	case *uint32:
		v, err := d.Uint32()
		*p, _ = v, err
		return err
	case *uint64:
		v, err := d.Uint64()
		*p, _ = v, err
		return err
	case *uint:
		v, err := d.Uint64()
		if err != nil {
			return err
		}

		*p = uint(v)

		return nil
	case *float32:
		v, err := d.Float32()
		*p, _ = v, err
		return err
	case *float64:
		v, err := d.Float64()
		*p, _ = v, err
		return err
	case *string:
		v, err := d.String()
		*p, _ = v, err
		return err
	case *[]byte:
		v, err := d.Bytes()
		if err != nil {
			return err
		}

		*p = append([]byte(nil), v...)

		return nil
	case Unmarshaler:
		return p.UnmarshalCAN(d)
	default:
		return fmt.Errorf("%w: %T has no UnmarshalCAN method and is not a built-in primitive pointer", errs.ErrUnsupported, out)
	}
}
