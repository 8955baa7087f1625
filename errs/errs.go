// Package errs defines the sentinel errors returned by wire, serde, frame
// and nodegroup.
//
// Every error those packages produce is one of the sentinels below, either
// bare, wrapped with fmt.Errorf("%w: ...") to carry call-specific detail, or
// inside one of this package's detail types (built by FieldIndexTooLarge,
// LengthTooLarge, ...), which unwrap to their sentinel. Compare
// with errors.Is against the sentinel; use the accessor functions in this
// package (FieldIndexDetail, LengthDetail, MsgIDMismatchDetail, ...) to
// recover the detail a caller needs without parsing the error string.
package errs

import (
	"errors"
	"fmt"
)

// Serialization errors.
var (
	// ErrMsgTooLong is returned when a serialized value would need more
	// than 64 bits, or when a frame carrier rejects a payload as too long.
	ErrMsgTooLong = errors.New("canwire: message too long, does not fit in 8 bytes")

	// ErrFieldIndexTooLarge is returned when a tagged union's variant
	// index is 16 or greater (the wire format allots 4 bits for it).
	ErrFieldIndexTooLarge = errors.New("canwire: variant index too large for 4-bit tag")

	// ErrLengthTooLarge is returned when a sequence, string, or byte blob
	// has 16 or more elements/bytes (the wire format allots 4 bits for
	// length).
	ErrLengthTooLarge = errors.New("canwire: length too large for 4-bit field")

	// ErrLengthUnknown is returned when encoding a sequence whose length
	// is not known ahead of the walk.
	ErrLengthUnknown = errors.New("canwire: sequence length unknown")

	// ErrUnsupported is returned for shapes the codec deliberately does
	// not implement (maps, dynamic any, display-collected strings).
	ErrUnsupported = errors.New("canwire: shape unsupported")

	// ErrSerCustom is returned by Marshaler implementations that need to
	// signal a domain-specific serialize failure.
	ErrSerCustom = errors.New("canwire: custom serialize error")
)

// Deserialization errors.
var (
	// ErrUtf8DecodeFail is returned when a length-prefixed byte sequence
	// expected to be UTF-8 (string or char) is not valid UTF-8.
	ErrUtf8DecodeFail = errors.New("canwire: invalid utf-8")

	// ErrCharFail is returned when decoding a char from an empty string.
	ErrCharFail = errors.New("canwire: empty string where char expected")

	// ErrDeCustom is returned by Unmarshaler implementations that need to
	// signal a domain-specific deserialize failure.
	ErrDeCustom = errors.New("canwire: custom deserialize error")
)

// Frame errors.
var (
	// ErrRemoteFrame is returned when decoding a frame whose
	// IsRemoteFrame() is true; remote frames carry no payload.
	ErrRemoteFrame = errors.New("canwire/frame: remote frame has no payload")
)

// Node group errors.
var (
	// ErrNodeIDOutOfRange is returned when an encode call's node id does
	// not fit in NodeIDLen bits.
	ErrNodeIDOutOfRange = errors.New("canwire/nodegroup: node id out of range")

	// ErrCanIDOutOfRange is returned when a composed CAN identifier does
	// not fit in 29 bits.
	ErrCanIDOutOfRange = errors.New("canwire/nodegroup: can id out of range")

	// ErrMsgIDMismatch is returned when a decoded frame's message id does
	// not match the message id of the requested type.
	ErrMsgIDMismatch = errors.New("canwire/nodegroup: message id mismatch")

	// ErrNodeGroupMismatch is returned when a frame's identifier does not
	// carry this node group's BASE bits.
	ErrNodeGroupMismatch = errors.New("canwire/nodegroup: frame does not belong to this node group")

	// ErrInvalidConfig is returned by NewConfig/NewGroup when the static
	// parameters violate one of the node-group invariants.
	ErrInvalidConfig = errors.New("canwire/nodegroup: invalid configuration")

	// ErrUnknownType is returned when a value's type is not a member of
	// a node group's type list.
	ErrUnknownType = errors.New("canwire/nodegroup: type not a member of this node group's list")

	// ErrDuplicateType is returned by NewList when the same type appears
	// more than once.
	ErrDuplicateType = errors.New("canwire/nodegroup: duplicate type in list")
)

// fieldIndexTooLargeDetail carries the type/variant name pair behind
// ErrFieldIndexTooLarge, recoverable via FieldIndexDetail.
type fieldIndexTooLargeDetail struct {
	typeName string
	variant  string
	index    int
}

func (e *fieldIndexTooLargeDetail) Error() string {
	return fmt.Sprintf("canwire: variant index %d of %s.%s too large", e.index, e.typeName, e.variant)
}

func (e *fieldIndexTooLargeDetail) Unwrap() error { return ErrFieldIndexTooLarge }

// FieldIndexTooLarge builds the error returned when a tagged union's
// variant index does not fit in 4 bits.
func FieldIndexTooLarge(typeName, variant string, index int) error {
	return &fieldIndexTooLargeDetail{typeName: typeName, variant: variant, index: index}
}

// FieldIndexDetail recovers the (typeName, variant, index) that produced an
// ErrFieldIndexTooLarge error, if err wraps one.
func FieldIndexDetail(err error) (typeName, variant string, index int, ok bool) {
	var d *fieldIndexTooLargeDetail
	if errors.As(err, &d) {
		return d.typeName, d.variant, d.index, true
	}

	return "", "", 0, false
}

// lengthTooLargeDetail carries the (kind, length) pair behind
// ErrLengthTooLarge.
type lengthTooLargeDetail struct {
	kind string
	n    int
}

func (e *lengthTooLargeDetail) Error() string {
	return fmt.Sprintf("canwire: %s length of %d too large", e.kind, e.n)
}

func (e *lengthTooLargeDetail) Unwrap() error { return ErrLengthTooLarge }

// LengthTooLarge builds the error returned when a seq/string/bytes length
// is 16 or more. kind is one of "seq", "string", "bytes", "char", or
// "nodegroup list" (NewList given more than 16 types).
func LengthTooLarge(kind string, n int) error {
	return &lengthTooLargeDetail{kind: kind, n: n}
}

// LengthDetail recovers the (kind, n) that produced an ErrLengthTooLarge
// error, if err wraps one.
func LengthDetail(err error) (kind string, n int, ok bool) {
	var d *lengthTooLargeDetail
	if errors.As(err, &d) {
		return d.kind, d.n, true
	}

	return "", 0, false
}

// unsupportedDetail carries the shape name behind ErrUnsupported.
type unsupportedDetail struct {
	name string
}

func (e *unsupportedDetail) Error() string { return fmt.Sprintf("canwire: %s unsupported", e.name) }
func (e *unsupportedDetail) Unwrap() error { return ErrUnsupported }

// Unsupported builds the error returned for a shape this codec refuses to
// handle (map, any, display).
func Unsupported(name string) error { return &unsupportedDetail{name: name} }

// UnsupportedName recovers the shape name that produced an ErrUnsupported
// error, if err wraps one.
func UnsupportedName(err error) (name string, ok bool) {
	var d *unsupportedDetail
	if errors.As(err, &d) {
		return d.name, true
	}

	return "", false
}

// nodeIDOutOfRangeDetail carries (node, width) behind ErrNodeIDOutOfRange.
type nodeIDOutOfRangeDetail struct {
	node  uint32
	width uint8
}

func (e *nodeIDOutOfRangeDetail) Error() string {
	return fmt.Sprintf("canwire/nodegroup: node id %d does not fit in %d bits", e.node, e.width)
}

func (e *nodeIDOutOfRangeDetail) Unwrap() error { return ErrNodeIDOutOfRange }

// NodeIDOutOfRange builds the error returned when node id does not fit in
// width bits.
func NodeIDOutOfRange(node uint32, width uint8) error {
	return &nodeIDOutOfRangeDetail{node: node, width: width}
}

// NodeIDOutOfRangeDetail recovers (node, width) from an ErrNodeIDOutOfRange
// error, if err wraps one.
func NodeIDOutOfRangeDetail(err error) (node uint32, width uint8, ok bool) {
	var d *nodeIDOutOfRangeDetail
	if errors.As(err, &d) {
		return d.node, d.width, true
	}

	return 0, 0, false
}

// canIDOutOfRangeDetail carries the composed raw id behind
// ErrCanIDOutOfRange.
type canIDOutOfRangeDetail struct {
	raw uint32
}

func (e *canIDOutOfRangeDetail) Error() string {
	return fmt.Sprintf("canwire/nodegroup: can id 0x%x out of range", e.raw)
}

func (e *canIDOutOfRangeDetail) Unwrap() error { return ErrCanIDOutOfRange }

// CanIDOutOfRange builds the error returned when a composed CAN identifier
// exceeds 29 bits.
func CanIDOutOfRange(raw uint32) error { return &canIDOutOfRangeDetail{raw: raw} }

// CanIDOutOfRangeDetail recovers the raw id from an ErrCanIDOutOfRange
// error, if err wraps one.
func CanIDOutOfRangeDetail(err error) (raw uint32, ok bool) {
	var d *canIDOutOfRangeDetail
	if errors.As(err, &d) {
		return d.raw, true
	}

	return 0, false
}

// msgIDMismatchDetail carries (got, expected) behind ErrMsgIDMismatch.
type msgIDMismatchDetail struct {
	got, expected int32
}

func (e *msgIDMismatchDetail) Error() string {
	return fmt.Sprintf("canwire/nodegroup: message id mismatch, got %d, expected %d", e.got, e.expected)
}

func (e *msgIDMismatchDetail) Unwrap() error { return ErrMsgIDMismatch }

// MsgIDMismatch builds the error returned when a decoded frame's message id
// does not match the requested type's message id.
func MsgIDMismatch(got, expected int32) error {
	return &msgIDMismatchDetail{got: got, expected: expected}
}

// MsgIDMismatchDetail recovers (got, expected) from an ErrMsgIDMismatch
// error, if err wraps one.
func MsgIDMismatchDetail(err error) (got, expected int32, ok bool) {
	var d *msgIDMismatchDetail
	if errors.As(err, &d) {
		return d.got, d.expected, true
	}

	return 0, 0, false
}
