// Package frame defines the CAN frame carrier contract package nodegroup
// consumes, plus a small concrete implementation for tests, examples, and
// callers that don't already have their own frame type from a CAN driver
// library.
//
// Any type satisfying the Frame interface — including ones from an actual
// CAN bus driver — can be round-tripped through nodegroup.Group, matching
// spec.md §6's "Frame carrier contract (consumed)".
package frame

import "github.com/canwire/canwire/errs"

// Kind distinguishes an 11-bit standard identifier from a 29-bit extended
// one, mirroring the teacher's small enumerated-constant-with-String()
// value types.
type Kind uint8

const (
	// Standard identifies an 11-bit CAN identifier.
	Standard Kind = 1
	// Extended identifies a 29-bit CAN identifier.
	Extended Kind = 2
)

func (k Kind) String() string {
	switch k {
	case Standard:
		return "Standard"
	case Extended:
		return "Extended"
	default:
		return "Unknown"
	}
}

// ID is a CAN frame identifier, either an 11-bit standard id or a 29-bit
// extended one.
type ID struct {
	raw  uint32
	kind Kind
}

// NewStandardID builds an 11-bit standard identifier. raw is masked to 11
// bits.
func NewStandardID(raw uint32) ID {
	return ID{raw: raw & 0x7FF, kind: Standard}
}

// NewExtendedID builds a 29-bit extended identifier. raw is masked to 29
// bits.
func NewExtendedID(raw uint32) ID {
	return ID{raw: raw & 0x1FFF_FFFF, kind: Extended}
}

// Raw returns the identifier's numeric value.
func (id ID) Raw() uint32 { return id.raw }

// Kind reports whether id is Standard or Extended.
func (id ID) Kind() Kind { return id.kind }

// Frame is the carrier contract package nodegroup consumes: an opaque CAN
// frame exposing its identifier, payload, and remote-frame flag.
type Frame interface {
	// ID returns the frame's identifier.
	ID() ID
	// Data returns the frame's payload. Empty for a remote frame.
	Data() []byte
	// IsRemoteFrame reports whether this is a remote (data-less) frame.
	IsRemoteFrame() bool
}

// rawFrame is the concrete Frame implementation returned by New/NewRemote.
type rawFrame struct {
	id     ID
	data   [8]byte
	dlc    uint8
	remote bool
}

var _ Frame = (*rawFrame)(nil)

// New builds a data frame carrying data (at most 8 bytes). Fails with
// errs.ErrMsgTooLong if data is longer than 8 bytes.
func New(id ID, data []byte) (Frame, error) {
	if len(data) > 8 {
		return nil, errs.ErrMsgTooLong
	}

	f := &rawFrame{id: id, dlc: uint8(len(data))}
	copy(f.data[:], data)

	return f, nil
}

// NewRemote builds a remote frame requesting dlc bytes (at most 8) from the
// peer identified by id. Fails with errs.ErrMsgTooLong if dlc exceeds 8.
func NewRemote(id ID, dlc int) (Frame, error) {
	if dlc > 8 || dlc < 0 {
		return nil, errs.ErrMsgTooLong
	}

	return &rawFrame{id: id, dlc: uint8(dlc), remote: true}, nil
}

// ID returns the frame's identifier.
func (f *rawFrame) ID() ID { return f.id }

// Data returns the frame's payload, or nil for a remote frame.
func (f *rawFrame) Data() []byte {
	if f.remote {
		return nil
	}

	return f.data[:f.dlc]
}

// IsRemoteFrame reports whether f is a remote frame.
func (f *rawFrame) IsRemoteFrame() bool { return f.remote }
