// Package canwire packs and unpacks small, fixed-shape values into CAN bus
// payloads (at most 8 bytes) and, optionally, into full CAN frames
// addressed by a node-group's message-id scheme.
//
// # Core Features
//
//   - Bit-packed wire codec with no padding, no varint, no wire header
//     (package wire, package serde)
//   - Hand-written Marshaler/Unmarshaler visitor methods in place of a
//     derive macro, plus built-in support for primitive Go kinds
//   - Node-group dispatcher composing a 29-bit extended CAN identifier
//     from a static BASE plus per-message node/message-id bit fields
//     (package nodegroup)
//   - A small Frame carrier contract any CAN driver type can satisfy
//     (package frame)
//
// # Basic Usage
//
// Packing a struct without a node group, for point-to-point use:
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
//		var err error
//		if p.X, err = d.Int16(); err != nil {
//			return err
//		}
//		p.Y, err = d.Int16()
//		return err
//	}
//
//	data, _ := canwire.Encode(Point{X: 1, Y: -1})
//	var p Point
//	_ = canwire.Decode(data, &p)
//
// Addressing a value through a node group:
//
//	cfg, _ := nodegroup.NewConfig(0x1_9876_540, 3, 3)
//	list, _ := nodegroup.NewList(nodegroup.TypeOf[uint32]())
//	group, _ := nodegroup.NewGroup(cfg, list)
//
//	f, _ := canwire.EncodeFrame[uint32](group, 3, 12345)
//	nodeID, v, _ := canwire.DecodeFrame[uint32](group, f)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around wire, serde,
// and nodegroup. For fine-grained control — custom Marshaler/Unmarshaler
// walks, raw bit-register access, multiple concurrent node groups — use
// those packages directly.
package canwire

import (
	"github.com/canwire/canwire/frame"
	"github.com/canwire/canwire/nodegroup"
	"github.com/canwire/canwire/serde"
)

// Encode packs v into its wire payload, at most 8 bytes, without composing
// a CAN identifier.
func Encode(v serde.Marshaler) ([]byte, error) {
	return serde.Marshal(v)
}

// Decode unpacks data into v.
func Decode(data []byte, v serde.Unmarshaler) error {
	return serde.Unmarshal(data, v)
}

// EncodeFrame packs v and composes a full CAN frame addressed to group g,
// sent by nodeID.
func EncodeFrame[T any](g *nodegroup.Group, nodeID uint32, v T) (frame.Frame, error) {
	return nodegroup.Encode[T](g, nodeID, v)
}

// DecodeFrame unpacks f, which must be addressed to group g, into a value
// of type T, and returns the sending node's id.
func DecodeFrame[T any](g *nodegroup.Group, f frame.Frame) (uint32, T, error) {
	return nodegroup.Decode[T](g, f)
}

// MessageID returns the message id assigned to T within group g's type
// list, or -1 if T is not a member. Exposed mainly for diagnostics and
// tests; Encode/DecodeFrame already resolve it internally.
func MessageID[T any](g *nodegroup.Group) int32 {
	return nodegroup.MessageID[T](g.List())
}
