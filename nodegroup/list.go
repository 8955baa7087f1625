// Package nodegroup implements the small message-ID dispatcher that sits
// between the wire-level codecs in serde and an actual CAN identifier: a
// List assigns each message type in a group a small integer id, a Config
// carries the group's static bit layout (BASE, NODE_ID_LEN, MSG_ID_LEN),
// and a Group composes the two into full Encode/Decode operations over an
// extended CAN identifier.
package nodegroup

import (
	"fmt"
	"reflect"

	"github.com/canwire/canwire/errs"
)

// List is a fixed, ordered set of message types. Each type's position in
// the list is its message id; list order is part of the wire contract, not
// an implementation detail — reordering the list changes every message id
// it assigns.
type List struct {
	types []reflect.Type
}

// TypeOf returns the reflect.Type of T without requiring a zero value,
// so callers can build a List entry for T even when T is an interface
// or otherwise awkward to instantiate: nodegroup.TypeOf[uint32]().
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// NewList builds a List from the given types, in order. Fails with
// errs.ErrDuplicateType if the same type appears twice, or with
// errs.ErrLengthTooLarge if more than 16 types are given. Whether the list
// fits a group's MsgIDLen-bit message id is checked later, by NewGroup.
func NewList(types ...reflect.Type) (*List, error) {
	if len(types) > 16 {
		return nil, errs.LengthTooLarge("nodegroup list", len(types))
	}

	seen := make(map[reflect.Type]bool, len(types))
	for _, t := range types {
		if seen[t] {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateType, t)
		}

		seen[t] = true
	}

	out := make([]reflect.Type, len(types))
	copy(out, types)

	return &List{types: out}, nil
}

// Len returns the number of types registered in l.
func (l *List) Len() int { return len(l.types) }

// TypeNames returns the registered types' names, in list order.
func (l *List) TypeNames() []string {
	names := make([]string, len(l.types))
	for i, t := range l.types {
		names[i] = t.String()
	}

	return names
}

// MessageID returns the list position of T, or -1 if T is not a member of
// l. Mirrors the Rust source's msg_id::<T>() used for diagnostics and for
// composing/matching a frame's message-id bits.
func MessageID[T any](l *List) int32 {
	target := reflect.TypeFor[T]()
	for i, t := range l.types {
		if t == target {
			return int32(i)
		}
	}

	return -1
}
