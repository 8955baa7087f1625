package nodegroup

import (
	"fmt"

	"github.com/canwire/canwire/errs"
	"github.com/canwire/canwire/frame"
	"github.com/canwire/canwire/internal/fingerprint"
	"github.com/canwire/canwire/serde"
)

// Group composes a Config's bit layout with a List of message types into
// full frame Encode/Decode operations.
type Group struct {
	cfg  *Config
	list *List
}

// NewGroup builds a Group. Fails with errs.ErrInvalidConfig if list holds
// more entries than 2^MsgIDLen can address.
func NewGroup(cfg *Config, list *List) (*Group, error) {
	limit := 1 << cfg.msgIDLen
	if list.Len() > limit {
		return nil, fmt.Errorf("%w: list has %d entries, exceeds 2^MSG_ID_LEN=%d", errs.ErrInvalidConfig, list.Len(), limit)
	}

	return &Group{cfg: cfg, list: list}, nil
}

// Fingerprint returns a stable diagnostic identity for g's configuration
// and type list, suitable for a log line or a startup consistency check
// between two binaries that must agree on a group's layout.
func (g *Group) Fingerprint() uint64 {
	return fingerprint.Config(g.cfg.name, g.cfg.base, g.cfg.nodeIDLen, g.cfg.msgIDLen, g.list.TypeNames())
}

// List returns g's type list, so callers can look up a message id with
// nodegroup.MessageID[T](g.List()) without a generic method (Go methods
// cannot carry their own type parameters).
func (g *Group) List() *List { return g.list }

// Encode packs v and composes the extended CAN identifier for a frame sent
// by nodeID within g. Fails with errs.ErrUnknownType if T is not a member
// of g's list, errs.ErrNodeIDOutOfRange if nodeID does not fit in
// NodeIDLen bits, or any error serde.MarshalValue returns for v.
func Encode[T any](g *Group, nodeID uint32, v T) (frame.Frame, error) {
	msgID := MessageID[T](g.list)
	if msgID < 0 {
		return nil, fmt.Errorf("%w: %T", errs.ErrUnknownType, v)
	}

	if nodeID >= 1<<g.cfg.nodeIDLen {
		return nil, errs.NodeIDOutOfRange(nodeID, g.cfg.nodeIDLen)
	}

	canID := g.cfg.base | (nodeID << g.cfg.msgIDLen) | uint32(msgID)
	if canID&0xE000_0000 != 0 {
		return nil, errs.CanIDOutOfRange(canID)
	}

	payload, err := serde.MarshalValue(v)
	if err != nil {
		return nil, err
	}

	return frame.New(frame.NewExtendedID(canID), payload)
}

// Decode unpacks f into a value of type T, and returns the sending node's
// id. Fails with errs.ErrRemoteFrame if f carries no payload,
// errs.ErrNodeGroupMismatch if f's identifier does not carry g's BASE
// bits, or errs.ErrMsgIDMismatch if f's message id does not match T's.
func Decode[T any](g *Group, f frame.Frame) (uint32, T, error) {
	var zero T

	if f.IsRemoteFrame() {
		return 0, zero, errs.ErrRemoteFrame
	}

	if f.ID().Kind() != frame.Extended {
		return 0, zero, errs.ErrNodeGroupMismatch
	}

	raw := f.ID().Raw()
	if raw&g.cfg.baseMask != g.cfg.base {
		return 0, zero, errs.ErrNodeGroupMismatch
	}

	got := int32(raw & g.cfg.msgMask)
	expected := MessageID[T](g.list)

	if got != expected {
		return 0, zero, errs.MsgIDMismatch(got, expected)
	}

	nodeID := (raw & g.cfg.nodeMask) >> g.cfg.msgIDLen

	var v T
	if err := serde.UnmarshalValue(f.Data(), &v); err != nil {
		return 0, zero, err
	}

	return nodeID, v, nil
}
