package nodegroup

import (
	"fmt"

	"github.com/canwire/canwire/errs"
)

// Option configures a Config at construction time. Config is the only type
// in the module that takes functional options, so the apply-in-order
// machinery lives here rather than behind a separate generic package.
type Option func(*Config)

// WithName attaches a diagnostic name to a Config, folded into
// Group.Fingerprint.
func WithName(name string) Option {
	return func(c *Config) { c.name = name }
}

// Config carries a node group's static bit layout within a 29-bit extended
// CAN identifier: BASE occupies the high bits, NODE_ID_LEN bits identify
// the sending node, and the low MSG_ID_LEN bits identify the message type.
type Config struct {
	name      string
	base      uint32
	nodeIDLen uint8
	msgIDLen  uint8

	msgMask  uint32
	nodeMask uint32
	baseMask uint32
}

// NewConfig validates and builds a Config. Fails with errs.ErrInvalidConfig
// if NodeIDLen+MsgIDLen exceeds 29 bits, if base overlaps the node/message
// bit fields, or if base itself does not fit in 29 bits.
func NewConfig(base uint32, nodeIDLen, msgIDLen uint8, opts ...Option) (*Config, error) {
	if int(nodeIDLen)+int(msgIDLen) > 29 {
		return nil, fmt.Errorf("%w: NODE_ID_LEN(%d)+MSG_ID_LEN(%d) exceeds 29 bits", errs.ErrInvalidConfig, nodeIDLen, msgIDLen)
	}

	c := &Config{base: base, nodeIDLen: nodeIDLen, msgIDLen: msgIDLen}
	for _, opt := range opts {
		opt(c)
	}

	msgMask := uint32(1)<<msgIDLen - 1
	nodeMask := (uint32(1)<<nodeIDLen - 1) << msgIDLen
	baseMask := uint32(0x1FFF_FFFF) &^ (msgMask | nodeMask)

	if base&0xE000_0000 != 0 {
		return nil, fmt.Errorf("%w: BASE 0x%x does not fit in 29 bits", errs.ErrInvalidConfig, base)
	}

	if base&(msgMask|nodeMask) != 0 {
		return nil, fmt.Errorf("%w: BASE 0x%x overlaps the node/message bit fields", errs.ErrInvalidConfig, base)
	}

	c.msgMask, c.nodeMask, c.baseMask = msgMask, nodeMask, baseMask

	return c, nil
}

// MustNewConfig is like NewConfig but panics on error. Intended for
// package-level var declarations where the layout is a compile-time
// constant and a configuration mistake should fail at startup.
func MustNewConfig(base uint32, nodeIDLen, msgIDLen uint8, opts ...Option) *Config {
	c, err := NewConfig(base, nodeIDLen, msgIDLen, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Base returns the group's BASE bits.
func (c *Config) Base() uint32 { return c.base }

// NodeIDLen returns the number of bits reserved for the node id.
func (c *Config) NodeIDLen() uint8 { return c.nodeIDLen }

// MsgIDLen returns the number of bits reserved for the message id.
func (c *Config) MsgIDLen() uint8 { return c.msgIDLen }
