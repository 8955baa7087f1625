package canwire_test

import (
	"testing"

	"github.com/canwire/canwire"
	"github.com/canwire/canwire/nodegroup"
	"github.com/canwire/canwire/serde"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int16
}

func (p point) MarshalCAN(e *serde.Encoder) error {
	if err := e.Int16(p.X); err != nil {
		return err
	}

	return e.Int16(p.Y)
}

func (p *point) UnmarshalCAN(d *serde.Decoder) error {
	var err error

	p.X, err = d.Int16()
	if err != nil {
		return err
	}

	p.Y, err = d.Int16()

	return err
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	data, err := canwire.Encode(point{X: 1, Y: -1})
	require.NoError(t, err)

	var got point
	require.NoError(t, canwire.Decode(data, &got))
	require.Equal(t, point{X: 1, Y: -1}, got)
}

func TestEncodeFrameDecodeFrame_RoundTrips(t *testing.T) {
	cfg, err := nodegroup.NewConfig(0x1_9876_540, 3, 3)
	require.NoError(t, err)

	list, err := nodegroup.NewList(nodegroup.TypeOf[uint32]())
	require.NoError(t, err)

	group, err := nodegroup.NewGroup(cfg, list)
	require.NoError(t, err)

	f, err := canwire.EncodeFrame[uint32](group, 3, 12345)
	require.NoError(t, err)

	nodeID, v, err := canwire.DecodeFrame[uint32](group, f)
	require.NoError(t, err)
	require.Equal(t, uint32(3), nodeID)
	require.Equal(t, uint32(12345), v)
}

func TestMessageID_ResolvesListPosition(t *testing.T) {
	cfg, err := nodegroup.NewConfig(0, 3, 3)
	require.NoError(t, err)

	list, err := nodegroup.NewList(nodegroup.TypeOf[uint32](), nodegroup.TypeOf[uint8]())
	require.NoError(t, err)

	group, err := nodegroup.NewGroup(cfg, list)
	require.NoError(t, err)

	require.Equal(t, int32(0), canwire.MessageID[uint32](group))
	require.Equal(t, int32(1), canwire.MessageID[uint8](group))
}
