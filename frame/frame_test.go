package frame_test

import (
	"testing"

	"github.com/canwire/canwire/errs"
	"github.com/canwire/canwire/frame"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsPayloadLongerThanEight(t *testing.T) {
	_, err := frame.New(frame.NewExtendedID(1), make([]byte, 9))
	require.ErrorIs(t, err, errs.ErrMsgTooLong)
}

func TestNew_RoundTripsData(t *testing.T) {
	f, err := frame.New(frame.NewExtendedID(0x123), []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, f.Data())
	require.False(t, f.IsRemoteFrame())
	require.Equal(t, uint32(0x123), f.ID().Raw())
	require.Equal(t, frame.Extended, f.ID().Kind())
}

func TestNewRemote_HasNoData(t *testing.T) {
	f, err := frame.NewRemote(frame.NewStandardID(5), 4)
	require.NoError(t, err)
	require.True(t, f.IsRemoteFrame())
	require.Empty(t, f.Data())
}

func TestExtendedID_MasksTo29Bits(t *testing.T) {
	id := frame.NewExtendedID(0xFFFF_FFFF)
	require.Equal(t, uint32(0x1FFF_FFFF), id.Raw())
}

func TestStandardID_MasksTo11Bits(t *testing.T) {
	id := frame.NewStandardID(0xFFFF)
	require.Equal(t, uint32(0x7FF), id.Raw())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Standard", frame.Standard.String())
	require.Equal(t, "Extended", frame.Extended.String())
}
