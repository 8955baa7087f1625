package wire

import (
	"testing"

	"github.com/canwire/canwire/errs"
	"github.com/stretchr/testify/require"
)

func TestWriter_AppendBool_True(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBool(true))

	out, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, out)
}

func TestWriter_AppendBool_False(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBool(false))

	out, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, out)
}

func TestWriter_AppendBool_Sequence(t *testing.T) {
	w := NewWriter()
	bits := []bool{true, false, true, false, false, true, true, false, false, false, true}
	for _, b := range bits {
		require.NoError(t, w.AppendBool(b))
	}

	out, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0xA6, 0x20}, out)
}

func TestWriter_AppendBits_Exactly64(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBits(0x1122334455667788, 64))

	out, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, out)
}

func TestWriter_AppendBits_OverflowsMsgTooLong(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBits(1, 64))
	err := w.AppendBits(1, 1)
	require.ErrorIs(t, err, errs.ErrMsgTooLong)
}

func TestWriter_Finish_PartialByteRightPadded(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBits(7, 4)) // length nibble = 7
	for _, b := range []byte("abcdefg") {
		require.NoError(t, w.AppendBits(uint64(b), 8))
	}

	out, err := w.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x76, 0x16, 0x26, 0x36, 0x46, 0x56, 0x66, 0x70}, out)
}

func TestWriter_Finish_Empty(t *testing.T) {
	w := NewWriter()
	out, err := w.Finish()
	require.NoError(t, err)
	require.Empty(t, out)
}
