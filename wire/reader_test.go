package wire

import (
	"testing"

	"github.com/canwire/canwire/errs"
	"github.com/stretchr/testify/require"
)

func TestReader_Bool_RoundTrip(t *testing.T) {
	r := NewReader([]byte{0x80})
	v, err := r.Bool()
	require.NoError(t, err)
	require.True(t, v)
}

func TestReader_Bits_RoundTripsWriter(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBits(0x1234, 16))
	require.NoError(t, w.AppendBits(0xAB, 8))
	data, err := w.Finish()
	require.NoError(t, err)

	r := NewReader(data)
	v16, err := r.Bits(16)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1234), v16)

	v8, err := r.Bits(8)
	require.NoError(t, err)
	require.Equal(t, uint64(0xAB), v8)
}

func TestReader_Bits_ExhaustedFailsMsgTooLong(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.Bits(8)
	require.NoError(t, err)

	// CheckLen only rejects once remaining has already gone negative, so
	// this first over-read is reported lagged: it drains remaining to -8
	// but still returns successfully.
	_, err = r.Bits(8)
	require.NoError(t, err)

	_, err = r.Bits(8)
	require.ErrorIs(t, err, errs.ErrMsgTooLong)
}

func TestReader_NineByteInputOnlyConsultsFirstEight(t *testing.T) {
	data := make([]byte, 9)
	for i := range data {
		data[i] = 0xFF
	}

	r := NewReader(data)
	_, err := r.Bits(64)
	require.NoError(t, err)

	// Same lagged-check mechanics as above: the first bit read past the
	// 8-byte register still succeeds.
	_, err = r.Bits(1)
	require.NoError(t, err)

	_, err = r.Bits(1)
	require.ErrorIs(t, err, errs.ErrMsgTooLong)
}

func TestReader_Scratch_FifteenByteRequestFailsRegisterExhausted(t *testing.T) {
	// A Reader only ever holds 8 bytes (64 bits, NewReader truncates any
	// longer input), so a single 15-byte Scratch request can never be
	// satisfied regardless of the scratch buffer's own 15-byte capacity.
	r := NewReader([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	_, err := r.Scratch(15)
	require.ErrorIs(t, err, errs.ErrMsgTooLong)
}

func TestReader_Scratch_ResetScratchReclaimsSpaceAcrossFields(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.AppendBits(0x11223344, 32))
	require.NoError(t, w.AppendBits(0x55667788, 32))
	data, err := w.Finish()
	require.NoError(t, err)

	r := NewReader(data)

	first, err := r.Scratch(4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, first)

	r.ResetScratch()

	second, err := r.Scratch(4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x55, 0x66, 0x77, 0x88}, second)
}
