package bitstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterCountsAndPads(t *testing.T) {
	var bb bytes.Buffer
	w := NewWriter(&bb)

	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteBit(false))
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteByte(0xAB))
	require.Equal(t, uint64(11), w.Written())
	require.NoError(t, w.Close())

	// 101 10101011 -> 10110101 011 + 5 zero pad bits
	require.Equal(t, []byte{0xB5, 0x60}, bb.Bytes())
	require.Equal(t, uint64(11), w.Written(), "padding must not be counted")
}

func TestReaderBudget(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xB5, 0x60}), 11)

	for _, want := range []bool{true, false, true} {
		bit, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, bit)
	}
	b, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), b)
	require.Zero(t, r.Remaining())

	_, err = r.ReadBit()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestReaderTruncatedInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF}), 20)

	for i := 0; i < 8; i++ {
		_, err := r.ReadBit()
		require.NoError(t, err)
	}
	_, err := r.ReadBit()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestReaderZeroBudget(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF}), 0)
	_, err := r.ReadBit()
	require.ErrorIs(t, err, ErrEndOfStream)

	_, err = r.ReadByte()
	require.ErrorIs(t, err, ErrEndOfStream)
}

func TestRoundTripBits(t *testing.T) {
	var bb bytes.Buffer
	w := NewWriter(&bb)
	bits := []bool{true, true, false, true, false, false, true, false, true, true, true}
	for _, b := range bits {
		require.NoError(t, w.WriteBit(b))
	}
	require.NoError(t, w.Close())

	r := NewReader(&bb, w.Written())
	for i, want := range bits {
		got, err := r.ReadBit()
		require.NoError(t, err)
		require.Equal(t, want, got, "bit %d", i)
	}
	_, err := r.ReadBit()
	require.ErrorIs(t, err, ErrEndOfStream)
}
