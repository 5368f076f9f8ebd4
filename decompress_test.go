package huffzip

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func withHeader(nbBits uint64, payload ...byte) []byte {
	out := make([]byte, headerSize, headerSize+len(payload))
	binary.BigEndian.PutUint64(out, nbBits)
	return append(out, payload...)
}

func TestDecompressShortHeader(t *testing.T) {
	for _, d := range [][]byte{nil, {1}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := Decompress(d)
		require.ErrorIs(t, err, ErrUnexpectedEOS)
	}
}

func TestDecompressZeroBits(t *testing.T) {
	out, err := Decompress(withHeader(0))
	require.NoError(t, err)
	require.Empty(t, out)

	// trailing bytes past the declared bit count are ignored
	out, err = Decompress(withHeader(0, 0xDE, 0xAD))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecompressTruncatedPayload(t *testing.T) {
	c, err := NewCompressor().Compress([]byte("hello adaptive world"))
	require.NoError(t, err)

	_, err = Decompress(c[:len(c)-2])
	require.ErrorIs(t, err, ErrUnexpectedEOS)
}

func TestDecompressOverclaimedHeader(t *testing.T) {
	c, err := NewCompressor().Compress([]byte("ab"))
	require.NoError(t, err)
	binary.BigEndian.PutUint64(c[:headerSize], payloadBits(t, c)+50)

	_, err = Decompress(c)
	require.ErrorIs(t, err, ErrUnexpectedEOS)
}

func TestDecompressTruncatedEscape(t *testing.T) {
	// claims 4 useful bits: too few for the raw scalar after the initial NYT
	_, err := Decompress(withHeader(4, 0x60))
	require.ErrorIs(t, err, ErrUnexpectedEOS)
}

func TestDecompressInvalidEscape(t *testing.T) {
	// 0xFF cannot start a UTF-8 sequence
	_, err := Decompress(withHeader(8, 0xFF))
	require.ErrorIs(t, err, ErrInvalidUTF8)

	// 110xxxxx first byte followed by a non-continuation byte
	_, err = Decompress(withHeader(16, 0xC3, 0x41))
	require.ErrorIs(t, err, ErrInvalidUTF8)

	// surrogate half U+D800
	_, err = Decompress(withHeader(24, 0xED, 0xA0, 0x80))
	require.ErrorIs(t, err, ErrInvalidUTF8)
}
