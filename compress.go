package huffzip

import (
	"bytes"
	"encoding/binary"

	"huffzip/aha"
	"huffzip/internal/bitstream"
)

// Compressor compresses UTF-8 text with an adaptive Huffman code. The output
// buffer is reused across Compress calls; the adaptive tree itself is rebuilt
// for every input, since both sides of the protocol must start from the same
// lone-NYT state.
type Compressor struct {
	buf bytes.Buffer
}

// NewCompressor returns a new compressor.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// Compress encodes d, which must be valid UTF-8, and returns the compressed
// file image: an 8-byte big-endian header holding the number of useful
// payload bits, then the payload, zero-padded to a byte boundary.
//
// For each input scalar the current codeword is emitted first; a first
// occurrence escapes through the NYT leaf and is followed by the scalar's
// raw UTF-8 bytes. The tree is updated after each symbol, so every codeword
// is produced under the state left by all preceding symbols and the decoder
// can replay the exact same sequence of updates.
func (c *Compressor) Compress(d []byte) ([]byte, error) {
	syms, err := decodeSymbols(d)
	if err != nil {
		return nil, err
	}

	c.buf.Reset()
	c.buf.Grow(headerSize + len(d))
	h := header{}
	if _, err := h.WriteTo(&c.buf); err != nil { // reserved, backfilled below
		return nil, err
	}

	bw := bitstream.NewWriter(&c.buf)
	tree := aha.New()
	for _, s := range syms {
		isNew, path := tree.Code(s)
		for _, bit := range path {
			if err := bw.WriteBit(bit); err != nil {
				return nil, err
			}
		}
		if isNew {
			if err := writeEscape(bw, s); err != nil {
				return nil, err
			}
		}
		tree.Update(s)
	}

	nbBits := bw.Written()
	if err := bw.Close(); err != nil {
		return nil, err
	}

	out := c.buf.Bytes()
	binary.BigEndian.PutUint64(out[:headerSize], nbBits)
	return out, nil
}
