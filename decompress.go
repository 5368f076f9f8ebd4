package huffzip

import (
	"bytes"
	"fmt"

	"huffzip/aha"
	"huffzip/internal/bitstream"
)

// Decompress decodes a compressed file image produced by Compress and
// returns the original UTF-8 text.
//
// The decoder mirrors the encoder exactly: it rebuilds the same adaptive
// tree by applying the same updates in the same order, descending the tree
// bit by bit for each codeword and reading a raw scalar after each NYT
// escape. Decoding stops once the header's useful-bit count is consumed; the
// final byte's padding carries no information.
func Decompress(data []byte) ([]byte, error) {
	src := bytes.NewReader(data)
	var h header
	if _, err := h.ReadFrom(src); err != nil {
		return nil, err
	}

	br := bitstream.NewReader(src, h.NbBits)
	tree := aha.New()
	var out bytes.Buffer
	out.Grow(len(data) * 2)

	for br.Remaining() > 0 {
		sym, nyt, err := tree.DecodeSymbol(br.ReadBit)
		if err != nil {
			return nil, fmt.Errorf("decoding symbol: %w", err)
		}
		if nyt {
			if sym, err = readEscape(br); err != nil {
				return nil, fmt.Errorf("reading escape: %w", err)
			}
		}
		out.WriteRune(sym)
		tree.Update(sym)
	}
	return out.Bytes(), nil
}
