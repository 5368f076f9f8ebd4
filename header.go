package huffzip

import (
	"encoding/binary"
	"fmt"
	"io"
)

// headerSize is the fixed length of the file header in bytes.
const headerSize = 8

// header is the 8-byte header of a compressed file: the number of useful
// payload bits, as a big-endian unsigned 64-bit integer. The payload's final
// byte is zero-padded to a byte boundary; the count lets the decoder stop at
// the last useful bit without knowing the symbol count.
type header struct {
	NbBits uint64
}

func (h *header) WriteTo(w io.Writer) (int64, error) {
	var b [headerSize]byte
	binary.BigEndian.PutUint64(b[:], h.NbBits)
	n, err := w.Write(b[:])
	return int64(n), err
}

func (h *header) ReadFrom(r io.Reader) (int64, error) {
	var b [headerSize]byte
	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(n), fmt.Errorf("reading header: %w", ErrUnexpectedEOS)
	}
	h.NbBits = binary.BigEndian.Uint64(b[:])
	return int64(n), nil
}
