package huffzip

import (
	"errors"

	"huffzip/aha"
	"huffzip/internal/bitstream"
)

// Error taxonomy of the codec. Operating-system I/O errors pass through
// unwrapped; everything below is fatal to the current run and leaves any
// partially written output invalid.
var (
	// ErrInvalidUTF8 marks a malformed byte sequence, either in the input to
	// the compressor or in a raw escape read back by the decompressor.
	ErrInvalidUTF8 = errors.New("huffzip: invalid utf-8")

	// ErrUnexpectedEOS means the bit stream ended mid-header, mid-codeword or
	// mid-escape.
	ErrUnexpectedEOS = bitstream.ErrEndOfStream

	// ErrCorruptedTree is surfaced when the decoder's tree descent dead-ends.
	ErrCorruptedTree = aha.ErrCorruptedTree
)
