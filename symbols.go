package huffzip

import (
	"fmt"
	"unicode/utf8"
)

// decodeSymbols interprets d as UTF-8 and returns its sequence of Unicode
// scalar values. Any malformed sequence is a fatal input error: the codec
// does not accept arbitrary binary input.
func decodeSymbols(d []byte) ([]rune, error) {
	syms := make([]rune, 0, utf8.RuneCount(d))
	for i := 0; i < len(d); {
		r, size := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, fmt.Errorf("input byte %d: %w", i, ErrInvalidUTF8)
		}
		syms = append(syms, r)
		i += size
	}
	return syms, nil
}
