package huffzip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Registry files recording compression and decompression statistics, one
// line per run, appended in the working directory. The registries are opened
// with O_APPEND so concurrent runs interleave whole lines.
const (
	compressionRegistry   = "compression.txt"
	decompressionRegistry = "decompression.txt"
)

type ratioKind uint8

const (
	compressionRatio   ratioKind = iota // out_bytes / in_bytes
	decompressionRatio                  // in_bytes / out_bytes
)

// appendStats appends one semicolon-separated record to the registry:
// input_name;output_name;in_bytes;out_bytes;ratio;elapsed_ms. A file whose
// size cannot be read is recorded as 0 rather than failing the run, and a
// zero denominator yields ratio 0.
func appendStats(registry, inPath, outPath string, kind ratioKind, elapsed time.Duration) error {
	inSize := fileSize(inPath)
	outSize := fileSize(outPath)

	var ratio float64
	switch kind {
	case compressionRatio:
		if inSize > 0 {
			ratio = float64(outSize) / float64(inSize)
		}
	case decompressionRatio:
		if outSize > 0 {
			ratio = float64(inSize) / float64(outSize)
		}
	}

	f, err := os.OpenFile(registry, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s;%s;%d;%d;%.5f;%d\n",
		filepath.Base(inPath), filepath.Base(outPath), inSize, outSize, ratio, elapsed.Milliseconds())
	return err
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
