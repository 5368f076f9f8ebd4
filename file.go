package huffzip

import (
	"fmt"
	"os"
	"time"
)

// CompressFile compresses the UTF-8 text file at inPath into outPath and
// appends a record to the compression registry. On error the output file
// must be considered invalid.
func CompressFile(inPath, outPath string) error {
	d, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := NewCompressor().Compress(d)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", inPath, err)
	}
	if err := os.WriteFile(outPath, out, 0600); err != nil {
		return err
	}
	return appendStats(compressionRegistry, inPath, outPath, compressionRatio, time.Since(start))
}

// DecompressFile decompresses the file at inPath into the UTF-8 text file at
// outPath and appends a record to the decompression registry.
func DecompressFile(inPath, outPath string) error {
	d, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := Decompress(d)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", inPath, err)
	}
	if err := os.WriteFile(outPath, out, 0600); err != nil {
		return err
	}
	return appendStats(decompressionRegistry, inPath, outPath, decompressionRatio, time.Since(start))
}
