package main

import (
	"fmt"
	"os"

	"huffzip"
)

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func main() {
	if len(os.Args) != 3 {
		quitF("usage: %s <input.huff> <output.txt>\n", os.Args[0])
	}

	in, out := os.Args[1], os.Args[2]
	if err := huffzip.DecompressFile(in, out); err != nil {
		quitF("%v\n", err)
	}
	fmt.Printf("decompressed %q -> %q\n", in, out)
}
