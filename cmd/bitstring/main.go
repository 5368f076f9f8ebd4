// bitstring converts between binary files and their '0'/'1' text form:
// with -d it dumps a binary file as one line of bits (MSB first within each
// byte); otherwise it loads a single-line bit string file into a binary
// file, zero-padding the final byte.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icza/bitio"
)

var flagDump = flag.Bool("d", false, "dump a binary file as a bit string")

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func main() {
	flag.Parse()

	if *flagDump {
		if flag.NArg() != 1 {
			quitF("usage: %s -d <file.bin>\n", os.Args[0])
		}
		if err := dump(flag.Arg(0)); err != nil {
			quitF("%v\n", err)
		}
		return
	}

	if flag.NArg() != 2 {
		quitF("usage: %s <bits.txt> <file.bin>\n", os.Args[0])
	}
	if err := load(flag.Arg(0), flag.Arg(1)); err != nil {
		quitF("%v\n", err)
	}
}

func dump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := bitio.NewReader(f)
	var sb strings.Builder
	for {
		bit, err := r.ReadBool()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	fmt.Println(sb.String())
	return nil
}

func load(txtPath, binPath string) error {
	d, err := os.ReadFile(txtPath)
	if err != nil {
		return err
	}
	line := strings.TrimSpace(string(d))
	for i := 0; i < len(line); i++ {
		if line[i] != '0' && line[i] != '1' {
			return fmt.Errorf("position %d: %q is not a bit", i, line[i])
		}
	}

	f, err := os.Create(binPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bitio.NewWriter(f)
	for i := 0; i < len(line); i++ {
		if err := w.WriteBool(line[i] == '1'); err != nil {
			return err
		}
	}
	return w.Close()
}
