// gentext produces random UTF-8 text with a controlled symbol distribution,
// for exercising the compressor. The alphabet mixes ASCII with multi-byte
// runes so that first-occurrence escapes of every UTF-8 length show up.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

var (
	flagLength   = flag.Int("n", 10000, "number of symbols to generate")
	flagAlphabet = flag.Int("k", 26, "alphabet size")
	flagDist     = flag.String("dist", "zipf", "distribution: uniform, zipf or weighted")
	flagExp      = flag.Float64("s", 1.2, "zipf exponent (>1)")
	flagSeed     = flag.String("seed", "", "seed string; empty means time-based")
	flagOut      = flag.String("o", "", "output file (required)")
	flagStats    = flag.String("stats", "", "optional per-character frequency csv")
)

// alphabet orders candidate symbols by rank; it deliberately includes 2-, 3-
// and 4-byte runes.
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:!?'-\n" +
	"éèêàçùâîôœß€£¥§±µ" +
	"αβγδεζηθλπσφωЖДЯ漢字文語圧縮𝄞😀🚀🌍")

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func main() {
	flag.Parse()

	if *flagOut == "" {
		quitF("no output file specified\n")
	}
	k := *flagAlphabet
	if k < 2 || k > len(alphabet) {
		quitF("alphabet size must be in [2, %d]\n", len(alphabet))
	}
	if *flagLength < 0 {
		quitF("length must be >= 0\n")
	}

	seed := time.Now().UnixNano()
	if *flagSeed != "" {
		seed = int64(xxhash.Sum64String(*flagSeed))
	}
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 weak rng is fine here

	next, err := sampler(rng, *flagDist, k, *flagExp)
	if err != nil {
		quitF("%v\n", err)
	}

	var sb strings.Builder
	for i := 0; i < *flagLength; i++ {
		sb.WriteRune(alphabet[next()])
	}
	text := sb.String()

	if err := os.WriteFile(*flagOut, []byte(text), 0600); err != nil {
		quitF("%v\n", err)
	}
	if *flagStats != "" {
		if err := writeStatsCSV(*flagStats, text); err != nil {
			quitF("%v\n", err)
		}
	}
}

// sampler returns a function drawing alphabet ranks from the requested
// distribution.
func sampler(rng *rand.Rand, dist string, k int, s float64) (func() int, error) {
	switch dist {
	case "uniform":
		return func() int { return rng.Intn(k) }, nil
	case "zipf":
		if s <= 1 {
			return nil, fmt.Errorf("zipf exponent must be > 1, got %v", s)
		}
		z := rand.NewZipf(rng, s, 1, uint64(k-1))
		return func() int { return int(z.Uint64()) }, nil
	case "weighted":
		// linearly decreasing weights k, k-1, ..., 1
		cum := make([]float64, k)
		total := 0.0
		for i := 0; i < k; i++ {
			total += float64(k - i)
			cum[i] = total
		}
		return func() int {
			r := rng.Float64() * total
			return sort.SearchFloat64s(cum, r)
		}, nil
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
}

// writeStatsCSV records observed character frequencies, most frequent first.
func writeStatsCSV(path, text string) error {
	counts := make(map[rune]int)
	n := 0
	for _, r := range text {
		counts[r]++
		n++
	}
	type freq struct {
		r rune
		c int
	}
	freqs := make([]freq, 0, len(counts))
	for r, c := range counts {
		freqs = append(freqs, freq{r, c})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].c != freqs[j].c {
			return freqs[i].c > freqs[j].c
		}
		return freqs[i].r < freqs[j].r
	})

	var sb strings.Builder
	sb.WriteString("char,count,rel_freq\n")
	for _, f := range freqs {
		printable := string(f.r)
		if f.r == '\n' {
			printable = `\n`
		}
		rel := 0.0
		if n > 0 {
			rel = float64(f.c) / float64(n)
		}
		fmt.Fprintf(&sb, "%s,%d,%.6f\n", printable, f.c, rel)
	}
	return os.WriteFile(path, []byte(sb.String()), 0600)
}
