// Package main provides bv-bench, a benchmark harness that sweeps input
// sizes, densities, and seeds through the succinct bit-vector and
// reports one RESULT line per run, plus a markdown summary table when
// --out names a report directory.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/succinct-bv/internal/genbits"
	"github.com/calvinalkan/succinct-bv/internal/ioformat"
	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

// Config holds all benchmark configuration.
type Config struct {
	Sizes      []int
	Densities  []float64
	Seeds      []int64
	Queries    int
	OutDir     string
	TuningName string
}

// Run holds the outcome of a single (size, density, seed) combination.
type Run struct {
	Size      int
	Density   float64
	Seed      int64
	BuildMS   int64
	QueryMS   int64
	SpaceBits int
}

func main() {
	cfg := Config{}

	sizesStr := flag.String("sizes", "100000,1000000", "Comma-separated list of bit-vector sizes")
	densitiesStr := flag.String("densities", "0.01,0.5", "Comma-separated list of set-bit densities in [0,1]")
	seedsStr := flag.String("seeds", "1,2,3", "Comma-separated list of PRNG seeds")
	flag.IntVar(&cfg.Queries, "queries", 200000, "Number of random queries per run")
	flag.StringVar(&cfg.OutDir, "out", "", "Directory to write a markdown summary report to (optional)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "Usage: bv-bench [flags]\n\n")
		fmt.Fprint(os.Stderr, "Sweeps size/density/seed combinations through the bit-vector and prints one RESULT line per run.\n\n")
		fmt.Fprint(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	var err error

	cfg.Sizes, err = parseInts(*sizesStr)
	exitOnErr(err, "invalid -sizes")

	cfg.Densities, err = parseFloats(*densitiesStr)
	exitOnErr(err, "invalid -densities")

	cfg.Seeds, err = parseInt64s(*seedsStr)
	exitOnErr(err, "invalid -seeds")

	if len(cfg.Sizes) == 0 || len(cfg.Densities) == 0 || len(cfg.Seeds) == 0 {
		fmt.Fprintln(os.Stderr, "error: -sizes, -densities, and -seeds must each have at least one value")
		os.Exit(1)
	}

	runs := sweep(cfg)

	if cfg.OutDir != "" {
		err := writeReport(cfg, runs)
		exitOnErr(err, "failed to write report")
	}
}

func sweep(cfg Config) []Run {
	runs := make([]Run, 0, len(cfg.Sizes)*len(cfg.Densities)*len(cfg.Seeds))

	for _, size := range cfg.Sizes {
		for _, density := range cfg.Densities {
			for _, seed := range cfg.Seeds {
				run := benchOne(size, density, seed, cfg.Queries)
				runs = append(runs, run)

				fmt.Println(ioformat.FormatReport(
					fmt.Sprintf("succinct-bv(n=%d,p=%.3f,seed=%d)", size, density, seed),
					run.BuildMS, run.QueryMS, run.SpaceBits,
				))
			}
		}
	}

	return runs
}

func benchOne(size int, density float64, seed int64, queryCount int) Run {
	rng := rand.New(rand.NewSource(seed))

	bits := genbits.Bits(rng, size, density)

	store, err := bitvec.NewBitStoreFromString(bits)
	if err != nil {
		panic(fmt.Sprintf("bv-bench: generated an invalid bit-string: %v", err))
	}

	buildStart := time.Now()
	bv := bitvec.Build(store, bitvec.DefaultTuning())
	buildMS := time.Since(buildStart).Milliseconds()

	queries := genbits.Queries(rng, size, bv.CountOnes1(), bv.CountZeros0(), queryCount)

	queryStart := time.Now()
	for _, q := range queries {
		bv.Exec(q)
	}

	queryMS := time.Since(queryStart).Milliseconds()

	return Run{
		Size:      size,
		Density:   density,
		Seed:      seed,
		BuildMS:   buildMS,
		QueryMS:   queryMS,
		SpaceBits: bv.SpaceBits(),
	}
}

func writeReport(cfg Config, runs []Run) error {
	if err := os.MkdirAll(cfg.OutDir, 0o750); err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutDir, err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Run %s\n\n", time.Now().UTC().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- queries per run: %d\n\n", cfg.Queries))
	sb.WriteString("| Size | Density | Seed | Build [ms] | Query [ms] | Space [bits] | Bits/input-bit |\n")
	sb.WriteString("|---:|---:|---:|---:|---:|---:|---:|\n")

	for _, r := range runs {
		overhead := float64(r.SpaceBits) / float64(r.Size)
		sb.WriteString(fmt.Sprintf("| %d | %.3f | %d | %d | %d | %d | %.4f |\n",
			r.Size, r.Density, r.Seed, r.BuildMS, r.QueryMS, r.SpaceBits, overhead))
	}

	outFile := filepath.Join(cfg.OutDir, fmt.Sprintf("bv-bench_%s.md", time.Now().UTC().Format("20060102-150405")))

	if err := os.WriteFile(outFile, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", outFile)

	return nil
}

func parseInts(s string) ([]int, error) {
	var out []int

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func parseInt64s(s string) ([]int64, error) {
	ints, err := parseInts(s)
	if err != nil {
		return nil, err
	}

	out := make([]int64, len(ints))
	for i, v := range ints {
		out[i] = int64(v)
	}

	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64

	for field := range strings.SplitSeq(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", field, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func exitOnErr(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}
