package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calvinalkan/succinct-bv/internal/ioformat"
	"github.com/calvinalkan/succinct-bv/internal/tuning"
	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

// reportName is the identifier emitted in the RESULT line's name= field.
const reportName = "succinct-bv"

// Exit codes. 0 is success; everything else signals a fatal error to the
// process boundary, per the usage/I-O/parse/precondition-violation
// taxonomy: usage errors get their own code so scripts can tell "you
// called bv wrong" apart from "bv ran and failed".
const (
	exitOK    = 0
	exitUsage = 2
	exitFatal = 1
)

// Run is the CLI entry point: exactly two positional arguments,
// <input-path> <output-path>. Returns the process exit code.
func Run(args []string, env []string, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintf(stderr, "usage: %s <input-path> <output-path>\n", progName(args))

		return exitUsage
	}

	inputPath, outputPath := args[1], args[2]

	t, err := tuning.Load(env)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFatal
	}

	in, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFatal
	}

	bv, buildMS, err := build(in.Store, t)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFatal
	}

	answers, queryMS, err := answerAll(bv, in.Queries)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFatal
	}

	if err := ioformat.WriteAnswers(outputPath, answers); err != nil {
		fmt.Fprintln(stderr, "error:", err)

		return exitFatal
	}

	fmt.Fprintln(stdout, ioformat.FormatReport(reportName, buildMS, queryMS, bv.SpaceBits()))

	return exitOK
}

func readInput(path string) (ioformat.Input, error) {
	f, err := os.Open(path) //nolint:gosec // path is an explicit CLI argument
	if err != nil {
		return ioformat.Input{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	in, err := ioformat.ReadInput(f)
	if err != nil {
		return ioformat.Input{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return in, nil
}

func build(store *bitvec.BitStore, t bitvec.Tuning) (bv *bitvec.BitVector, buildMS int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			bv = nil
			err = fmt.Errorf("build: %v", r)
		}
	}()

	start := time.Now()
	bv = bitvec.Build(store, t)
	buildMS = time.Since(start).Milliseconds()

	return bv, buildMS, nil
}

// answerAll runs every query against bv and returns the answers in
// order. A panic from an out-of-range access/rank argument (the
// implementation-defined "reject" choice for precondition violations
// that aren't select, see bitvec.BitVector.Access/Rank1) is converted
// into the same fatal-error path as any other precondition failure
// instead of crashing the process.
func answerAll(bv *bitvec.BitVector, queries []bitvec.Query) (answers []uint64, queryMS int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			answers = nil
			err = fmt.Errorf("query: %v", r)
		}
	}()

	answers = make([]uint64, len(queries))

	start := time.Now()
	for i, q := range queries {
		answers[i] = bv.Exec(q)
	}

	queryMS = time.Since(start).Milliseconds()

	return answers, queryMS, nil
}

func progName(args []string) string {
	if len(args) == 0 {
		return "bv"
	}

	return args[0]
}
