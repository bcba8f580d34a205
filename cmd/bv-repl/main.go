// bv-repl is an interactive shell for exploring a built bit-vector.
//
// Usage:
//
//	bv-repl <query-file>
//
// The query file uses the same "<n>\n<bits>\n<queries...>" format bv
// reads; bv-repl mmaps it read-only, builds the index once, and then
// accepts ad-hoc access/rank/select commands against it.
//
// Commands:
//
//	access <i>        Bit at position i
//	rank0 <i>         Count of 0s in [0, i)
//	rank1 <i>         Count of 1s in [0, i)
//	select0 <k>       Position of the k-th (1-indexed) 0
//	select1 <k>       Position of the k-th (1-indexed) 1
//	run               Execute every query embedded in the file
//	info              Show size, ones/zeros counts, index space, and tuning
//	help              Show this help
//	exit / quit / q   Exit
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"

	"github.com/calvinalkan/succinct-bv/internal/ioformat"
	"github.com/calvinalkan/succinct-bv/internal/tuning"
	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: bv-repl <query-file>\n")

		return fmt.Errorf("expected exactly one argument, got %d", len(os.Args)-1)
	}

	mf, err := openMmap(os.Args[1])
	if err != nil {
		return err
	}
	defer mf.Close()

	t, err := tuning.Load(os.Environ())
	if err != nil {
		return err
	}

	in, err := ioformat.ReadInput(bytes.NewReader(mf.data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", os.Args[1], err)
	}

	bv := bitvec.Build(in.Store, t)

	repl := &REPL{path: os.Args[1], bv: bv, queries: in.Queries, tuning: t}

	return repl.Run()
}

// mmapFile is a read-only mmap of a query file, kept alive for the
// lifetime of the REPL so large inputs load without a full file read.
type mmapFile struct {
	f    *os.File
	data []byte
}

func openMmap(path string) (*mmapFile, error) {
	f, err := os.Open(path) //nolint:gosec // path is an explicit CLI argument
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if info.Size() == 0 {
		_ = f.Close()

		return nil, fmt.Errorf("%s is empty", path)
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(info.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()

		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	return &mmapFile{f: f, data: data}, nil
}

func (m *mmapFile) Close() error {
	mErr := syscall.Munmap(m.data)
	fErr := m.f.Close()

	if mErr != nil {
		return mErr
	}

	return fErr
}

// REPL is the interactive command loop.
type REPL struct {
	path    string
	bv      *bitvec.BitVector
	queries []bitvec.Query
	tuning  bitvec.Tuning
	liner   *liner.State
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".bv_repl_history")
}

// Run starts the REPL loop.
func (r *REPL) Run() error {
	r.liner = liner.NewLiner()
	defer r.liner.Close()

	r.liner.SetCtrlCAborts(true)
	r.liner.SetCompleter(r.completer)

	if f, err := os.Open(historyFile()); err == nil {
		_, _ = r.liner.ReadHistory(f)

		_ = f.Close()
	}

	fmt.Printf("bv-repl - %s (n=%d, ones=%d, zeros=%d)\n", r.path, r.bv.Len(), r.bv.CountOnes1(), r.bv.CountZeros0())
	fmt.Println("Type 'help' for available commands.")
	fmt.Println()

	for {
		line, err := r.liner.Prompt("bv> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Println("\nBye!")

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.liner.AppendHistory(line)

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "exit", "quit", "q":
			fmt.Println("Bye!")
			r.saveHistory()

			return nil
		case "help", "?":
			r.printHelp()
		case "access":
			r.cmdAccess(args)
		case "rank0":
			r.cmdRank(args, 0)
		case "rank1":
			r.cmdRank(args, 1)
		case "select0":
			r.cmdSelect(args, 0)
		case "select1":
			r.cmdSelect(args, 1)
		case "run":
			r.cmdRun()
		case "info":
			r.cmdInfo()
		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}

	r.saveHistory()

	return nil
}

func (r *REPL) saveHistory() {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = r.liner.WriteHistory(f)

			_ = f.Close()
		}
	}
}

func (r *REPL) completer(line string) []string {
	cmds := []string{"access", "rank0", "rank1", "select0", "select1", "run", "info", "help", "exit"}

	var matches []string

	for _, c := range cmds {
		if strings.HasPrefix(c, line) {
			matches = append(matches, c)
		}
	}

	return matches
}

func (r *REPL) printHelp() {
	fmt.Println(`Commands:
  access <i>        Bit at position i
  rank0 <i>         Count of 0s in [0, i)
  rank1 <i>         Count of 1s in [0, i)
  select0 <k>       Position of the k-th (1-indexed) 0, or "none"
  select1 <k>       Position of the k-th (1-indexed) 1, or "none"
  run               Execute every query embedded in the file
  info              Show size, ones/zeros counts, index space, and tuning
  help              Show this help
  exit / quit / q   Exit`)
}

func (r *REPL) cmdAccess(args []string) {
	i, err := parseArg(args)
	if err != nil {
		fmt.Println(err)

		return
	}

	if i < 0 || i >= r.bv.Len() {
		fmt.Printf("index %d out of range [0,%d)\n", i, r.bv.Len())

		return
	}

	fmt.Println(r.bv.Access(i))
}

func (r *REPL) cmdRank(args []string, bit int) {
	i, err := parseArg(args)
	if err != nil {
		fmt.Println(err)

		return
	}

	if i < 0 || i > r.bv.Len() {
		fmt.Printf("index %d out of range [0,%d]\n", i, r.bv.Len())

		return
	}

	if bit == 0 {
		fmt.Println(r.bv.Rank0(i))
	} else {
		fmt.Println(r.bv.Rank1(i))
	}
}

func (r *REPL) cmdSelect(args []string, bit int) {
	k, err := parseArg(args)
	if err != nil {
		fmt.Println(err)

		return
	}

	var (
		pos int
		ok  bool
	)

	if bit == 0 {
		pos, ok = r.bv.Select0(k)
	} else {
		pos, ok = r.bv.Select1(k)
	}

	if !ok {
		fmt.Println("none")

		return
	}

	fmt.Println(pos)
}

func (r *REPL) cmdRun() {
	if len(r.queries) == 0 {
		fmt.Println("no queries embedded in this file")

		return
	}

	start := time.Now()

	for i, q := range r.queries {
		fmt.Printf("%d: %d\n", i, r.bv.Exec(q))
	}

	fmt.Printf("ran %d queries in %s\n", len(r.queries), time.Since(start))
}

func (r *REPL) cmdInfo() {
	fmt.Printf("n             = %d\n", r.bv.Len())
	fmt.Printf("ones          = %d\n", r.bv.CountOnes1())
	fmt.Printf("zeros         = %d\n", r.bv.CountZeros0())
	fmt.Printf("space (bits)  = %d\n", r.bv.SpaceBits())
	fmt.Printf("block         = %d\n", r.tuning.Block)
	fmt.Printf("super         = %d\n", r.tuning.Super)
	fmt.Printf("mega          = %d\n", r.tuning.Mega)
	fmt.Printf("superblockbits= %d\n", r.tuning.SuperblockBits)
}

func parseArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one integer argument, got %d", len(args))
	}

	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", args[0])
	}

	return v, nil
}
