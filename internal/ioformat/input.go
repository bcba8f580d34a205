package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

// Input is the fully parsed contents of a query file: the bit-vector to
// build and the queries to run against it, in file order.
type Input struct {
	Store   *bitvec.BitStore
	Queries []bitvec.Query
}

// ReadInput parses the "<n>\n<bits>\n<queries...>" contract from r. <n>
// is the number of query lines that follow, not the bit-string length.
func ReadInput(r io.Reader) (Input, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	n, err := readQueryCount(br)
	if err != nil {
		return Input{}, err
	}

	store, err := bitvec.ReadBitStoreLine(br)
	if err != nil {
		return Input{}, fmt.Errorf("%w: bit-string line: %w", ErrMalformedHeader, err)
	}

	queries := make([]bitvec.Query, 0, n)

	for i := 0; i < n; i++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && line == "" {
			return Input{}, fmt.Errorf("%w: wanted %d, got %d", ErrTruncatedInput, n, i)
		}

		q, parseErr := parseQueryLine(line)
		if parseErr != nil {
			return Input{}, fmt.Errorf("line %d: %w", i+1, parseErr)
		}

		queries = append(queries, q)
	}

	return Input{Store: store, Queries: queries}, nil
}

func readQueryCount(br *bufio.Reader) (int, error) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("%w: query count: %w", ErrMalformedHeader, err)
	}

	line = strings.TrimSpace(line)

	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: query count %q is not a non-negative integer", ErrMalformedHeader, line)
	}

	return n, nil
}

func parseQueryLine(line string) (bitvec.Query, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return bitvec.Query{}, fmt.Errorf("%w: empty line", ErrMalformedQuery)
	}

	switch fields[0] {
	case "access":
		if len(fields) != 2 {
			return bitvec.Query{}, fmt.Errorf("%w: %q", ErrMalformedQuery, line)
		}

		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return bitvec.Query{}, fmt.Errorf("%w: %q", ErrMalformedQuery, line)
		}

		return bitvec.Query{Kind: bitvec.QueryAccess, Arg: i}, nil
	case "rank":
		kind, arg, err := parseBitAndArg(fields, bitvec.QueryRank0, bitvec.QueryRank1)
		if err != nil {
			return bitvec.Query{}, err
		}

		return bitvec.Query{Kind: kind, Arg: arg}, nil
	case "select":
		kind, arg, err := parseBitAndArg(fields, bitvec.QuerySelect0, bitvec.QuerySelect1)
		if err != nil {
			return bitvec.Query{}, err
		}

		return bitvec.Query{Kind: kind, Arg: arg}, nil
	default:
		return bitvec.Query{}, fmt.Errorf("%w: %q", ErrUnknownVerb, fields[0])
	}
}

func parseBitAndArg(fields []string, zeroKind, oneKind bitvec.QueryKind) (bitvec.QueryKind, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedQuery, strings.Join(fields, " "))
	}

	switch fields[1] {
	case "0":
		arg, err := strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedQuery, strings.Join(fields, " "))
		}

		return zeroKind, arg, nil
	case "1":
		arg, err := strconv.Atoi(fields[2])
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedQuery, strings.Join(fields, " "))
		}

		return oneKind, arg, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownBit, fields[1])
	}
}
