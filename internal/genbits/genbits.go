package genbits

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

// Bits returns an n-byte '0'/'1' string where each bit is independently
// 1 with probability density. density is clamped to [0, 1].
func Bits(rng *rand.Rand, n int, density float64) string {
	density = clamp01(density)

	var sb strings.Builder

	sb.Grow(n)

	for i := 0; i < n; i++ {
		if rng.Float64() < density {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Queries returns count random queries against an n-bit vector with the
// given set-bit total, spread roughly evenly across all five kinds.
// Arguments are drawn from the full legal range, including the
// one-past-the-end values whose answer is "none" for select.
func Queries(rng *rand.Rand, n, count1, count0, count int) []bitvec.Query {
	queries := make([]bitvec.Query, count)

	for i := range queries {
		switch rng.Intn(5) {
		case 0:
			queries[i] = bitvec.Query{Kind: bitvec.QueryAccess, Arg: randIntn(rng, n)}
		case 1:
			queries[i] = bitvec.Query{Kind: bitvec.QueryRank1, Arg: rng.Intn(n + 1)}
		case 2:
			queries[i] = bitvec.Query{Kind: bitvec.QueryRank0, Arg: rng.Intn(n + 1)}
		case 3:
			queries[i] = bitvec.Query{Kind: bitvec.QuerySelect1, Arg: rng.Intn(count1 + 2)}
		case 4:
			queries[i] = bitvec.Query{Kind: bitvec.QuerySelect0, Arg: rng.Intn(count0 + 2)}
		}
	}

	return queries
}

// WriteQueryFile renders bits and queries in the "<n>\n<bits>\n<queries>"
// wire format accepted by cmd/bv, for use as generated benchmark input.
func WriteQueryFile(w io.Writer, bits string, queries []bitvec.Query) error {
	if _, err := fmt.Fprintf(w, "%d\n%s\n", len(queries), bits); err != nil {
		return err
	}

	for _, q := range queries {
		line, err := formatQueryLine(q)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func formatQueryLine(q bitvec.Query) (string, error) {
	switch q.Kind {
	case bitvec.QueryAccess:
		return fmt.Sprintf("access %d", q.Arg), nil
	case bitvec.QueryRank0:
		return fmt.Sprintf("rank 0 %d", q.Arg), nil
	case bitvec.QueryRank1:
		return fmt.Sprintf("rank 1 %d", q.Arg), nil
	case bitvec.QuerySelect0:
		return fmt.Sprintf("select 0 %d", q.Arg), nil
	case bitvec.QuerySelect1:
		return fmt.Sprintf("select 1 %d", q.Arg), nil
	default:
		return "", fmt.Errorf("genbits: unknown query kind %d", q.Kind)
	}
}

func randIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}

	return rng.Intn(n)
}

func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}

	if p > 1 {
		return 1
	}

	return p
}
