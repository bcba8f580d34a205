package ioformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/succinct-bv/internal/ioformat"
	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

func Test_ReadInput_Parses_Sample(t *testing.T) {
	t.Parallel()

	raw := "6\n" +
		"001110110101010111111111\n" +
		"access 4\n" +
		"rank 0 10\n" +
		"select 1 14\n" +
		"rank 1 10\n" +
		"select 0 3\n" +
		"access 5\n"

	in, err := ioformat.ReadInput(strings.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 24, in.Store.Len())
	require.Equal(t, []bitvec.Query{
		{Kind: bitvec.QueryAccess, Arg: 4},
		{Kind: bitvec.QueryRank0, Arg: 10},
		{Kind: bitvec.QuerySelect1, Arg: 14},
		{Kind: bitvec.QueryRank1, Arg: 10},
		{Kind: bitvec.QuerySelect0, Arg: 3},
		{Kind: bitvec.QueryAccess, Arg: 5},
	}, in.Queries)
}

func Test_ReadInput_Rejects_Unknown_Verb(t *testing.T) {
	t.Parallel()

	raw := "1\n1\nfrobnicate 0\n"

	_, err := ioformat.ReadInput(strings.NewReader(raw))
	require.ErrorIs(t, err, ioformat.ErrUnknownVerb)
}

func Test_ReadInput_Rejects_Bad_Bit_Argument(t *testing.T) {
	t.Parallel()

	raw := "1\n1\nrank 2 0\n"

	_, err := ioformat.ReadInput(strings.NewReader(raw))
	require.ErrorIs(t, err, ioformat.ErrUnknownBit)
}

func Test_ReadInput_Rejects_Truncated_Query_Block(t *testing.T) {
	t.Parallel()

	raw := "3\n1\naccess 0\n"

	_, err := ioformat.ReadInput(strings.NewReader(raw))
	require.ErrorIs(t, err, ioformat.ErrTruncatedInput)
}

func Test_ReadInput_Rejects_Malformed_Header(t *testing.T) {
	t.Parallel()

	_, err := ioformat.ReadInput(strings.NewReader("not-a-number\n1\n"))
	require.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func Test_ReadInput_Rejects_Invalid_Bit_String(t *testing.T) {
	t.Parallel()

	_, err := ioformat.ReadInput(strings.NewReader("0\n0102\n"))
	require.ErrorIs(t, err, bitvec.ErrInvalidBit)
}

func Test_ReadInput_Rejects_Empty_Bit_String(t *testing.T) {
	t.Parallel()

	_, err := ioformat.ReadInput(strings.NewReader("0\n\n"))
	require.ErrorIs(t, err, bitvec.ErrEmptyInput)
	require.ErrorIs(t, err, ioformat.ErrMalformedHeader)
}

func Test_ReadInput_Zero_Queries(t *testing.T) {
	t.Parallel()

	in, err := ioformat.ReadInput(strings.NewReader("0\n101\n"))
	require.NoError(t, err)
	require.Empty(t, in.Queries)
	require.Equal(t, 3, in.Store.Len())
}
