package bitvec_test

import (
	"bufio"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/succinct-bv/pkg/bitvec"
)

func Test_NewBitStoreFromString_Rejects_Invalid_Byte(t *testing.T) {
	t.Parallel()

	_, err := bitvec.NewBitStoreFromString("0012")
	require.ErrorIs(t, err, bitvec.ErrInvalidBit)
}

func Test_NewBitStoreFromString_Rejects_Empty(t *testing.T) {
	t.Parallel()

	_, err := bitvec.NewBitStoreFromString("")
	require.ErrorIs(t, err, bitvec.ErrEmptyInput)
}

func Test_ReadBitStoreLine_Rejects_Empty(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("\nnext line"))

	_, err := bitvec.ReadBitStoreLine(r)
	require.ErrorIs(t, err, bitvec.ErrEmptyInput)
}

func Test_NewBitStoreFromString_Access_Matches_Source(t *testing.T) {
	t.Parallel()

	const bits = "001110110101010111111111"

	store, err := bitvec.NewBitStoreFromString(bits)
	require.NoError(t, err)
	require.Equal(t, len(bits), store.Len())

	for i, c := range bits {
		want := 0
		if c == '1' {
			want = 1
		}

		require.Equalf(t, want, store.Access(i), "position %d", i)
	}
}

func Test_ReadBitStoreLine_Strips_Newline(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("1010\nnext line"))

	store, err := bitvec.ReadBitStoreLine(r)
	require.NoError(t, err)
	require.Equal(t, 4, store.Len())
	require.Equal(t, 1, store.Access(0))
	require.Equal(t, 0, store.Access(1))
}

func Test_CountOnes_Matches_Naive_Scan(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	n := 3*128 + 15
	bits := randomBits(rng, n)

	store, err := bitvec.NewBitStoreFromString(bits)
	require.NoError(t, err)

	for i := 0; i <= n; i += 7 {
		for j := i; j <= n; j += 11 {
			want := naiveCountOnes(bits, i, j)
			got := store.CountOnes(i, j)
			require.Equalf(t, want, got, "range [%d,%d)", i, j)
		}
	}
}

func Test_FindNthX_Matches_Naive_Scan(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	n := 3*128 + 15
	bits := randomBits(rng, n)

	store, err := bitvec.NewBitStoreFromString(bits)
	require.NoError(t, err)

	for start := 0; start < n; start += 5 {
		count0, count1 := 0, 0

		for j := start; j < n; j++ {
			if bits[j] == '0' {
				count0++

				pos, ok := store.FindNthX(start, count0, 0)
				require.True(t, ok)
				require.Equal(t, j, pos)
			} else {
				count1++

				pos, ok := store.FindNthX(start, count1, 1)
				require.True(t, ok)
				require.Equal(t, j, pos)
			}
		}
	}
}

func Test_FindNthX_None_When_Exhausted(t *testing.T) {
	t.Parallel()

	store, err := bitvec.NewBitStoreFromString("1111111111111111111111")
	require.NoError(t, err)

	_, ok := store.FindNthX(0, 1, 0)
	require.False(t, ok)

	_, ok = store.FindNthX(0, 0, 1)
	require.False(t, ok)
}

func randomBits(rng *rand.Rand, n int) string {
	var sb strings.Builder

	sb.Grow(n)

	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func naiveCountOnes(bits string, l, r int) int {
	count := 0
	for i := l; i < r; i++ {
		if bits[i] == '1' {
			count++
		}
	}

	return count
}
