package bitvec

import (
	"math/bits"
	"math/rand"
	"testing"
)

func naiveNthSetBit(word uint64, k int) int {
	for i := 0; i < 64; i++ {
		if word&(1<<uint(i)) != 0 {
			k--
			if k == 0 {
				return i
			}
		}
	}

	panic("naiveNthSetBit: word has fewer than k set bits")
}

func Test_NthSetBitInWord_Matches_Naive_Scan(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 2000; trial++ {
		word := rng.Uint64()
		count := bits.OnesCount64(word)

		if count == 0 {
			continue
		}

		k := rng.Intn(count) + 1

		want := naiveNthSetBit(word, k)
		got := nthSetBitInWord(word, k)

		if want != got {
			t.Fatalf("word=%064b k=%d: want %d, got %d", word, k, want, got)
		}
	}
}

func Test_NthSetBitInWord_Edge_Words(t *testing.T) {
	t.Parallel()

	cases := []uint64{1, 1 << 63, ^uint64(0), 0x8000000000000001}

	for _, word := range cases {
		count := bits.OnesCount64(word)
		for k := 1; k <= count; k++ {
			want := naiveNthSetBit(word, k)
			got := nthSetBitInWord(word, k)

			if want != got {
				t.Fatalf("word=%064b k=%d: want %d, got %d", word, k, want, got)
			}
		}
	}
}

// FuzzNthSetBitInWord exercises the broadword primitive against the
// naive bit-by-bit scan across arbitrary words and k values.
func FuzzNthSetBitInWord(f *testing.F) {
	f.Add(uint64(0b1010), 1)
	f.Add(^uint64(0), 64)
	f.Add(uint64(1)<<63, 1)

	f.Fuzz(func(t *testing.T, word uint64, k int) {
		count := bits.OnesCount64(word)
		if count == 0 {
			return
		}

		k = ((k % count) + count) % count
		k++

		want := naiveNthSetBit(word, k)
		got := nthSetBitInWord(word, k)

		if want != got {
			t.Fatalf("word=%064b k=%d: want %d, got %d", word, k, want, got)
		}
	})
}
