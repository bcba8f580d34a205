package bitvec

import (
	"bufio"
	"fmt"
	"math/bits"
)

const wordBits = 64

// BitStore is the raw packed bit sequence underlying a [BitVector].
// Bits are stored little-endian within 64-bit words: bit i lives in word
// i/64 at intra-word position i%64. Bits at or beyond Len() in the final
// word are always zero.
type BitStore struct {
	words []uint64
	n     int
}

// NewBitStoreFromBytes builds a BitStore from a sequence of '0'/'1' bytes.
// It returns [ErrEmptyInput] if b is empty, or [ErrInvalidBit] wrapped
// with the offending byte and position if any other byte is present.
func NewBitStoreFromBytes(b []byte) (*BitStore, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	words := make([]uint64, (len(b)+wordBits-1)/wordBits)

	for i, c := range b {
		switch c {
		case '0':
			// zero bit, nothing to set
		case '1':
			words[i/wordBits] |= uint64(1) << uint(i%wordBits)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBit, c, i)
		}
	}

	return &BitStore{words: words, n: len(b)}, nil
}

// NewBitStoreFromString is a convenience wrapper around
// [NewBitStoreFromBytes] for callers already holding a string.
func NewBitStoreFromString(s string) (*BitStore, error) {
	return NewBitStoreFromBytes([]byte(s))
}

// ReadBitStoreLine reads one newline-terminated (or EOF-terminated) line
// from r and parses it as a '0'/'1' bit-string. The trailing newline, if
// present, is not included in the resulting bit-vector.
func ReadBitStoreLine(r *bufio.Reader) (*BitStore, error) {
	line, err := r.ReadBytes('\n')
	if err != nil && len(line) == 0 {
		return nil, err
	}

	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return NewBitStoreFromBytes(line)
}

// Len returns n, the number of bits in the store.
func (s *BitStore) Len() int {
	return s.n
}

// Access returns the bit at position i. It panics if i is out of
// [0, Len()) - callers that need a non-panicking check should compare
// against Len() first.
func (s *BitStore) Access(i int) int {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("bitvec: access index %d out of range [0,%d)", i, s.n))
	}

	return int((s.words[i/wordBits] >> uint(i%wordBits)) & 1)
}

// CountOnes returns popcount(bits[l:r)) for 0 <= l <= r <= Len(). It
// splits the range into at most one head partial word, whole words
// counted with hardware popcount, and at most one tail partial word.
func (s *BitStore) CountOnes(l, r int) int {
	if l == r {
		return 0
	}

	sWord, sOff := l/wordBits, l%wordBits
	eWord, eOff := r/wordBits, r%wordBits

	if sWord == eWord {
		return countOnesInWord(s.words[sWord], sOff, eOff)
	}

	count := 0

	if sOff != 0 {
		count += countOnesInWord(s.words[sWord], sOff, wordBits)
		sWord++
	}

	for w := sWord; w < eWord; w++ {
		count += bits.OnesCount64(s.words[w])
	}

	if eOff != 0 {
		count += countOnesInWord(s.words[eWord], 0, eOff)
	}

	return count
}

// countOnesInWord counts set bits of word within the intra-word range
// [l, r). The mask is built as (1<<r)-1 before the shift by l; when r
// equals the word width the shift wraps to zero and the subtraction
// underflows to all-ones, which is exactly the "no upper bound" mask we
// want - Go's defined unsigned-shift-by-width-is-zero semantics make the
// degenerate case fall out for free.
func countOnesInWord(word uint64, l, r int) int {
	mask := uint64(1)<<uint(r) - 1
	v := (word & mask) >> uint(l)

	return bits.OnesCount64(v)
}

// FindNthX returns the smallest position p >= start with bit value v such
// that the count of v in bits[start:p] equals k-1 (i.e. p is the k-th
// occurrence of v at or after start). It returns ok=false if k <= 0 or
// fewer than k occurrences of v exist in [start, Len()).
func (s *BitStore) FindNthX(start, k, v int) (pos int, ok bool) {
	if k <= 0 || start < 0 || start > s.n {
		return 0, false
	}

	wordIdx := start / wordBits
	offset := start % wordBits
	remaining := k

	for wordIdx < len(s.words) {
		w := s.words[wordIdx]
		if v == 0 {
			w = ^w
		}

		avail := bits.OnesCount64(w >> uint(offset))
		if remaining <= avail {
			p := wordIdx*wordBits + offset + nthSetBitInWord(w>>uint(offset), remaining)
			if p >= s.n {
				return 0, false
			}

			return p, true
		}

		remaining -= avail
		wordIdx++
		offset = 0
	}

	return 0, false
}
