package bitvec

import "math/bits"

// Tuning holds the compile-time-in-spirit parameters that control the
// rank/select index's space/time tradeoff. All four fields are fixed for
// the lifetime of a [BitVector] - there is no re-tuning after [Build].
type Tuning struct {
	// Block is the intra-superblock block size in bits. Must be > 0.
	Block int

	// Super is the superblock size in bits. Must be a positive multiple
	// of Block.
	Super int

	// Mega is the number of superblocks summarized by one megablock
	// sample, used only by select. Must be > 0.
	Mega int

	// SuperblockBits is the bit-width reserved for a superblock's
	// cumulative "before" counter. Must be large enough to hold the
	// total bit-vector length.
	SuperblockBits int
}

// DefaultTuning returns the tuning used when no override is supplied.
// Block=512, Super=4096 (8 blocks/superblock), Mega=32, SuperblockBits=40
// (sufficient for vectors up to 2^40 bits).
func DefaultTuning() Tuning {
	return Tuning{
		Block:          512,
		Super:          4096,
		Mega:           32,
		SuperblockBits: 40,
	}
}

// Validate checks the internal consistency of the tuning and that it can
// represent a bit-vector of length n without overflowing a packed field.
func (t Tuning) Validate(n int) error {
	if t.Block <= 0 || t.Super <= 0 || t.Mega <= 0 || t.SuperblockBits <= 0 {
		return ErrInvalidTuning
	}

	if t.Super%t.Block != 0 {
		return ErrInvalidTuning
	}

	g := newGeometry(t)

	// SUPER - BLOCK < 2^BLOCK_BITS (every intra-superblock prefix count
	// must fit the reserved block field width).
	if uint64(t.Super-t.Block) >= uint64(1)<<uint(g.blockBits) {
		return ErrInvalidTuning
	}

	// n < 2^SUPERBLOCK_BITS (every "before" counter must fit).
	if t.SuperblockBits < 64 && uint64(n) >= uint64(1)<<uint(t.SuperblockBits) {
		return ErrInvalidTuning
	}

	return nil
}

// geometry holds values derived from a Tuning, computed once at build
// time and reused by every component that needs to address the packed
// superblock records.
type geometry struct {
	tuning Tuning

	// blocksPerSuper is B = Super/Block.
	blocksPerSuper int

	// blockBits is the bit-width of one stored block field:
	// ceil(log2(Super+1)).
	blockBits int

	// cachelineBytes is the packed size of one superblock record.
	// block[0] is always zero and is not stored, so only
	// blocksPerSuper-1 block fields are packed alongside the "before"
	// counter.
	cachelineBytes int
}

func newGeometry(t Tuning) geometry {
	blocksPerSuper := t.Super / t.Block
	blockBits := ceilLog2(uint64(t.Super) + 1)
	storedBlockFields := blocksPerSuper - 1

	totalBits := t.SuperblockBits + storedBlockFields*blockBits
	cachelineBytes := (totalBits + 7) / 8

	return geometry{
		tuning:         t,
		blocksPerSuper: blocksPerSuper,
		blockBits:      blockBits,
		cachelineBytes: cachelineBytes,
	}
}

// ceilLog2 returns the smallest n such that 2^n >= x, for x >= 1.
func ceilLog2(x uint64) int {
	if x <= 1 {
		return 0
	}

	return bits.Len64(x - 1)
}
