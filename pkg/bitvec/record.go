package bitvec

import "encoding/binary"

// A superblock record is a flat little-endian bit-buffer of
// geometry.cachelineBytes bytes: the first SuperblockBits bits hold
// "before", followed by blocksPerSuper-1 consecutive BlockBits fields for
// block[1..blocksPerSuper-1]. block[0] is always zero by definition and is
// never stored.
//
// Resist the temptation to model this as a struct with a uint64 and a
// []uint16: that doubles the cache lines touched by rank and wastes the
// bits BlockBits saves over 16.

// getBits reads a width-bit field (width <= 56) starting at bitOffset from
// a little-endian byte buffer. It reads through an 8-byte window so a
// field may straddle up to eight bytes without special-casing.
func getBits(buf []byte, bitOffset, width int) uint64 {
	byteOffset := bitOffset / 8
	shift := uint(bitOffset % 8)

	var window [8]byte

	copy(window[:], buf[byteOffset:])

	v := binary.LittleEndian.Uint64(window[:])
	v >>= shift

	mask := uint64(1)<<uint(width) - 1

	return v & mask
}

// setBitsOr ORs a width-bit value into a zero-initialized little-endian
// byte buffer at bitOffset. Callers must not call this twice for the same
// field, and must never call it on a field whose bits are already set.
func setBitsOr(buf []byte, bitOffset, width int, value uint64) {
	byteOffset := bitOffset / 8
	shift := uint(bitOffset % 8)

	avail := len(buf) - byteOffset
	if avail > 8 {
		avail = 8
	}

	mask := uint64(1)<<uint(width) - 1
	v := (value & mask) << shift

	var window [8]byte

	copy(window[:avail], buf[byteOffset:byteOffset+avail])

	cur := binary.LittleEndian.Uint64(window[:])
	cur |= v
	binary.LittleEndian.PutUint64(window[:], cur)
	copy(buf[byteOffset:byteOffset+avail], window[:avail])
}

// recordBefore returns the record's "before" field.
func recordBefore(rec []byte, g geometry) uint64 {
	return getBits(rec, 0, g.tuning.SuperblockBits)
}

// setRecordBefore sets the record's "before" field. rec must be
// zero-initialized and this must be called at most once per record.
func setRecordBefore(rec []byte, g geometry, v uint64) {
	setBitsOr(rec, 0, g.tuning.SuperblockBits, v)
}

// recordBlock returns block[j], the count of set bits in the prefix
// [s*Super, s*Super+j*Block) of the record's superblock. block[0] is
// always 0 and requires no memory access.
func recordBlock(rec []byte, g geometry, j int) uint64 {
	if j <= 0 {
		return 0
	}

	off := g.tuning.SuperblockBits + (j-1)*g.blockBits

	return getBits(rec, off, g.blockBits)
}

// setRecordBlock sets block[j]. Calls for j==0 are no-ops since block[0]
// is never stored. j must be called with non-decreasing values across a
// single record's construction.
func setRecordBlock(rec []byte, g geometry, j int, v uint64) {
	if j <= 0 {
		return
	}

	off := g.tuning.SuperblockBits + (j-1)*g.blockBits
	setBitsOr(rec, off, g.blockBits, v)
}
