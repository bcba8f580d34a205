// Package bitvec provides a succinct, immutable rank/select bit-vector.
//
// A [BitVector] answers access, rank and select queries against a fixed
// binary sequence in constant time, using auxiliary index storage that is
// sublinear in the sequence length. It is built once, in a single pass,
// from a packed bit-store and never mutated afterward.
//
// # Basic usage
//
//	store, err := bitvec.NewBitStoreFromString("001110110101010111111111")
//	if err != nil {
//	    // handle parse error
//	}
//	bv := bitvec.Build(store, bitvec.DefaultTuning())
//
//	bv.Access(4)      // 1
//	bv.Rank1(10)      // 6
//	bv.Select1(14)    // 20, true
//
// # Concurrency
//
// A [BitVector] is immutable after [Build] returns. Any number of
// goroutines may call its query methods concurrently without
// synchronization. There is no update API; build a new [BitVector] from a
// new [BitStore] instead.
//
// # Error handling
//
// [Build] panics if the requested [Tuning] cannot represent the input
// (see [Tuning.Validate]) - this is a programming error, not a runtime
// condition, and callers are expected to validate tuning once at startup.
// Out-of-range select queries do not panic: [BitVector.Select0] and
// [BitVector.Select1] return ok=false for k=0 or k beyond the available
// count. [BitVector.Access], [BitVector.Rank0] and [BitVector.Rank1]
// panic when the index is out of range.
package bitvec
