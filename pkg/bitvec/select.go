package bitvec

import "sort"

// SelectDispatcher answers select_v(k) by combining a coarse megablock
// sample (binary search), a linear walk over RankIndex superblocks, a
// linear walk over blocks, and a broadword finish inside BitStore.
type SelectDispatcher struct {
	rank   *RankIndex
	sample []uint64 // ones-before(m*Mega) for m in [0, len(sample))
	mega   int
	count0 int
}

func buildSelectDispatcher(ri *RankIndex, g geometry, n int) *SelectDispatcher {
	mega := g.tuning.Mega

	megaCount := 0
	if ri.superCount > 0 {
		megaCount = (ri.superCount + mega - 1) / mega
	}

	sample := make([]uint64, megaCount)
	for m := 0; m < megaCount; m++ {
		sample[m] = ri.onesBeforeSuper(m * mega)
	}

	return &SelectDispatcher{
		rank:   ri,
		sample: sample,
		mega:   mega,
		count0: n - ri.count1,
	}
}

// vBeforeSuper returns the count of value v strictly before superblock
// boundary s, for s in [0, superCount].
func (sd *SelectDispatcher) vBeforeSuper(s, v int) uint64 {
	if v == 1 {
		return sd.rank.onesBeforeSuper(s)
	}

	return uint64(sd.rank.boundaryPos(s)) - sd.rank.onesBeforeSuper(s)
}

// vBeforeBlock returns the count of value v in the prefix
// [s*Super, s*Super+b*Block) of superblock s.
func (sd *SelectDispatcher) vBeforeBlock(s, b, v int) uint64 {
	rec := sd.rank.recordAt(s)
	ones := recordBlock(rec, sd.rank.geometry, b)

	if v == 1 {
		return ones
	}

	return uint64(b*sd.rank.geometry.tuning.Block) - ones
}

// countOf returns the total number of occurrences of v in the whole
// bit-vector.
func (sd *SelectDispatcher) countOf(v int) int {
	if v == 1 {
		return sd.rank.count1
	}

	return sd.count0
}

// Select returns the 0-based position of the k-th (1-indexed) occurrence
// of v, or ok=false when k <= 0 or k exceeds the total count of v.
func (sd *SelectDispatcher) Select(store *BitStore, k, v int) (pos int, ok bool) {
	countV := sd.countOf(v)
	if k <= 0 || k > countV {
		return 0, false
	}

	kk := uint64(k)

	// Megablock binary search over the sampled counters: smallest m such
	// that the count of v before megablock m+1 reaches k. The last
	// megablock ends at superCount, where the count is countV >= k.
	superCount := sd.rank.superCount
	super := sd.rank.geometry.tuning.Super

	m := sort.Search(len(sd.sample), func(m int) bool {
		if m+1 >= len(sd.sample) {
			return true
		}

		ones := sd.sample[m+1]
		if v == 1 {
			return ones >= kk
		}

		return uint64((m+1)*sd.mega*super)-ones >= kk
	})

	rangeStart := m * sd.mega

	rangeEnd := (m + 1) * sd.mega
	if rangeEnd > superCount {
		rangeEnd = superCount
	}

	// Superblock linear walk from the right edge, leftward, while
	// vBeforeSuper(s) >= k. vBeforeSuper(0) == 0 < k always holds (k>=1),
	// so this always terminates with a strictly-less value.
	s := rangeEnd
	for s > rangeStart && sd.vBeforeSuper(s, v) >= kk {
		s--
	}

	kRem := kk - sd.vBeforeSuper(s, v)

	// Block linear walk within superblock s.
	b := 0
	blocksPerSuper := sd.rank.geometry.blocksPerSuper

	for b < blocksPerSuper-1 && sd.vBeforeBlock(s, b+1, v) < kRem {
		b++
	}

	kWord := kRem - sd.vBeforeBlock(s, b, v)

	start := s*sd.rank.geometry.tuning.Super + b*sd.rank.geometry.tuning.Block

	return store.FindNthX(start, int(kWord), v)
}
