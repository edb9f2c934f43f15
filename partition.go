package bgrt

// DomainPredicate reports whether a candidate configuration's intervals
// are still worth evaluating — the "OkayFn" filter of
// dom::impl::PartitionConfigs in
// original_source/include/impl/partition.hpp. It runs against the
// Configuration's intervals themselves, before any sample is drawn or
// the kernel is invoked, matching the source's OkayFn(Config) signature.
type DomainPredicate[T Lowp] func(Configuration[T]) bool

// AcceptAll is the DomainPredicate resource-bounded search uses: the
// §4.7 domain filter only narrows the population under the bound-conf
// and mantissa-bound termination variants.
func AcceptAll[T Lowp](Configuration[T]) bool { return true }

// PartitionConfigs assigns every configuration in candidates that
// satisfies pred into one of n buckets, round-robin by the order
// accepted candidates are encountered. It corresponds to
// dom::impl::PartitionConfigs in
// original_source/include/impl/partition.hpp, simplified from the
// source's two-phase count-then-fill loop (which re-tests the same
// candidate index across a thread's inner loop instead of advancing it,
// an apparent bug in the source) to a single accept-then-round-robin
// pass. pred is evaluated exactly once per candidate.
func PartitionConfigs[T Lowp](candidates []Configuration[T], pred DomainPredicate[T], n int) [][]Configuration[T] {
	buckets := make([][]Configuration[T], n)
	accepted := 0
	for _, cfg := range candidates {
		if !pred(cfg) {
			continue
		}
		idx := accepted % n
		buckets[idx] = append(buckets[idx], cfg)
		accepted++
	}
	return buckets
}

// PartitionNextGen draws one NextGen(nPart) population from state and
// partitions it with PartitionConfigs, the "second form" spec §4.5
// requires: (N, iterations, BGRT).
func PartitionNextGen[T Lowp](state *BGRTState[T], nPart uint64, pred DomainPredicate[T], n int) [][]Configuration[T] {
	gen := state.NextGen(nPart)
	return PartitionConfigs(gen, pred, n)
}
