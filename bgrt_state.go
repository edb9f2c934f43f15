package bgrt

import "math/rand/v2"

// HalfConfigs bisects every interval in c, returning the two halves as
// full configurations with the same key set as c: lo[k] = [min, mid]
// and hi[k] = [mid, max]. It corresponds to
// bgrt::BGRTState::HalfConfigs in original_source/include/bgrt/bgrt.hpp.
func HalfConfigs[T Lowp](c Configuration[T]) (lo, hi Configuration[T]) {
	lo = make(Configuration[T], len(c))
	hi = make(Configuration[T], len(c))
	for k, v := range c {
		l, h := v.Bisect()
		lo[k] = l
		hi[k] = h
	}
	return lo, hi
}

// UnionConfigurations returns the configuration whose key set is
// keys(left) ∪ keys(right); for keys present in both, the value from
// right prevails. Callers besides PartConf's disjoint-construction path
// do not rely on the tie-break, but it is preserved exactly as spec §4.3
// requires.
func UnionConfigurations[T Lowp](left, right Configuration[T]) Configuration[T] {
	out := make(Configuration[T], len(left)+len(right))
	for k, v := range left {
		out[k] = v
	}
	for k, v := range right {
		out[k] = v
	}
	return out
}

// BGRTState holds the current working configuration of a search and
// generates successor populations from it. It corresponds to
// bgrt::BGRTState<T>.
type BGRTState[T Lowp] struct {
	working Configuration[T]
	rng     *rand.Rand
}

// NewBGRTState constructs a BGRTState seeded with the initial
// configuration. Its random source is private to this instance (spec
// §9: PartConf's Bernoulli draw must not be a shared, racy generator).
func NewBGRTState[T Lowp](initial Configuration[T]) *BGRTState[T] {
	return &BGRTState[T]{
		working: initial.Clone(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Working returns the current working configuration.
func (b *BGRTState[T]) Working() Configuration[T] {
	return b.working
}

// SetVals replaces the working configuration with c. It has no other
// side effect.
func (b *BGRTState[T]) SetVals(c Configuration[T]) {
	b.working = c
}

// PartConf randomly splits the working configuration's entries into two
// sub-configurations by an independent Bernoulli(1/2) draw per entry,
// per section 3.4 of the S3FP paper. The two outputs have disjoint key
// sets whose union is the working configuration's key set.
func (b *BGRTState[T]) PartConf() (left, right Configuration[T]) {
	left = make(Configuration[T])
	right = make(Configuration[T])
	for k, v := range b.working {
		if b.rng.IntN(2) == 0 {
			left[k] = v
		} else {
			right[k] = v
		}
	}
	return left, right
}

// NextGen produces the successor population of size 2 + 2*nPart from
// the working configuration, per spec §4.3: the two halves of the
// current state, then nPart draws each contributing an "up in some
// dimensions, down in others" recombination.
func (b *BGRTState[T]) NextGen(nPart uint64) []Configuration[T] {
	next := make([]Configuration[T], 0, 2+2*nPart)

	lo, hi := HalfConfigs(b.working)
	next = append(next, lo, hi)

	for i := uint64(0); i < nPart; i++ {
		ax, ay := b.PartConf()
		cxLo, cxHi := HalfConfigs(ax)
		cyLo, cyHi := HalfConfigs(ay)

		next = append(next, UnionConfigurations(cxLo, cyHi)) // down(Cx) U up(Cy)
		next = append(next, UnionConfigurations(cxHi, cyLo)) // up(Cx) U down(Cy)
	}

	return next
}
