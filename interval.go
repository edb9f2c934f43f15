package bgrt

import "math/big"

// Variable is a closed interval [min, max] of Shadow Values with
// min <= max. It corresponds to bgrt::Variable<T> in
// original_source/include/bgrt/bgrt.hpp.
type Variable[T Lowp] struct {
	min Value[T]
	max Value[T]
}

// NewVariable constructs a Variable from two existing Values.
func NewVariable[T Lowp](min, max Value[T]) Variable[T] {
	return Variable[T]{min: min, max: max}
}

// NewVariableFromHigh constructs a Variable from two high-precision
// bounds, the usual way an initial domain is described.
func NewVariableFromHigh[T Lowp](min, max *big.Float) Variable[T] {
	return Variable[T]{min: NewValueFromHigh[T](min), max: NewValueFromHigh[T](max)}
}

// NewPoint constructs the degenerate interval [x, x].
func NewPoint[T Lowp](x *big.Float) Variable[T] {
	v := NewValueFromHigh[T](x)
	return Variable[T]{min: v, max: v}
}

// Min returns the interval's lower bound.
func (v Variable[T]) Min() Value[T] { return v.min }

// Max returns the interval's upper bound.
func (v Variable[T]) Max() Value[T] { return v.max }

// Bisect splits the interval at its midpoint, computed in shadow
// precision, and returns the two halves [min, mid] and [mid, max]. It
// corresponds to bgrt::Variable::Subranges.
func (v Variable[T]) Bisect() (lower, upper Variable[T]) {
	half := newShadow().Sub(v.max.shadow, v.min.shadow)
	half.Quo(half, highOf(2))
	midShadow := newShadow().Add(v.min.shadow, half)
	mid := NewValueFromHigh[T](midShadow)

	lower = Variable[T]{min: v.min, max: mid}
	upper = Variable[T]{min: mid, max: v.max}
	return lower, upper
}

// Average returns (min+max)/2 as a Shadow Value.
func (v Variable[T]) Average() Value[T] {
	sum := v.min.Add(v.max)
	two := NewValueFromHigh[T](highOf(2))
	return sum.Div(two)
}

// Size returns max - min as a Shadow Value.
func (v Variable[T]) Size() Value[T] {
	return v.max.Sub(v.min)
}

// ErrorBound returns the larger of the two endpoints' own shadow errors,
// matching bgrt::Variable's implicit use in the bound-conf filter.
func (v Variable[T]) ErrorBound() *big.Float {
	minErr := v.min.Error()
	maxErr := v.max.Error()
	if minErr.Cmp(maxErr) > 0 {
		return minErr
	}
	return maxErr
}

// Sample draws a Shadow Value uniformly-per-strategy from the closed
// interval [min, max] using sampler. It panics with a SearchError
// (ErrTypeSampler) if the sampler ever returns a point outside the
// interval, per spec §4.2/§7: an out-of-range sample is a programming
// error, not a recoverable condition.
func (v Variable[T]) Sample(sampler Sampler[T]) Value[T] {
	s := sampler.Sample(v.min, v.max)
	if s.shadow.Cmp(v.min.shadow) < 0 || s.shadow.Cmp(v.max.shadow) > 0 {
		panic(NewSamplerError("Sample", "sample lies outside interval bounds",
			map[string]string{
				"sample": s.shadow.Text('g', 17),
				"min":    v.min.shadow.Text('g', 17),
				"max":    v.max.shadow.Text('g', 17),
			}))
	}
	return s
}
