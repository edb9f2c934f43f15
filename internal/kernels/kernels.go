// Package kernels supplies small example kernels for exercising the
// bgrt search driver, grounded in the concrete scenarios spec.md names
// as seed end-to-end tests: an identity kernel, an addition of 1/3, a
// balanced 9-point stencil, and a 27-term sum.
package kernels

import (
	"math/big"

	"github.com/errsearch/bgrt"
)

// VarID keys are arbitrary but must be stable across a kernel's calls.
const (
	keyX = bgrt.VarID(iota)
)

// Identity returns its single input unchanged, using no low-precision
// arithmetic beyond the sample itself. It corresponds to spec.md §8
// scenario 1: with interval [-1, 1] and k=100, every termination
// variant must observe abs_err = 0 exactly.
func Identity[T bgrt.Lowp](in bgrt.SampledConfiguration[T]) bgrt.SampledConfiguration[T] {
	out := make(bgrt.SampledConfiguration[T], 1)
	out[keyX] = in[keyX]
	return out
}

// AddOneThird returns s + 1/3, where 1/3 is constructed from a
// high-precision literal into a Shadow Value so the low-precision
// addition's rounding error is the only source of the kernel's own
// error. It corresponds to spec.md §8 scenario 2.
func AddOneThird[T bgrt.Lowp](in bgrt.SampledConfiguration[T]) bgrt.SampledConfiguration[T] {
	third := bgrt.NewValueFromHigh[T](oneThird())
	s := in[keyX]
	out := make(bgrt.SampledConfiguration[T], 1)
	out[keyX] = s.Add(third)
	return out
}

func bigFloatFromInt(n int64) *big.Float {
	return new(big.Float).SetPrec(128).SetInt64(n)
}

func oneThird() *big.Float {
	one := bigFloatFromInt(1)
	three := bigFloatFromInt(3)
	return new(big.Float).SetPrec(128).Quo(one, three)
}

// NineVarKeys are the variable identifiers of the 9-point stencil,
// numbered 0 through 8 in the fixed order the kernel sums them.
var NineVarKeys = varKeys(9)

// NinePointStencil sums nine sampled values in a fixed key order. It
// corresponds to spec.md §8 scenario 3: 9 variables each [-1, 1], sum
// as the kernel, expecting an abs_err bounded above by 9*eps32*max|x_i|
// under 32-bit low precision and 128-bit shadow.
func NinePointStencil[T bgrt.Lowp](in bgrt.SampledConfiguration[T]) bgrt.SampledConfiguration[T] {
	return sumKeys(in, NineVarKeys)
}

// TwentySevenVarKeys are the variable identifiers of the 27-term sum
// kernel, numbered 0 through 26.
var TwentySevenVarKeys = varKeys(27)

// TwentySevenTermSum sums twenty-seven sampled values in a fixed key
// order. It corresponds to spec.md §8 scenario 4's multithreaded
// termination-safety fixture.
func TwentySevenTermSum[T bgrt.Lowp](in bgrt.SampledConfiguration[T]) bgrt.SampledConfiguration[T] {
	return sumKeys(in, TwentySevenVarKeys)
}

// CornerWeighted returns s*s*s: its absolute rounding error grows with
// |s|, so its true maximum over a symmetric domain sits at the domain's
// corners rather than its interior. It corresponds to spec.md §8
// scenario 5's restart-effectiveness fixture, standing in for the LTR
// Poisson stencil the scenario names.
func CornerWeighted[T bgrt.Lowp](in bgrt.SampledConfiguration[T]) bgrt.SampledConfiguration[T] {
	s := in[keyX]
	cube := s.Mul(s).Mul(s)
	out := make(bgrt.SampledConfiguration[T], 1)
	out[keyX] = cube
	return out
}

func sumKeys[T bgrt.Lowp](in bgrt.SampledConfiguration[T], keys []bgrt.VarID) bgrt.SampledConfiguration[T] {
	sum := bgrt.Zero[T]()
	for _, k := range keys {
		sum = sum.Add(in[k])
	}
	out := make(bgrt.SampledConfiguration[T], 1)
	out[keys[0]] = sum
	return out
}

func varKeys(n int) []bgrt.VarID {
	keys := make([]bgrt.VarID, n)
	for i := range keys {
		keys[i] = bgrt.VarID(i)
	}
	return keys
}

// UnitConfig builds a single-key Configuration over [-1, 1], the domain
// spec.md §8 scenario 1 and the sign-symmetric stencils use.
func UnitConfig[T bgrt.Lowp]() bgrt.Configuration[T] {
	return bgrt.Configuration[T]{
		keyX: bgrt.NewVariableFromHigh[T](bigFloatFromInt(-1), bigFloatFromInt(1)),
	}
}

// ZeroToOneConfig builds a single-key Configuration over [0, 1], the
// domain spec.md §8 scenario 2 uses.
func ZeroToOneConfig[T bgrt.Lowp]() bgrt.Configuration[T] {
	return bgrt.Configuration[T]{
		keyX: bgrt.NewVariableFromHigh[T](bigFloatFromInt(0), bigFloatFromInt(1)),
	}
}

// SymmetricConfig builds an n-key Configuration where every key spans
// [-1, 1], the domain the 9-point-stencil and 27-term-sum scenarios use.
func SymmetricConfig[T bgrt.Lowp](keys []bgrt.VarID) bgrt.Configuration[T] {
	cfg := make(bgrt.Configuration[T], len(keys))
	for _, k := range keys {
		cfg[k] = bgrt.NewVariableFromHigh[T](bigFloatFromInt(-1), bigFloatFromInt(1))
	}
	return cfg
}
