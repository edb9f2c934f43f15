package bgrt

import "math/big"

// EvalResult summarizes k independent samples of a Configuration through
// a Kernel: the maximum absolute error observed, the relative error that
// co-occurred with it (not the maximum relative error independently),
// and the Shadow Value operation count summed over the samples. When
// Eval splits a large k, ShadowOps is the winning half's count only (see
// pickBetterResult). It corresponds to dom::EvalResults in
// original_source/include/domain/util.hpp.
type EvalResult struct {
	MaxAbsErr *big.Float
	RelAtMax  *big.Float
	ShadowOps uint64
}

// mergeSample folds one kernel invocation's output into an in-progress
// EvalResult, replacing MaxAbsErr/RelAtMax only when this sample's
// largest per-key absolute error exceeds the running maximum.
func mergeSample[T Lowp](acc *EvalResult, out SampledConfiguration[T]) {
	for _, v := range out {
		acc.ShadowOps += v.Ops()
		abs := v.Error()
		if acc.MaxAbsErr == nil || abs.Cmp(acc.MaxAbsErr) > 0 {
			acc.MaxAbsErr = abs
			acc.RelAtMax = v.RelError()
		}
	}
}

// Eval samples k SampledConfigurations from c using sampler, runs kernel
// on each, and folds the results into a single EvalResult. When k
// exceeds EvalSplitThreshold, Eval recurses on two halves of k instead
// of looping k times directly, matching the source's guard against
// unbounded stack growth from very large batch sizes
// (original_source/include/domain/util.hpp, dom::Eval).
func Eval[T Lowp](c Configuration[T], sampler Sampler[T], kernel Kernel[T], k uint64) EvalResult {
	if k == 0 {
		return EvalResult{MaxAbsErr: highOf(0), RelAtMax: highOf(0)}
	}
	if k > EvalSplitThreshold {
		half := k / 2
		left := Eval(c, sampler, kernel, half)
		right := Eval(c, sampler, kernel, k-half)
		return pickBetterResult(left, right)
	}

	acc := EvalResult{}
	for i := uint64(0); i < k; i++ {
		sampled := c.Sample(sampler)
		out := kernel(sampled)
		mergeSample(&acc, out)
	}
	if acc.MaxAbsErr == nil {
		acc.MaxAbsErr = highOf(0)
		acc.RelAtMax = highOf(0)
	}
	return acc
}

// pickBetterResult returns left or right wholesale, whichever has the
// larger MaxAbsErr, matching dom::Eval in
// original_source/include/domain/util.hpp ("if (Left.Err > Right.Err)
// return Left; return Right;"): the losing half's ShadowOps is
// discarded along with the rest of its struct, not folded into the
// total. Used only to combine the two halves of one Eval call's own
// k-way split.
func pickBetterResult(left, right EvalResult) EvalResult {
	if left.MaxAbsErr.Cmp(right.MaxAbsErr) >= 0 {
		return left
	}
	return right
}

// combineEvalResults merges two EvalResults produced by independent
// work — distinct workers evaluating distinct configurations, as in
// pool.go's Collect — where every sample's ShadowOps must count toward
// the running total regardless of which side's MaxAbsErr wins.
func combineEvalResults(left, right EvalResult) EvalResult {
	out := EvalResult{ShadowOps: left.ShadowOps + right.ShadowOps}
	if left.MaxAbsErr.Cmp(right.MaxAbsErr) >= 0 {
		out.MaxAbsErr = left.MaxAbsErr
		out.RelAtMax = left.RelAtMax
	} else {
		out.MaxAbsErr = right.MaxAbsErr
		out.RelAtMax = right.RelAtMax
	}
	return out
}
