package bgrt_test

import (
	"math/big"
	"testing"

	"github.com/errsearch/bgrt"
	"github.com/errsearch/bgrt/internal/kernels"
)

func TestEvalIdentityKernelHasZeroError(t *testing.T) {
	domain := kernels.UnitConfig[float64]()
	res := bgrt.Eval(domain, bgrt.NewOkaySampler[float64](), kernels.Identity[float64], 100)

	if res.MaxAbsErr.Sign() != 0 {
		t.Fatalf("identity kernel: got MaxAbsErr=%s, want 0", res.MaxAbsErr.Text('g', 10))
	}
}

func TestEvalAddOneThirdHasPositiveErrorAtFloat32(t *testing.T) {
	domain := kernels.ZeroToOneConfig[float32]()
	res := bgrt.Eval(domain, bgrt.NewOkaySampler[float32](), kernels.AddOneThird[float32], 64)

	if res.MaxAbsErr.Sign() <= 0 {
		t.Fatalf("1/3 addition at float32: got MaxAbsErr=%s, want > 0", res.MaxAbsErr.Text('g', 10))
	}
	if res.ShadowOps == 0 {
		t.Fatalf("1/3 addition: got ShadowOps=0, want > 0 (each sample performs one Add)")
	}
}

func TestEvalAddOneThirdSmallerErrorAtFloat64(t *testing.T) {
	domain32 := kernels.ZeroToOneConfig[float32]()
	domain64 := kernels.ZeroToOneConfig[float64]()

	res32 := bgrt.Eval(domain32, bgrt.NewOkaySampler[float32](), kernels.AddOneThird[float32], 200)
	res64 := bgrt.Eval(domain64, bgrt.NewOkaySampler[float64](), kernels.AddOneThird[float64], 200)

	if res64.MaxAbsErr.Cmp(res32.MaxAbsErr) >= 0 {
		t.Fatalf("float64 addition should have strictly smaller max error than float32: got %s vs %s",
			res64.MaxAbsErr.Text('g', 10), res32.MaxAbsErr.Text('g', 10))
	}
}

func TestEvalNinePointStencilErrorBound(t *testing.T) {
	domain := kernels.SymmetricConfig[float32](kernels.NineVarKeys)
	res := bgrt.Eval(domain, bgrt.NewOkaySampler[float32](), kernels.NinePointStencil[float32], 200)

	// eps32 (2^-23) times 9 terms is a generous statistical upper bound
	// on the rounding error accumulated by 9 sequential float32
	// additions of terms in [-1, 1].
	eps32 := new(big.Float).SetPrec(128).SetMantExp(big.NewFloat(1), -23)
	bound := new(big.Float).SetPrec(128).Mul(eps32, big.NewFloat(9))

	if res.MaxAbsErr.Sign() < 0 {
		t.Fatalf("9-point stencil: got negative MaxAbsErr")
	}
	if res.MaxAbsErr.Cmp(bound) > 0 {
		t.Fatalf("9-point stencil: got MaxAbsErr=%s, want <= %s", res.MaxAbsErr.Text('g', 10), bound.Text('g', 10))
	}
}

func TestEvalSplitsLargeKRecursively(t *testing.T) {
	domain := kernels.UnitConfig[float64]()
	// k well above EvalSplitThreshold exercises the recursive halving
	// path; the result must come back non-nil regardless of which half
	// "wins" the comparison.
	res := bgrt.Eval(domain, bgrt.NewOkaySampler[float64](), kernels.Identity[float64], bgrt.EvalSplitThreshold*3+7)
	if res.MaxAbsErr == nil {
		t.Fatal("large k: got nil MaxAbsErr")
	}
}

func TestEvalZeroKReturnsZeroResult(t *testing.T) {
	domain := kernels.UnitConfig[float64]()
	res := bgrt.Eval(domain, bgrt.NewOkaySampler[float64](), kernels.Identity[float64], 0)
	if res.ShadowOps != 0 {
		t.Fatalf("k=0: got ShadowOps=%d, want 0", res.ShadowOps)
	}
	if res.MaxAbsErr.Sign() != 0 {
		t.Fatalf("k=0: got MaxAbsErr=%s, want 0", res.MaxAbsErr.Text('g', 10))
	}
}
