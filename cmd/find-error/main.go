// Command find-error runs a BGRT search against one of the built-in
// example kernels and prints the largest error found.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"

	"github.com/errsearch/bgrt"
	"github.com/errsearch/bgrt/internal/kernels"
)

func main() {
	kernelName := flag.String("kernel", "identity", "example kernel: identity, one-third, stencil9, sum27")
	mode := flag.String("mode", "resource", "termination strategy: resource, mantissa, boundconf")
	precision := flag.String("precision", "float64", "low-precision type: float32, float64")
	workers := flag.Int("workers", 1, "worker count (only used when mode requests multithreading)")
	iterations := flag.Uint64("resources", bgrt.DefaultResources, "resource bound: total shadow ops before stopping")
	mantissaBits := flag.Uint("bits", 30, "mantissa bound: stop once every candidate has an interval narrower than eps*2^(bits-1)")
	minRange := flag.Float64("min-range", 0, "bound-conf: smallest interval width worth evaluating further (0 uses the low-precision type's epsilon)")
	flag.Parse()

	bgrt.Init()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := bgrt.NewRunLogger(os.Stderr)

	switch *precision {
	case "float32":
		runSearch[float32](ctx, *kernelName, *mode, *workers, *iterations, *mantissaBits, *minRange, logger)
	case "float64":
		runSearch[float64](ctx, *kernelName, *mode, *workers, *iterations, *mantissaBits, *minRange, logger)
	default:
		log.Fatalf("unknown -precision %q", *precision)
	}
}

func runSearch[T bgrt.Lowp](ctx context.Context, kernelName, mode string, workers int, resources uint64, bits uint, minRange float64, logger *bgrt.RunLogger) {
	domain, kernel, err := selectKernel[T](kernelName)
	if err != nil {
		log.Fatal(err)
	}

	opts := []bgrt.Option[T]{bgrt.WithLogger[T](logger)}

	var best bgrt.EvalResult
	switch mode {
	case "resource":
		opts = append(opts, bgrt.WithResources[T](resources))
		if workers > 1 {
			best, _ = bgrt.FindErrorMultithread(ctx, domain, kernel, workers, opts...)
		} else {
			best, _ = bgrt.FindError(ctx, domain, kernel, opts...)
		}
	case "mantissa":
		best, _ = bgrt.FindErrorMantissa(ctx, domain, kernel, bits, opts...)
	case "boundconf":
		var minRangeArg *big.Float
		if minRange > 0 {
			minRangeArg = big.NewFloat(minRange)
		}
		best, _ = bgrt.FindErrorBoundConf(ctx, domain, kernel, minRangeArg, opts...)
	default:
		log.Fatalf("unknown -mode %q", mode)
	}

	if best.MaxAbsErr == nil {
		fmt.Println("no samples evaluated")
		return
	}
	fmt.Println(bgrt.FormatCurError(best.MaxAbsErr, best.RelAtMax))
}

func selectKernel[T bgrt.Lowp](name string) (bgrt.Configuration[T], bgrt.Kernel[T], error) {
	switch name {
	case "identity":
		return kernels.UnitConfig[T](), kernels.Identity[T], nil
	case "one-third":
		return kernels.ZeroToOneConfig[T](), kernels.AddOneThird[T], nil
	case "stencil9":
		return kernels.SymmetricConfig[T](kernels.NineVarKeys), kernels.NinePointStencil[T], nil
	case "sum27":
		return kernels.SymmetricConfig[T](kernels.TwentySevenVarKeys), kernels.TwentySevenTermSum[T], nil
	default:
		return nil, nil, fmt.Errorf("unknown -kernel %q", name)
	}
}
