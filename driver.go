package bgrt

import (
	"context"
	"math/big"
)

// TerminationStrategy decides both which candidates in a generation are
// still worth evaluating (Accept, the §4.7 step-2 domain filter) and
// when the search loop should stop (Done, given the iteration count,
// total Shadow Value operations spent so far, how many of the
// generation's candidates Accept accepted, and the best EvalResult to
// date). The three termination variants of the original source
// (resource-bounded, mantissa-bounded, and bound-confidence) are
// unified behind this one interface, per spec §9's own recommendation
// that they share a driver rather than three duplicated search loops.
type TerminationStrategy[T Lowp] interface {
	Accept(cfg Configuration[T]) bool
	Done(iter, resources uint64, accepted int, best EvalResult) bool
}

// ResourceBound stops a search once the total number of Shadow Value
// operations performed reaches Max. It is the default strategy behind
// FindError and FindErrorMultithread. It carries T only to satisfy
// TerminationStrategy[T]; the bound itself does not depend on T. Its
// domain filter accepts every candidate: resource-bounded search never
// prunes the population by interval size (original_source's plain
// FindError iterates NextGen's population unconditionally).
type ResourceBound[T Lowp] struct {
	Max uint64
}

// Accept implements TerminationStrategy.
func (r ResourceBound[T]) Accept(Configuration[T]) bool { return true }

// Done implements TerminationStrategy.
func (r ResourceBound[T]) Done(iter, resources uint64, accepted int, best EvalResult) bool {
	return resources >= r.Max
}

// BoundConf stops a search once a generation's domain filter accepts
// zero candidates: every successor configuration has at least one
// interval narrower than MinRange, so none is worth evaluating further.
// It corresponds to the source's FindErrorBoundConf
// (original_source/include/domain.hpp:232-320), whose OkayFn rejects a
// configuration the instant any one of its variables' Size() falls
// below MinRange and stops once TotalJobs reaches zero.
type BoundConf[T Lowp] struct {
	MinRange *big.Float
}

// Accept implements TerminationStrategy: cfg is accepted only if every
// one of its intervals is at least MinRange wide.
func (b BoundConf[T]) Accept(cfg Configuration[T]) bool {
	for _, v := range cfg {
		size := v.Size().High()
		size.Abs(size)
		if size.Cmp(b.MinRange) < 0 {
			return false
		}
	}
	return true
}

// Done implements TerminationStrategy: stop the instant a generation
// has nothing left to evaluate.
func (b BoundConf[T]) Done(iter, resources uint64, accepted int, best EvalResult) bool {
	return accepted == 0
}

// NewMantissaBound derives MinRange = ε · 2^(bits−1) from T's machine
// epsilon and returns a BoundConf configured with it, the exact
// delegation spec.md §6's find_error_mantissa performs into
// find_error_bound_conf ("provide one extra Resource to account for
// rounding", original_source/include/domain.hpp:204-216).
func NewMantissaBound[T Lowp](bits uint) BoundConf[T] {
	eps := Epsilon[T]()
	scale := new(big.Float).SetMantExp(big.NewFloat(1), int(bits)-1)
	minRange := newShadow().Mul(eps, scale)
	return BoundConf[T]{MinRange: minRange}
}

// SearchDriver holds the configuration of a single BGRT search: the
// sampler, how many samples to draw per candidate
// (K), how many partition pairs to generate per iteration (NPart), how
// often to restart the working configuration to the full domain
// (RestartPercent, out of 100), and where to log progress.
type SearchDriver[T Lowp] struct {
	Sampler        Sampler[T]
	K              uint64
	NPart          uint64
	RestartPercent int
	LogFreq        uint64
	Logger         *RunLogger
	Resources      uint64
}

// Option configures a SearchDriver's optional fields; unset fields keep
// the zero-value defaults newSearchDriver applies.
type Option[T Lowp] func(*SearchDriver[T])

// WithSampler overrides the default sampler.
func WithSampler[T Lowp](s Sampler[T]) Option[T] {
	return func(d *SearchDriver[T]) { d.Sampler = s }
}

// WithK overrides the number of samples drawn per Eval call.
func WithK[T Lowp](k uint64) Option[T] {
	return func(d *SearchDriver[T]) { d.K = k }
}

// WithNPart overrides the number of partition pairs generated per
// iteration; population size is 2 + 2*NPart (spec §4.3).
func WithNPart[T Lowp](n uint64) Option[T] {
	return func(d *SearchDriver[T]) { d.NPart = n }
}

// WithRestartPercent overrides the percent chance, out of 100, that an
// iteration resets the working configuration to the full domain rather
// than keeping its best-of-generation candidate, whether or not that
// iteration improved the global best.
func WithRestartPercent[T Lowp](p int) Option[T] {
	return func(d *SearchDriver[T]) { d.RestartPercent = p }
}

// WithLogFreq overrides how many iterations elapse between progress log
// lines. Zero disables periodic logging.
func WithLogFreq[T Lowp](n uint64) Option[T] {
	return func(d *SearchDriver[T]) { d.LogFreq = n }
}

// WithLogger attaches a RunLogger; the search loop records one
// RunRecord per LogFreq iterations when both are set.
func WithLogger[T Lowp](l *RunLogger) Option[T] {
	return func(d *SearchDriver[T]) { d.Logger = l }
}

// WithResources overrides the total Shadow Value operation budget a
// ResourceBound-terminated search runs for.
func WithResources[T Lowp](n uint64) Option[T] {
	return func(d *SearchDriver[T]) { d.Resources = n }
}

func newSearchDriver[T Lowp](opts ...Option[T]) *SearchDriver[T] {
	d := &SearchDriver[T]{
		Sampler:        DefaultSampler[T](),
		K:              DefaultK,
		NPart:          DefaultIterations,
		RestartPercent: DefaultRestartPercent,
		LogFreq:        DefaultLogFreq,
		Resources:      DefaultResources,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *SearchDriver[T]) shouldRestart() bool {
	if d.RestartPercent <= 0 {
		return false
	}
	roll := okayPercentRoll()
	return roll < d.RestartPercent
}

// okayPercentRoll returns a value uniform in [0,100) using the package
// default sampler's underlying PRNG family, for the restart coin flip.
func okayPercentRoll() int {
	s := NewOkaySampler[float64]()
	return int(s.draw32() % 100)
}

// runSingleThreaded is the core BGRT loop shared by FindError,
// FindErrorMantissa and FindErrorBoundConf: generate a population from
// the working configuration, apply strategy's domain filter, evaluate
// every accepted member, keep the best, occasionally restart, and stop
// when strategy says to or ctx is canceled. It corresponds to
// dom::FindError and dom::FindErrorBoundConf in
// original_source/include/domain.hpp; ctx is additive ambient plumbing
// the source's uninterruptible loop has no analogue for.
func (d *SearchDriver[T]) runSingleThreaded(ctx context.Context, domain Configuration[T], kernel Kernel[T], strategy TerminationStrategy[T]) (EvalResult, Configuration[T], uint64) {
	state := NewBGRTState(domain)
	best := EvalResult{}
	var iter, resources uint64

	for ctx.Err() == nil {
		gen := state.NextGen(d.NPart)
		buckets := PartitionConfigs(gen, strategy.Accept, 1)
		accepted := buckets[0]
		if len(accepted) == 0 {
			break
		}

		var genBestCfg Configuration[T]
		var genBest EvalResult
		for _, cfg := range accepted {
			res := Eval(cfg, d.Sampler, kernel, d.K)
			resources += res.ShadowOps
			if genBest.MaxAbsErr == nil || res.MaxAbsErr.Cmp(genBest.MaxAbsErr) > 0 {
				genBest = res
				genBestCfg = cfg
			}
		}

		improved := best.MaxAbsErr == nil || genBest.MaxAbsErr.Cmp(best.MaxAbsErr) > 0
		if improved {
			best = genBest
		}

		state.SetVals(genBestCfg)
		if d.shouldRestart() {
			state.SetVals(domain.Clone())
		}

		iter++
		if d.Logger != nil && d.LogFreq > 0 && iter%d.LogFreq == 0 {
			d.Logger.Record(iter, best.MaxAbsErr, best.RelAtMax, resources)
		}

		if strategy.Done(iter, resources, len(accepted), best) {
			break
		}
	}

	return best, state.Working(), iter
}

// FindError runs a single-threaded BGRT search over domain against
// kernel until the ResourceBound (DefaultResources unless WithResources
// overrides it) is reached or ctx is canceled, and returns the largest
// absolute error observed together with the working configuration the
// search ended on: the last generation's best candidate, or the full
// domain if that generation rolled a restart. That configuration is not
// necessarily the one that produced the returned error. It corresponds
// to the source's single-threaded dom::FindError.
func FindError[T Lowp](ctx context.Context, domain Configuration[T], kernel Kernel[T], opts ...Option[T]) (EvalResult, Configuration[T]) {
	d := newSearchDriver(opts...)
	strategy := ResourceBound[T]{Max: d.Resources}
	best, working, _ := d.runSingleThreaded(ctx, domain, kernel, strategy)
	return best, working
}

// FindErrorMantissa runs a single-threaded BGRT search that derives
// MinRange = ε · 2^(bits−1) from T's machine epsilon and stops once no
// successor configuration is at least that wide in every interval, or
// ctx is canceled. It corresponds to the source's dom::FindErrorMantissa,
// which computes the same MinRange and forwards straight into
// dom::FindErrorBoundConf.
func FindErrorMantissa[T Lowp](ctx context.Context, domain Configuration[T], kernel Kernel[T], bits uint, opts ...Option[T]) (EvalResult, Configuration[T]) {
	d := newSearchDriver(opts...)
	if d.K == DefaultK {
		d.K = DefaultKMantissa
	}
	if d.LogFreq == DefaultLogFreq {
		d.LogFreq = DefaultLogFreqMantissa
	}
	strategy := NewMantissaBound[T](bits)
	best, working, _ := d.runSingleThreaded(ctx, domain, kernel, strategy)
	return best, working
}

// FindErrorBoundConf runs a single-threaded BGRT search that stops once
// no successor configuration has every interval at least minRange
// wide, or ctx is canceled. A nil minRange defaults to T's machine
// epsilon, matching spec §6's min_range[=ε] default. It corresponds to
// the source's dom::FindErrorBoundConf.
func FindErrorBoundConf[T Lowp](ctx context.Context, domain Configuration[T], kernel Kernel[T], minRange *big.Float, opts ...Option[T]) (EvalResult, Configuration[T]) {
	d := newSearchDriver(opts...)
	if d.K == DefaultK {
		d.K = DefaultKBoundConf
	}
	if d.LogFreq == DefaultLogFreq {
		d.LogFreq = DefaultLogFreqBoundConf
	}
	if minRange == nil {
		minRange = Epsilon[T]()
	}
	strategy := BoundConf[T]{MinRange: minRange}
	best, working, _ := d.runSingleThreaded(ctx, domain, kernel, strategy)
	return best, working
}

// FindErrorMultithread runs the same BGRT search as FindError but
// spreads each generation's accepted candidates across nWorkers
// goroutines via a WorkerPool, stopping at ResourceBound(DefaultResources)
// or when ctx is canceled. It corresponds to the source's
// FindErrorMultithread in original_source/include/domain/multithread.hpp,
// with the flag-and-condvar handoff replaced by pool.go's channel
// protocol, and its OkayFn-driven dom::impl::PartitionConfigs call
// replaced by partition.go's PartitionConfigs.
func FindErrorMultithread[T Lowp](ctx context.Context, domain Configuration[T], kernel Kernel[T], nWorkers int, opts ...Option[T]) (EvalResult, Configuration[T]) {
	d := newSearchDriver(opts...)
	strategy := ResourceBound[T]{Max: d.Resources}

	pool := NewWorkerPool(nWorkers, d.Sampler, kernel)
	defer pool.Close()

	state := NewBGRTState(domain)
	best := EvalResult{}
	var iter, resources uint64

	for ctx.Err() == nil {
		gen := state.NextGen(d.NPart)
		buckets := PartitionConfigs(gen, strategy.Accept, nWorkers)

		accepted := 0
		for _, bucket := range buckets {
			for _, cfg := range bucket {
				pool.Submit(cfg, d.K)
				accepted++
			}
		}
		if accepted == 0 {
			break
		}

		genBest, genBestCfg := pool.Collect(ctx, accepted)
		resources += genBest.ShadowOps

		improved := best.MaxAbsErr == nil || genBest.MaxAbsErr.Cmp(best.MaxAbsErr) > 0
		if improved {
			best = genBest
		}

		state.SetVals(genBestCfg)
		if d.shouldRestart() {
			state.SetVals(domain.Clone())
		}

		iter++
		if d.Logger != nil && d.LogFreq > 0 && iter%d.LogFreq == 0 {
			d.Logger.Record(iter, best.MaxAbsErr, best.RelAtMax, resources)
		}

		if strategy.Done(iter, resources, accepted, best) {
			break
		}
	}

	return best, state.Working()
}
