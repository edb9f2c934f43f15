// Package bgrt configuration constants
package bgrt

import (
	"math"
	"time"
)

// Search driver defaults (spec §6's find_error* parameter tables)
const (
	// DefaultIterations is the NPart argument NextGen receives by default
	// each generation, i.e. spec §6's iterations[=1000] parameter; the
	// resulting population size is 2 + 2*DefaultIterations.
	DefaultIterations = 1000

	// DefaultResources bounds cumulative shadow ops for resource-bounded search.
	DefaultResources = math.MaxInt32

	// DefaultRestartPercent is the percent chance per iteration of snapping
	// back to the initial configuration.
	DefaultRestartPercent = 15

	// DefaultK is the sample count Eval draws per configuration.
	DefaultK = 1000

	// DefaultLogFreq gates how often the driver emits a log line.
	DefaultLogFreq = 500

	// DefaultKMantissa and DefaultKBoundConf mirror the smaller k defaults
	// the mantissa-bound and bound-conf entry points use.
	DefaultKMantissa  = 50
	DefaultKBoundConf = 25

	// DefaultLogFreqMantissa and DefaultLogFreqBoundConf mirror their entry
	// points' larger log-frequency defaults.
	DefaultLogFreqMantissa  = 5000
	DefaultLogFreqBoundConf = 4000
)

// EvalSplitThreshold is the k above which Eval recurses into two halves
// to bound transient allocation (spec §4.4's memory guard).
const EvalSplitThreshold = 500

// WorkerWaitTimeout bounds every worker-pool handoff wait so a missed
// notification can never hang the driver (spec §5).
const WorkerWaitTimeout = 500 * time.Millisecond

// DefaultShadowPrecision is the bit precision Init sets for every shadow
// value's *big.Float, mirroring mpfr::mpreal::set_default_prec(128).
const DefaultShadowPrecision = 128
