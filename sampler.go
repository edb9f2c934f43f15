package bgrt

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	"math/rand/v2"
	"time"

	"golang.org/x/sys/cpu"
)

// Sampler draws a Shadow Value from a closed interval [min, max]
// according to its own strategy. Implementations own their random
// state; none share a package-level generator (spec §9: the source's
// single static PRNG in Variable::sample() is a data race under
// concurrent Eval, so every sampler here is either stateless per call
// or privately seeded per instance).
type Sampler[T Lowp] interface {
	Sample(min, max Value[T]) Value[T]
}

// DefaultSampler returns the "Okay" sampler, the minimum spec §6
// requires every implementation to provide.
func DefaultSampler[T Lowp]() Sampler[T] {
	return NewOkaySampler[T]()
}

func sampleFromUnit[T Lowp](min, max Value[T], u *big.Float) Value[T] {
	span := newShadow().Sub(max.shadow, min.shadow)
	span.Mul(span, u)
	point := newShadow().Add(min.shadow, span)
	return NewValueFromHigh[T](point)
}

// UniformSampler draws min + (max-min)*U for U in [0,1) built from 63
// random bits (finer than OkaySampler's 32) and computed in shadow
// precision — the "Uniform" option of spec §4.2/§6.
type UniformSampler[T Lowp] struct {
	rng *rand.ChaCha8
}

// NewUniformSampler seeds a private ChaCha8 generator from crypto/rand.
func NewUniformSampler[T Lowp]() *UniformSampler[T] {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &UniformSampler[T]{rng: rand.NewChaCha8(seed)}
}

// Sample implements Sampler.
func (s *UniformSampler[T]) Sample(min, max Value[T]) Value[T] {
	bits := s.rng.Uint64() >> 1 // 63 random bits
	u := newShadow().SetUint64(bits)
	u.Quo(u, highOf(float64(uint64(1)<<63)))
	return sampleFromUnit(min, max, u)
}

// OkaySampler draws U from a cheap 32-bit PRNG and widens it to shadow
// precision — the "Okay" option of spec §4.2/§6, and the default this
// package selects when a caller does not name a sampler.
type OkaySampler[T Lowp] struct {
	rng      *rand.PCG
	batch    []uint32
	batchable bool
}

// NewOkaySampler seeds a private PCG generator from crypto/rand. When
// golang.org/x/sys/cpu reports a wide SIMD lane on this CPU, draws are
// filled a small batch at a time, the one concrete reuse of the
// teacher's own hardware-feature-detection dependency (see DESIGN.md).
func NewOkaySampler[T Lowp]() *OkaySampler[T] {
	var buf [16]byte
	_, _ = crand.Read(buf[:])
	seed1 := binary.LittleEndian.Uint64(buf[:8])
	seed2 := binary.LittleEndian.Uint64(buf[8:])
	batchable := cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
	return &OkaySampler[T]{rng: rand.NewPCG(seed1, seed2), batchable: batchable}
}

// Sample implements Sampler.
func (s *OkaySampler[T]) Sample(min, max Value[T]) Value[T] {
	u32 := s.draw32()
	u := highOf(float64(u32) / float64(uint64(1)<<32))
	return sampleFromUnit(min, max, u)
}

func (s *OkaySampler[T]) draw32() uint32 {
	if !s.batchable {
		return uint32(s.rng.Uint64())
	}
	if len(s.batch) == 0 {
		s.batch = make([]uint32, 8)
		for i := range s.batch {
			s.batch[i] = uint32(s.rng.Uint64())
		}
	}
	v := s.batch[0]
	s.batch = s.batch[1:]
	return v
}

// AccurateSampler draws bits directly at shadow precision via
// crypto/rand, the "accurate" variant spec §9 mentions as acceptable.
type AccurateSampler[T Lowp] struct{}

// NewAccurateSampler returns a stateless AccurateSampler.
func NewAccurateSampler[T Lowp]() *AccurateSampler[T] {
	return &AccurateSampler[T]{}
}

// Sample implements Sampler.
func (s *AccurateSampler[T]) Sample(min, max Value[T]) Value[T] {
	prec := currentPrecision()
	nbytes := (prec + 7) / 8
	buf := make([]byte, nbytes)
	_, _ = crand.Read(buf)

	mantissa := new(big.Int).SetBytes(buf)
	denom := new(big.Int).Lsh(big.NewInt(1), nbytes*8)
	u := newShadow().SetInt(mantissa)
	d := newShadow().SetInt(denom)
	u.Quo(u, d)

	return sampleFromUnit(min, max, u)
}

// TimeBasedSampler reseeds an OkaySampler from the wall clock on every
// call, reproducing the source's time-seeded compiled variant (spec §9).
type TimeBasedSampler[T Lowp] struct{}

// NewTimeBasedSampler returns a stateless TimeBasedSampler.
func NewTimeBasedSampler[T Lowp]() *TimeBasedSampler[T] {
	return &TimeBasedSampler[T]{}
}

// Sample implements Sampler.
func (s *TimeBasedSampler[T]) Sample(min, max Value[T]) Value[T] {
	seed := uint64(time.Now().UnixNano())
	inner := &OkaySampler[T]{rng: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	return inner.Sample(min, max)
}
