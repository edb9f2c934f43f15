package bgrt

import "testing"

func TestVariableBisectPreservesBounds(t *testing.T) {
	v := NewVariableFromHigh[float64](highOf(-1), highOf(1))
	lo, hi := v.Bisect()

	if lo.Min().High().Cmp(v.Min().High()) != 0 {
		t.Fatalf("Bisect: lower half min changed")
	}
	if hi.Max().High().Cmp(v.Max().High()) != 0 {
		t.Fatalf("Bisect: upper half max changed")
	}
	if lo.Max().High().Cmp(hi.Min().High()) != 0 {
		t.Fatalf("Bisect: lower.max != upper.min, halves don't meet at the midpoint")
	}
}

func TestVariableSizeOfDegenerateIntervalIsZero(t *testing.T) {
	v := NewPoint[float64](highOf(5))
	size := v.Size()
	if size.High().Sign() != 0 {
		t.Fatalf("degenerate interval: got size=%s, want 0", size.High().Text('g', 10))
	}
}

func TestVariableSampleWithinBounds(t *testing.T) {
	v := NewVariableFromHigh[float64](highOf(-1), highOf(1))
	sampler := NewOkaySampler[float64]()
	for i := 0; i < 200; i++ {
		s := v.Sample(sampler)
		if s.High().Cmp(v.Min().High()) < 0 || s.High().Cmp(v.Max().High()) > 0 {
			t.Fatalf("Sample: got %s outside [%s, %s]", s.High().Text('g', 10),
				v.Min().High().Text('g', 10), v.Max().High().Text('g', 10))
		}
	}
}

func TestVariableSampleDegenerateIntervalReturnsPoint(t *testing.T) {
	v := NewPoint[float64](highOf(3))
	s := v.Sample(NewOkaySampler[float64]())
	if s.High().Cmp(highOf(3)) != 0 {
		t.Fatalf("degenerate sample: got %s, want 3", s.High().Text('g', 10))
	}
}
