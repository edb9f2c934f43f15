package bgrt

import "testing"

func TestConfigurationCloneIsIndependent(t *testing.T) {
	c := Configuration[float64]{
		0: NewVariableFromHigh[float64](highOf(0), highOf(1)),
	}
	clone := c.Clone()
	clone[1] = NewVariableFromHigh[float64](highOf(2), highOf(3))

	if _, ok := c[1]; ok {
		t.Fatalf("Clone: mutating the clone's key set affected the original")
	}
}

func TestConfigurationSampleCoversEveryKey(t *testing.T) {
	c := Configuration[float64]{
		0: NewVariableFromHigh[float64](highOf(-1), highOf(1)),
		1: NewVariableFromHigh[float64](highOf(0), highOf(10)),
	}
	sampled := c.Sample(NewOkaySampler[float64]())
	if len(sampled) != len(c) {
		t.Fatalf("Sample: got %d keys, want %d", len(sampled), len(c))
	}
	for k := range c {
		if _, ok := sampled[k]; !ok {
			t.Fatalf("Sample: missing key %d in sampled configuration", k)
		}
	}
}

func TestSampledConfigurationErrors(t *testing.T) {
	s := SampledConfiguration[float32]{
		0: NewValueFromHigh[float32](highOf(1)),
	}
	errs := s.Errors()
	if errs[0].Sign() != 0 {
		t.Fatalf("Errors: identity-constructed value should have zero error, got %s", errs[0].Text('g', 10))
	}
}
