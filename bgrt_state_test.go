package bgrt

import "testing"

func unitConfig() Configuration[float64] {
	return Configuration[float64]{
		0: NewVariableFromHigh[float64](highOf(-1), highOf(1)),
		1: NewVariableFromHigh[float64](highOf(0), highOf(2)),
	}
}

func TestHalfConfigsPreservesKeys(t *testing.T) {
	c := unitConfig()
	lo, hi := HalfConfigs(c)

	if len(lo) != len(c) || len(hi) != len(c) {
		t.Fatalf("HalfConfigs: got %d/%d keys, want %d", len(lo), len(hi), len(c))
	}
	for k, v := range c {
		if lo[k].Min().High().Cmp(v.Min().High()) != 0 {
			t.Fatalf("HalfConfigs: lo[%d].min changed", k)
		}
		if hi[k].Max().High().Cmp(v.Max().High()) != 0 {
			t.Fatalf("HalfConfigs: hi[%d].max changed", k)
		}
		if lo[k].Max().High().Cmp(hi[k].Min().High()) != 0 {
			t.Fatalf("HalfConfigs: lo[%d].max != hi[%d].min", k, k)
		}
	}
}

func TestUnionConfigurationsRightWins(t *testing.T) {
	left := Configuration[float64]{0: NewVariableFromHigh[float64](highOf(0), highOf(1))}
	right := Configuration[float64]{0: NewVariableFromHigh[float64](highOf(5), highOf(6))}

	union := UnionConfigurations(left, right)
	if union[0].Min().High().Cmp(highOf(5)) != 0 {
		t.Fatalf("UnionConfigurations: got left-wins, want right to win on key collision")
	}
}

func TestUnionConfigurationsKeySetIsCombined(t *testing.T) {
	left := Configuration[float64]{0: NewVariableFromHigh[float64](highOf(0), highOf(1))}
	right := Configuration[float64]{1: NewVariableFromHigh[float64](highOf(2), highOf(3))}

	union := UnionConfigurations(left, right)
	if len(union) != 2 {
		t.Fatalf("UnionConfigurations: got %d keys, want 2", len(union))
	}
}

func TestPartConfPartitionsDisjointly(t *testing.T) {
	c := unitConfig()
	state := NewBGRTState(c)

	left, right := state.PartConf()
	if len(left)+len(right) != len(c) {
		t.Fatalf("PartConf: got %d+%d=%d entries, want %d", len(left), len(right), len(left)+len(right), len(c))
	}
	for k := range left {
		if _, ok := right[k]; ok {
			t.Fatalf("PartConf: key %d present in both halves", k)
		}
	}
}

func TestNextGenPopulationSize(t *testing.T) {
	c := unitConfig()
	state := NewBGRTState(c)

	for _, nPart := range []uint64{0, 1, 3} {
		gen := state.NextGen(nPart)
		want := 2 + 2*int(nPart)
		if len(gen) != want {
			t.Fatalf("NextGen(%d): got %d configurations, want %d", nPart, len(gen), want)
		}
	}
}

func TestNextGenOnEmptyConfigurationYieldsEmptyPopulation(t *testing.T) {
	state := NewBGRTState(Configuration[float64]{})
	gen := state.NextGen(2)
	if len(gen) != 6 {
		t.Fatalf("NextGen on empty config: got %d configurations, want 6", len(gen))
	}
	for i, cfg := range gen {
		if len(cfg) != 0 {
			t.Fatalf("NextGen on empty config: member %d has %d keys, want 0", i, len(cfg))
		}
	}
}

func TestSetValsAndWorking(t *testing.T) {
	state := NewBGRTState(unitConfig())
	next := Configuration[float64]{5: NewVariableFromHigh[float64](highOf(0), highOf(1))}
	state.SetVals(next)
	if len(state.Working()) != 1 {
		t.Fatalf("SetVals/Working: got %d keys, want 1", len(state.Working()))
	}
}
