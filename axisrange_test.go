package main

import (
	"math"
	"testing"
)

func TestComputeAxisRangePadsByFivePercent(t *testing.T) {
	t.Parallel()

	s := &ChannelSeries{
		T: []float64{0, 1, 2, 3},
		V: []float64{-10, 0, 5, 10},
	}
	r := computeAxisRange(s)

	if r.Min != -11 || r.Max != 11 {
		t.Fatalf("expected [-11,11], got [%g,%g]", r.Min, r.Max)
	}
}

func TestComputeAxisRangeFlatSeriesGetsUnitPad(t *testing.T) {
	t.Parallel()

	s := &ChannelSeries{
		T: []float64{0, 1, 2},
		V: []float64{4, 4, 4},
	}
	r := computeAxisRange(s)

	if r.Min != 3 || r.Max != 5 {
		t.Fatalf("expected flat series padded to [3,5], got [%g,%g]", r.Min, r.Max)
	}
}

func TestComputeAxisRangeIgnoresGapSentinels(t *testing.T) {
	t.Parallel()

	s := &ChannelSeries{
		T: []float64{0, 1, 2},
		V: []float64{1, math.NaN(), 3},
	}
	r := computeAxisRange(s)

	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		t.Fatalf("sentinel leaked into range: [%g,%g]", r.Min, r.Max)
	}
	if r.Min != 0.9 || r.Max != 3.1 {
		t.Fatalf("expected [0.9,3.1], got [%g,%g]", r.Min, r.Max)
	}
}

func TestComputeAxisRangeEmptySeriesDefaults(t *testing.T) {
	t.Parallel()

	r := computeAxisRange(&ChannelSeries{})
	if r.Min != -1 || r.Max != 1 {
		t.Fatalf("expected default [-1,1], got [%g,%g]", r.Min, r.Max)
	}
}

func TestLockedRangesSurvivePanAndZoom(t *testing.T) {
	t.Parallel()

	sf := &SequenceFile{
		TimeScale: 1,
		Blocks:    []EventBlock{rampBlock(0, 100, 1001)},
	}
	tl := mustBuild(t, sf)
	locked := tl.Ranges

	// Window operations and reductions only read the series; the locked
	// ranges must be byte-identical afterwards.
	ctrl := NewViewportController(tl.Duration)
	ctrl.SetWindow(10, 20)
	ctrl.Pan(5)
	ctrl.PanZoom(17, 0.5)
	Reduce(&tl.Series[ChanGx], 12, 18, 50)

	if tl.Ranges != locked {
		t.Fatalf("locked ranges changed by interaction: %v vs %v", tl.Ranges, locked)
	}
}
