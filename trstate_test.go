package main

import "testing"

// Three TRs of 100, 100 and 50 over a 250-long sequence.
func newTestTRState() (*TRWindowState, *ViewportController) {
	tl := &Timeline{TRBounds: []float64{0, 100, 200}, Duration: 250}
	ctrl := NewViewportController(tl.Duration)
	return NewTRWindowState(tl, ctrl), ctrl
}

func TestSelectTRPreservesRelativeWindowPosition(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()

	s.SelectTR(0)
	ctrl.SetWindow(20, 40) // 20%..40% of TR 0

	s.SelectTR(2)
	vp := ctrl.Viewport()
	if vp.Mode != ModeTRRelative || vp.TRIndex != 2 {
		t.Fatalf("expected TR 2, got mode=%d idx=%d", vp.Mode, vp.TRIndex)
	}
	if !approxEqual(vp.Start, 210) || !approxEqual(vp.End, 220) {
		t.Fatalf("expected 20%%..40%% of TR 2 = [210,220], got [%g,%g]", vp.Start, vp.End)
	}

	s.SelectTR(1)
	vp = ctrl.Viewport()
	if !approxEqual(vp.Start, 120) || !approxEqual(vp.End, 140) {
		t.Fatalf("expected 20%%..40%% of TR 1 = [120,140], got [%g,%g]", vp.Start, vp.End)
	}
}

func TestSelectTRFromWholeSequenceUsesSequenceFraction(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()
	ctrl.SetWindow(125, 200) // 50%..80% of [0,250]

	s.SelectTR(0)
	vp := ctrl.Viewport()
	if !approxEqual(vp.Start, 50) || !approxEqual(vp.End, 80) {
		t.Fatalf("expected 50%%..80%% of TR 0 = [50,80], got [%g,%g]", vp.Start, vp.End)
	}
}

func TestSelectTRClampsIndex(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()

	s.SelectTR(-5)
	if ctrl.Viewport().TRIndex != 0 {
		t.Fatalf("expected clamp to TR 0, got %d", ctrl.Viewport().TRIndex)
	}
	s.SelectTR(99)
	if ctrl.Viewport().TRIndex != 2 {
		t.Fatalf("expected clamp to TR 2, got %d", ctrl.Viewport().TRIndex)
	}
}

func TestSelectTRWithNoBoundariesSpansSequence(t *testing.T) {
	t.Parallel()

	tl := &Timeline{Duration: 250}
	ctrl := NewViewportController(tl.Duration)
	s := NewTRWindowState(tl, ctrl)

	s.SelectTR(0)
	vp := ctrl.Viewport()
	if vp.Mode != ModeTRRelative {
		t.Fatalf("selection with no boundaries is still a selection, got mode %d", vp.Mode)
	}
	if vp.Start != 0 || vp.End != 250 {
		t.Fatalf("expected the single TR to span the sequence, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestSelectWholeSequenceKeepsWindow(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()
	s.SelectTR(1)
	ctrl.SetWindow(120, 140)

	s.SelectWholeSequence()
	vp := ctrl.Viewport()
	if vp.Mode != ModeWholeSequence {
		t.Fatalf("expected whole-sequence mode")
	}
	if vp.Start != 120 || vp.End != 140 {
		t.Fatalf("window must survive the switch, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestStepTRFromWholeSequenceEntersTRAtWindowStart(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()
	ctrl.SetWindow(150, 160)

	s.StepTR(1)
	vp := ctrl.Viewport()
	if vp.Mode != ModeTRRelative || vp.TRIndex != 1 {
		t.Fatalf("expected entry into TR containing window start (TR 1), got idx %d", vp.TRIndex)
	}
	if vp.Start < 100 || vp.End > 200 {
		t.Fatalf("window must land inside TR 1, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestStepTRAdvancesAndClampsAtEnds(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()
	s.SelectTR(1)

	s.StepTR(1)
	if ctrl.Viewport().TRIndex != 2 {
		t.Fatalf("expected TR 2, got %d", ctrl.Viewport().TRIndex)
	}
	s.StepTR(1)
	if ctrl.Viewport().TRIndex != 2 {
		t.Fatalf("expected clamp at last TR, got %d", ctrl.Viewport().TRIndex)
	}

	s.StepTR(-1)
	s.StepTR(-1)
	s.StepTR(-1)
	if ctrl.Viewport().TRIndex != 0 {
		t.Fatalf("expected clamp at first TR, got %d", ctrl.Viewport().TRIndex)
	}
}

func TestStepTRFullWindowTracksShorterTR(t *testing.T) {
	t.Parallel()

	s, ctrl := newTestTRState()
	s.SelectTR(1) // full TR 1 window [100,200]

	s.StepTR(1) // TR 2 is half as long
	vp := ctrl.Viewport()
	if !approxEqual(vp.Start, 200) || !approxEqual(vp.End, 250) {
		t.Fatalf("expected full window of TR 2 = [200,250], got [%g,%g]", vp.Start, vp.End)
	}
}
