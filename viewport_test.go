package main

import (
	"math"
	"testing"
	"time"
)

// fakeClock stands in for time.Now so gesture debouncing is testable without
// sleeping.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(seqEnd float64) (*ViewportController, *fakeClock) {
	ctrl := NewViewportController(seqEnd)
	clk := newFakeClock()
	ctrl.now = clk.now
	return ctrl, clk
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestSetWindowClampsNeverRejects(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)

	ctrl.SetWindow(-20, 30)
	vp := ctrl.Viewport()
	if vp.Start != 0 || vp.End != 50 {
		t.Fatalf("expected overshoot shifted to [0,50], got [%g,%g]", vp.Start, vp.End)
	}

	ctrl.SetWindow(80, 140)
	vp = ctrl.Viewport()
	if vp.Start != 40 || vp.End != 100 {
		t.Fatalf("expected overshoot shifted to [40,100], got [%g,%g]", vp.Start, vp.End)
	}

	ctrl.SetWindow(-50, 300)
	vp = ctrl.Viewport()
	if vp.Start != 0 || vp.End != 100 {
		t.Fatalf("expected oversized window clamped to bounds, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestSetWindowIgnoresInvertedWindow(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.SetWindow(10, 40)
	ctrl.SetWindow(50, 50)
	ctrl.SetWindow(60, 20)

	vp := ctrl.Viewport()
	if vp.Start != 10 || vp.End != 40 {
		t.Fatalf("inverted window must not move the viewport, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestPanOvershootLandsExactlyOnBound(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.SetWindow(10, 30)

	ctrl.Pan(-50)
	vp := ctrl.Viewport()
	if vp.Start != 0 || vp.End != 20 {
		t.Fatalf("expected pan clamped to [0,20], got [%g,%g]", vp.Start, vp.End)
	}

	ctrl.Pan(500)
	vp = ctrl.Viewport()
	if vp.Start != 80 || vp.End != 100 {
		t.Fatalf("expected pan clamped to [80,100], got [%g,%g]", vp.Start, vp.End)
	}
}

func TestPanZoomKeepsAnchorFraction(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	anchor := 30.0 // at fraction 0.3 of [0,100]

	ctrl.PanZoom(anchor, 0.5)
	vp := ctrl.Viewport()
	span := vp.End - vp.Start
	if !approxEqual(span, 50) {
		t.Fatalf("expected span 50, got %g", span)
	}
	if !approxEqual((anchor-vp.Start)/span, 0.3) {
		t.Fatalf("anchor fraction moved: window [%g,%g]", vp.Start, vp.End)
	}
}

func TestPanZoomEnforcesMinimumSpan(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.PanZoom(50, 1e-12)

	vp := ctrl.Viewport()
	span := vp.End - vp.Start
	if !approxEqual(span, 100*minSpanFraction) {
		t.Fatalf("expected span floored at %g, got %g", 100*minSpanFraction, span)
	}
}

func TestPanZoomIgnoresNonPositiveFactor(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.SetWindow(10, 40)
	ctrl.PanZoom(20, 0)
	ctrl.PanZoom(20, -2)

	vp := ctrl.Viewport()
	if vp.Start != 10 || vp.End != 40 {
		t.Fatalf("non-positive factor must not move the viewport, got [%g,%g]", vp.Start, vp.End)
	}
}

func TestWheelBurstCoalescesIntoOneApplication(t *testing.T) {
	t.Parallel()

	ctrl, clk := newTestController(100)
	anchor := 30.0

	opened := ctrl.WheelEvent(anchor, 1)
	if !opened {
		t.Fatalf("first wheel event must open a gesture")
	}
	for i := 0; i < 4; i++ {
		clk.advance(5 * time.Millisecond)
		if ctrl.WheelEvent(anchor, 1) {
			t.Fatalf("events inside a burst must not open a new gesture")
		}
	}

	// Mid-burst: nothing applied, window untouched.
	vp := ctrl.Viewport()
	if vp.Start != 0 || vp.End != 100 {
		t.Fatalf("partial window exposed mid-burst: [%g,%g]", vp.Start, vp.End)
	}
	if ctrl.FlushDue() {
		t.Fatalf("flush must not fire inside the debounce interval")
	}

	clk.advance(wheelDebounce)
	if !ctrl.FlushDue() {
		t.Fatalf("flush expected after debounce interval")
	}

	vp = ctrl.Viewport()
	span := vp.End - vp.Start
	want := 100 * math.Pow(zoomStepBase, 5)
	if !approxEqual(span, want) {
		t.Fatalf("expected span %g after 5 coalesced steps, got %g", want, span)
	}
	if !approxEqual((anchor-vp.Start)/span, 0.3) {
		t.Fatalf("anchor fraction lost across coalesced burst: [%g,%g]", vp.Start, vp.End)
	}
	if ctrl.HasPendingGesture() {
		t.Fatalf("gesture must be consumed by the flush")
	}
}

func TestWheelOppositeStepsCancelOut(t *testing.T) {
	t.Parallel()

	ctrl, clk := newTestController(100)
	ctrl.WheelEvent(50, 1)
	clk.advance(time.Millisecond)
	ctrl.WheelEvent(50, -1)
	clk.advance(wheelDebounce)
	ctrl.FlushDue()

	vp := ctrl.Viewport()
	if !approxEqual(vp.End-vp.Start, 100) {
		t.Fatalf("in+out steps should cancel, got span %g", vp.End-vp.Start)
	}
}

func TestCancelGestureDiscardsPendingInput(t *testing.T) {
	t.Parallel()

	ctrl, clk := newTestController(100)
	ctrl.WheelEvent(30, 3)
	ctrl.CancelGesture()
	clk.advance(2 * wheelDebounce)

	if ctrl.FlushDue() {
		t.Fatalf("cancelled gesture must not flush")
	}
	vp := ctrl.Viewport()
	if vp.Start != 0 || vp.End != 100 {
		t.Fatalf("cancelled gesture moved the window: [%g,%g]", vp.Start, vp.End)
	}
}

func TestEnterTRSwitchesBoundsAndCancelsGesture(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(300)
	ctrl.WheelEvent(50, 1)
	ctrl.enterTR(1, 100, 200, 120, 140)

	if ctrl.HasPendingGesture() {
		t.Fatalf("mode switch must cancel a pending gesture")
	}
	vp := ctrl.Viewport()
	if vp.Mode != ModeTRRelative || vp.TRIndex != 1 {
		t.Fatalf("expected TR-relative mode on TR 1, got mode=%d idx=%d", vp.Mode, vp.TRIndex)
	}
	if vp.Start != 120 || vp.End != 140 {
		t.Fatalf("expected window [120,140], got [%g,%g]", vp.Start, vp.End)
	}

	// Pan in TR mode clamps against the TR bounds, not the sequence.
	ctrl.Pan(1000)
	vp = ctrl.Viewport()
	if vp.Start != 180 || vp.End != 200 {
		t.Fatalf("expected pan clamped to TR bounds [180,200], got [%g,%g]", vp.Start, vp.End)
	}
}

func TestEnterWholeSequenceKeepsAbsoluteWindow(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(300)
	ctrl.enterTR(1, 100, 200, 120, 140)
	ctrl.enterWholeSequence()

	vp := ctrl.Viewport()
	if vp.Mode != ModeWholeSequence {
		t.Fatalf("expected whole-sequence mode")
	}
	if vp.Start != 120 || vp.End != 140 {
		t.Fatalf("window must stay put across the mode switch, got [%g,%g]", vp.Start, vp.End)
	}
	ctrl.Pan(1000)
	vp = ctrl.Viewport()
	if vp.End != 300 {
		t.Fatalf("expected sequence bounds to apply again, got end %g", vp.End)
	}
}

func TestMeasurementNeverMovesWindow(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.SetWindow(20, 60)

	ctrl.StartMeasurement()
	ctrl.AddMarker(25)
	ctrl.AddMarker(45)
	delta, ok := ctrl.MeasureDelta()
	if !ok || delta != 20 {
		t.Fatalf("expected delta 20, got %g ok=%v", delta, ok)
	}
	ctrl.EndMeasurement()

	vp := ctrl.Viewport()
	if vp.Start != 20 || vp.End != 60 {
		t.Fatalf("measurement moved the window: [%g,%g]", vp.Start, vp.End)
	}
	if len(ctrl.Markers()) != 0 {
		t.Fatalf("markers must be cleared on exit")
	}
}

func TestMeasureDeltaIsOrderIndependent(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.StartMeasurement()
	ctrl.AddMarker(45)
	ctrl.AddMarker(25)

	delta, ok := ctrl.MeasureDelta()
	if !ok || delta != 20 {
		t.Fatalf("expected |45-25| = 20, got %g ok=%v", delta, ok)
	}
}

func TestThirdMarkerRestartsPair(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.StartMeasurement()
	ctrl.AddMarker(10)
	ctrl.AddMarker(20)
	ctrl.AddMarker(70)

	markers := ctrl.Markers()
	if len(markers) != 1 || markers[0] != 70 {
		t.Fatalf("third click must restart the pair, got %v", markers)
	}
	if _, ok := ctrl.MeasureDelta(); ok {
		t.Fatalf("no delta expected with a single marker")
	}
}

func TestAddMarkerIgnoredOutsideMeasurement(t *testing.T) {
	t.Parallel()

	ctrl, _ := newTestController(100)
	ctrl.AddMarker(10)
	if len(ctrl.Markers()) != 0 {
		t.Fatalf("markers must only record while measuring")
	}
}
