package main

import (
	"math"
	"time"

	"github.com/andareed/siftly-seqview/logging"
)

// ViewMode selects which bounds constrain the visible window.
type ViewMode int

const (
	ModeWholeSequence ViewMode = iota
	ModeTRRelative
)

// Viewport is the currently visible time window. Owned exclusively by the
// controller; everything else reads it as a snapshot for one redraw.
type Viewport struct {
	Start   float64
	End     float64
	Mode    ViewMode
	TRIndex int
}

const (
	// Wheel events arrive at up to ~70/s; events closer together than this
	// are merged into one gesture and applied once.
	wheelDebounce = 14 * time.Millisecond

	// One wheel notch changes the visible span by 10%, compounded.
	zoomStepBase = 0.9

	minSpanFraction = 0.001
	minSpanFloor    = 1e-9
)

// pointerGesture accumulates a burst of wheel input. It exists only between
// the first event of a burst and the flush.
type pointerGesture struct {
	anchor    float64 // time value under the cursor
	factor    float64 // accumulated zoom factor, multiplicative
	lastEvent time.Time
}

// ViewportController owns the Viewport and applies all pan/zoom requests with
// bounds clamping. Requests outside bounds are clamped, never rejected.
type ViewportController struct {
	vp     Viewport
	seqEnd float64

	// Active TR bounds, valid while vp.Mode == ModeTRRelative.
	trStart, trEnd float64

	gesture *pointerGesture
	now     func() time.Time

	measuring bool
	markers   []float64
}

func NewViewportController(seqEnd float64) *ViewportController {
	if seqEnd <= 0 {
		seqEnd = 1
	}
	return &ViewportController{
		vp:     Viewport{Start: 0, End: seqEnd, Mode: ModeWholeSequence},
		seqEnd: seqEnd,
		now:    time.Now,
	}
}

func (c *ViewportController) Viewport() Viewport { return c.vp }

// bounds is the single place mode-dependent clamping limits come from.
func (c *ViewportController) bounds() (float64, float64) {
	if c.vp.Mode == ModeTRRelative {
		return c.trStart, c.trEnd
	}
	return 0, c.seqEnd
}

// SetWindow replaces the window, clamped to the active bounds.
func (c *ViewportController) SetWindow(start, end float64) {
	if end <= start {
		return
	}
	c.vp.Start, c.vp.End = c.clampWindow(start, end)
}

// Pan translates the window. Overshooting a bound shifts the window to touch
// the bound exactly rather than ignoring the request.
func (c *ViewportController) Pan(delta float64) {
	c.vp.Start, c.vp.End = c.clampWindow(c.vp.Start+delta, c.vp.End+delta)
}

// PanZoom scales the visible span by factor, keeping the time value at
// anchorTime fixed at the same relative screen position.
func (c *ViewportController) PanZoom(anchorTime, factor float64) {
	if factor <= 0 {
		return
	}
	span := c.vp.End - c.vp.Start
	newSpan := span * factor

	minSpan := span * minSpanFraction
	if minSpan < minSpanFloor {
		minSpan = minSpanFloor
	}
	if newSpan < minSpan {
		newSpan = minSpan
	}

	s := 0.5
	if span > 0 {
		s = (anchorTime - c.vp.Start) / span
	}
	newStart := anchorTime - s*newSpan
	c.vp.Start, c.vp.End = c.clampWindow(newStart, newStart+newSpan)
}

// WheelEvent feeds one raw wheel notch into the active gesture, starting one
// if needed. steps > 0 zooms in. Returns true when this event opened a new
// gesture and the caller should arm a flush timer.
func (c *ViewportController) WheelEvent(anchorTime, steps float64) bool {
	factor := math.Pow(zoomStepBase, steps)
	now := c.now()
	if c.gesture == nil {
		c.gesture = &pointerGesture{anchor: anchorTime, factor: factor, lastEvent: now}
		return true
	}
	c.gesture.anchor = anchorTime
	c.gesture.factor *= factor
	c.gesture.lastEvent = now
	return false
}

// FlushDue applies the pending gesture once the debounce interval has passed
// with no new event. Returns whether a window change was applied. Partial
// windows from inside a burst are never exposed: the accumulated factor is
// applied in one PanZoom.
func (c *ViewportController) FlushDue() bool {
	if c.gesture == nil {
		return false
	}
	if c.now().Sub(c.gesture.lastEvent) < wheelDebounce {
		return false
	}
	return c.FlushNow()
}

// FlushNow applies the pending gesture unconditionally (e.g. on a frame
// boundary).
func (c *ViewportController) FlushNow() bool {
	g := c.gesture
	c.gesture = nil
	if g == nil {
		return false
	}
	logging.Debugf("gesture flush anchor=%g factor=%g", g.anchor, g.factor)
	c.PanZoom(g.anchor, g.factor)
	return true
}

// CancelGesture discards pending wheel input without applying it. Used when
// the sequence is reloaded or the mode switches mid-burst.
func (c *ViewportController) CancelGesture() { c.gesture = nil }

// HasPendingGesture reports whether a wheel burst is waiting to be flushed.
func (c *ViewportController) HasPendingGesture() bool { return c.gesture != nil }

// enterTR switches to TR-relative bounds and clamps the given window into
// them. Called by the TR state machine, which computes the window.
func (c *ViewportController) enterTR(trIndex int, trStart, trEnd, winStart, winEnd float64) {
	c.CancelGesture()
	c.vp.Mode = ModeTRRelative
	c.vp.TRIndex = trIndex
	c.trStart, c.trEnd = trStart, trEnd
	c.vp.Start, c.vp.End = c.clampWindow(winStart, winEnd)
}

// enterWholeSequence returns to whole-sequence bounds keeping the current
// absolute window.
func (c *ViewportController) enterWholeSequence() {
	c.CancelGesture()
	c.vp.Mode = ModeWholeSequence
	c.vp.TRIndex = 0
	c.vp.Start, c.vp.End = c.clampWindow(c.vp.Start, c.vp.End)
}

func (c *ViewportController) clampWindow(start, end float64) (float64, float64) {
	lo, hi := c.bounds()
	span := end - start
	if span <= 0 || span > hi-lo {
		return lo, hi
	}
	if start < lo {
		return lo, lo + span
	}
	if end > hi {
		return hi - span, hi
	}
	return start, end
}

// --- Measurement mode ---
// Orthogonal to pan/zoom: while active, clicks record marker times instead of
// driving the view. Entering or leaving never moves the window.

func (c *ViewportController) StartMeasurement() {
	c.measuring = true
	c.markers = c.markers[:0]
}

func (c *ViewportController) EndMeasurement() {
	c.measuring = false
	c.markers = c.markers[:0]
}

func (c *ViewportController) Measuring() bool { return c.measuring }

// AddMarker records a marker time; the third click restarts the pair.
func (c *ViewportController) AddMarker(t float64) {
	if !c.measuring {
		return
	}
	if len(c.markers) >= 2 {
		c.markers = c.markers[:0]
	}
	c.markers = append(c.markers, t)
}

func (c *ViewportController) Markers() []float64 { return c.markers }

// MeasureDelta reports the absolute difference of the two markers.
func (c *ViewportController) MeasureDelta() (float64, bool) {
	if len(c.markers) != 2 {
		return 0, false
	}
	d := c.markers[1] - c.markers[0]
	if d < 0 {
		d = -d
	}
	return d, true
}

