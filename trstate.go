package main

import "github.com/andareed/siftly-seqview/logging"

// TRWindowState drives switching between whole-sequence and TR-relative
// viewing. It is the only component besides the controller allowed to move
// the viewport, and it always goes through the controller to do so.
//
// Control-widget synchronization is one-way by construction: viewport changes
// reach the TR drawer as viewChangedMsg values (see model.go), and the drawer
// handler may only assign widget values, never call back in. The reverse path
// (a user edit in the drawer) is the single producer of trControlChangedMsg,
// which is what calls SelectTR/SetWindow here.
type TRWindowState struct {
	tl   *Timeline
	ctrl *ViewportController
}

func NewTRWindowState(tl *Timeline, ctrl *ViewportController) *TRWindowState {
	return &TRWindowState{tl: tl, ctrl: ctrl}
}

// SelectTR switches to TR-relative viewing of TR i, carrying the user's
// relative window position over from whatever span they were viewing before.
// A selection with no detected boundaries is not an error: TR 0 spans the
// whole sequence.
func (s *TRWindowState) SelectTR(i int) {
	n := s.tl.TRCount()
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}

	vp := s.ctrl.Viewport()

	// Fractional position of the current window inside the previous span.
	prevStart, prevEnd := 0.0, s.tl.Duration
	if vp.Mode == ModeTRRelative {
		prevStart, prevEnd = s.tl.TRSpan(vp.TRIndex)
	}
	prevLen := prevEnd - prevStart
	fracStart, fracEnd := 0.0, 1.0
	if prevLen > 0 {
		fracStart = (vp.Start - prevStart) / prevLen
		fracEnd = (vp.End - prevStart) / prevLen
	}

	trStart, trEnd := s.tl.TRSpan(i)
	trLen := trEnd - trStart
	winStart := trStart + fracStart*trLen
	winEnd := trStart + fracEnd*trLen

	logging.Debugf("selectTR %d span=[%g,%g] frac=[%g,%g]", i, trStart, trEnd, fracStart, fracEnd)
	s.ctrl.enterTR(i, trStart, trEnd, winStart, winEnd)
}

// SelectWholeSequence leaves TR-relative mode. The window the user was
// looking at stays where it is, just re-bounded to the full sequence.
func (s *TRWindowState) SelectWholeSequence() {
	s.ctrl.enterWholeSequence()
}

// StepTR moves the active TR by delta, entering TR mode from whole-sequence
// at the TR containing the window start.
func (s *TRWindowState) StepTR(delta int) {
	vp := s.ctrl.Viewport()
	if vp.Mode != ModeTRRelative {
		s.SelectTR(s.tl.TRIndexAt(vp.Start))
		return
	}
	s.SelectTR(vp.TRIndex + delta)
}
