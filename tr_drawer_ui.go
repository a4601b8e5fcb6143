package main

import (
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	trDrawerFocusStart = iota
	trDrawerFocusEnd
	trDrawerFocusScrubber
)

const (
	trDrawerContentHeight = 5
	trDrawerHeight        = trDrawerContentHeight + 2
	trInputWidth          = 14
)

// trDrawer is the range-control widget: start/end inputs for the
// viewing window plus a scrubber over the current bounds. Edits here
// drive the viewport; viewport changes made elsewhere update these
// fields silently, without re-entering the drawer's apply path.
type trDrawer struct {
	focus      int
	startInput textinput.Model
	endInput   textinput.Model
	errorMsg   string
	draftStart float64
	draftEnd   float64
}

func initTRDrawerInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "0.0"
	ti.CharLimit = trInputWidth
	ti.Width = trInputWidth
	ti.Prompt = ""
	return ti
}

func newTRDrawer() trDrawer {
	return trDrawer{
		startInput: initTRDrawerInput(),
		endInput:   initTRDrawerInput(),
	}
}
