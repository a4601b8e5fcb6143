package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-seqview/clipboard"
)

// toggleMeasurement switches measurement mode on or off. Entering drops any
// stale markers; leaving clears the readout. The viewing window is never
// touched.
func (m *model) toggleMeasurement() tea.Cmd {
	if m.ctrl.Measuring() {
		m.ctrl.EndMeasurement()
		return m.setNotice("Measurement off")
	}
	m.ctrl.StartMeasurement()
	return m.setNotice("Measurement on: click two points")
}

func (m *model) placeMarker(col int) {
	if !m.ctrl.Measuring() {
		return
	}
	t, ok := m.timeAtColumn(col)
	if !ok {
		return
	}
	m.ctrl.AddMarker(t)
}

// measureReadout builds the footer segment for measurement mode: both marker
// times once placed, and Δt when a pair exists.
func (m *model) measureReadout() string {
	if !m.ctrl.Measuring() {
		return ""
	}
	markers := m.ctrl.Markers()
	units := m.data.tl.TimeUnits
	switch len(markers) {
	case 0:
		return "[MEASURE] click first point"
	case 1:
		return fmt.Sprintf("[MEASURE] t1=%s %s", formatTime(markers[0]), units)
	default:
		delta, _ := m.ctrl.MeasureDelta()
		return fmt.Sprintf("[MEASURE] t1=%s t2=%s Δt=%s %s",
			formatTime(markers[0]), formatTime(markers[1]), formatTime(delta), units)
	}
}

func (m *model) copyMeasurement() tea.Cmd {
	delta, ok := m.ctrl.MeasureDelta()
	if !ok {
		return m.setNotice("Nothing to copy: place two markers first")
	}
	text := fmt.Sprintf("%s %s", formatTime(delta), m.data.tl.TimeUnits)
	if err := clipboard.Copy(text); err != nil {
		return m.setNotice("Copy failed: " + err.Error())
	}
	return m.setNotice("Copied Δt " + text)
}
