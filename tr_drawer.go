package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func formatTime(t float64) string {
	return strconv.FormatFloat(t, 'g', 6, 64)
}

func (m *model) openTRDrawer() {
	d := &m.ui.drawer
	m.ui.drawerOpen = true
	d.errorMsg = ""
	m.syncDrawerFromView()
	m.setTRDrawerFocus(trDrawerFocusStart)
	m.ui.mode = modeTRDrawer
}

func (m *model) closeTRDrawer() {
	m.ui.drawerOpen = false
	m.ui.drawer.errorMsg = ""
	m.ui.mode = modeView
}

// syncDrawerFromView refreshes the drawer's inputs to mirror the
// current viewport. This is the only way viewport changes reach the
// drawer; the drawer never learns about them through its apply path.
func (m *model) syncDrawerFromView() {
	d := &m.ui.drawer
	vp := m.ctrl.Viewport()
	d.draftStart = vp.Start
	d.draftEnd = vp.End
	d.startInput.SetValue(formatTime(vp.Start))
	d.endInput.SetValue(formatTime(vp.End))
}

func (m *model) handleTRDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := &m.ui.drawer

	switch {
	case msg.Type == tea.KeyEsc:
		m.closeTRDrawer()
		return m, nil
	case msg.Type == tea.KeyEnter:
		return m, m.applyTRDrawerInputs()
	case msg.String() == "r":
		return m, m.resetTRDrawerDraft()
	case msg.Type == tea.KeyTab:
		m.setTRDrawerFocus((d.focus + 1) % 3)
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.setTRDrawerFocus((d.focus + 2) % 3)
		return m, nil
	case d.focus == trDrawerFocusScrubber && msg.Type == tea.KeyLeft:
		return m, m.shiftDrawerWindow(-1)
	case d.focus == trDrawerFocusScrubber && msg.Type == tea.KeyRight:
		return m, m.shiftDrawerWindow(1)
	}

	var cmd tea.Cmd
	if d.focus == trDrawerFocusStart {
		d.startInput, cmd = d.startInput.Update(msg)
		return m, cmd
	}
	if d.focus == trDrawerFocusEnd {
		d.endInput, cmd = d.endInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setTRDrawerFocus(focus int) {
	d := &m.ui.drawer
	d.focus = focus
	switch focus {
	case trDrawerFocusStart:
		d.startInput.Focus()
		d.endInput.Blur()
	case trDrawerFocusEnd:
		d.startInput.Blur()
		d.endInput.Focus()
	default:
		d.startInput.Blur()
		d.endInput.Blur()
	}
}

// applyTRDrawerInputs parses the start/end inputs and hands the new
// window to the viewport as a control change. Out-of-bounds values are
// fine: the viewport clamps rather than rejects.
func (m *model) applyTRDrawerInputs() tea.Cmd {
	d := &m.ui.drawer
	d.errorMsg = ""

	start, err := strconv.ParseFloat(strings.TrimSpace(d.startInput.Value()), 64)
	if err != nil {
		d.errorMsg = "Invalid start time"
		return nil
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(d.endInput.Value()), 64)
	if err != nil {
		d.errorMsg = "Invalid end time"
		return nil
	}
	if end <= start {
		d.errorMsg = "End must be after start"
		return nil
	}

	return func() tea.Msg {
		return trControlChangedMsg{start: start, end: end}
	}
}

func (m *model) resetTRDrawerDraft() tea.Cmd {
	lo, hi := m.ctrl.bounds()
	return func() tea.Msg {
		return trControlChangedMsg{start: lo, end: hi}
	}
}

// shiftDrawerWindow pans the window by a tenth of its span per key
// press while the scrubber has focus.
func (m *model) shiftDrawerWindow(direction int) tea.Cmd {
	vp := m.ctrl.Viewport()
	step := (vp.End - vp.Start) * 0.1 * float64(direction)
	lo, hi := m.ctrl.bounds()
	start, end := vp.Start+step, vp.End+step
	span := vp.End - vp.Start
	if start < lo {
		start, end = lo, lo+span
	}
	if end > hi {
		start, end = hi-span, hi
	}
	return func() tea.Msg {
		return trControlChangedMsg{start: start, end: end}
	}
}

func (m *model) trDrawerView(width int) string {
	d := &m.ui.drawer
	innerWidth := max(0, width-2)
	lineStyle := lipgloss.NewStyle().Width(innerWidth)

	units := m.data.tl.TimeUnits
	startLine := fmt.Sprintf("Start (%s): %s", units, d.startInput.View())
	endLine := fmt.Sprintf("End   (%s): %s", units, d.endInput.View())
	scrubberLine := m.trScrubberLine(innerWidth)
	helpLine := "tab: next  enter: apply  r: full range  esc: close  ←/→: move"
	errorLine := ""
	if d.errorMsg != "" {
		errorLine = "Error: " + d.errorMsg
	}

	lines := []string{
		lineStyle.Render(startLine),
		lineStyle.Render(endLine),
		lineStyle.Render(scrubberLine),
		lineStyle.Render(helpLine),
		lineStyle.Render(errorLine),
	}

	content := strings.Join(lines, "\n")
	return trDrawerArea.Width(width).Render(content)
}

func (m *model) trScrubberLine(width int) string {
	lo, hi := m.ctrl.bounds()
	vp := m.ctrl.Viewport()

	minLabel := formatTime(lo)
	maxLabel := formatTime(hi)
	padding := 2
	barWidth := width - len(minLabel) - len(maxLabel) - padding*2
	if barWidth < 10 {
		return fmt.Sprintf("Window: %s - %s", formatTime(vp.Start), formatTime(vp.End))
	}
	span := hi - lo
	if span <= 0 {
		return "Scrubber: n/a"
	}

	bar := make([]rune, barWidth)
	for i := range bar {
		bar[i] = '-'
	}
	startPos := int(float64(barWidth-1) * (vp.Start - lo) / span)
	endPos := int(float64(barWidth-1) * (vp.End - lo) / span)
	if startPos < 0 {
		startPos = 0
	}
	if endPos >= barWidth {
		endPos = barWidth - 1
	}
	if endPos < startPos {
		startPos, endPos = endPos, startPos
	}
	for i := startPos; i <= endPos; i++ {
		bar[i] = '='
	}
	bar[startPos] = '['
	bar[endPos] = ']'

	return fmt.Sprintf("%s  %s  %s", minLabel, string(bar), maxLabel)
}

func (m *model) trStatusLabel() string {
	vp := m.ctrl.Viewport()
	if vp.Mode == ModeTRRelative {
		return fmt.Sprintf("TR %d/%d", vp.TRIndex+1, m.data.tl.TRCount())
	}
	return fmt.Sprintf("Whole sequence (%d TRs)", m.data.tl.TRCount())
}
