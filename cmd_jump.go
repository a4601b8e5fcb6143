package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// runCommand executes a ":"-command. Plain numbers jump to that TR
// (1-based); "tr <duration>" overrides the detected TR length and
// "tr auto" restores detection.
func (m *model) runCommand(buf string) tea.Cmd {
	buf = strings.TrimSpace(buf)
	if buf == "" {
		return nil
	}

	if rest, ok := strings.CutPrefix(buf, "tr"); ok {
		return m.setTRDuration(strings.TrimSpace(rest))
	}

	n, err := strconv.Atoi(buf)
	if err != nil {
		return m.setNotice(fmt.Sprintf("Unknown command %q", buf))
	}
	return m.jumpToTR(n)
}

func (m *model) jumpToTR(n int) tea.Cmd {
	count := m.data.tl.TRCount()
	if n <= 0 || n > count {
		return m.setNotice(fmt.Sprintf("TR %d out of bounds (1-%d)", n, count))
	}
	m.trState.SelectTR(n - 1)
	m.refreshView()
	return nil
}

func (m *model) setTRDuration(arg string) tea.Cmd {
	if arg == "auto" {
		m.data.tl.SetManualTR(0)
		if m.ctrl.Viewport().Mode == ModeTRRelative {
			m.trState.SelectTR(m.ctrl.Viewport().TRIndex)
		}
		m.refreshView()
		return m.setNotice(fmt.Sprintf("TR detection restored: %d TRs", m.data.tl.TRCount()))
	}
	dur, err := strconv.ParseFloat(arg, 64)
	if err != nil || dur <= 0 {
		return m.setNotice(fmt.Sprintf("Invalid TR duration %q", arg))
	}
	m.data.tl.SetManualTR(dur)
	// The old TR index may not exist under the new boundaries; re-select so
	// the viewport bounds track the recomputed grid.
	if m.ctrl.Viewport().Mode == ModeTRRelative {
		m.trState.SelectTR(m.ctrl.Viewport().TRIndex)
	}
	m.refreshView()
	return m.setNotice(fmt.Sprintf("TR set to %s %s: %d TRs", formatTime(dur), m.data.tl.TimeUnits, m.data.tl.TRCount()))
}
