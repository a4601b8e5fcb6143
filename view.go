package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Horizontal chrome left of the plot area: app margin, pane border and the
// channel label gutter. Mouse columns inside a plot map back to time through
// this offset.
const (
	appMarginX      = 2
	channelLabelGap = 8
	plotLeftOffset  = appMarginX + channelLabelGap + 1
	plotRightChrome = 1 + appMarginX
)

func (m *model) plotCols() int {
	cols := m.width - plotLeftOffset - plotRightChrome
	if cols < 10 {
		cols = 10
	}
	return cols
}

func (m *model) plotRowsPerChannel() int {
	used := 2 + 1 + 2 // app margins, header, footer
	if m.ui.drawerOpen {
		used += trDrawerHeight
	}
	rows := (m.height - used) / int(numChannels)
	if rows < 2 {
		rows = 2
	}
	return rows
}

// timeAtColumn maps a terminal column to the time value drawn there. False
// when the column is outside the plot area.
func (m *model) timeAtColumn(col int) (float64, bool) {
	cols := m.plotCols()
	rel := col - plotLeftOffset
	if rel < 0 || rel >= cols {
		return 0, false
	}
	vp := m.ctrl.Viewport()
	frac := float64(rel) / float64(cols-1)
	return vp.Start + frac*(vp.End-vp.Start), true
}

func (m *model) headerView() string {
	vp := m.ctrl.Viewport()
	title := fmt.Sprintf("%s  ·  %s  ·  window %s – %s %s",
		filepath.Base(m.data.path),
		m.trStatusLabel(),
		formatTime(vp.Start), formatTime(vp.End), m.data.tl.TimeUnits)
	return headerStyle.Render(truncatePlain(title, m.width-2*appMarginX))
}

func (m *model) channelsView() string {
	vp := m.ctrl.Viewport()
	cols := m.plotCols()
	rows := m.plotRowsPerChannel()
	markers := m.ctrl.Markers()

	panes := make([]string, 0, numChannels)
	for ch := Channel(0); ch < numChannels; ch++ {
		label := channelLabelStyle.Render(ch.Label())
		plot := paneStyle.Render(renderChannelPlot(m.data.tl, ch, vp, cols, rows, markers))
		panes = append(panes, lipgloss.JoinHorizontal(lipgloss.Top, label, plot))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes...)
}

// footerView renders the 2-line footer using local (function-scoped) styles.
func (m *model) footerView(width int) string {
	styles := defaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ci.cmd
		modeInput = m.activeCommandLine()
	}

	vp := m.ctrl.Viewport()
	modeLabel := "MODE: WHOLE"
	if vp.Mode == ModeTRRelative {
		modeLabel = "MODE: TR"
	}

	st := footerState{
		Mode:        footerMode,
		ModeInput:   modeInput,
		FileName:    filepath.Base(m.data.path),
		TRLabel:     m.trStatusLabel(),
		ModeLabel:   modeLabel,
		WindowLabel: fmt.Sprintf("%s – %s %s", formatTime(vp.Start), formatTime(vp.End), m.data.tl.TimeUnits),
		Legend:      "(" + m.keys.Legend() + ")",
	}
	if m.ui.mode == modeCommand {
		st.StatusMessage = m.commandHintsLine()
	}
	if readout := m.measureReadout(); readout != "" {
		st.StatusMessage = readout
	}
	if m.ui.notice != "" {
		st.StatusMessage = m.ui.notice
	}

	return renderFooter(width, st, styles)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if dialog := m.visibleDialog(); dialog != nil {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			dialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	contentW := m.width - 2*appMarginX
	parts := []string{m.headerView(), m.channelsView()}
	if m.ui.drawerOpen {
		parts = append(parts, m.trDrawerView(contentW))
	}
	parts = append(parts, m.footerView(contentW))
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
