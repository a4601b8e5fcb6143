package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-seqview/dialogs"
	"github.com/andareed/siftly-seqview/logging"
)

// viewChangedMsg announces that the viewing window moved, for whatever
// reason. Handlers may refresh widgets from the viewport but must never
// answer with a trControlChangedMsg; the sync between view and controls
// runs one way.
type viewChangedMsg struct{}

// trControlChangedMsg carries an explicit window edit from the range
// controls (drawer inputs, scrubber). It is the only message that is
// allowed to set the window on the controls' behalf.
type trControlChangedMsg struct {
	start, end float64
}

// gestureFlushMsg fires after the wheel debounce interval to apply a
// coalesced zoom burst.
type gestureFlushMsg struct{}

type model struct {
	data dataState
	ui   uiState

	ctrl    *ViewportController
	trState *TRWindowState
	keys    Keymap
	ci      CommandInput

	helpDialog   dialogs.Dialog
	exportDialog dialogs.Dialog

	width, height int
	ready         bool
}

func initialModel(data dataState) *model {
	ctrl := NewViewportController(data.tl.Duration)
	m := &model{
		data:    data,
		ctrl:    ctrl,
		trState: NewTRWindowState(data.tl, ctrl),
		keys:    defaultKeymap(),
	}
	m.ui.drawer = newTRDrawer()
	m.helpDialog = dialogs.NewHelpDialog(m.keys.bindings())
	m.exportDialog = dialogs.NewExportDialog("window.csv", "")
	return m
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-seqview: loaded %s (%d TRs, %s %s)",
		m.data.path, m.data.tl.TRCount(), formatTime(m.data.tl.Duration), m.data.tl.TimeUnits)
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if dialog := m.visibleDialog(); dialog != nil {
			_, cmd := dialog.Update(msg)
			return m, cmd
		}
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case gestureFlushMsg:
		return m.flushGesture()

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case viewChangedMsg:
		// One-way sync: refresh the controls from the viewport, emit
		// nothing back.
		m.syncDrawerFromView()
		return m, nil

	case trControlChangedMsg:
		m.ctrl.SetWindow(msg.start, msg.end)
		return m, m.viewChanged()

	case dialogs.ExportConfirmedMsg:
		m.exportDialog.Hide()
		if err := ExportWindow(m, msg.Path); err != nil {
			logging.Warnf("export: %v", err)
			return m, m.setNotice("Export failed: " + err.Error())
		}
		return m, m.setNotice("Exported window to " + msg.Path)

	case dialogs.ExportCanceledMsg:
		m.exportDialog.Hide()
		return m, nil
	}

	if dialog := m.visibleDialog(); dialog != nil {
		_, cmd := dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) visibleDialog() dialogs.Dialog {
	if m.helpDialog.IsVisible() {
		return m.helpDialog
	}
	if m.exportDialog.IsVisible() {
		return m.exportDialog
	}
	return nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeTRDrawer:
		return m.handleTRDrawerKey(msg)
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpDialog.Show()
		return m, m.helpDialog.Focus()

	case key.Matches(msg, m.keys.Export):
		m.exportDialog.Show()
		return m, m.exportDialog.Focus()

	case key.Matches(msg, m.keys.Command):
		m.ui.mode = modeCommand
		m.ci = CommandInput{cmd: CommandFromPrefix(':')}
		return m, nil

	case key.Matches(msg, m.keys.TRDrawer):
		m.openTRDrawer()
		return m, nil

	case key.Matches(msg, m.keys.PanLeft):
		return m, m.panBySpanFraction(-0.1)

	case key.Matches(msg, m.keys.PanRight):
		return m, m.panBySpanFraction(0.1)

	case key.Matches(msg, m.keys.ZoomIn):
		return m, m.zoomAtCenter(1)

	case key.Matches(msg, m.keys.ZoomOut):
		return m, m.zoomAtCenter(-1)

	case key.Matches(msg, m.keys.WholeSeq):
		m.trState.SelectWholeSequence()
		return m, m.viewChanged()

	case key.Matches(msg, m.keys.NextTR):
		m.trState.StepTR(1)
		return m, m.viewChanged()

	case key.Matches(msg, m.keys.PrevTR):
		m.trState.StepTR(-1)
		return m, m.viewChanged()

	case key.Matches(msg, m.keys.Measure):
		return m, m.toggleMeasurement()

	case key.Matches(msg, m.keys.CopyDelta):
		return m, m.copyMeasurement()
	}
	return m, nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.ui.mode = modeView
		m.ci = CommandInput{}
		return m, nil
	case tea.KeyEnter:
		buf := m.ci.buf
		m.ui.mode = modeView
		m.ci = CommandInput{}
		return m, m.runCommand(buf)
	case tea.KeyBackspace:
		if len(m.ci.buf) > 0 {
			m.ci.buf = m.ci.buf[:len(m.ci.buf)-1]
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.ci.buf += msg.String()
		return m, nil
	}
	return m, nil
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		anchor, ok := m.timeAtColumn(msg.X)
		if !ok {
			return m, nil
		}
		steps := 1.0
		if msg.Button == tea.MouseButtonWheelDown {
			steps = -1.0
		}
		if m.ctrl.WheelEvent(anchor, steps) {
			return m, armFlushTimer()
		}
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			m.placeMarker(msg.X)
		}
		return m, nil
	}
	return m, nil
}

func armFlushTimer() tea.Cmd {
	return tea.Tick(wheelDebounce, func(time.Time) tea.Msg {
		return gestureFlushMsg{}
	})
}

// flushGesture applies a coalesced wheel burst once its debounce window
// has passed. If more wheel events arrived since the timer was armed,
// the gesture is still hot and the timer re-arms instead.
func (m *model) flushGesture() (tea.Model, tea.Cmd) {
	if m.ctrl.FlushDue() {
		return m, m.viewChanged()
	}
	if m.ctrl.HasPendingGesture() {
		return m, armFlushTimer()
	}
	return m, nil
}

// viewChanged records the window move and announces it. Every code path
// that alters the viewport funnels through here.
func (m *model) viewChanged() tea.Cmd {
	m.refreshView()
	return func() tea.Msg { return viewChangedMsg{} }
}

func (m *model) refreshView() {
	m.syncDrawerFromView()
}

func (m *model) panBySpanFraction(frac float64) tea.Cmd {
	vp := m.ctrl.Viewport()
	m.ctrl.Pan((vp.End - vp.Start) * frac)
	return m.viewChanged()
}

// zoomAtCenter is the keyboard stand-in for a wheel tick, anchored at
// the window midpoint. It goes through the same coalescing path so a
// held-down key batches exactly like a wheel burst.
func (m *model) zoomAtCenter(steps float64) tea.Cmd {
	vp := m.ctrl.Viewport()
	anchor := (vp.Start + vp.End) / 2
	if m.ctrl.WheelEvent(anchor, steps) {
		return armFlushTimer()
	}
	return nil
}
