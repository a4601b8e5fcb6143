package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeDuration = 4 * time.Second

type clearNoticeMsg struct {
	seq int
}

// setNotice shows a transient status message in the footer and arms a
// timer to clear it. The sequence number guards against an older timer
// clearing a newer notice.
func (m *model) setNotice(text string) tea.Cmd {
	m.ui.notice = text
	m.ui.noticeSeq++
	seq := m.ui.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.seq == m.ui.noticeSeq {
		m.ui.notice = ""
	}
}
