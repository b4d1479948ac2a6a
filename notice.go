package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultNoticeDuration = 2 * time.Second

type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	default:
		return "ℹ"
	}
}

// notice is the transient message on the footer's status line.
type notice struct {
	text string
	kind noticeKind
}

func (n notice) String() string {
	if n.text == "" {
		return ""
	}
	return n.kind.icon() + " " + n.text
}

type expireNoticeMsg struct{ seq int }

// showNotice replaces the current notice and schedules its expiry. Each call
// takes a new sequence number, so only the latest timer can clear it.
func (m *model) showNotice(kind noticeKind, format string, args ...any) tea.Cmd {
	m.ui.notice = notice{text: fmt.Sprintf(format, args...), kind: kind}
	m.ui.noticeSeq++
	seq := m.ui.noticeSeq
	return tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return expireNoticeMsg{seq: seq}
	})
}

func (m *model) expireNotice(seq int) {
	if seq == m.ui.noticeSeq {
		m.ui.notice = notice{}
	}
}
