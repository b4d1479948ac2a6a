package main

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/andareed/siftly-slideshow/clipboard"
	"github.com/andareed/siftly-slideshow/config"
	"github.com/andareed/siftly-slideshow/deck"
	"github.com/andareed/siftly-slideshow/dialogs"
	"github.com/andareed/siftly-slideshow/logging"
	"github.com/andareed/siftly-slideshow/picture"
	"github.com/andareed/siftly-slideshow/tracing"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type mode int

const (
	modeView mode = iota
	modeJump
)

type copiedMsg struct {
	method clipboard.Method
	err    error
}

type model struct {
	ctx            context.Context
	data           dataState
	ui             uiState
	jumpInput      textinput.Model
	help           help.Model
	activeDialog   dialogs.Dialog
	tracer         *tracing.Recorder
	noticeDuration time.Duration
	terminalWidth  int
	terminalHeight int
	ready          bool
}

func newModel(ctx context.Context, d *deck.Deck, cfg *config.Config, profile termenv.Profile, tracer *tracing.Recorder) (*model, error) {
	cursor := deck.NewCursor(d)
	if err := cursor.Seek(cfg.Deck.Start); err != nil {
		return nil, fmt.Errorf("start slide: %w", err)
	}

	box := picture.Box{
		Width:  cfg.Display.ImageWidth,
		Height: cfg.Display.ImageHeight,
		Radius: cfg.Display.CornerRadius,
	}

	ji := textinput.New()
	ji.Prompt = ""
	ji.Placeholder = fmt.Sprintf("1..%d", d.Len())
	ji.CharLimit = 6
	ji.Width = max(4, box.Width-lipgloss.Width(buttonStyle.Render("Go"))-inputStyle.GetHorizontalFrameSize()-2)

	noticeDuration := cfg.Display.NoticeDuration
	if noticeDuration <= 0 {
		noticeDuration = defaultNoticeDuration
	}

	return &model{
		ctx: ctx,
		data: dataState{
			cursor: cursor,
			images: picture.NewRenderer(profile, d.Assets()),
			box:    box,
		},
		ui:             uiState{mode: modeView},
		jumpInput:      ji,
		help:           help.New(),
		tracer:         tracer,
		noticeDuration: noticeDuration,
	}, nil
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-slideshow: Initialised with %d slides", m.data.cursor.Len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	case expireNoticeMsg:
		m.expireNotice(msg.seq)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m, m.showNotice(noticeError, "%v", msg.err)
		}
		return m, m.showNotice(noticeSuccess, "Caption copied (%s)", msg.method)
	case tea.KeyMsg:
		if m.activeDialog != nil && m.activeDialog.IsVisible() {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			if !m.activeDialog.IsVisible() {
				m.activeDialog = nil
			}
			return m, cmd
		}
		return m.updateKey(msg)
	}

	if m.ui.mode == modeJump {
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeJump:
		return m.handleJumpKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Next):
		m.advance()
	case key.Matches(msg, Keys.Back):
		m.retreat()
	case key.Matches(msg, Keys.Jump):
		return m, m.enterJumpMode()
	case key.Matches(msg, Keys.Go):
		return m, m.jumpTo(m.jumpInput.Value())
	case key.Matches(msg, Keys.OpenHelp):
		logging.Debug("opening help dialog")
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	case key.Matches(msg, Keys.Copy):
		return m, copyCaption(m.data.cursor.Current().Caption)
	case isDigit(msg):
		// Typing a number starts a jump straight away.
		focus := m.enterJumpMode()
		var cmd tea.Cmd
		m.jumpInput, cmd = m.jumpInput.Update(msg)
		return m, tea.Batch(focus, cmd)
	}
	return m, nil
}

func isDigit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsDigit(msg.Runes[0])
}

func copyCaption(text string) tea.Cmd {
	return func() tea.Msg {
		method, err := clipboard.Copy(text)
		return copiedMsg{method: method, err: err}
	}
}
