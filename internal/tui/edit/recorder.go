package edit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkpad/internal/logs"
	"inkpad/internal/media"
	"inkpad/internal/note"
	"inkpad/internal/tui/messages"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// RecorderModel drives an audio capture session. Stopping the recorder
// hands the captured file to the editor flow via MediaReadyMsg.
type RecorderModel struct {
	recorder *media.Recorder
	elapsed  time.Duration
	err      error
	width    int
}

func NewRecorderModel(recorder *media.Recorder) RecorderModel {
	return RecorderModel{recorder: recorder}
}

func (m *RecorderModel) SetSize(width, _ int) {
	m.width = width
}

func (m RecorderModel) Init() tea.Cmd {
	return nil
}

func (m RecorderModel) Update(msg tea.Msg) (RecorderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.recorder.Recording() {
			return m, nil
		}
		m.elapsed += time.Second
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			if m.recorder.Recording() {
				path, err := m.recorder.Stop()
				if err != nil {
					m.err = err
					return m, nil
				}
				return m, func() tea.Msg {
					return messages.MediaReadyMsg{Type: note.TypeAudio, Path: path}
				}
			}
			if err := m.recorder.Start(); err != nil {
				logs.Logger.Printf("Error starting recorder: %v", err)
				m.err = err
				return m, nil
			}
			m.elapsed = 0
			m.err = nil
			return m, tick()

		case "esc":
			if m.recorder.Recording() {
				if path, err := m.recorder.Stop(); err == nil {
					media.Discard(path)
				}
			}
			return m, messages.BackToHome()
		}
	}
	return m, nil
}

func (m RecorderModel) View() string {
	var status string
	switch {
	case m.err != nil:
		status = noticeStyle.Render(fmt.Sprintf("Recording failed: %v", m.err))
	case m.recorder.Recording():
		status = recordingStyle.Render(fmt.Sprintf("● recording  %02d:%02d",
			int(m.elapsed.Minutes()), int(m.elapsed.Seconds())%60))
	default:
		status = mutedStyle.Render("ready")
	}

	help := helpStyle.Render("space: start/stop • esc: cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleBarStyle.Render("Audio note"),
		"",
		status,
		"",
		help,
	)
}
