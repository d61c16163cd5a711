package progress

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// A Bubble Tea model driven by updates pushed from the evolution loop over
// a channel, styled with lipgloss, supporting a quit keybinding that the
// evolution loop observes as a cancellation request. It shows only the
// most recent step/substep lines (up to 500) in a scrolling viewport; it
// has no separate front-size, density or ETA display.

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	subStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type tuiLineMsg struct {
	level int
	text  string
}

type tuiModel struct {
	lines    []string
	viewport viewport.Model
	quitted  *atomic.Bool
}

func newTUIModel(quitted *atomic.Bool) tuiModel {
	vp := viewport.New(80, 20)
	return tuiModel{viewport: vp, quitted: quitted}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitted.Store(true)
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tuiLineMsg:
		line := msg.text
		if msg.level > 0 {
			line = strings.Repeat("  ", msg.level) + subStyle.Render(line)
		} else {
			line = lineStyle.Render(line)
		}
		m.lines = append(m.lines, line)
		if len(m.lines) > 500 {
			m.lines = m.lines[len(m.lines)-500:]
		}
		m.viewport.SetContent(strings.Join(m.lines, "\n"))
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("paretoevo"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(subStyle.Render("press q to stop"))
	return b.String()
}

// TUIListener is an interactive Listener backed by Bubble Tea. Its own
// BreakRequested reflects whether the user pressed the quit key; pair it
// with a FileCancelSource via Composite for sentinel-file cancellation too.
type TUIListener struct {
	program *tea.Program
	quitted *atomic.Bool
}

// NewTUIListener starts the Bubble Tea program in the background and
// returns a listener ready to receive Step/Substep calls.
func NewTUIListener() *TUIListener {
	quitted := &atomic.Bool{}
	program := tea.NewProgram(newTUIModel(quitted))
	go func() {
		_, _ = program.Run()
	}()
	return &TUIListener{program: program, quitted: quitted}
}

// Step implements Listener.
func (l *TUIListener) Step(text string) {
	l.program.Send(tuiLineMsg{level: 0, text: text})
}

// Substep implements Listener.
func (l *TUIListener) Substep(level int, text string) {
	l.program.Send(tuiLineMsg{level: level, text: text})
}

// BreakRequested implements Listener.
func (l *TUIListener) BreakRequested() bool {
	return l.quitted.Load()
}

// Close stops the Bubble Tea program.
func (l *TUIListener) Close() {
	l.program.Quit()
}
