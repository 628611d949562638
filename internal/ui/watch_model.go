package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/streamfence/internal/fence"
	"github.com/gubarz/streamfence/internal/render"
	"github.com/gubarz/streamfence/internal/segment"
	"github.com/gubarz/streamfence/internal/stream"
)

// ============================================================================
// Token Ticks
// ============================================================================

// tokenMsg asks the model to push the next token
type tokenMsg struct{}

// nextToken returns a command that delivers a tokenMsg after delay
func nextToken(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return tokenMsg{}
	})
}

// ============================================================================
// Watch Model
// ============================================================================

// watchModel replays a text token by token and shows how the buffer is
// split into text and code as it grows
type watchModel struct {
	width    int
	height   int
	viewport viewport.Model
	spinner  spinner.Model
	quitting bool
	paused   bool

	tracker  *stream.Tracker
	tokens   []string
	next     int
	delay    time.Duration
	last     stream.Update
	finished int // closed blocks in the current buffer

	renderer *render.Renderer
	styles   *render.StyleManager
}

// newWatchModel creates a model for the given tokens
func newWatchModel(tokens []string, tracker *stream.Tracker, delay time.Duration, styles *render.StyleManager) watchModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.Pending

	return watchModel{
		viewport: viewport.New(80, 20),
		spinner:  sp,
		tracker:  tracker,
		tokens:   tokens,
		delay:    delay,
		renderer: render.New(styles, 80),
		styles:   styles,
	}
}

// done reports whether every token has been pushed
func (m watchModel) done() bool {
	return m.next >= len(m.tokens)
}

// Init implements tea.Model
func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, nextToken(m.delay))
}

// Update implements tea.Model
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1) // status + help lines
		m.renderer.SetWidth(msg.Width)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tokenMsg:
		if m.paused || m.done() {
			return m, nil
		}
		m.pushToken()
		if m.done() {
			return m, nil
		}
		return m, nextToken(m.delay)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input. Keys it does not handle scroll the
// viewport.
func (m *watchModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quitting = true
		return tea.Quit, true
	case " ":
		m.paused = !m.paused
		if !m.paused && !m.done() {
			return nextToken(m.delay), true
		}
		return nil, true
	case "end":
		// Skip ahead: push everything that is left.
		for !m.done() {
			m.pushToken()
		}
		return nil, true
	}
	return nil, false
}

// pushToken feeds the next token to the tracker
func (m *watchModel) pushToken() {
	m.last = m.tracker.Push(m.tokens[m.next])
	m.next++
	m.finished = 0
	for _, seg := range m.last.Segments {
		if seg.Kind == segment.Code {
			m.finished++
		}
	}
	m.refresh()
}

// refresh re-renders the buffer into the viewport
func (m *watchModel) refresh() {
	m.viewport.SetContent(m.renderer.Render(m.last.Segments))
	m.viewport.GotoBottom()
}

// mode describes which view the buffer currently calls for
func (m watchModel) mode() string {
	if seg, ok := m.last.Pending(); ok {
		return "code view: " + render.Label(seg)
	}
	if m.last.State == fence.Closed {
		return "text view (block closed)"
	}
	return "text view"
}

// View implements tea.Model
func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch {
	case m.done():
		status = "done"
	case m.paused:
		status = "paused"
	default:
		status = m.spinner.View() + " streaming"
	}

	left := fmt.Sprintf("%s  %d/%d tokens  %d blocks", status, m.next, len(m.tokens), m.finished)
	right := m.mode()
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	var b strings.Builder
	b.WriteString(left)
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(m.styles.Label.Render(right))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("space pause • end skip • ↑/↓ scroll • q quit"))
	return b.String()
}

// RunWatch launches the Bubble Tea replay of text
func RunWatch(text string, opts fence.Options, chunkSize int, delay time.Duration) error {
	tracker, err := stream.NewTracker(opts)
	if err != nil {
		return err
	}

	styles := render.DefaultStyles()
	styles.LoadFromConfig()

	m := newWatchModel(stream.Chunk(text, chunkSize), tracker, delay, styles)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
