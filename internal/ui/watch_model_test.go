package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gubarz/streamfence/internal/fence"
	"github.com/gubarz/streamfence/internal/render"
	"github.com/gubarz/streamfence/internal/stream"
)

func newTestWatchModel(t *testing.T, text string, chunk int) watchModel {
	t.Helper()
	tracker, err := stream.NewTracker(fence.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := newWatchModel(stream.Chunk(text, chunk), tracker, time.Millisecond, render.DefaultStyles())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return next.(watchModel)
}

func sendTokens(m watchModel, n int) watchModel {
	for i := 0; i < n; i++ {
		next, _ := m.Update(tokenMsg{})
		m = next.(watchModel)
	}
	return m
}

func TestWatchModelStreams(t *testing.T) {
	text := "intro\n```go\nx := 1\n```\nbye"
	m := newTestWatchModel(t, text, 6)

	// "intro\n" then "```go\n"
	m = sendTokens(m, 2)
	if !strings.HasPrefix(m.mode(), "code view: go") {
		t.Errorf("expected code view, got %q", m.mode())
	}

	m = sendTokens(m, len(m.tokens))
	if !m.done() {
		t.Fatalf("expected all tokens pushed, next=%d of %d", m.next, len(m.tokens))
	}
	if m.finished != 1 {
		t.Errorf("expected 1 finished block, got %d", m.finished)
	}
	if m.last.Buffer != text {
		t.Errorf("expected full buffer, got %q", m.last.Buffer)
	}
	if !strings.Contains(m.View(), "done") {
		t.Errorf("expected done status in view:\n%s", m.View())
	}
}

func TestWatchModelReopenedBlock(t *testing.T) {
	tracker, err := stream.NewTracker(fence.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := newWatchModel([]string{"```\na\n```", "x", "\n```"}, tracker, time.Millisecond, render.DefaultStyles())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(watchModel)

	tests := []struct {
		name string
		want int
	}{
		{name: "block closed", want: 1},
		{name: "closing fence glued to text", want: 0},
		{name: "block closed again", want: 1},
	}
	for _, tt := range tests {
		m = sendTokens(m, 1)
		if m.finished != tt.want {
			t.Errorf("%s: expected %d finished blocks, got %d", tt.name, tt.want, m.finished)
		}
	}
}

func TestWatchModelPause(t *testing.T) {
	m := newTestWatchModel(t, "abcdef", 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(watchModel)
	if !m.paused || cmd != nil {
		t.Fatalf("expected paused model without command")
	}

	m = sendTokens(m, 3)
	if m.next != 0 {
		t.Errorf("expected no tokens while paused, got %d", m.next)
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(watchModel)
	if m.paused || cmd == nil {
		t.Errorf("expected resumed model with a tick command")
	}
}

func TestWatchModelSkipAndQuit(t *testing.T) {
	m := newTestWatchModel(t, "```\na\n```", 1)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(watchModel)
	if !m.done() || m.last.State != fence.Closed {
		t.Errorf("expected skip to finish in closed state, got done=%v state=%v", m.done(), m.last.State)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(watchModel)
	if !m.quitting || cmd == nil {
		t.Errorf("expected quit")
	}
	if m.View() != "" {
		t.Errorf("expected empty view after quit")
	}
}
