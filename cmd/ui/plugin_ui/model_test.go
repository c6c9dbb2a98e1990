package plugin_ui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slsforge/slsforge/pkg/plugins"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m *Model, msgs ...tea.Msg) *Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(*Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestDecode(t *testing.T) {
	keys := defaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want plugins.Event
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, plugins.EventUp},
		{keyRune('k'), plugins.EventUp},
		{tea.KeyMsg{Type: tea.KeyDown}, plugins.EventDown},
		{keyRune('j'), plugins.EventDown},
		{tea.KeyMsg{Type: tea.KeySpace}, plugins.EventToggle},
		{tea.KeyMsg{Type: tea.KeyEnter}, plugins.EventConfirm},
		{keyRune('q'), plugins.EventCancel},
		{tea.KeyMsg{Type: tea.KeyEsc}, plugins.EventCancel},
		{keyRune('x'), plugins.EventNone},
		{tea.KeyMsg{Type: tea.KeyTab}, plugins.EventNone},
	}

	for _, tt := range tests {
		if got := keys.Decode(tt.msg); got != tt.want {
			t.Errorf("Decode(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestConfirmRequiresSelection(t *testing.T) {
	m := NewModel([]string{"a", "b", "c"})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done {
		t.Fatal("confirm with nothing selected left the active state")
	}
	if !m.warn {
		t.Error("no warning after empty confirm")
	}
	if !strings.Contains(m.View(), "at least one plugin") {
		t.Error("warning not rendered")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.done {
		t.Fatal("confirm with a selection did not finish")
	}
	if !slices.Equal(m.result.Selected, []string{"a"}) {
		t.Errorf("Selected = %v, want [a]", m.result.Selected)
	}
	if m.result.Cancelled {
		t.Error("confirmed result marked cancelled")
	}
}

func TestToggleSequence(t *testing.T) {
	m := NewModel([]string{"a", "b", "c"})

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	if !m.done {
		t.Fatal("menu still active after confirm")
	}
	if !slices.Equal(m.result.Selected, []string{"b", "c"}) {
		t.Errorf("Selected = %v, want [b c]", m.result.Selected)
	}
}

func TestCancelDiscardsToggles(t *testing.T) {
	m := NewModel([]string{"a", "b"})

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, keyRune('q'))
	if !m.done || !m.result.Cancelled {
		t.Fatalf("done = %v, cancelled = %v, want true/true", m.done, m.result.Cancelled)
	}
	if len(m.result.Selected) != 0 {
		t.Errorf("cancelled Selected = %v, want empty", m.result.Selected)
	}
	if m.result.Interrupted {
		t.Error("plain cancel marked as interrupt")
	}
}

func TestInterruptIsDistinctFromCancel(t *testing.T) {
	m := NewModel([]string{"a"})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.done || !m.result.Cancelled || !m.result.Interrupted {
		t.Fatalf("ctrl+c: done=%v cancelled=%v interrupted=%v",
			m.done, m.result.Cancelled, m.result.Interrupted)
	}
}

func TestViewRendersStateWithoutMutating(t *testing.T) {
	m := NewModel([]string{"alpha", "beta"})
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyDown})

	first := m.View()
	second := m.View()
	if first != second {
		t.Error("repeated renders differ")
	}

	if !strings.Contains(first, "1/2 selected") {
		t.Errorf("counter missing:\n%s", first)
	}
	if !strings.Contains(first, "[x] alpha") {
		t.Errorf("checked marker missing:\n%s", first)
	}
	if !strings.Contains(first, "[ ] beta") {
		t.Errorf("unchecked marker missing:\n%s", first)
	}

	if got := m.selection.Cursor(); got != 1 {
		t.Errorf("cursor after renders = %d, want 1", got)
	}
	if !slices.Equal(m.selection.Selected(), []string{"alpha"}) {
		t.Errorf("selection after renders = %v", m.selection.Selected())
	}
}

func TestIgnoredKeysDoNotChangeState(t *testing.T) {
	m := NewModel([]string{"a", "b"})
	m = send(t, m, keyRune('x'), tea.KeyMsg{Type: tea.KeyTab}, keyRune('1'))

	if m.done || m.selection.Cursor() != 0 || m.selection.Any() {
		t.Errorf("ignored keys changed state: done=%v cursor=%d any=%v",
			m.done, m.selection.Cursor(), m.selection.Any())
	}
}
