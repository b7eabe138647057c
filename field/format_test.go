package field

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormat_BoldTogglesTrailingWord(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "hello")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got, want := m.Value(), "**hello**"; got != want {
		t.Fatalf("bold: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got, want := m.Value(), "hello"; got != want {
		t.Fatalf("bold toggle off: got %q, want %q", got, want)
	}
}

func TestFormat_StrikeAndItalic(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "a b")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s"), Alt: true})
	if got, want := m.Value(), "a ~~b~~"; got != want {
		t.Fatalf("strike: got %q, want %q", got, want)
	}

	m = typeString(m, " c")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if got, want := m.Value(), "a ~~b~~ *c*"; got != want {
		t.Fatalf("italic: got %q, want %q", got, want)
	}
}

func TestFormat_BoldAfterMultiByteSpace(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "a\u00a0hi")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got, want := m.Value(), "a\u00a0**hi**"; got != want {
		t.Fatalf("bold after NBSP: got %q, want %q", got, want)
	}
}

func TestFormat_LinkWrapsTrailingWord(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "see docs")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	if got, want := m.Value(), "see [docs]()"; got != want {
		t.Fatalf("link: got %q, want %q", got, want)
	}
}

func TestFormat_ListMarkersPrefixCurrentLine(t *testing.T) {
	m := New(Config{})
	m = typeString(m, "item")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u"), Alt: true})
	if got, want := m.Value(), "- item"; got != want {
		t.Fatalf("bullet: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u"), Alt: true})
	if got, want := m.Value(), "item"; got != want {
		t.Fatalf("bullet toggle off: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o"), Alt: true})
	if got, want := m.Value(), "1. item"; got != want {
		t.Fatalf("ordered: got %q, want %q", got, want)
	}
}

func TestFormat_CleanStripsMarks(t *testing.T) {
	m := New(Config{Value: "**bold** ~~gone~~ [docs](https://example.com)"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c"), Alt: true})
	if got, want := m.Value(), "bold gone docs"; got != want {
		t.Fatalf("clean: got %q, want %q", got, want)
	}
}

func TestFormat_NoOpOnEmptyValue(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := m.Value(); got != "" {
		t.Fatalf("bold on empty: got %q, want empty", got)
	}
}

func TestFormat_FiresChangeEvent(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{OnChange: func(ev ChangeEvent) { events = append(events, ev) }})
	m = typeString(m, "x")
	n := len(events)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if len(events) != n+1 {
		t.Fatalf("events after format: got %d, want %d", len(events), n+1)
	}
	if got, want := events[len(events)-1].Value, "**x**"; got != want {
		t.Fatalf("format event value: got %q, want %q", got, want)
	}
}
