package field

import (
	"strings"
	"testing"
)

func TestView_ShowsLabelAndCounter(t *testing.T) {
	m := New(Config{Label: "Message", MaxLength: 100})
	view := m.View()

	if !strings.Contains(view, "Message") {
		t.Fatalf("view should contain the label, got:\n%s", view)
	}
	if !strings.Contains(view, "Characters 0 / 100") {
		t.Fatalf("view should contain the counter, got:\n%s", view)
	}
}

func TestView_PopupListsMatches(t *testing.T) {
	m := New(Config{Label: "Message", Height: 4, Width: 40, Emotes: pickerEntries()})
	m = typeString(m, ":pog")

	view := m.View()
	if !strings.Contains(view, ":pogchamp:") {
		t.Fatalf("view should contain the matching shortcode, got:\n%s", view)
	}
}

func TestView_ToolbarHints(t *testing.T) {
	m := New(Config{Label: "Message", ShowToolbar: true, Emotes: pickerEntries()})
	view := m.View()

	for _, hint := range []string{"ctrl+b bold", "ctrl+k link", ": emotes", "alt+c clear formatting"} {
		if !strings.Contains(view, hint) {
			t.Fatalf("toolbar should contain %q, got:\n%s", hint, view)
		}
	}
}

func TestOptions_FixedToolbarAndFormats(t *testing.T) {
	opts := BuildOptions(nil)

	if got, want := len(opts.Toolbar), 4; got != want {
		t.Fatalf("toolbar groups: got %d, want %d", got, want)
	}
	if got, want := strings.Join(opts.Formats, ","), "bold,italic,strike,list,link,emoji"; got != want {
		t.Fatalf("formats: got %q, want %q", got, want)
	}
	if opts.Allows("clean") {
		t.Fatal("clean is not a format, it removes them")
	}
	if !opts.Allows("bold") || !opts.Allows("list") {
		t.Fatal("allow-list should cover toolbar formats")
	}
}
