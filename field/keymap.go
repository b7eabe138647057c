package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field's own bindings. Editing keys belong to the
// wrapped textarea and are not duplicated here.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Bold        key.Binding
	Italic      key.Binding
	Strike      key.Binding
	Link        key.Binding
	ListOrdered key.Binding
	ListBullet  key.Binding
	Clean       key.Binding

	Accept  key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bold:   key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic: key.NewBinding(key.WithKeys("ctrl+t", "alt+i"), key.WithHelp("ctrl+t", "italic")),
		Strike: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strike")),
		Link:   key.NewBinding(key.WithKeys("ctrl+k", "alt+k"), key.WithHelp("ctrl+k", "link")),

		// List markers apply to the current line.
		ListOrdered: key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "ordered list")),
		ListBullet:  key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "bullet list")),

		Clean: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "clear formatting")),

		Accept:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "insert emote")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss picker")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next emote")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev emote")),
	}
}
