package field

import (
	"golang.org/x/text/language"

	"github.com/iw2rmb/richfield/emotes"
)

// Config configures the field Model.
type Config struct {
	// Label is rendered above the editor; clicking it focuses the editor.
	Label string

	// Name associates the field's value with a form key, mirrored through
	// Model.Name and Model.Value after every update.
	Name string

	// Value is the initial content. It is truncated to MaxLength on New.
	Value string

	Placeholder string

	// MaxLength caps content length in grapheme clusters. 0 means unlimited.
	MaxLength int

	// Initial editor dimensions; SetSize overrides both.
	Width, Height int

	// Locale drives counter number formatting. Defaults to English.
	Locale language.Tag

	// ShowToolbar renders the format hint row under the editor.
	ShowToolbar bool

	// Emotes seeds the completion picker; SetEmotes replaces it later.
	Emotes []emotes.Entry

	// OnChange fires after every effective value change, post-enforcement.
	OnChange func(ChangeEvent)

	Style  Style
	KeyMap KeyMap
}
