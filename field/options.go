package field

import "github.com/iw2rmb/richfield/emotes"

// Options is the editor configuration derived from the loaded emote list:
// the fixed toolbar layout, the static format allow-list, and the emoji
// entries for the picker. It is recomputed whenever the emote list changes
// and never mutated in place.
type Options struct {
	Toolbar [][]string
	Formats []string
	Emojis  []emotes.Entry
}

// BuildOptions derives Options from picker entries. Pure; the toolbar and
// format allow-list are fixed regardless of input.
func BuildOptions(entries []emotes.Entry) Options {
	return Options{
		Toolbar: [][]string{
			{"bold", "italic", "strike"},
			{"list-ordered", "list-bullet"},
			{"link", "emoji"},
			{"clean"},
		},
		Formats: []string{"bold", "italic", "strike", "list", "link", "emoji"},
		Emojis:  append([]emotes.Entry(nil), entries...),
	}
}

// Allows reports whether the format is in the allow-list.
func (o Options) Allows(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
