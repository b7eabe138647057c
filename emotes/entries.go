package emotes

import "strings"

// Entry is the picker-facing projection of an emote.
type Entry struct {
	Name      string
	Shortcode string
	ImageURL  string
}

// Entries derives picker entries from an emote list. The image URL points at
// the WEBP variant; emotes without one keep an empty URL rather than erroring.
// The result is a pure function of the input list.
func Entries(list []Emote) []Entry {
	if len(list) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(list))
	for _, e := range list {
		entry := Entry{
			Name:      e.Name,
			Shortcode: strings.ToLower(e.Name),
		}
		if f, ok := e.Data.Host.File(FormatWEBP); ok {
			entry.ImageURL = e.Data.Host.URL + "/" + f.Name
		}
		out = append(out, entry)
	}
	return out
}
