package field

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/iw2rmb/richfield/emotes"
)

// completionState tracks the emote picker popup. The trigger is a trailing
// `:query` token; resolution happens against the current Options entry list.
type completionState struct {
	visible bool

	// start is the byte offset of the triggering ':' in the value.
	start int
	query string

	visibleIndices []int
	selected       int

	// A dismissed trigger stays closed until the token at dismissedStart
	// changes or disappears.
	dismissed      bool
	dismissedStart int
}

// triggerToken finds a trailing `:query` token. The colon must begin a word
// and the query must not already be a closed `:shortcode:` pair.
func triggerToken(value string) (start int, query string, ok bool) {
	if value == "" {
		return 0, "", false
	}
	start, token := trailingWord(value)
	if token == "" || token[0] != ':' {
		return 0, "", false
	}
	if strings.Contains(token[1:], ":") {
		return 0, "", false
	}
	return start, token[1:], true
}

func filterEntries(entries []emotes.Entry, query string) []int {
	if query == "" {
		out := make([]int, len(entries))
		for i := range entries {
			out[i] = i
		}
		return out
	}
	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.Shortcode
	}
	matches := fuzzy.Find(strings.ToLower(query), targets)
	out := make([]int, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Index)
	}
	return out
}

// refreshCompletion re-resolves the popup against the current value. An empty
// entry list means the trigger never opens anything, which is how a failed
// emote fetch degrades.
func (m Model) refreshCompletion() Model {
	st := m.completion
	st.visible = false
	st.visibleIndices = nil

	start, query, ok := triggerToken(m.value)
	if !ok || len(m.opts.Emojis) == 0 || !m.ta.Focused() {
		st.dismissed = false
		st.start = 0
		st.query = ""
		st.selected = 0
		m.completion = st
		return m
	}

	if st.dismissed {
		if st.dismissedStart == start {
			m.completion = st
			return m
		}
		st.dismissed = false
	}

	if start != st.start || query != st.query {
		st.selected = 0
	}
	st.start = start
	st.query = query

	st.visibleIndices = filterEntries(m.opts.Emojis, query)
	if len(st.visibleIndices) > 0 {
		if st.selected >= len(st.visibleIndices) {
			st.selected = 0
		}
		st.visible = true
	}

	m.completion = st
	return m
}

func (m Model) moveCompletion(delta int) Model {
	st := m.completion
	n := len(st.visibleIndices)
	if !st.visible || n == 0 {
		return m
	}
	st.selected = (st.selected + delta + n) % n
	m.completion = st
	return m
}

func (m Model) dismissCompletion() Model {
	st := m.completion
	st.visible = false
	st.dismissed = true
	st.dismissedStart = st.start
	m.completion = st
	return m
}

// acceptCompletion replaces the trigger token with the selected shortcode and
// a trailing space. Length enforcement applies to the result like any other
// mutation.
func (m Model) acceptCompletion() Model {
	st := m.completion
	if !st.visible || len(st.visibleIndices) == 0 {
		return m
	}
	entry := m.opts.Emojis[st.visibleIndices[st.selected]]

	v := m.value[:st.start] + ":" + entry.Shortcode + ": "
	m.ta.SetValue(v)
	m.completion = completionState{}
	return m.sync()
}
