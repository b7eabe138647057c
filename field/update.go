package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/richfield/emotes"
	"github.com/iw2rmb/richfield/internal/grapheme"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case emotes.LoadedMsg:
		return m.SetEmotes(emotes.Entries(msg.Emotes)), nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			// Clicking the label row focuses the editor.
			return m, m.ta.Focus()
		}

	case tea.KeyMsg:
		if m.completion.visible {
			switch {
			case key.Matches(msg, m.keyMap.Accept):
				return m.acceptCompletion(), nil
			case key.Matches(msg, m.keyMap.Dismiss):
				return m.dismissCompletion(), nil
			case key.Matches(msg, m.keyMap.Next):
				return m.moveCompletion(1), nil
			case key.Matches(msg, m.keyMap.Prev):
				return m.moveCompletion(-1), nil
			}
		}

		if m.ta.Focused() {
			switch {
			case key.Matches(msg, m.keyMap.Bold):
				return m.applyFormat(formatBold), nil
			case key.Matches(msg, m.keyMap.Italic):
				return m.applyFormat(formatItalic), nil
			case key.Matches(msg, m.keyMap.Strike):
				return m.applyFormat(formatStrike), nil
			case key.Matches(msg, m.keyMap.Link):
				return m.applyFormat(formatLink), nil
			case key.Matches(msg, m.keyMap.ListOrdered):
				return m.applyFormat(formatListOrdered), nil
			case key.Matches(msg, m.keyMap.ListBullet):
				return m.applyFormat(formatListBullet), nil
			case key.Matches(msg, m.keyMap.Clean):
				return m.applyFormat(formatClean), nil
			}
		}
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m.sync(), cmd
}

// sync enforces the length cap, mirrors the form value, fires the change
// event, and refreshes the completion trigger. It runs after every mutation
// path so the mirrored value can never drift from the editor.
func (m Model) sync() Model {
	v := m.ta.Value()
	if m.cfg.MaxLength > 0 && grapheme.Count(v) > m.cfg.MaxLength {
		v = grapheme.Truncate(v, m.cfg.MaxLength)
		m.ta.SetValue(v)
	}

	changed := v != m.value
	m.value = v
	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{Value: v, Length: grapheme.Count(v)})
	}

	return m.refreshCompletion()
}
