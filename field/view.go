package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	header := m.style.Label.Render(m.cfg.Label)
	if counter := m.CounterText(); counter != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, m.style.Counter.Render("  "+counter))
	}

	parts := []string{header, m.ta.View()}
	if m.cfg.ShowToolbar {
		parts = append(parts, m.toolbarView())
	}
	base := strings.Join(parts, "\n")

	if popup, x, y, ok := m.completionPopupView(); ok {
		return overlay.Composite(popup, base, overlay.Left, overlay.Top, x, y)
	}
	return base
}

func (m Model) toolbarView() string {
	hints := make([]string, 0, 8)
	for _, group := range m.opts.Toolbar {
		for _, item := range group {
			if item == "emoji" {
				if len(m.opts.Emojis) > 0 {
					hints = append(hints, ": emotes")
				}
				continue
			}
			if b, ok := m.bindingFor(item); ok {
				h := b.Help()
				hints = append(hints, h.Key+" "+h.Desc)
			}
		}
	}
	return m.style.Toolbar.Render(strings.Join(hints, " · "))
}

func (m Model) bindingFor(item string) (key.Binding, bool) {
	switch item {
	case "bold":
		return m.keyMap.Bold, true
	case "italic":
		return m.keyMap.Italic, true
	case "strike":
		return m.keyMap.Strike, true
	case "link":
		return m.keyMap.Link, true
	case "list-ordered":
		return m.keyMap.ListOrdered, true
	case "list-bullet":
		return m.keyMap.ListBullet, true
	case "clean":
		return m.keyMap.Clean, true
	}
	return key.Binding{}, false
}
