package field

import "github.com/charmbracelet/lipgloss"

// Style controls the field's rendering around the wrapped textarea.
type Style struct {
	Label   lipgloss.Style
	Counter lipgloss.Style
	Toolbar lipgloss.Style

	CompletionItem     lipgloss.Style
	CompletionSelected lipgloss.Style
	CompletionMeta     lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Label:   lipgloss.NewStyle().Bold(true),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Toolbar: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		CompletionItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CompletionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("254")).Background(lipgloss.Color("237")).Bold(true),
		CompletionMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}
