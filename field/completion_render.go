package field

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const popupMaxVisibleRows = 8

// completionPopupView renders the popup rows, scrolled so the selected entry
// stays visible, and reports the anchor offset under the trigger colon.
func (m Model) completionPopupView() (view string, x, y int, ok bool) {
	st := m.completion
	if !st.visible || len(st.visibleIndices) == 0 {
		return "", 0, 0, false
	}

	offset := 0
	if st.selected >= popupMaxVisibleRows {
		offset = st.selected - popupMaxVisibleRows + 1
	}
	rows := st.visibleIndices[offset:]
	if len(rows) > popupMaxVisibleRows {
		rows = rows[:popupMaxVisibleRows]
	}

	width := 0
	labels := make([]string, 0, len(rows))
	metas := make([]string, 0, len(rows))
	for _, idx := range rows {
		entry := m.opts.Emojis[idx]
		label := ":" + entry.Shortcode + ":"
		labels = append(labels, label)
		metas = append(metas, entry.Name)
		if w := runewidth.StringWidth(label) + 1 + runewidth.StringWidth(entry.Name); w > width {
			width = w
		}
	}

	rendered := make([]string, 0, len(rows))
	for i := range rows {
		line := labels[i] + " " + m.style.CompletionMeta.Render(metas[i])
		pad := width - runewidth.StringWidth(labels[i]) - 1 - runewidth.StringWidth(metas[i])
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		base := m.style.CompletionItem
		if offset+i == st.selected {
			base = m.style.CompletionSelected
		}
		rendered = append(rendered, base.Render(line))
	}

	x, y = m.completionAnchor()
	return strings.Join(rendered, "\n"), x, y, true
}

// completionAnchor approximates the trigger's screen position: column of the
// ':' on its logical line, row under the cursor line. Soft-wrapped lines are
// anchored at their logical position.
func (m Model) completionAnchor() (x, y int) {
	before := m.value[:m.completion.start]
	line := before
	row := 0
	if idx := strings.LastIndexByte(before, '\n'); idx >= 0 {
		line = before[idx+1:]
		row = strings.Count(before, "\n")
	}
	if limit := m.ta.Height() - 1; row > limit {
		row = limit
	}

	promptWidth := runewidth.StringWidth(m.ta.Prompt)
	// One row for the label line, one to sit under the trigger's line.
	return promptWidth + runewidth.StringWidth(line), 1 + row + 1
}
