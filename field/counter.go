package field

import "github.com/iw2rmb/richfield/internal/grapheme"

// CounterText returns the "Characters cur / max" row with locale-formatted
// numbers, or "" when no maximum is configured. The displayed count is
// clamped to the maximum; enforcement already guarantees the content itself
// never exceeds it.
func (m Model) CounterText() string {
	if m.cfg.MaxLength <= 0 {
		return ""
	}
	n := grapheme.Count(m.value)
	if n > m.cfg.MaxLength {
		n = m.cfg.MaxLength
	}
	return m.printer.Sprintf("Characters %d / %d", n, m.cfg.MaxLength)
}
