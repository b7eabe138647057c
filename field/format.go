package field

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	formatBold        = "bold"
	formatItalic      = "italic"
	formatStrike      = "strike"
	formatLink        = "link"
	formatList        = "list"
	formatListOrdered = "list-ordered"
	formatListBullet  = "list-bullet"
	formatClean       = "clean"
)

var linkRE = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

// applyFormat applies one toolbar operation to the value. Inline marks wrap
// the trailing word; list marks prefix the current line. Everything except
// clean is gated by the Options allow-list.
func (m Model) applyFormat(format string) Model {
	gate := format
	if format == formatListOrdered || format == formatListBullet {
		gate = formatList
	}
	if format != formatClean && !m.opts.Allows(gate) {
		return m
	}

	v := m.value
	switch format {
	case formatBold:
		v = toggleWrap(v, "**")
	case formatItalic:
		v = toggleWrap(v, "*")
	case formatStrike:
		v = toggleWrap(v, "~~")
	case formatLink:
		v = wrapLink(v)
	case formatListOrdered:
		v = prefixLine(v, "1. ")
	case formatListBullet:
		v = prefixLine(v, "- ")
	case formatClean:
		v = stripFormatting(v)
	}

	if v == m.value {
		return m
	}
	m.ta.SetValue(v)
	return m.sync()
}

// trailingWord returns the last whitespace-delimited token and its byte
// offset. The offset skips the whole separator rune, which may be wider than
// one byte (NBSP, ideographic space).
func trailingWord(value string) (start int, word string) {
	idx := strings.LastIndexFunc(value, unicode.IsSpace)
	if idx < 0 {
		return 0, value
	}
	_, size := utf8.DecodeRuneInString(value[idx:])
	return idx + size, value[idx+size:]
}

func toggleWrap(value, mark string) string {
	start, word := trailingWord(value)
	if word == "" {
		return value
	}
	if strings.HasPrefix(word, mark) && strings.HasSuffix(word, mark) && len(word) > 2*len(mark) {
		return value[:start] + strings.TrimSuffix(strings.TrimPrefix(word, mark), mark)
	}
	return value[:start] + mark + word + mark
}

func wrapLink(value string) string {
	start, word := trailingWord(value)
	if word == "" || strings.HasPrefix(word, "[") {
		return value
	}
	return value[:start] + "[" + word + "]()"
}

func prefixLine(value, marker string) string {
	start := 0
	if idx := strings.LastIndexByte(value, '\n'); idx >= 0 {
		start = idx + 1
	}
	line := value[start:]
	if strings.HasPrefix(line, marker) {
		return value[:start] + strings.TrimPrefix(line, marker)
	}
	return value[:start] + marker + line
}

func stripFormatting(value string) string {
	v := linkRE.ReplaceAllString(value, "$1")
	return strings.NewReplacer("**", "", "~~", "", "*", "").Replace(v)
}
