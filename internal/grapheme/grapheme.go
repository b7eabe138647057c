// Package grapheme measures text in grapheme clusters.
//
// The field's length budget counts user-perceived characters, so an emoji or
// a combining sequence is one unit and truncation never lands inside a
// cluster.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// Truncate returns text cut back to at most max clusters.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if Count(text) <= max {
		return text
	}
	return Slice(text, 0, max)
}
