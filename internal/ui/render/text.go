// Package render provides text layout helpers for terminal views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (tab excepted) and invalid UTF-8, and
// turns non-breaking spaces into plain spaces. CSV descriptions regularly
// carry stray bytes that would break terminal layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += max(size, 1)
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for _, r := range s {
		if r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			return true
		}
	}
	return false
}

// Truncate shortens s to fit within maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s cut or padded to exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Wrap breaks s into lines no wider than width cells, splitting on spaces.
// Words longer than width are truncated.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(Sanitize(s))
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			w = runewidth.Truncate(w, width, "…")
			ww = runewidth.StringWidth(w)
		}
		if lineW > 0 && lineW+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(w)
		lineW += ww
	}
	return append(lines, line.String())
}

// Indent prefixes every line with n spaces.
func Indent(lines []string, n int) []string {
	pad := strings.Repeat(" ", n)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = pad + l
	}
	return out
}

// Row joins left and right with enough spaces to span width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal rule of the given width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
