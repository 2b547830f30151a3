package pure

import (
	"strings"
)

// Indent prefixes every non-empty line of text with the given number of spaces.
// Lines end at "\n", "\r\n" or "\r". Zero-length lines, including the one
// after a trailing line break, are kept as is.
func Indent(text string, spaces int) string {
	if spaces < 0 {
		panic("spaces should not be negative")
	}
	return IndentWith(text, strings.Repeat(" ", spaces))
}

// IndentWith is Indent with an arbitrary prefix.
func IndentWith(text, prefix string) string {
	if prefix == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for len(text) > 0 {
		end := strings.IndexAny(text, "\r\n")
		line, rest := text, ""
		if end >= 0 {
			next := end + 1
			if text[end] == '\r' && next < len(text) && text[next] == '\n' {
				next++
			}
			line, rest = text[:next], text[next:]
		}
		if end != 0 {
			b.WriteString(prefix)
		}
		b.WriteString(line)
		text = rest
	}
	return b.String()
}
