package output

import (
	"github.com/dl/minigrep/internal/matcher"
)

// TextFormatter formats matched lines as text, optionally emphasizing every
// occurrence of the query.
type TextFormatter struct {
	m        matcher.Matcher
	styles   Styles
	useColor bool
}

// NewTextFormatter creates a TextFormatter. m locates the occurrences to
// emphasize and must have been built for the same query and case rule as
// the search that produced the lines.
func NewTextFormatter(m matcher.Matcher, styles Styles, useColor bool) *TextFormatter {
	return &TextFormatter{
		m:        m,
		styles:   styles,
		useColor: useColor,
	}
}

func (f *TextFormatter) Format(buf []byte, lines []string) []byte {
	for _, line := range lines {
		buf = f.appendLine(buf, line)
		buf = append(buf, '\n')
	}
	return buf
}

// Render returns line with every occurrence of the query emphasized.
// The text itself is unchanged: stripping the escape sequences gives back line.
// With color disabled, or when the query is empty, line is returned as is.
func (f *TextFormatter) Render(line string) string {
	return string(f.appendLine(nil, line))
}

func (f *TextFormatter) appendLine(buf []byte, line string) []byte {
	if !f.useColor {
		return append(buf, line...)
	}
	positions := f.m.Positions(line)
	if len(positions) == 0 {
		return append(buf, line...)
	}
	return f.highlightMatches(buf, line, positions)
}

// highlightMatches interleaves the unmatched chunks of line with the styled
// occurrence text. The occurrence text is taken from line, so case-insensitive
// matches keep their original casing.
func (f *TextFormatter) highlightMatches(buf []byte, line string, positions [][2]int) []byte {
	prev := 0
	for _, pos := range positions {
		start, end := pos[0], pos[1]
		if start > len(line) {
			break
		}
		if end > len(line) {
			end = len(line)
		}
		if start > prev {
			buf = append(buf, line[prev:start]...)
		}
		buf = append(buf, f.styles.Match.Render(line[start:end])...)
		prev = end
	}
	if prev < len(line) {
		buf = append(buf, line[prev:]...)
	}
	return buf
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
