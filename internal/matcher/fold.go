package matcher

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FoldMatcher does case-insensitive literal matching.
//
// Line selection lowercases the line and compares it against the query,
// which is lowercased once up front. Positions walks the original line rune
// by rune instead, so the offsets it returns always index the line as it was
// read, even where lowercasing changes a rune's encoded length.
type FoldMatcher struct {
	queryLow  string
	queryRune []rune // lowered query runes for position scanning
}

// NewFoldMatcher creates a FoldMatcher for query.
func NewFoldMatcher(query string) *FoldMatcher {
	low := strings.ToLower(query)
	return &FoldMatcher{
		queryLow:  low,
		queryRune: []rune(low),
	}
}

func (m *FoldMatcher) FindAll(text string) []string {
	return findAll(text, m.MatchLine)
}

func (m *FoldMatcher) MatchLine(line string) bool {
	return strings.Contains(strings.ToLower(line), m.queryLow)
}

func (m *FoldMatcher) Positions(line string) [][2]int {
	if len(m.queryRune) == 0 {
		return nil
	}

	var positions [][2]int
	for start := 0; start < len(line); {
		if end, ok := m.matchAt(line, start); ok {
			positions = append(positions, [2]int{start, end})
			start = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
	}
	return positions
}

// matchAt reports whether the query occurs at byte offset start of line and
// returns the offset just past the occurrence.
func (m *FoldMatcher) matchAt(line string, start int) (int, bool) {
	pos := start
	for _, qr := range m.queryRune {
		if pos >= len(line) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(line[pos:])
		if unicode.ToLower(r) != qr {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

// Ensure FoldMatcher implements Matcher.
var _ Matcher = (*FoldMatcher)(nil)
