package matcher

import "strings"

// FixedMatcher does literal, case-sensitive string matching.
type FixedMatcher struct {
	query string
}

// NewFixedMatcher creates a FixedMatcher for query.
func NewFixedMatcher(query string) *FixedMatcher {
	return &FixedMatcher{query: query}
}

func (m *FixedMatcher) FindAll(text string) []string {
	return findAll(text, m.MatchLine)
}

func (m *FixedMatcher) MatchLine(line string) bool {
	return strings.Contains(line, m.query)
}

func (m *FixedMatcher) Positions(line string) [][2]int {
	if m.query == "" {
		return nil
	}

	var positions [][2]int
	start := 0
	for start <= len(line) {
		idx := strings.Index(line[start:], m.query)
		if idx < 0 {
			break
		}
		pos := start + idx
		positions = append(positions, [2]int{pos, pos + len(m.query)})
		start = pos + len(m.query)
	}
	return positions
}

// Ensure FixedMatcher implements Matcher.
var _ Matcher = (*FixedMatcher)(nil)
