package matcher

// Matcher finds lines containing a fixed query string.
type Matcher interface {
	// FindAll scans text (full file content) and returns every matching line
	// in original order. Each element is a substring of text, not a copy.
	FindAll(text string) []string

	// MatchLine reports whether a single line contains the query.
	MatchLine(line string) bool

	// Positions returns the start/end byte offsets of each non-overlapping
	// occurrence of the query within line, scanning left to right.
	// An empty query has no positions.
	Positions(line string) [][2]int
}

// Search returns the lines of text that contain query, comparing bytes exactly.
func Search(query, text string) []string {
	return NewFixedMatcher(query).FindAll(text)
}

// SearchCaseInsensitive returns the lines of text that contain query,
// ignoring case.
func SearchCaseInsensitive(query, text string) []string {
	return NewFoldMatcher(query).FindAll(text)
}

// findAll collects every line of text for which match returns true.
func findAll(text string, match func(line string) bool) []string {
	var matches []string
	sc := newLineScanner(text)
	for sc.next() {
		if match(sc.line) {
			matches = append(matches, sc.line)
		}
	}
	return matches
}
