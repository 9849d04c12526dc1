package matcher

import "strings"

// lineScanner walks text forward one line at a time.
// Lines are split on '\n'. A '\r' directly before the terminator (or at the
// end of an unterminated last line) is not part of the line. A terminator at
// the very end of text does not start another, empty line.
type lineScanner struct {
	rest string
	line string
}

func newLineScanner(text string) lineScanner {
	return lineScanner{rest: text}
}

// next advances to the following line. It returns false once text is exhausted.
func (s *lineScanner) next() bool {
	if len(s.rest) == 0 {
		return false
	}
	i := strings.IndexByte(s.rest, '\n')
	if i >= 0 {
		s.line = s.rest[:i]
		s.rest = s.rest[i+1:]
	} else {
		s.line = s.rest
		s.rest = ""
	}
	s.line = strings.TrimSuffix(s.line, "\r")
	return true
}
