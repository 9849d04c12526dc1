package matcher

// New creates the Matcher for query.
// Selection logic:
//   - ignoreCase -> FoldMatcher (lowercased comparison, original-case positions)
//   - otherwise  -> FixedMatcher (exact byte comparison)
func New(query string, ignoreCase bool) Matcher {
	if ignoreCase {
		return NewFoldMatcher(query)
	}
	return NewFixedMatcher(query)
}
