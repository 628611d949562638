package fence

// NewPartialMatcher returns a Matcher for a fenced block that has started
// but not yet closed. The match always extends to the end of the buffer.
//
// Closed blocks earlier in the buffer are skipped: only the trailing open
// block, or a trailing run of fence characters that may still grow into an
// opening fence, is reported.
func NewPartialMatcher(opts Options) (Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	set := opts.charSet()
	return func(buffer string) (Match, bool) {
		state, start := scan(buffer, set)
		if state != OpeningRun && state != InsideBlock {
			return Match{}, false
		}
		return newMatch(buffer, start, len(buffer)), true
	}, nil
}

// PartialMatcher returns a partial-block Matcher using DefaultOptions
func PartialMatcher() Matcher {
	m, _ := NewPartialMatcher(DefaultOptions())
	return m
}
