package fence

// NewCompleteMatcher returns a Matcher for the first fully closed fenced
// block in a buffer. The match runs from the first character of the opening
// fence through the last character of the closing fence. Later blocks are
// ignored; callers re-invoke on the remainder to extract them.
func NewCompleteMatcher(opts Options) (Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	set := opts.charSet()
	return func(buffer string) (Match, bool) {
		return matchComplete(buffer, set)
	}, nil
}

// CompleteMatcher returns a complete-block Matcher using DefaultOptions
func CompleteMatcher() Matcher {
	m, _ := NewCompleteMatcher(DefaultOptions())
	return m
}

func matchComplete(buf string, set charSet) (Match, bool) {
	op, ok := nextOpener(buf, 0, set)
	if !ok {
		return Match{}, false
	}
	end, ok := findClose(buf, op)
	if !ok {
		return Match{}, false
	}
	return newMatch(buf, op.start, end), true
}
