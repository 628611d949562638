// Package fence recognises fenced code blocks inside a text buffer that is
// still growing, one streamed token at a time.
package fence

import (
	"fmt"
	"regexp"
)

// Match locates a region of a buffer. EndIndex is exclusive and OutputRaw is
// always buffer[StartIndex:EndIndex].
type Match struct {
	StartIndex int    `yaml:"startIndex"`
	EndIndex   int    `yaml:"endIndex"`
	OutputRaw  string `yaml:"outputRaw"`
}

// Matcher finds a match in buffer. The boolean is false when nothing
// qualifies; that is the normal outcome while text is still streaming.
type Matcher func(buffer string) (Match, bool)

func newMatch(buffer string, start, end int) Match {
	return Match{StartIndex: start, EndIndex: end, OutputRaw: buffer[start:end]}
}

// RegexMatcher returns a Matcher reporting the leftmost occurrence of re.
// Empty occurrences are not matches.
func RegexMatcher(re *regexp.Regexp) Matcher {
	return func(buffer string) (Match, bool) {
		loc := re.FindStringIndex(buffer)
		if loc == nil || loc[0] == loc[1] {
			return Match{}, false
		}
		return newMatch(buffer, loc[0], loc[1]), true
	}
}

// CompileMatcher compiles pattern and wraps it with RegexMatcher
func CompileMatcher(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile matcher pattern: %w", err)
	}
	return RegexMatcher(re), nil
}
