package fence

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegexMatcher(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		want    Match
		wantOK  bool
	}{
		{
			name:    "whole input",
			input:   "hello",
			pattern: `hello`,
			want:    Match{StartIndex: 0, EndIndex: 5, OutputRaw: "hello"},
			wantOK:  true,
		},
		{
			name:    "text before",
			input:   "abc hello",
			pattern: `hello`,
			want:    Match{StartIndex: 4, EndIndex: 9, OutputRaw: "hello"},
			wantOK:  true,
		},
		{
			name:    "text before and after",
			input:   "abc hello def",
			pattern: `hello`,
			want:    Match{StartIndex: 4, EndIndex: 9, OutputRaw: "hello"},
			wantOK:  true,
		},
		{
			name:    "leftmost of several",
			input:   "hello hello",
			pattern: `hel+o`,
			want:    Match{StartIndex: 0, EndIndex: 5, OutputRaw: "hello"},
			wantOK:  true,
		},
		{
			name:    "no occurrence",
			input:   "abc yellow def",
			pattern: `hello`,
		},
		{
			name:    "empty occurrence is not a match",
			input:   "abc",
			pattern: `x*`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RegexMatcher(regexp.MustCompile(tt.pattern))(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v (match %+v)", tt.wantOK, ok, got)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("match mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileMatcher(t *testing.T) {
	m, err := CompileMatcher(`wor\w+`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m("hello world")
	if !ok || got.OutputRaw != "world" || got.StartIndex != 6 {
		t.Errorf("expected world at 6, got %+v (ok=%v)", got, ok)
	}

	if _, err := CompileMatcher(`(`); err == nil {
		t.Error("expected error for invalid pattern")
	}
}
