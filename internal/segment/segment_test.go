package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gubarz/streamfence/internal/fence"
)

func newTestSplitter(t *testing.T) *Splitter {
	t.Helper()
	s, err := NewSplitter(fence.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "text only",
			input: "just words",
			want:  []Segment{{Kind: Text, Start: 0, End: 10, Raw: "just words"}},
		},
		{
			name:  "text then closed block then text",
			input: "see:\n```go\nx()\n```\ndone",
			want: []Segment{
				{Kind: Text, Start: 0, End: 5, Raw: "see:\n"},
				{Kind: Code, Start: 5, End: 18, Raw: "```go\nx()\n```", Language: "go"},
				{Kind: Text, Start: 18, End: 23, Raw: "\ndone"},
			},
		},
		{
			name:  "two closed blocks",
			input: "```\na\n```\n```sh run\nb\n```",
			want: []Segment{
				{Kind: Code, Start: 0, End: 9, Raw: "```\na\n```"},
				{Kind: Text, Start: 9, End: 10, Raw: "\n"},
				{Kind: Code, Start: 10, End: 25, Raw: "```sh run\nb\n```", Language: "sh", Meta: "run"},
			},
		},
		{
			name:  "closed block then pending block",
			input: "```\na\n```\ntext ```py\npri",
			want: []Segment{
				{Kind: Code, Start: 0, End: 9, Raw: "```\na\n```"},
				{Kind: Text, Start: 9, End: 15, Raw: "\ntext "},
				{Kind: PendingCode, Start: 15, End: 24, Raw: "```py\npri", Language: "py"},
			},
		},
		{
			name:  "pending opening run",
			input: "hello ``",
			want: []Segment{
				{Kind: Text, Start: 0, End: 6, Raw: "hello "},
				{Kind: PendingCode, Start: 6, End: 8, Raw: "``"},
			},
		},
	}

	s := newTestSplitter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Split(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			for _, seg := range got {
				if tt.input[seg.Start:seg.End] != seg.Raw {
					t.Errorf("segment %+v does not slice the input", seg)
				}
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	s := newTestSplitter(t)
	blocks := s.Blocks("```\nhello\n```\nhello\n```\nworld\n```")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Body() != "hello" || blocks[1].Body() != "world" {
		t.Errorf("unexpected bodies %q, %q", blocks[0].Body(), blocks[1].Body())
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want string
	}{
		{name: "text", seg: Segment{Kind: Text, Raw: "plain"}, want: "plain"},
		{name: "code", seg: Segment{Kind: Code, Raw: "```go\na\nb\n```"}, want: "a\nb"},
		{name: "code crlf", seg: Segment{Kind: Code, Raw: "```go\r\na\r\nb\r\n```"}, want: "a\nb"},
		{name: "pending", seg: Segment{Kind: PendingCode, Raw: "```go\na\nb"}, want: "a\nb"},
		{name: "pending opening line", seg: Segment{Kind: PendingCode, Raw: "```go"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Body(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
