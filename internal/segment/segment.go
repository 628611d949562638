package segment

import (
	"strings"

	"github.com/gubarz/streamfence/internal/fence"
)

// Kind identifies what a segment holds
type Kind int

const (
	Text Kind = iota
	Code
	PendingCode
)

func (k Kind) String() string {
	switch k {
	case Code:
		return "code"
	case PendingCode:
		return "pending"
	default:
		return "text"
	}
}

// MarshalYAML writes the kind by name
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Segment is one contiguous region of a buffer
type Segment struct {
	Kind     Kind   `yaml:"kind"`
	Start    int    `yaml:"startIndex"`
	End      int    `yaml:"endIndex"`
	Raw      string `yaml:"outputRaw"`
	Language string `yaml:"language,omitempty"`
	Meta     string `yaml:"meta,omitempty"`
}

// Body returns the code between the fence lines. Text segments return Raw.
func (s Segment) Body() string {
	if s.Kind == Text {
		return s.Raw
	}
	nl := strings.IndexByte(s.Raw, '\n')
	if nl < 0 {
		return ""
	}
	body := s.Raw[nl+1:]
	if s.Kind == Code {
		last := strings.LastIndexByte(body, '\n')
		if last < 0 {
			return ""
		}
		body = strings.TrimSuffix(body[:last], "\r")
	}
	return strings.ReplaceAll(body, "\r\n", "\n")
}

// ============================================================================
// Splitter
// ============================================================================

// Splitter cuts a buffer into text and code segments using the fence matchers
type Splitter struct {
	complete fence.Matcher
	partial  fence.Matcher
}

// NewSplitter builds a Splitter for the given fence options
func NewSplitter(opts fence.Options) (*Splitter, error) {
	complete, err := fence.NewCompleteMatcher(opts)
	if err != nil {
		return nil, err
	}
	partial, err := fence.NewPartialMatcher(opts)
	if err != nil {
		return nil, err
	}
	return &Splitter{complete: complete, partial: partial}, nil
}

// Split returns the segments of buffer in order. Closed blocks are found by
// re-running the complete matcher on the remainder after each block; an
// unterminated trailing block becomes a PendingCode segment.
func (s *Splitter) Split(buffer string) []Segment {
	var out []Segment
	pos := 0
	for pos < len(buffer) {
		rest := buffer[pos:]
		if m, ok := s.complete(rest); ok {
			out = appendText(out, buffer, pos, pos+m.StartIndex)
			out = append(out, codeSegment(Code, pos, m))
			pos += m.EndIndex
			continue
		}
		if m, ok := s.partial(rest); ok {
			out = appendText(out, buffer, pos, pos+m.StartIndex)
			out = append(out, codeSegment(PendingCode, pos, m))
			return out
		}
		return appendText(out, buffer, pos, len(buffer))
	}
	return out
}

// Blocks returns every closed block in buffer
func (s *Splitter) Blocks(buffer string) []Segment {
	var blocks []Segment
	for _, seg := range s.Split(buffer) {
		if seg.Kind == Code {
			blocks = append(blocks, seg)
		}
	}
	return blocks
}

func appendText(out []Segment, buffer string, start, end int) []Segment {
	if start >= end {
		return out
	}
	return append(out, Segment{Kind: Text, Start: start, End: end, Raw: buffer[start:end]})
}

func codeSegment(kind Kind, offset int, m fence.Match) Segment {
	info := fence.ParseInfo(m.OutputRaw)
	return Segment{
		Kind:     kind,
		Start:    offset + m.StartIndex,
		End:      offset + m.EndIndex,
		Raw:      m.OutputRaw,
		Language: info.Language,
		Meta:     info.Meta,
	}
}
