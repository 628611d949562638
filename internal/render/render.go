package render

import (
	"strings"

	"github.com/gubarz/streamfence/internal/segment"
)

const pendingMarker = "…"

// Renderer draws segments for a terminal: text as is, code blocks in a box
// labelled with their language
type Renderer struct {
	styles *StyleManager
	width  int
}

// New creates a Renderer. A width of zero lets boxes size to their content.
func New(styles *StyleManager, width int) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles, width: width}
}

// SetWidth changes the box width
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Render draws every segment in order
func (r *Renderer) Render(segments []segment.Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind != segment.Text && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteString("\n")
		}
		switch seg.Kind {
		case segment.Code:
			sb.WriteString(r.codeBlock(seg, false))
		case segment.PendingCode:
			sb.WriteString(r.codeBlock(seg, true))
		default:
			sb.WriteString(r.styles.Text.Render(seg.Raw))
		}
	}
	return sb.String()
}

// Label returns the heading shown above a code block
func Label(seg segment.Segment) string {
	label := seg.Language
	if label == "" {
		label = "code"
	}
	if seg.Meta != "" {
		label += " " + seg.Meta
	}
	if seg.Kind == segment.PendingCode {
		label += " " + pendingMarker
	}
	return label
}

func (r *Renderer) codeBlock(seg segment.Segment, pending bool) string {
	label, body, box := r.styles.Label, r.styles.Code, r.styles.Border
	if pending {
		label, body, box = r.styles.PendingLabel, r.styles.Pending, r.styles.PendingBorder
	}
	if r.width > 2 {
		box = box.Width(r.width - 2)
	}

	return label.Render(Label(seg)) + "\n" + box.Render(body.Render(seg.Body()))
}
