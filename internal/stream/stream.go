package stream

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gubarz/streamfence/internal/fence"
	"github.com/gubarz/streamfence/internal/segment"
)

// Chunk splits text into tokens of at most size runes
func Chunk(text string, size int) []string {
	if size < 1 {
		size = 1
	}
	var tokens []string
	for len(text) > 0 {
		end, n := 0, 0
		for end < len(text) && n < size {
			_, w := utf8.DecodeRuneInString(text[end:])
			end += w
			n++
		}
		tokens = append(tokens, text[:end])
		text = text[end:]
	}
	return tokens
}

// ============================================================================
// Tracker
// ============================================================================

// Update describes the buffer after one token was appended
type Update struct {
	Seq      int
	Token    string
	Buffer   string
	State    fence.State
	Prev     fence.State
	Segments []segment.Segment
	// Closed holds blocks that closed with this token
	Closed []segment.Segment
	// Reopened counts closed blocks whose closing fence stopped being one,
	// e.g. "```" followed by "x"
	Reopened int
}

// Opened reports whether a block started pending with this update
func (u Update) Opened() bool {
	return u.State.Open() && !u.Prev.Open()
}

// Pending returns the trailing pending segment, if any
func (u Update) Pending() (segment.Segment, bool) {
	if n := len(u.Segments); n > 0 && u.Segments[n-1].Kind == segment.PendingCode {
		return u.Segments[n-1], true
	}
	return segment.Segment{}, false
}

// Tracker accumulates streamed tokens and re-scans the whole buffer after
// each one
type Tracker struct {
	opts     fence.Options
	splitter *segment.Splitter
	buf      strings.Builder
	seq      int
	state    fence.State
	closed   int
}

// NewTracker creates a Tracker for the given fence options
func NewTracker(opts fence.Options) (*Tracker, error) {
	splitter, err := segment.NewSplitter(opts)
	if err != nil {
		return nil, err
	}
	return &Tracker{opts: opts, splitter: splitter}, nil
}

// Push appends token and reports the new classification
func (t *Tracker) Push(token string) Update {
	t.buf.WriteString(token)
	t.seq++
	buffer := t.buf.String()

	// opts were validated by NewSplitter
	state, _ := fence.Classify(buffer, t.opts)
	segments := t.splitter.Split(buffer)

	u := Update{
		Seq:      t.seq,
		Token:    token,
		Buffer:   buffer,
		State:    state,
		Prev:     t.state,
		Segments: segments,
	}

	var blocks []segment.Segment
	for _, seg := range segments {
		if seg.Kind == segment.Code {
			blocks = append(blocks, seg)
		}
	}
	if len(blocks) > t.closed {
		u.Closed = blocks[t.closed:]
	} else if len(blocks) < t.closed {
		// A closing fence followed by more text stopped being a fence.
		u.Reopened = t.closed - len(blocks)
		slog.Debug("closed block reopened", "seq", t.seq, "blocks", len(blocks))
	}
	t.closed = len(blocks)
	t.state = state
	return u
}

// Buffer returns everything pushed so far
func (t *Tracker) Buffer() string {
	return t.buf.String()
}

// State returns the classification after the last push
func (t *Tracker) State() fence.State {
	return t.state
}

// ============================================================================
// Replayer
// ============================================================================

// Replayer feeds a text to a Tracker token by token
type Replayer struct {
	tokens  []string
	delay   time.Duration
	tracker *Tracker
}

// NewReplayer chunks text into tokens of chunkSize runes
func NewReplayer(text string, chunkSize int, delay time.Duration, opts fence.Options) (*Replayer, error) {
	tracker, err := NewTracker(opts)
	if err != nil {
		return nil, err
	}
	return &Replayer{
		tokens:  Chunk(text, chunkSize),
		delay:   delay,
		tracker: tracker,
	}, nil
}

// Tokens returns the simulated tokens
func (r *Replayer) Tokens() []string {
	return r.tokens
}

// Run pushes every token, waiting delay between tokens, and calls fn with
// each update. It stops early when ctx is done or fn returns an error.
func (r *Replayer) Run(ctx context.Context, fn func(Update) error) error {
	for i, token := range r.tokens {
		if i > 0 && r.delay > 0 {
			timer := time.NewTimer(r.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		u := r.tracker.Push(token)
		if u.State != u.Prev {
			slog.Debug("fence state changed", "seq", u.Seq, "from", u.Prev, "to", u.State)
		}
		if err := fn(u); err != nil {
			return err
		}
	}
	return nil
}
