package fence

// State classifies a buffer by where its last fenced block stands
type State int

const (
	// NoFence means no fence has started
	NoFence State = iota
	// OpeningRun means the buffer ends while an opening fence is being typed
	OpeningRun
	// InsideBlock means an opening fence line is complete and not yet closed
	InsideBlock
	// Closed means the last block seen is complete and nothing new started
	Closed
)

func (s State) String() string {
	switch s {
	case NoFence:
		return "no-fence"
	case OpeningRun:
		return "opening-run"
	case InsideBlock:
		return "inside-block"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Open reports whether the state has a pending block
func (s State) Open() bool {
	return s == OpeningRun || s == InsideBlock
}

// Classify computes the State of buffer from scratch
func Classify(buffer string, opts Options) (State, error) {
	if err := opts.Validate(); err != nil {
		return NoFence, err
	}
	state, _ := scan(buffer, opts.charSet())
	return state, nil
}

// scan walks buf block by block. For open states it also returns the offset
// where the pending block starts.
func scan(buf string, set charSet) (State, int) {
	state := NoFence
	pos := 0
	for pos < len(buf) {
		i, n, ok := nextRun(buf, pos, set)
		if !ok {
			break
		}
		end := i + n
		if !atBoundary(buf, i) {
			pos = end
			continue
		}
		if n < minRun {
			// A short run at the very end may still become a fence. Any
			// whitespace boundary qualifies, so "hello `" is pending too
			// until the next character shows it is inline code.
			if end == len(buf) {
				return OpeningRun, i
			}
			pos = end
			continue
		}
		l := lineAt(buf, end)
		if !validInfo(buf[end:l.end], buf[i]) {
			pos = end
			continue
		}
		if !l.terminated {
			return OpeningRun, i
		}
		closeEnd, ok := findClose(buf, opener{start: i, char: buf[i], run: n, line: l})
		if !ok {
			return InsideBlock, i
		}
		state = Closed
		pos = closeEnd
	}
	return state, -1
}
