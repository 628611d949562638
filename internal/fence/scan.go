package fence

import "strings"

const (
	// minRun is the shortest run of fence characters that delimits a block
	minRun = 3
	// maxCloseIndent is how many leading spaces a closing fence may carry
	maxCloseIndent = 3
)

// ============================================================================
// Lines
// ============================================================================

// line is one line of a buffer. end excludes the terminator (LF or CRLF) and
// next is the offset of the following line, or len(buf) for the last one.
type line struct {
	start      int
	end        int
	next       int
	terminated bool
}

// lineAt returns the line that contains offset i, starting the line at i
func lineAt(buf string, i int) line {
	l := line{start: i, end: len(buf), next: len(buf)}
	if j := strings.IndexByte(buf[i:], '\n'); j >= 0 {
		l.end = i + j
		l.next = i + j + 1
		l.terminated = true
		if l.end > i && buf[l.end-1] == '\r' {
			l.end--
		}
	}
	return l
}

// ============================================================================
// Runs
// ============================================================================

// runLength counts consecutive c bytes in buf starting at i
func runLength(buf string, i int, c byte) int {
	n := 0
	for i+n < len(buf) && buf[i+n] == c {
		n++
	}
	return n
}

// nextRun finds the next run of any fence character at or after pos
func nextRun(buf string, pos int, set charSet) (start, n int, ok bool) {
	for i := pos; i < len(buf); i++ {
		if set.has(buf[i]) {
			return i, runLength(buf, i, buf[i]), true
		}
	}
	return 0, 0, false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// atBoundary reports whether a run at i is separated from preceding text.
// Text glued to fence characters never starts a block.
func atBoundary(buf string, i int) bool {
	return i == 0 || isSpace(buf[i-1]) || buf[i-1] == '\n'
}

// validInfo reports whether the text after an opening run can be a
// language[ meta] info string. It may not contain the fence character.
func validInfo(info string, c byte) bool {
	return strings.IndexByte(info, c) < 0
}

// ============================================================================
// Fence lines
// ============================================================================

// opener is an opening fence candidate: a run of at least minRun characters
// followed by a valid info string.
type opener struct {
	start int
	char  byte
	run   int
	line  line
}

// nextOpener returns the first opening fence candidate at or after pos
func nextOpener(buf string, pos int, set charSet) (opener, bool) {
	for pos < len(buf) {
		i, n, ok := nextRun(buf, pos, set)
		if !ok {
			break
		}
		pos = i + n
		if n < minRun || !atBoundary(buf, i) {
			continue
		}
		l := lineAt(buf, pos)
		if !validInfo(buf[pos:l.end], buf[i]) {
			continue
		}
		return opener{start: i, char: buf[i], run: n, line: l}, true
	}
	return opener{}, false
}

// closingRun reports whether l is a closing fence line for c and returns the
// offset just past its run. Whitespace-separated text after the run is left
// outside the block.
func closingRun(buf string, l line, c byte) (int, bool) {
	i := l.start
	for k := 0; k < maxCloseIndent && i < l.end && buf[i] == ' '; k++ {
		i++
	}
	n := runLength(buf[:l.end], i, c)
	if n < minRun {
		return 0, false
	}
	end := i + n
	if end < l.end && !isSpace(buf[end]) {
		return 0, false
	}
	return end, true
}

// findClose looks for the closing fence of op. At least one content line must
// separate the opening line from the closing one.
func findClose(buf string, op opener) (int, bool) {
	if !op.line.terminated {
		return 0, false
	}
	content := 0
	for i := op.line.next; i < len(buf); {
		l := lineAt(buf, i)
		if content > 0 {
			if end, ok := closingRun(buf, l, op.char); ok {
				return end, true
			}
		}
		content++
		if !l.terminated {
			break
		}
		i = l.next
	}
	return 0, false
}
