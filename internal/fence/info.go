package fence

import "strings"

// Info describes the opening fence line of a block
type Info struct {
	Char     Char
	Run      int
	Language string
	Meta     string
}

// ParseInfo reads the opening fence line at the start of raw, which is
// normally a Match.OutputRaw. It returns the zero Info when raw does not
// start with a supported fence character.
func ParseInfo(raw string) Info {
	first := raw
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		first = raw[:i]
	}
	first = strings.TrimRight(first, "\r")
	if first == "" || !Char(first[0]).Supported() {
		return Info{}
	}
	n := runLength(first, 0, first[0])
	info := Info{Char: Char(first[0]), Run: n}
	rest := first[n:]
	if sp := strings.IndexAny(rest, " \t"); sp >= 0 {
		info.Language = rest[:sp]
		info.Meta = strings.TrimSpace(rest[sp+1:])
	} else {
		info.Language = rest
	}
	return info
}
