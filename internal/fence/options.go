package fence

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Char is a character that may delimit a fenced block
type Char rune

const (
	Backtick Char = '`'
	Tilde    Char = '~'
)

// SupportedChars lists every character a fence may be built from
var SupportedChars = []Char{Backtick, Tilde}

var (
	// ErrEmptyChar is returned when a fence character is missing
	ErrEmptyChar = errors.New("empty fence character")
	// ErrUnsupportedChar is returned for characters outside SupportedChars
	ErrUnsupportedChar = errors.New("unsupported fence character")
)

func (c Char) String() string {
	return string(rune(c))
}

// Supported reports whether c is one of SupportedChars
func (c Char) Supported() bool {
	for _, s := range SupportedChars {
		if c == s {
			return true
		}
	}
	return false
}

// ParseChar converts a single-character string into a Char
func ParseChar(s string) (Char, error) {
	if s == "" {
		return 0, ErrEmptyChar
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrUnsupportedChar, s)
	}
	c := Char(r)
	if !c.Supported() {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedChar, s)
	}
	return c, nil
}

// Options configures the fence matchers.
//
// StartEndChars holds the opening and closing characters. Both are recognised
// as fence characters, but a block always closes with the character that
// opened it.
type Options struct {
	StartEndChars [2]Char
}

// DefaultOptions returns backtick/backtick options
func DefaultOptions() Options {
	return Options{StartEndChars: [2]Char{Backtick, Backtick}}
}

// Validate checks that both configured characters are supported
func (o Options) Validate() error {
	names := [2]string{"open", "close"}
	for i, c := range o.StartEndChars {
		if c == 0 {
			return fmt.Errorf("%s char: %w", names[i], ErrEmptyChar)
		}
		if !c.Supported() {
			return fmt.Errorf("%s char: %w: %q", names[i], ErrUnsupportedChar, c.String())
		}
	}
	return nil
}

// charSet is the byte form of a validated Options. Every supported character
// is ASCII.
type charSet [2]byte

func (o Options) charSet() charSet {
	return charSet{byte(o.StartEndChars[0]), byte(o.StartEndChars[1])}
}

func (s charSet) has(b byte) bool {
	return b == s[0] || b == s[1]
}
