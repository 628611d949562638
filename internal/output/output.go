package output

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// ErrNoClipboard is returned when no clipboard tool is installed
var ErrNoClipboard = errors.New("no clipboard tool found (tried wl-copy, xclip, xsel, pbcopy)")

// systemClipboard implements Clipboard using system commands
type systemClipboard struct{}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := findClipboardCommand()
	if cmd == nil {
		return ErrNoClipboard
	}
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// findClipboardCommand returns the appropriate clipboard command for the system
func findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Output Handling
// ============================================================================

// Mode represents how extracted blocks are delivered
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePrint, ModeCopy:
		return Mode(s), nil
	case "":
		return ModePrint, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: print, copy)", s)
	}
}

// Sink delivers extracted text
type Sink struct {
	w         io.Writer
	clipboard Clipboard
}

// NewSink creates a Sink printing to w and copying to the system clipboard
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w, clipboard: &systemClipboard{}}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Sink) WithClipboard(c Clipboard) *Sink {
	s.clipboard = c
	return s
}

// Deliver prints or copies text according to mode
func (s *Sink) Deliver(text string, mode Mode) error {
	switch mode {
	case ModeCopy:
		return s.clipboard.Copy(text)
	default: // print
		_, err := fmt.Fprintln(s.w, text)
		return err
	}
}
