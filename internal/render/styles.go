package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/streamfence/internal/config"
)

// StyleManager holds the styles used to draw segments
type StyleManager struct {
	Text         lipgloss.Style
	Code         lipgloss.Style
	Pending      lipgloss.Style
	Label        lipgloss.Style
	PendingLabel lipgloss.Style

	// Chrome styles
	Border        lipgloss.Style
	PendingBorder lipgloss.Style
	Dim           lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	border := lipgloss.Color("240")
	return &StyleManager{
		Text:          lipgloss.NewStyle(),
		Code:          lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Label:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		PendingLabel:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3")),
		Border:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border),
		PendingBorder: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(border),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	textColor := parseANSIColor(config.GetColorText())
	codeColor := parseANSIColor(config.GetColorCode())
	pendingColor := parseANSIColor(config.GetColorPending())
	borderColor := parseANSIColor(config.GetColorBorder())

	s.Text = lipgloss.NewStyle().Foreground(textColor)
	s.Code = lipgloss.NewStyle().Foreground(codeColor)
	s.Pending = lipgloss.NewStyle().Foreground(pendingColor)
	s.Label = lipgloss.NewStyle().Bold(true).Foreground(codeColor)
	s.PendingLabel = lipgloss.NewStyle().Italic(true).Foreground(pendingColor)

	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	s.PendingBorder = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(borderColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.TerminalColor {
	if code == "" {
		return lipgloss.NoColor{}
	}
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}
