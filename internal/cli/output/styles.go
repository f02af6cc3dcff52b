package output

import "github.com/charmbracelet/lipgloss"

// Styles is the lipgloss style set used for text output.
type Styles struct {
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

// NewStyles returns the style set. When styled is false all styles are
// no-ops so output stays plain for pipes and JSON.
func NewStyles(styled bool) Styles {
	if !styled {
		return Styles{}
	}
	return Styles{
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		FilePath: lipgloss.NewStyle().Underline(true),
	}
}
