package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Monokai Pro color palette
const (
	Foreground = "#FCFCFA"

	Red     = "#FF6188" // Errors
	Orange  = "#FC9867" // Warnings
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Magenta = "#FF6188" // Titles

	Comment = "#727072" // Dim text, labels
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Comment)).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Foreground))
)

// KeyValue renders an aligned "label value" line
func KeyValue(label string, value any) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		LabelStyle.Render(label),
		ValueStyle.Render(toString(value)),
	)
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "(none)"
		}
		return val
	case bool:
		if val {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(val)
	}
}
