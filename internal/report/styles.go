package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a
// TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// LabelNone and LabelOther color-code the reserved stereotype
	// labels wherever they appear in tables.
	LabelNone  lipgloss.Style
	LabelOther lipgloss.Style

	// SummaryLabel styles summary line labels.
	SummaryLabel lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal
// reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		LabelNone:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d943d6")),
		LabelOther: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		SummaryLabel: lipgloss.NewStyle().Bold(true).Width(28),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// renderLabel applies the reserved-label colors to a stereotype
// label.
func (s Styles) renderLabel(label string) string {
	switch label {
	case "none":
		return s.LabelNone.Render(label)
	case "other":
		return s.LabelOther.Render(label)
	default:
		return label
	}
}
