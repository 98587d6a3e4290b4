// Package tuistyles holds the lipgloss palette and styles shared by the TUI
// model and its components.
package tuistyles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/billimpact/internal/output"
)

// Palette
var (
	ColorPrimary   = lipgloss.Color("#5B8DEF")
	ColorSecondary = lipgloss.Color("#A78BFA")
	ColorAccent    = lipgloss.Color("#F59E0B")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorInfo      = lipgloss.Color("#38BDF8")

	ColorForeground = lipgloss.Color("#E5E7EB")
	ColorMuted      = lipgloss.Color("#9CA3AF")
	ColorBorder     = lipgloss.Color("#4B5563")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	CostStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	SavingStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)
)

// ImpactStyle colours a signed impact. Positive impacts are costs to the household.
func ImpactStyle(d decimal.Decimal) lipgloss.Style {
	switch d.Sign() {
	case 1:
		return CostStyle
	case -1:
		return SavingStyle
	default:
		return MetricValueStyle
	}
}

// TrendIndicator returns an arrow for the direction of an impact
func TrendIndicator(d decimal.Decimal) string {
	switch d.Sign() {
	case 1:
		return "▲"
	case -1:
		return "▼"
	default:
		return "="
	}
}

// FormatCurrency renders whole dollars with thousands separators, e.g. -$12,345
func FormatCurrency(d decimal.Decimal) string {
	return output.FormatCurrency(d)
}

// FormatSignedCurrency is FormatCurrency with an explicit + on positive values
func FormatSignedCurrency(d decimal.Decimal) string {
	return output.FormatSignedCurrency(d)
}

// FormatPercent renders a percentage value that is already scaled to 0-100
func FormatPercent(d decimal.Decimal) string {
	return fmt.Sprintf("%s%%", d.StringFixed(0))
}
