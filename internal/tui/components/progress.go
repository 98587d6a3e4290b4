package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/billimpact/internal/tui/tuistyles"
)

// StepStatus is the state of one wizard step in the tracker
type StepStatus int

const (
	StepPending StepStatus = iota
	StepCurrent
	StepComplete
)

// ProgressBar displays how far through the wizard the user is
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, total int) *ProgressBar {
	return &ProgressBar{Current: current, Total: total, Width: 30}
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns the completion percentage, capped at 100
func (p *ProgressBar) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Current) / float64(p.Total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Render returns the bar followed by a count
func (p *ProgressBar) Render() string {
	filled := int(float64(p.Width) * p.Percentage() / 100)
	empty := p.Width - filled

	bar := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", empty))
	count := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(fmt.Sprintf("%d/%d", p.Current, p.Total))

	return "[" + bar + "] " + count
}

// StepItem is one labelled step in a StepTracker
type StepItem struct {
	Label  string
	Status StepStatus
}

// StepTracker renders the wizard steps as a single line of icons
type StepTracker struct {
	Items []StepItem
}

// NewStepTracker builds a tracker with every step pending
func NewStepTracker(labels ...string) *StepTracker {
	items := make([]StepItem, len(labels))
	for i, l := range labels {
		items[i] = StepItem{Label: l}
	}
	return &StepTracker{Items: items}
}

// SetCurrent marks every step before index complete and index current
func (s *StepTracker) SetCurrent(index int) *StepTracker {
	for i := range s.Items {
		switch {
		case i < index:
			s.Items[i].Status = StepComplete
		case i == index:
			s.Items[i].Status = StepCurrent
		default:
			s.Items[i].Status = StepPending
		}
	}
	return s
}

// Render returns the tracker line
func (s *StepTracker) Render() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = statusStyle(item.Status).Render(statusIcon(item.Status) + " " + item.Label)
	}
	return strings.Join(parts, "  ")
}

func statusIcon(status StepStatus) string {
	switch status {
	case StepComplete:
		return "●"
	case StepCurrent:
		return "◐"
	default:
		return "○"
	}
}

func statusStyle(status StepStatus) lipgloss.Style {
	switch status {
	case StepComplete:
		return lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	case StepCurrent:
		return lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	}
}
