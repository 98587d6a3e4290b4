package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/rgehrsitz/billimpact/internal/tui/tuistyles"
)

// ScenarioCard summarises one scenario's results in a bordered column
type ScenarioCard struct {
	Name       string
	Results    *domain.PolicyResults
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a card for a scenario result
func NewScenarioCard(name string, results *domain.PolicyResults) *ScenarioCard {
	return &ScenarioCard{
		Name:    name,
		Results: results,
		Width:   38,
	}
}

// SetSelected highlights the card border
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Highlights returns the label/value lines shown on the card
func (s *ScenarioCard) Highlights() []string {
	r := s.Results
	if r == nil {
		return nil
	}
	return []string{
		fmt.Sprintf("Net per year   %s", tuistyles.FormatSignedCurrency(r.NetAnnualImpact)),
		fmt.Sprintf("5 years        %s", tuistyles.FormatSignedCurrency(r.Timeline.FiveYear)),
		fmt.Sprintf("10 years       %s", tuistyles.FormatSignedCurrency(r.Timeline.TenYear)),
		fmt.Sprintf("20 years       %s", tuistyles.FormatSignedCurrency(r.Timeline.TwentyYear)),
		fmt.Sprintf("Deficit share  %s", tuistyles.FormatCurrency(r.DeficitImpact)),
		fmt.Sprintf("Recession risk %s", tuistyles.FormatPercent(r.RecessionProbability)),
	}
}

// Render returns the styled card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	content.WriteString(tuistyles.TitleStyle.Render(s.Name))
	content.WriteString("\n\n")

	if s.Results == nil {
		content.WriteString(tuistyles.InfoStyle.Render("Not calculated"))
	} else {
		net := s.Results.NetAnnualImpact
		for i, line := range s.Highlights() {
			style := tuistyles.TableCellStyle
			if i == 0 {
				style = tuistyles.ImpactStyle(net).Bold(true)
			}
			content.WriteString(style.Render(line))
			content.WriteString("\n")
		}
	}

	border := tuistyles.BorderStyle
	if s.IsSelected {
		border = tuistyles.ActiveBorderStyle
	}
	return border.Width(s.Width).Render(strings.TrimRight(content.String(), "\n"))
}

// ScenarioRow renders cards side by side
func ScenarioRow(cards []*ScenarioCard) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}
	rendered := make([]string, len(cards))
	for i, card := range cards {
		rendered[i] = card.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
