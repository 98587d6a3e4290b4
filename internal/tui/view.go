package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/rgehrsitz/billimpact/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.err != nil:
		content = m.renderError()
	case m.loading:
		content = BorderStyle.Render("⠋ Calculating...")
	case m.showResults:
		content = m.renderResults()
	default:
		content = m.renderQuestion()
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Policy Impact Calculator")

	steps := AllSteps()
	labels := make([]string, len(steps))
	for i, s := range steps {
		labels[i] = s.String()
	}
	tracker := components.NewStepTracker(labels...).SetCurrent(int(m.CurrentStep()))

	return lipgloss.JoinVertical(lipgloss.Left, title, tracker.Render())
}

func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch {
	case m.showResults:
		shortcuts = []string{formatShortcut("esc", "back"), formatShortcut("r", "restart")}
		if m.results != nil && m.results.BigBillScenario != nil {
			shortcuts = append(shortcuts, formatShortcut("tab", "switch scenario"))
		}
		shortcuts = append(shortcuts, formatShortcut("q", "quit"))
	case m.current().isText():
		shortcuts = []string{formatShortcut("enter", "next"), formatShortcut("ctrl+c", "quit")}
	default:
		shortcuts = []string{
			formatShortcut("↑/↓", "choose"),
			formatShortcut("enter", "select"),
			formatShortcut("esc", "back"),
			formatShortcut("q", "quit"),
		}
	}
	return StatusBarStyle.Render(strings.Join(shortcuts, " • "))
}

func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err))
}

func (m Model) renderQuestion() string {
	q := m.current()

	var b strings.Builder
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render(q.title))
	b.WriteString("\n\n")

	if q.isText() {
		b.WriteString(m.location.View())
		if m.locationErr != nil {
			b.WriteString("\n\n")
			b.WriteString(ErrorStyle.Render(m.locationErr.Error()))
		}
	} else {
		for i, opt := range q.options {
			if i == m.cursor {
				b.WriteString(SelectedItemStyle.Render("▸ " + opt))
			} else {
				b.WriteString(UnselectedItemStyle.Render("  " + opt))
			}
			b.WriteString("\n")
		}
	}

	return ActiveBorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// selectedResults is the scenario whose breakdown is on screen
func (m Model) selectedResults() *domain.PolicyResults {
	if m.showBigBill && m.results.BigBillScenario != nil {
		return m.results.BigBillScenario
	}
	return m.results
}

func (m Model) renderResults() string {
	if m.results == nil {
		return InfoStyle.Render("No results yet")
	}

	current := components.NewScenarioCard(m.scenarioLabel(m.results), m.results).SetSelected(!m.showBigBill)
	cards := []*components.ScenarioCard{current}
	if bb := m.results.BigBillScenario; bb != nil {
		cards = append(cards, components.NewScenarioCard(m.scenarioLabel(bb), bb).SetSelected(m.showBigBill))
	}

	selected := m.selectedResults()
	metrics := components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Federal tax", selected.AnnualTaxImpact),
		components.NewMetricCard("Healthcare", selected.AnnualHealthcareImpact),
		components.NewMetricCard("State & local", selected.StateAdjustment),
		components.NewMetricCard("Energy", selected.AnnualEnergyImpact),
		components.NewMetricCard("Employment", selected.EmploymentAdjustment),
	}, 3)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		SubtitleStyle.Render(fmt.Sprintf("Income used: %s • Data updated %s", FormatCurrency(m.results.Income), m.results.LastUpdated)),
		components.ScenarioRow(cards),
		metrics,
		renderBreakdown(selected),
		renderCommunity(selected),
	)
}

func renderBreakdown(r *domain.PolicyResults) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-22s %12s %12s %12s", "Category", "Current", "Proposed", "Impact")))
	b.WriteString("\n")
	for _, item := range r.Breakdown {
		row := fmt.Sprintf("%-22s %12s %12s ", item.Category, FormatCurrency(item.Current), FormatCurrency(item.Proposed))
		b.WriteString(TableCellStyle.Render(row))
		b.WriteString(ImpactStyle(item.Impact).Render(fmt.Sprintf("%12s", FormatSignedCurrency(item.Impact))))
		b.WriteString("\n")
	}
	return BorderStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderCommunity(r *domain.PolicyResults) string {
	c := r.CommunityImpact
	return InfoStyle.Render(fmt.Sprintf(
		"Community: school funding %s%% • infrastructure %s • jobs %s",
		c.SchoolFunding.StringFixed(1), FormatCurrency(c.Infrastructure), c.Jobs.StringFixed(0),
	))
}

func (m Model) scenarioLabel(r *domain.PolicyResults) string {
	scenarios := m.engine.Reference.Scenarios
	switch r.Scenario {
	case scenarios.BigBill.Name:
		return scenarios.BigBill.Label
	case scenarios.CurrentLaw.Name:
		return scenarios.CurrentLaw.Label
	default:
		return r.Scenario
	}
}
