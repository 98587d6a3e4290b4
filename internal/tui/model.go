package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

// Model is the wizard state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	engine *calculation.CalculationEngine
	parser *config.InputParser

	questions []question
	index     int
	cursor    int
	history   []int

	location    textinput.Model
	locationErr error

	form    domain.FormData
	results *domain.PolicyResults

	// Results view
	showResults bool
	showBigBill bool
	loading     bool
	err         error
}

// NewModel creates a wizard over the given engine, starting from an optional prefilled form
func NewModel(engine *calculation.CalculationEngine, form domain.FormData) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 90210 or TX"
	ti.CharLimit = 5
	ti.Width = 20
	switch {
	case form.ZipCode != "":
		ti.SetValue(form.ZipCode)
	case form.State != "":
		ti.SetValue(string(form.State))
	}
	ti.Focus()

	return Model{
		width:     80,
		height:    24,
		engine:    engine,
		parser:    config.NewInputParser(),
		questions: newQuestions(),
		location:  ti,
		form:      form,
	}
}

// Init starts the cursor blinking in the location input
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the answers collected so far
func (m Model) Form() domain.FormData {
	return m.form
}

// Results returns the last calculation, if any
func (m Model) Results() *domain.PolicyResults {
	return m.results
}

// CurrentStep returns the wizard page being shown
func (m Model) CurrentStep() Step {
	if m.showResults {
		return StepResults
	}
	return m.questions[m.index].step
}

func (m Model) current() question {
	return m.questions[m.index]
}

// calculateCmd validates the form and runs the engine off the update loop
func calculateCmd(engine *calculation.CalculationEngine, parser *config.InputParser, form domain.FormData) tea.Cmd {
	return func() tea.Msg {
		if err := parser.ValidateForm(&form); err != nil {
			return CalculationCompleteMsg{Err: err}
		}
		return CalculationCompleteMsg{Results: engine.CalculatePolicyImpact(form)}
	}
}
