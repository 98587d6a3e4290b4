package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case CalculationStartedMsg:
		m.loading = true
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.results = msg.Results
		m.showResults = true
		m.showBigBill = false
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	if !m.showResults && m.current().isText() {
		var cmd tea.Cmd
		m.location, cmd = m.location.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}
	if m.loading {
		return m, nil
	}

	if m.showResults {
		return m.handleResultsKey(key)
	}

	q := m.current()
	if q.isText() {
		switch key {
		case "enter":
			return m.submitLocation()
		case "esc":
			return m, nil
		}
		var cmd tea.Cmd
		m.location, cmd = m.location.Update(msg)
		m.locationErr = nil
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		return m.back(), nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.options)-1 {
			m.cursor++
		}
	case "enter":
		q.apply(&m.form, m.cursor)
		return m.advance()
	}
	return m, nil
}

func (m Model) handleResultsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return m, tea.Quit
	case "esc":
		m.showResults = false
		return m, nil
	case "tab", "b":
		if m.results != nil && m.results.BigBillScenario != nil {
			m.showBigBill = !m.showBigBill
		}
	case "r":
		return m.restart(), textinput.Blink
	}
	return m, nil
}

func (m Model) submitLocation() (tea.Model, tea.Cmd) {
	zip, state, err := parseLocation(m.location.Value(), func(code domain.StateCode) bool {
		_, ok := m.engine.Reference.State(code)
		return ok
	})
	if err != nil {
		m.locationErr = err
		return m, nil
	}
	m.form.ZipCode = zip
	m.form.State = state
	m.location.Blur()
	return m.advance()
}

// advance moves to the next unskipped question, or starts the calculation
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.history = append(m.history, m.index)
	next := m.index + 1
	for next < len(m.questions) && m.questions[next].skip != nil && m.questions[next].skip(m.form) {
		next++
	}
	if next >= len(m.questions) {
		m.loading = true
		return m, calculateCmd(m.engine, m.parser, m.form)
	}
	m.moveTo(next)
	return m, nil
}

// back returns to the previously answered question
func (m Model) back() Model {
	if len(m.history) == 0 {
		return m
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.moveTo(prev)
	return m
}

func (m *Model) moveTo(index int) {
	m.index = index
	q := m.questions[index]
	if q.isText() {
		m.location.Focus()
		m.cursor = 0
		return
	}
	m.cursor = q.selected(m.form)
}

func (m Model) restart() Model {
	fresh := NewModel(m.engine, domain.FormData{})
	fresh.width = m.width
	fresh.height = m.height
	return fresh
}
