package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return NewModel(calculation.NewCalculationEngine(), domain.FormData{})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyPress(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, runes(string(r)))
	}
	return m
}

// choose moves the cursor down n times from the first option and selects
func choose(t *testing.T, m Model, n int) (Model, tea.Cmd) {
	t.Helper()
	for m.cursor > 0 {
		m, _ = update(t, m, keyPress(tea.KeyUp))
	}
	for i := 0; i < n; i++ {
		m, _ = update(t, m, keyPress(tea.KeyDown))
	}
	return update(t, m, keyPress(tea.KeyEnter))
}

// complete runs the pending calculation command through Update
func complete(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	require.True(t, m.loading)
	m, _ = update(t, m, cmd())
	return m
}

func TestModel_CaliforniaFamilyWizard(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, StepLocation, m.CurrentStep())

	m = typeText(t, m, "ca")
	m, _ = update(t, m, keyPress(tea.KeyEnter))
	assert.Equal(t, domain.StateCode("CA"), m.Form().State)
	assert.Equal(t, StepHousehold, m.CurrentStep())

	m, _ = choose(t, m, 1) // 30-44
	m, _ = choose(t, m, 1) // married-joint
	m, _ = choose(t, m, 2) // two children
	m, _ = choose(t, m, 0) // no other dependents
	assert.Equal(t, StepEmployment, m.CurrentStep())

	m, _ = choose(t, m, 0) // full-time
	assert.Equal(t, StepHealthcare, m.CurrentStep())
	m, _ = choose(t, m, 0) // employer
	m, _ = choose(t, m, 0) // no HSA
	assert.Equal(t, StepIncome, m.CurrentStep())
	m, _ = choose(t, m, 4) // 100k-150k
	m, cmd := choose(t, m, 1)

	m = complete(t, m, cmd)
	assert.Equal(t, StepResults, m.CurrentStep())
	require.NotNil(t, m.Results())
	assert.True(t, m.Results().NetAnnualImpact.Equal(decimal.NewFromInt(17451)))
	require.NotNil(t, m.Results().BigBillScenario)
	assert.True(t, m.Results().BigBillScenario.NetAnnualImpact.Equal(decimal.NewFromInt(10693)))

	form := m.Form()
	assert.Equal(t, domain.Age30To44, form.AgeRange)
	assert.Equal(t, domain.FamilyMarriedJoint, form.FamilyStatus)
	assert.Equal(t, 2, form.NumberOfQualifyingChildren)
	assert.Equal(t, domain.IncomeRange("100k-150k"), form.IncomeRange)
	assert.True(t, form.IncludeBigBill)

	view := m.View()
	assert.Contains(t, view, "Current Law")
	assert.Contains(t, view, "Big Bill")
	assert.Contains(t, view, "+$17,451")
}

func TestModel_SkipsHSAForMedicare(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress(tea.KeyEnter)) // skip location
	for i := 0; i < 5; i++ {
		m, _ = choose(t, m, 0)
	}
	require.Equal(t, StepHealthcare, m.CurrentStep())

	m, _ = choose(t, m, 2) // medicare
	assert.Equal(t, StepIncome, m.CurrentStep())
	assert.Equal(t, domain.InsuranceMedicare, m.Form().InsuranceType)
	assert.False(t, m.Form().HasHSA)

	// Back skips over the HSA question as well
	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, "Health coverage", m.current().title)
	assert.Equal(t, 2, m.cursor)
}

func TestModel_ZipAndBack(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "78701")
	m, _ = update(t, m, keyPress(tea.KeyEnter))
	assert.Equal(t, "78701", m.Form().ZipCode)
	assert.Empty(t, m.Form().State)

	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, StepLocation, m.CurrentStep())
	assert.Equal(t, "78701", m.location.Value())

	// Esc on the first question stays put
	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, StepLocation, m.CurrentStep())
}

func TestModel_LocationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown state", "ZZ", `unknown state code "ZZ"`},
		{"short zip", "123", "enter a 5-digit ZIP code or a 2-letter state code"},
		{"letters in zip", "12a45", "enter a 5-digit ZIP code or a 2-letter state code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m = typeText(t, m, tt.input)
			m, _ = update(t, m, keyPress(tea.KeyEnter))

			require.Error(t, m.locationErr)
			assert.Equal(t, tt.want, m.locationErr.Error())
			assert.Equal(t, StepLocation, m.CurrentStep())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestModel_ResultsKeys(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "78701")
	m, _ = update(t, m, keyPress(tea.KeyEnter))
	m, _ = choose(t, m, 0) // 18-29
	m, _ = choose(t, m, 0) // single
	m, _ = choose(t, m, 0)
	m, _ = choose(t, m, 0)
	m, _ = choose(t, m, 2) // self-employed
	m, _ = choose(t, m, 1) // marketplace
	m, _ = choose(t, m, 0) // no HSA
	m, _ = choose(t, m, 1) // 25k-50k
	m, cmd := choose(t, m, 1)
	m = complete(t, m, cmd)

	require.NotNil(t, m.Results())
	assert.True(t, m.Results().NetAnnualImpact.Equal(decimal.NewFromInt(1521)))
	assert.Same(t, m.Results(), m.selectedResults())

	m, _ = update(t, m, keyPress(tea.KeyTab))
	assert.Same(t, m.Results().BigBillScenario, m.selectedResults())
	assert.True(t, m.selectedResults().NetAnnualImpact.Equal(decimal.NewFromInt(240)))

	m, _ = update(t, m, keyPress(tea.KeyEsc))
	assert.Equal(t, StepIncome, m.CurrentStep())
	assert.Equal(t, 1, m.cursor)

	m, cmd = choose(t, m, 1)
	m = complete(t, m, cmd)
	m, _ = update(t, m, runes("r"))
	assert.Equal(t, StepLocation, m.CurrentStep())
	assert.Equal(t, domain.FormData{}, m.Form())
	assert.Nil(t, m.Results())
}

func TestModel_NoBigBillToggle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, keyPress(tea.KeyEnter))
	for i := 0; i < 8; i++ {
		m, _ = choose(t, m, 0)
	}
	m, cmd := choose(t, m, 0) // no big bill
	m = complete(t, m, cmd)

	require.NotNil(t, m.Results())
	assert.Nil(t, m.Results().BigBillScenario)
	assert.False(t, m.Form().IncludeBigBill)

	m, _ = update(t, m, keyPress(tea.KeyTab))
	assert.False(t, m.showBigBill)
	assert.NotContains(t, m.View(), "switch scenario")
}

func TestModel_CalculationError(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, CalculationCompleteMsg{Err: errors.New("boom")})
	assert.Contains(t, m.View(), "Error: boom")

	m, _ = update(t, m, runes("x"))
	assert.NoError(t, m.err)
	assert.Equal(t, StepLocation, m.CurrentStep())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	// q is text while the location input has focus
	next, _ := update(t, m, runes("q"))
	assert.Equal(t, "q", next.location.Value())

	_, cmd := update(t, m, keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m, _ = update(t, m, keyPress(tea.KeyEnter))
	_, cmd = update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestParseLocation(t *testing.T) {
	known := func(code domain.StateCode) bool { return code == "TX" }

	zip, state, err := parseLocation("78701", known)
	require.NoError(t, err)
	assert.Equal(t, "78701", zip)
	assert.Empty(t, state)

	zip, state, err = parseLocation("tx", known)
	require.NoError(t, err)
	assert.Empty(t, zip)
	assert.Equal(t, domain.StateCode("TX"), state)

	zip, state, err = parseLocation("", known)
	require.NoError(t, err)
	assert.Empty(t, zip)
	assert.Empty(t, state)

	_, _, err = parseLocation("Texas", known)
	assert.Error(t, err)
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "Location", StepLocation.String())
	assert.Equal(t, "Results", StepResults.String())
	assert.Equal(t, "Unknown", Step(99).String())
	assert.Len(t, AllSteps(), 6)
}
