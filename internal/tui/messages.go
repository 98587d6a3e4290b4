package tui

import "github.com/rgehrsitz/billimpact/internal/domain"

// Step is a page of the wizard
type Step int

const (
	StepLocation Step = iota
	StepHousehold
	StepEmployment
	StepHealthcare
	StepIncome
	StepResults
)

// AllSteps lists the wizard pages in order
func AllSteps() []Step {
	return []Step{StepLocation, StepHousehold, StepEmployment, StepHealthcare, StepIncome, StepResults}
}

func (s Step) String() string {
	switch s {
	case StepLocation:
		return "Location"
	case StepHousehold:
		return "Household"
	case StepEmployment:
		return "Employment"
	case StepHealthcare:
		return "Healthcare"
	case StepIncome:
		return "Income"
	case StepResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Message types for the Bubble Tea update cycle

// CalculationStartedMsg signals a calculation has begun
type CalculationStartedMsg struct{}

// CalculationCompleteMsg carries the engine output or a validation error
type CalculationCompleteMsg struct {
	Results *domain.PolicyResults
	Err     error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
