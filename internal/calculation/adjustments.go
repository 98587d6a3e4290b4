package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred          = decimal.NewFromInt(100)
	hundredThousand  = decimal.NewFromInt(100000)
	costOfLivingStep = decimal.NewFromInt(200)
	two              = decimal.NewFromInt(2)
)

// AdjustmentCalculator computes the state, energy and employment adjustments
type AdjustmentCalculator struct {
	Energy     domain.EnergyRules
	Employment domain.EmploymentRules
}

// NewAdjustmentCalculator creates an adjustment calculator from reference rules
func NewAdjustmentCalculator(energy domain.EnergyRules, employment domain.EmploymentRules) *AdjustmentCalculator {
	return &AdjustmentCalculator{Energy: energy, Employment: employment}
}

// StateAdjustment is state income tax plus a cost-of-living premium of $200
// per index point per $100k of income. Zero when the state is unknown.
func (ac *AdjustmentCalculator) StateAdjustment(income decimal.Decimal, state domain.StateRules, known bool) decimal.Decimal {
	if !known {
		return decimal.Zero
	}
	tax := income.Mul(state.IncomeTaxRate)
	col := state.CostOfLivingIndex.Sub(hundred).Mul(income.Div(hundredThousand)).Mul(costOfLivingStep)
	return tax.Add(col)
}

// EnergyCost applies the state's linear energy formula, scaled by income
func (ac *AdjustmentCalculator) EnergyCost(income decimal.Decimal, code domain.StateCode) decimal.Decimal {
	formula := ac.Energy.Default
	switch code {
	case domain.StateCalifornia, domain.StateTexas, domain.StateNewYork, domain.StateFlorida, domain.StatePennsylvania:
		if f, ok := ac.Energy.Formulas[code]; ok {
			formula = f
		}
	default:
	}

	scalar := income.Div(ac.Energy.ScalarDivisor)
	scalar = decimal.Max(ac.Energy.ScalarMin, decimal.Min(ac.Energy.ScalarMax, scalar))

	return formula.Apply(income).Mul(scalar)
}

// EmploymentRate returns the tax-complexity rate for an employment status
func (ac *AdjustmentCalculator) EmploymentRate(status domain.EmploymentStatus) decimal.Decimal {
	rules := ac.Employment
	halfSE := rules.SelfEmploymentTaxRate.Div(two)

	switch status {
	case domain.EmploymentSelfEmployed:
		return decimal.Min(halfSE, rules.SelfEmployedCap)
	case domain.EmploymentContract:
		return decimal.Min(halfSE, rules.ContractCap)
	case domain.EmploymentPartTime:
		return rules.PartTimeRate
	case domain.EmploymentFullTime:
		return rules.FullTimeRate
	case domain.EmploymentUnemployed, domain.EmploymentRetired, domain.EmploymentStudent, domain.EmploymentUnable:
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

// EmploymentAdjustment is income times the employment rate
func (ac *AdjustmentCalculator) EmploymentAdjustment(income decimal.Decimal, status domain.EmploymentStatus) decimal.Decimal {
	return income.Mul(ac.EmploymentRate(status))
}
