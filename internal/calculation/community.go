package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

// Weights split each community figure into a fixed part and an income-driven part.
var (
	schoolFixedWeight  = decimal.NewFromFloat(0.8)
	schoolIncomeWeight = decimal.NewFromFloat(0.2)
	infraFixedWeight   = decimal.NewFromFloat(0.9)
	infraIncomeWeight  = decimal.NewFromFloat(0.1)
	jobsFixedWeight    = decimal.NewFromFloat(0.7)
	jobsIncomeWeight   = decimal.NewFromFloat(0.3)
)

// CommunityCalculator derives the heuristic school, infrastructure and jobs indicators
type CommunityCalculator struct {
	Rules domain.CommunityRules
}

// NewCommunityCalculator creates a community calculator from reference rules
func NewCommunityCalculator(rules domain.CommunityRules) *CommunityCalculator {
	return &CommunityCalculator{Rules: rules}
}

// CommunityInput is the location and income snapshot the indicators read
type CommunityInput struct {
	Income     decimal.Decimal
	State      domain.StateCode
	StateRules domain.StateRules
	KnownState bool
}

// CalculateCommunityImpact normalises, applies the state bonus, clamps, and
// when bigBill is set applies the big-bill bonus and clamps again.
func (cc *CommunityCalculator) CalculateCommunityImpact(in CommunityInput, bigBill bool) domain.CommunityImpact {
	r := cc.Rules

	incomeRatio := in.Income.Div(r.ReferenceIncome)
	propertyFactor, colFactor, taxFactor := one, one, one
	if in.KnownState {
		propertyFactor = in.StateRules.PropertyTaxRate.Div(r.NationalPropertyTaxRate)
		colFactor = in.StateRules.CostOfLivingIndex.Div(hundred)
		taxFactor = one.Sub(in.StateRules.IncomeTaxRate.Sub(r.NationalIncomeTaxRate))
	}

	school := r.BaseSchoolFunding.Mul(propertyFactor).Mul(schoolFixedWeight.Add(schoolIncomeWeight.Mul(incomeRatio)))
	infra := r.BaseInfrastructure.Mul(colFactor).Mul(infraFixedWeight.Add(infraIncomeWeight.Mul(incomeRatio)))
	jobs := r.BaseJobs.Mul(taxFactor).Mul(jobsFixedWeight.Add(jobsIncomeWeight.Mul(incomeRatio)))

	if bonus, ok := cc.stateBonus(in); ok {
		school, infra, jobs = applyBonus(bonus, school, infra, jobs)
	}
	school, infra, jobs = cc.clamp(school, infra, jobs)

	if bigBill {
		school, infra, jobs = applyBonus(r.BigBillBonus, school, infra, jobs)
		school, infra, jobs = cc.clamp(school, infra, jobs)
	}

	return domain.CommunityImpact{
		SchoolFunding:  school.Round(1),
		Infrastructure: infra.Round(0),
		Jobs:           jobs.Round(0),
	}
}

func (cc *CommunityCalculator) stateBonus(in CommunityInput) (domain.CommunityBonus, bool) {
	if !in.KnownState {
		return domain.CommunityBonus{}, false
	}
	switch in.State {
	case domain.StateCalifornia, domain.StateTexas, domain.StateNewYork, domain.StateFlorida, domain.StatePennsylvania:
		bonus, ok := cc.Rules.StateBonuses[in.State]
		return bonus, ok
	default:
		return domain.CommunityBonus{}, false
	}
}

func (cc *CommunityCalculator) clamp(school, infra, jobs decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	return cc.Rules.SchoolFundingBounds.Clamp(school),
		cc.Rules.InfrastructureBounds.Clamp(infra),
		cc.Rules.JobsBounds.Clamp(jobs)
}

func applyBonus(b domain.CommunityBonus, school, infra, jobs decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	factor := b.InfrastructureFactor
	if factor.IsZero() {
		factor = one
	}
	return school.Add(b.SchoolFunding), infra.Mul(factor), jobs.Add(b.Jobs)
}
