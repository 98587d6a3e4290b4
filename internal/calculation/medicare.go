package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// MedicareCalculator handles Medicare premium calculations including IRMAA
type MedicareCalculator struct {
	Rules domain.MedicareRules
}

// NewMedicareCalculator creates a Medicare calculator from reference rules
func NewMedicareCalculator(rules domain.MedicareRules) *MedicareCalculator {
	return &MedicareCalculator{Rules: rules}
}

// MonthlyBasePremium is Part B + Part D + Medigap before any surcharge
func (mc *MedicareCalculator) MonthlyBasePremium() decimal.Decimal {
	return mc.Rules.PartBMonthly.Add(mc.Rules.PartDMonthly).Add(mc.Rules.MedigapMonthly)
}

// MonthlyIRMAASurcharge returns the surcharge of the highest tier whose threshold income exceeds
func (mc *MedicareCalculator) MonthlyIRMAASurcharge(income decimal.Decimal, isMarriedFilingJointly bool) decimal.Decimal {
	surcharge := decimal.Zero
	for _, tier := range mc.Rules.IRMAATiers {
		if income.GreaterThan(thresholdFor(tier, isMarriedFilingJointly)) {
			surcharge = tier.MonthlySurcharge
		}
	}
	return surcharge
}

// AnnualCost returns twelve months of premiums plus surcharge
func (mc *MedicareCalculator) AnnualCost(income decimal.Decimal, isMarriedFilingJointly bool) decimal.Decimal {
	monthly := mc.MonthlyBasePremium().Add(mc.MonthlyIRMAASurcharge(income, isMarriedFilingJointly))
	return monthly.Mul(monthsPerYear)
}

func thresholdFor(tier domain.IRMAAThreshold, isMarriedFilingJointly bool) decimal.Decimal {
	if isMarriedFilingJointly {
		return tier.IncomeThresholdJoint
	}
	return tier.IncomeThresholdSingle
}
