package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. One bracket table is shared by all filing statuses; only the standard
//    deduction and the child-credit phase-out threshold vary by status.
//
// 2. The child credit phases out by a fixed reduction per whole step of
//    income over the threshold. Other-dependent credits never phase out.
//
// 3. The big-bill variant is a flat reduction applied to current-law tax,
//    not a separate bracket computation.

// TaxInput is the household snapshot the tax variants read
type TaxInput struct {
	Income          decimal.Decimal
	Status          domain.FamilyStatus
	Children        int
	OtherDependents int
}

// TotalDependents is children plus other dependents
func (in TaxInput) TotalDependents() int {
	return in.Children + in.OtherDependents
}

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	Rules  domain.FederalTaxRules
	Policy domain.PolicyConstants
}

// NewFederalTaxCalculator creates a federal tax calculator from reference rules
func NewFederalTaxCalculator(rules domain.FederalTaxRules, policy domain.PolicyConstants) *FederalTaxCalculator {
	return &FederalTaxCalculator{Rules: rules, Policy: policy}
}

// CurrentLawTax returns the current-law liability after credits
func (ftc *FederalTaxCalculator) CurrentLawTax(in TaxInput) decimal.Decimal {
	return ftc.liability(in, ftc.StandardDeduction(in.Status), ftc.Rules.Brackets, ftc.Rules.ChildCredit.PerChild)
}

// ProposedTax returns the liability under the proposal: a larger deduction,
// a higher top rate and an enhanced per-child credit.
func (ftc *FederalTaxCalculator) ProposedTax(in TaxInput) decimal.Decimal {
	brackets := make([]domain.TaxBracket, len(ftc.Rules.Brackets))
	copy(brackets, ftc.Rules.Brackets)
	if n := len(brackets); n > 0 {
		brackets[n-1].Rate = brackets[n-1].Rate.Add(ftc.Policy.TopRateIncrease)
	}

	deduction := ftc.StandardDeduction(in.Status).Add(ftc.Policy.StandardDeductionIncrease)
	return ftc.liability(in, deduction, brackets, ftc.Policy.EnhancedChildCredit)
}

// BigBillTax returns current-law tax less the big-bill composite reduction
func (ftc *FederalTaxCalculator) BigBillTax(in TaxInput) decimal.Decimal {
	bb := ftc.Policy.BigBill

	deductionSavings := bb.DeductionBonus.Mul(bb.DeductionBonusRate)

	cutBase := decimal.Max(in.Income.Sub(bb.RateCutFloor), decimal.Zero)
	cutBase = decimal.Min(cutBase, bb.RateCutSpan)
	rateSavings := cutBase.Mul(bb.RateCut)

	dependentCredit := bb.DependentCredit.Mul(decimal.NewFromInt(int64(in.TotalDependents())))

	reduction := deductionSavings.Add(rateSavings).Add(dependentCredit)
	return decimal.Max(ftc.CurrentLawTax(in).Sub(reduction), decimal.Zero)
}

// StandardDeduction returns the deduction for a filing status, falling back to single
func (ftc *FederalTaxCalculator) StandardDeduction(status domain.FamilyStatus) decimal.Decimal {
	switch status {
	case domain.FamilySingle, domain.FamilyMarriedJoint, domain.FamilyMarriedSeparate, domain.FamilyHeadOfHousehold:
		return ftc.Rules.StandardDeduction[status]
	default:
		return ftc.Rules.StandardDeduction[domain.FamilySingle]
	}
}

// BracketTax integrates taxable income over the brackets
func BracketTax(taxableIncome decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	totalTax := decimal.Zero
	prevMax := decimal.Zero

	for _, bracket := range brackets {
		if taxableIncome.LessThanOrEqual(prevMax) {
			break
		}

		upper := taxableIncome
		if !bracket.Unbounded() {
			upper = decimal.Min(taxableIncome, bracket.Max)
		}
		incomeInBracket := upper.Sub(decimal.Max(prevMax, bracket.Min))
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}

		if bracket.Unbounded() {
			break
		}
		prevMax = bracket.Max
	}

	return totalTax
}

// ChildCredit returns the dependent credits after the child-credit phase-out
func (ftc *FederalTaxCalculator) ChildCredit(in TaxInput, perChild decimal.Decimal) decimal.Decimal {
	rules := ftc.Rules.ChildCredit

	childCredit := perChild.Mul(decimal.NewFromInt(int64(in.Children)))

	threshold := rules.PhaseOutThreshold
	if in.Status == domain.FamilyMarriedJoint {
		threshold = rules.PhaseOutThresholdJoint
	}
	if in.Income.GreaterThan(threshold) && rules.PhaseOutStep.IsPositive() {
		steps := in.Income.Sub(threshold).Div(rules.PhaseOutStep).Floor()
		childCredit = decimal.Max(childCredit.Sub(steps.Mul(rules.PhaseOutReduction)), decimal.Zero)
	}

	otherCredit := rules.PerOtherDependent.Mul(decimal.NewFromInt(int64(in.OtherDependents)))
	return childCredit.Add(otherCredit)
}

func (ftc *FederalTaxCalculator) liability(in TaxInput, deduction decimal.Decimal, brackets []domain.TaxBracket, perChild decimal.Decimal) decimal.Decimal {
	taxableIncome := decimal.Max(in.Income.Sub(deduction), decimal.Zero)
	tax := BracketTax(taxableIncome, brackets)
	return decimal.Max(tax.Sub(ftc.ChildCredit(in, perChild)), decimal.Zero)
}
