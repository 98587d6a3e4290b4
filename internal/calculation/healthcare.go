package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// HealthcareProfile is the household snapshot the healthcare estimate reads
type HealthcareProfile struct {
	InsuranceType    domain.InsuranceType
	AgeRange         domain.AgeRange
	FamilyStatus     domain.FamilyStatus
	EmploymentStatus domain.EmploymentStatus
	HasHSA           bool
	Income           decimal.Decimal
	FamilyCoverage   bool
	HouseholdSize    int
	// StateMultiplier is the state cost-of-living index / 100, or 1 when the state is unknown
	StateMultiplier decimal.Decimal
}

// HealthcareCostCalculator estimates annual out-of-pocket healthcare costs
type HealthcareCostCalculator struct {
	Rules        domain.HealthcareRules
	MedicareCalc *MedicareCalculator
}

// NewHealthcareCostCalculator creates a healthcare cost calculator from reference rules
func NewHealthcareCostCalculator(rules domain.HealthcareRules) *HealthcareCostCalculator {
	return &HealthcareCostCalculator{
		Rules:        rules,
		MedicareCalc: NewMedicareCalculator(rules.Medicare),
	}
}

// CalculateHealthcareCosts returns current-law and proposed annual costs, both non-negative
func (hcc *HealthcareCostCalculator) CalculateHealthcareCosts(p HealthcareProfile) domain.HealthcareCosts {
	if p.StateMultiplier.IsZero() {
		p.StateMultiplier = one
	}

	current := hcc.currentCost(p)
	proposed := hcc.proposedCost(p, current)

	return domain.HealthcareCosts{
		Current:  decimal.Max(current, decimal.Zero),
		Proposed: decimal.Max(proposed, decimal.Zero),
	}
}

// AgeMultiplier returns the premium multiplier for an age band, 1.0 when unknown
func (hcc *HealthcareCostCalculator) AgeMultiplier(age domain.AgeRange) decimal.Decimal {
	switch age {
	case domain.Age18To29, domain.Age30To44, domain.Age45To64, domain.Age65AndUp:
		if m, ok := hcc.Rules.AgeMultipliers[age]; ok {
			return m
		}
		return one
	default:
		return one
	}
}

// PovertyRatio is household income as a multiple of the federal poverty level
func (hcc *HealthcareCostCalculator) PovertyRatio(p HealthcareProfile) decimal.Decimal {
	fpl := hcc.Rules.Poverty.Level(p.HouseholdSize)
	if !fpl.IsPositive() {
		return decimal.Zero
	}
	return p.Income.Div(fpl)
}

func (hcc *HealthcareCostCalculator) basePremium(p HealthcareProfile) decimal.Decimal {
	return hcc.Rules.Baseline.Premium.For(p.FamilyCoverage).
		Mul(hcc.AgeMultiplier(p.AgeRange)).
		Mul(p.StateMultiplier)
}

func (hcc *HealthcareCostCalculator) currentCost(p HealthcareProfile) decimal.Decimal {
	switch p.InsuranceType {
	case domain.InsuranceEmployer:
		return hcc.employerCost(p)
	case domain.InsuranceMarketplace:
		return hcc.marketplaceCost(p, hcc.Rules.Marketplace.SubsidyTiers)
	case domain.InsuranceMedicare:
		return hcc.MedicareCalc.AnnualCost(p.Income, p.FamilyStatus == domain.FamilyMarriedJoint)
	case domain.InsuranceMedicaid:
		return hcc.Rules.Medicaid.For(p.FamilyCoverage)
	case domain.InsuranceMilitary:
		return hcc.Rules.Military
	case domain.InsuranceUninsured:
		return hcc.Rules.PrescriptionBaseline.Add(hcc.Rules.UninsuredServices.For(p.FamilyCoverage))
	default:
		return hcc.employerCost(p)
	}
}

func (hcc *HealthcareCostCalculator) employerCost(p HealthcareProfile) decimal.Decimal {
	rules := hcc.Rules.Employer

	contribution := hcc.employerContribution(p)
	premium := hcc.basePremium(p).Mul(one.Sub(contribution))

	factor := one
	if f, ok := rules.CostSharingFactors[p.EmploymentStatus]; ok {
		factor = f
	}
	costSharing := hcc.Rules.Baseline.Deductible.For(p.FamilyCoverage).Mul(rules.CostSharingShare).Mul(factor)

	return hcc.withHSA(p, premium, costSharing)
}

func (hcc *HealthcareCostCalculator) employerContribution(p HealthcareProfile) decimal.Decimal {
	rules := hcc.Rules.Employer
	if p.EmploymentStatus == domain.EmploymentPartTime {
		return rules.PartTimeContribution
	}
	for _, tier := range rules.ContributionTiers {
		if tier.Below.IsZero() || p.Income.LessThan(tier.Below) {
			return tier.Value
		}
	}
	return decimal.Zero
}

func (hcc *HealthcareCostCalculator) marketplaceCost(p HealthcareProfile, tiers []domain.RatioTier) decimal.Decimal {
	subsidy := subsidyFor(hcc.PovertyRatio(p), tiers)
	premium := hcc.basePremium(p).Mul(one.Sub(subsidy))
	costSharing := hcc.Rules.Baseline.Deductible.For(p.FamilyCoverage).Mul(hcc.Rules.Marketplace.CostSharingShare)
	return hcc.withHSA(p, premium, costSharing)
}

// withHSA lowers the premium, raises deductible exposure and credits the
// tax saved on a maximum HSA contribution.
func (hcc *HealthcareCostCalculator) withHSA(p HealthcareProfile, premium, costSharing decimal.Decimal) decimal.Decimal {
	if !p.HasHSA {
		return premium.Add(costSharing)
	}
	hsa := hcc.Rules.HSA
	premium = premium.Mul(hsa.PremiumFactor)
	costSharing = costSharing.Mul(hsa.CostSharingFactor)
	taxSavings := hsa.ContributionLimit.For(p.FamilyCoverage).Mul(hsa.TaxRate)
	return premium.Add(costSharing).Sub(taxSavings)
}

func subsidyFor(ratio decimal.Decimal, tiers []domain.RatioTier) decimal.Decimal {
	for _, tier := range tiers {
		if ratio.LessThanOrEqual(tier.UpTo) {
			return tier.Subsidy
		}
	}
	return decimal.Zero
}

func (hcc *HealthcareCostCalculator) proposedCost(p HealthcareProfile, current decimal.Decimal) decimal.Decimal {
	rules := hcc.Rules.Proposed
	cost := current

	switch p.InsuranceType {
	case domain.InsuranceMarketplace:
		cost = hcc.marketplaceCost(p, rules.SubsidyTiers)
		cost = decimal.Max(cost, rules.PublicOptionFloor)
	case domain.InsuranceMedicare, domain.InsuranceMedicaid, domain.InsuranceMilitary, domain.InsuranceUninsured:
	case domain.InsuranceEmployer:
		cost = hcc.proposedEmployerCost(p, cost)
	default:
		cost = hcc.proposedEmployerCost(p, cost)
	}

	if p.AgeRange == domain.Age45To64 && medicareOptionEligible(p.InsuranceType) {
		cost = decimal.Min(cost, rules.MedicareOptionPrice.For(p.FamilyCoverage))
	}

	rxSpend := hcc.Rules.PrescriptionBaseline.Mul(hcc.AgeMultiplier(p.AgeRange)).Mul(p.StateMultiplier)
	cost = cost.Sub(decimal.Max(rxSpend.Sub(rules.PrescriptionCap), decimal.Zero))

	if p.InsuranceType == domain.InsuranceUninsured && hcc.PovertyRatio(p).LessThanOrEqual(rules.MedicaidExpansionRatio) {
		cost = decimal.Zero
	}

	return cost
}

func (hcc *HealthcareCostCalculator) proposedEmployerCost(p HealthcareProfile, cost decimal.Decimal) decimal.Decimal {
	rules := hcc.Rules.Proposed
	if p.Income.LessThan(rules.SmallBusinessIncomeLimit) {
		cost = cost.Mul(rules.SmallBusinessFactor)
	}
	if p.HasHSA {
		cost = cost.Sub(rules.HSAAdditionalContribution.Mul(hcc.Rules.HSA.TaxRate))
	}
	return decimal.Min(cost, rules.OutOfPocketCap.For(p.FamilyCoverage))
}

func medicareOptionEligible(t domain.InsuranceType) bool {
	switch t {
	case domain.InsuranceMedicare, domain.InsuranceMedicaid, domain.InsuranceMilitary:
		return false
	case domain.InsuranceEmployer, domain.InsuranceMarketplace, domain.InsuranceUninsured:
		return true
	default:
		return true
	}
}
