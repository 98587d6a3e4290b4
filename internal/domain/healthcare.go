package domain

import (
	"github.com/shopspring/decimal"
)

// FamilyAmount is a figure that differs between individual and family coverage
type FamilyAmount struct {
	Individual decimal.Decimal `yaml:"individual" json:"individual"`
	Family     decimal.Decimal `yaml:"family" json:"family"`
}

// For selects the family or individual figure
func (f FamilyAmount) For(family bool) decimal.Decimal {
	if family {
		return f.Family
	}
	return f.Individual
}

// IncomeTier maps incomes strictly below Below to Value. A zero Below is the catch-all tier.
type IncomeTier struct {
	Below decimal.Decimal `yaml:"below" json:"below"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// RatioTier maps an income-to-poverty ratio at or below UpTo to a subsidy fraction
type RatioTier struct {
	UpTo    decimal.Decimal `yaml:"up_to" json:"up_to"`
	Subsidy decimal.Decimal `yaml:"subsidy" json:"subsidy"`
}

// HealthcareRules contains the healthcare baselines and per-coverage constants
type HealthcareRules struct {
	Baseline             CoverageBaseline             `yaml:"baseline" json:"baseline"`
	AgeMultipliers       map[AgeRange]decimal.Decimal `yaml:"age_multipliers" json:"age_multipliers"`
	PrescriptionBaseline decimal.Decimal              `yaml:"prescription_baseline" json:"prescription_baseline"`
	Employer             EmployerCoverageRules        `yaml:"employer" json:"employer"`
	Marketplace          MarketplaceRules             `yaml:"marketplace" json:"marketplace"`
	HSA                  HSARules                     `yaml:"hsa" json:"hsa"`
	Medicare             MedicareRules                `yaml:"medicare" json:"medicare"`
	Medicaid             FamilyAmount                 `yaml:"medicaid" json:"medicaid"`
	Military             decimal.Decimal              `yaml:"military" json:"military"`
	UninsuredServices    FamilyAmount                 `yaml:"uninsured_services" json:"uninsured_services"`
	Poverty              PovertyGuidelines            `yaml:"poverty" json:"poverty"`
	Proposed             ProposedHealthcareRules      `yaml:"proposed" json:"proposed"`
}

// CoverageBaseline holds national average annual premiums and deductibles
type CoverageBaseline struct {
	Premium    FamilyAmount `yaml:"premium" json:"premium"`
	Deductible FamilyAmount `yaml:"deductible" json:"deductible"`
}

// EmployerCoverageRules describes employer contribution and employee cost sharing
type EmployerCoverageRules struct {
	PartTimeContribution decimal.Decimal                      `yaml:"part_time_contribution" json:"part_time_contribution"`
	ContributionTiers    []IncomeTier                         `yaml:"contribution_tiers" json:"contribution_tiers"`
	CostSharingShare     decimal.Decimal                      `yaml:"cost_sharing_share" json:"cost_sharing_share"`
	CostSharingFactors   map[EmploymentStatus]decimal.Decimal `yaml:"cost_sharing_factors" json:"cost_sharing_factors"`
}

// MarketplaceRules describes premium tax credit tiers and expected cost sharing
type MarketplaceRules struct {
	SubsidyTiers     []RatioTier     `yaml:"subsidy_tiers" json:"subsidy_tiers"`
	CostSharingShare decimal.Decimal `yaml:"cost_sharing_share" json:"cost_sharing_share"`
}

// HSARules describes how a high-deductible plan with an HSA shifts costs
type HSARules struct {
	PremiumFactor     decimal.Decimal `yaml:"premium_factor" json:"premium_factor"`
	CostSharingFactor decimal.Decimal `yaml:"cost_sharing_factor" json:"cost_sharing_factor"`
	ContributionLimit FamilyAmount    `yaml:"contribution_limit" json:"contribution_limit"`
	TaxRate           decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
}

// MedicareRules contains monthly Medicare premiums and IRMAA tiers
type MedicareRules struct {
	PartBMonthly   decimal.Decimal  `yaml:"part_b_monthly" json:"part_b_monthly"`
	PartDMonthly   decimal.Decimal  `yaml:"part_d_monthly" json:"part_d_monthly"`
	MedigapMonthly decimal.Decimal  `yaml:"medigap_monthly" json:"medigap_monthly"`
	IRMAATiers     []IRMAAThreshold `yaml:"irmaa_tiers" json:"irmaa_tiers"`
}

// IRMAAThreshold represents an IRMAA income threshold and the monthly surcharge above it
type IRMAAThreshold struct {
	IncomeThresholdSingle decimal.Decimal `yaml:"income_threshold_single" json:"income_threshold_single"`
	IncomeThresholdJoint  decimal.Decimal `yaml:"income_threshold_joint" json:"income_threshold_joint"`
	MonthlySurcharge      decimal.Decimal `yaml:"monthly_surcharge" json:"monthly_surcharge"`
}

// PovertyGuidelines is the federal poverty level for a one-person household plus the per-person step
type PovertyGuidelines struct {
	Base                decimal.Decimal `yaml:"base" json:"base"`
	PerAdditionalPerson decimal.Decimal `yaml:"per_additional_person" json:"per_additional_person"`
}

// Level returns the poverty line for a household of the given size
func (p PovertyGuidelines) Level(householdSize int) decimal.Decimal {
	if householdSize < 1 {
		householdSize = 1
	}
	return p.Base.Add(p.PerAdditionalPerson.Mul(decimal.NewFromInt(int64(householdSize - 1))))
}

// ProposedHealthcareRules contains the proposed-policy healthcare deltas
type ProposedHealthcareRules struct {
	SmallBusinessIncomeLimit  decimal.Decimal `yaml:"small_business_income_limit" json:"small_business_income_limit"`
	SmallBusinessFactor       decimal.Decimal `yaml:"small_business_factor" json:"small_business_factor"`
	HSAAdditionalContribution decimal.Decimal `yaml:"hsa_additional_contribution" json:"hsa_additional_contribution"`
	OutOfPocketCap            FamilyAmount    `yaml:"out_of_pocket_cap" json:"out_of_pocket_cap"`
	SubsidyTiers              []RatioTier     `yaml:"subsidy_tiers" json:"subsidy_tiers"`
	PublicOptionFloor         decimal.Decimal `yaml:"public_option_floor" json:"public_option_floor"`
	MedicareOptionPrice       FamilyAmount    `yaml:"medicare_option_price" json:"medicare_option_price"`
	PrescriptionCap           decimal.Decimal `yaml:"prescription_cap" json:"prescription_cap"`
	MedicaidExpansionRatio    decimal.Decimal `yaml:"medicaid_expansion_ratio" json:"medicaid_expansion_ratio"`
}

// HealthcareCosts is the annual cost estimate under current law and the proposal
type HealthcareCosts struct {
	Current  decimal.Decimal `json:"current"`
	Proposed decimal.Decimal `json:"proposed"`
}

// Impact is proposed minus current
func (h HealthcareCosts) Impact() decimal.Decimal {
	return h.Proposed.Sub(h.Current)
}

// IRMAARisk represents the IRMAA risk level of an income figure
type IRMAARisk string

const (
	// IRMAARiskSafe indicates income is comfortably below the first threshold
	IRMAARiskSafe IRMAARisk = "Safe"
	// IRMAARiskWarning indicates income is within the warning distance of the first threshold
	IRMAARiskWarning IRMAARisk = "Warning"
	// IRMAARiskBreach indicates at least one threshold is exceeded
	IRMAARiskBreach IRMAARisk = "Breach"
)

// IRMAAStatus is the IRMAA position of a Medicare profile
type IRMAAStatus struct {
	Risk                IRMAARisk       `json:"risk"`
	Tier                string          `json:"tier"`
	MonthlySurcharge    decimal.Decimal `json:"monthlySurcharge"`
	DistanceToThreshold decimal.Decimal `json:"distanceToThreshold"`
}
