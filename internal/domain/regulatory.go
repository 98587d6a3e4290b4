package domain

import (
	"github.com/shopspring/decimal"
)

// ReferenceData contains every static table the calculator reads. It is loaded
// once from YAML at startup and treated as read-only afterwards.
type ReferenceData struct {
	Metadata    ReferenceMetadata        `yaml:"metadata" json:"metadata"`
	Income      IncomeRules              `yaml:"income" json:"income"`
	FederalTax  FederalTaxRules          `yaml:"federal_tax" json:"federal_tax"`
	Policy      PolicyConstants          `yaml:"proposed_policy" json:"proposed_policy"`
	Healthcare  HealthcareRules          `yaml:"healthcare" json:"healthcare"`
	States      map[StateCode]StateRules `yaml:"states" json:"states"`
	ZipPrefixes []ZipPrefixRange         `yaml:"zip_prefixes" json:"zip_prefixes"`
	Energy      EnergyRules              `yaml:"energy" json:"energy"`
	Employment  EmploymentRules          `yaml:"employment" json:"employment"`
	Community   CommunityRules           `yaml:"community" json:"community"`
	Scenarios   ScenarioRules            `yaml:"scenarios" json:"scenarios"`
}

// ReferenceMetadata contains information about the reference data
type ReferenceMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// IncomeRules maps income ranges to representative midpoints
type IncomeRules struct {
	Midpoints map[IncomeRange]decimal.Decimal `yaml:"midpoints" json:"midpoints"`
	Default   decimal.Decimal                 `yaml:"default" json:"default"`
}

// TaxBracket represents a federal tax bracket. A zero Max marks the open top bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether the bracket has no upper limit
func (b TaxBracket) Unbounded() bool {
	return b.Max.IsZero()
}

// FederalTaxRules contains federal income tax rules
type FederalTaxRules struct {
	Brackets          []TaxBracket                     `yaml:"brackets" json:"brackets"`
	StandardDeduction map[FamilyStatus]decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	ChildCredit       ChildCreditRules                 `yaml:"child_credit" json:"child_credit"`
}

// ChildCreditRules describes the dependent credits and the child-credit phase-out
type ChildCreditRules struct {
	PerChild               decimal.Decimal `yaml:"per_child" json:"per_child"`
	PerOtherDependent      decimal.Decimal `yaml:"per_other_dependent" json:"per_other_dependent"`
	PhaseOutThreshold      decimal.Decimal `yaml:"phase_out_threshold" json:"phase_out_threshold"`
	PhaseOutThresholdJoint decimal.Decimal `yaml:"phase_out_threshold_joint" json:"phase_out_threshold_joint"`
	PhaseOutStep           decimal.Decimal `yaml:"phase_out_step" json:"phase_out_step"`
	PhaseOutReduction      decimal.Decimal `yaml:"phase_out_reduction" json:"phase_out_reduction"`
}

// PolicyConstants holds the fixed adjustments of the proposed and big-bill tax variants
type PolicyConstants struct {
	StandardDeductionIncrease decimal.Decimal `yaml:"standard_deduction_increase" json:"standard_deduction_increase"`
	TopRateIncrease           decimal.Decimal `yaml:"top_rate_increase" json:"top_rate_increase"`
	EnhancedChildCredit       decimal.Decimal `yaml:"enhanced_child_credit" json:"enhanced_child_credit"`
	BigBill                   BigBillTaxRules `yaml:"big_bill" json:"big_bill"`
}

// BigBillTaxRules parameterises the flat big-bill reduction layered on current-law tax
type BigBillTaxRules struct {
	DeductionBonus     decimal.Decimal `yaml:"deduction_bonus" json:"deduction_bonus"`
	DeductionBonusRate decimal.Decimal `yaml:"deduction_bonus_rate" json:"deduction_bonus_rate"`
	RateCut            decimal.Decimal `yaml:"rate_cut" json:"rate_cut"`
	RateCutFloor       decimal.Decimal `yaml:"rate_cut_floor" json:"rate_cut_floor"`
	RateCutSpan        decimal.Decimal `yaml:"rate_cut_span" json:"rate_cut_span"`
	DependentCredit    decimal.Decimal `yaml:"dependent_credit" json:"dependent_credit"`
}

// StateRules contains state-specific tax and cost figures
type StateRules struct {
	Name              string          `yaml:"name" json:"name"`
	IncomeTaxRate     decimal.Decimal `yaml:"income_tax_rate" json:"income_tax_rate"`
	SalesTaxRate      decimal.Decimal `yaml:"sales_tax_rate" json:"sales_tax_rate"`
	PropertyTaxRate   decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	CostOfLivingIndex decimal.Decimal `yaml:"cost_of_living_index" json:"cost_of_living_index"`
}

// ZipPrefixRange maps an inclusive range of three-digit ZIP prefixes to a state
type ZipPrefixRange struct {
	Low   int       `yaml:"low" json:"low"`
	High  int       `yaml:"high" json:"high"`
	State StateCode `yaml:"state" json:"state"`
}

// LinearFormula is base + slope × income
type LinearFormula struct {
	Base  decimal.Decimal `yaml:"base" json:"base"`
	Slope decimal.Decimal `yaml:"slope" json:"slope"`
}

// Apply evaluates the formula at income
func (f LinearFormula) Apply(income decimal.Decimal) decimal.Decimal {
	return f.Base.Add(f.Slope.Mul(income))
}

// EnergyRules contains the per-state energy cost formulas and the income scalar bounds
type EnergyRules struct {
	Formulas      map[StateCode]LinearFormula `yaml:"formulas" json:"formulas"`
	Default       LinearFormula               `yaml:"default" json:"default"`
	ScalarDivisor decimal.Decimal             `yaml:"scalar_divisor" json:"scalar_divisor"`
	ScalarMin     decimal.Decimal             `yaml:"scalar_min" json:"scalar_min"`
	ScalarMax     decimal.Decimal             `yaml:"scalar_max" json:"scalar_max"`
}

// EmploymentRules contains the employment-status tax-complexity rates
type EmploymentRules struct {
	SelfEmploymentTaxRate decimal.Decimal `yaml:"self_employment_tax_rate" json:"self_employment_tax_rate"`
	SelfEmployedCap       decimal.Decimal `yaml:"self_employed_cap" json:"self_employed_cap"`
	ContractCap           decimal.Decimal `yaml:"contract_cap" json:"contract_cap"`
	PartTimeRate          decimal.Decimal `yaml:"part_time_rate" json:"part_time_rate"`
	FullTimeRate          decimal.Decimal `yaml:"full_time_rate" json:"full_time_rate"`
}

// Bounds is an inclusive clamp range
type Bounds struct {
	Min decimal.Decimal `yaml:"min" json:"min"`
	Max decimal.Decimal `yaml:"max" json:"max"`
}

// Clamp limits v to the bounds
func (b Bounds) Clamp(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(b.Min, decimal.Min(b.Max, v))
}

// CommunityBonus is an additive/multiplicative adjustment to the community figures
type CommunityBonus struct {
	SchoolFunding        decimal.Decimal `yaml:"school_funding" json:"school_funding"`
	InfrastructureFactor decimal.Decimal `yaml:"infrastructure_factor" json:"infrastructure_factor"`
	Jobs                 decimal.Decimal `yaml:"jobs" json:"jobs"`
}

// CommunityRules contains the heuristic community-impact constants
type CommunityRules struct {
	BaseSchoolFunding       decimal.Decimal              `yaml:"base_school_funding" json:"base_school_funding"`
	BaseInfrastructure      decimal.Decimal              `yaml:"base_infrastructure" json:"base_infrastructure"`
	BaseJobs                decimal.Decimal              `yaml:"base_jobs" json:"base_jobs"`
	ReferenceIncome         decimal.Decimal              `yaml:"reference_income" json:"reference_income"`
	NationalPropertyTaxRate decimal.Decimal              `yaml:"national_property_tax_rate" json:"national_property_tax_rate"`
	NationalIncomeTaxRate   decimal.Decimal              `yaml:"national_income_tax_rate" json:"national_income_tax_rate"`
	StateBonuses            map[StateCode]CommunityBonus `yaml:"state_bonuses" json:"state_bonuses"`
	SchoolFundingBounds     Bounds                       `yaml:"school_funding_bounds" json:"school_funding_bounds"`
	InfrastructureBounds    Bounds                       `yaml:"infrastructure_bounds" json:"infrastructure_bounds"`
	JobsBounds              Bounds                       `yaml:"jobs_bounds" json:"jobs_bounds"`
	BigBillBonus            CommunityBonus               `yaml:"big_bill_bonus" json:"big_bill_bonus"`
}

// TimelineFactors are the fixed compounding factors of the multi-year projection
type TimelineFactors struct {
	FiveYear   decimal.Decimal `yaml:"five_year" json:"five_year"`
	TenYear    decimal.Decimal `yaml:"ten_year" json:"ten_year"`
	TwentyYear decimal.Decimal `yaml:"twenty_year" json:"twenty_year"`
}

// ScenarioRules holds the policy parameter sets run by the engine
type ScenarioRules struct {
	CurrentLaw PolicyParams    `yaml:"current_law" json:"current_law"`
	BigBill    PolicyParams    `yaml:"big_bill" json:"big_bill"`
	Timeline   TimelineFactors `yaml:"timeline" json:"timeline"`
}

// State looks up the rules for a state code
func (r *ReferenceData) State(code StateCode) (StateRules, bool) {
	if code == "" {
		return StateRules{}, false
	}
	rules, ok := r.States[code.Normalize()]
	return rules, ok
}

// StateForZip infers a state from the first three digits of a ZIP code
func (r *ReferenceData) StateForZip(zip string) (StateCode, bool) {
	if len(zip) < 3 {
		return "", false
	}
	prefix := 0
	for _, c := range zip[:3] {
		if c < '0' || c > '9' {
			return "", false
		}
		prefix = prefix*10 + int(c-'0')
	}
	for _, zr := range r.ZipPrefixes {
		if prefix >= zr.Low && prefix <= zr.High {
			return zr.State, true
		}
	}
	return "", false
}
