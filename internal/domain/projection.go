package domain

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Results are consumed by browser charts; emit decimals as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Scenario names echoed in PolicyResults.Scenario
const (
	ScenarioCurrentLaw = "current-law"
	ScenarioBigBill    = "big-bill"
)

// Breakdown categories, in display order
const (
	CategoryFederalTax = "Federal Income Tax"
	CategoryHealthcare = "Healthcare"
	CategoryStateLocal = "State & Local"
	CategoryEnergy     = "Energy"
	CategoryEmployment = "Employment"
)

// TaxVariant selects which proposed tax computation a scenario compares against current law
type TaxVariant string

const (
	TaxVariantProposed TaxVariant = "proposed"
	TaxVariantBigBill  TaxVariant = "big-bill"
)

// PolicyParams parameterises one run of the scenario pipeline
type PolicyParams struct {
	Name                       string          `yaml:"name" json:"name"`
	Label                      string          `yaml:"label" json:"label"`
	TaxVariant                 TaxVariant      `yaml:"tax_variant" json:"tax_variant"`
	HealthcareImpactMultiplier decimal.Decimal `yaml:"healthcare_impact_multiplier" json:"healthcare_impact_multiplier"`
	ProposedCostMultiplier     decimal.Decimal `yaml:"proposed_cost_multiplier" json:"proposed_cost_multiplier"`
	DeficitPerBaseIncome       decimal.Decimal `yaml:"deficit_per_base_income" json:"deficit_per_base_income"`
	DeficitBaseIncome          decimal.Decimal `yaml:"deficit_base_income" json:"deficit_base_income"`
	RecessionBaseline          decimal.Decimal `yaml:"recession_baseline" json:"recession_baseline"`
	RecessionReduction         decimal.Decimal `yaml:"recession_reduction" json:"recession_reduction"`
	RecessionFloor             decimal.Decimal `yaml:"recession_floor" json:"recession_floor"`
	CommunityBonus             bool            `yaml:"community_bonus" json:"community_bonus"`
}

// CommunityImpact holds the heuristic community indicators
type CommunityImpact struct {
	SchoolFunding  decimal.Decimal `json:"schoolFunding"`  // percent change
	Infrastructure decimal.Decimal `json:"infrastructure"` // dollars
	Jobs           decimal.Decimal `json:"jobs"`
}

// Timeline is the cumulative net impact over 5, 10 and 20 years
type Timeline struct {
	FiveYear   decimal.Decimal `json:"fiveYear"`
	TenYear    decimal.Decimal `json:"tenYear"`
	TwentyYear decimal.Decimal `json:"twentyYear"`
}

// BreakdownItem is one row of the per-category impact table
type BreakdownItem struct {
	Category    string          `json:"category"`
	Current     decimal.Decimal `json:"current"`
	Proposed    decimal.Decimal `json:"proposed"`
	Impact      decimal.Decimal `json:"impact"`
	Description string          `json:"description"`
}

// PolicyResults is the complete output of a policy impact calculation.
// Positive impacts mean the household pays more.
type PolicyResults struct {
	AnnualTaxImpact        decimal.Decimal `json:"annualTaxImpact"`
	AnnualHealthcareImpact decimal.Decimal `json:"annualHealthcareImpact"`
	AnnualEnergyImpact     decimal.Decimal `json:"annualEnergyImpact"`
	StateAdjustment        decimal.Decimal `json:"stateAdjustment"`
	EmploymentAdjustment   decimal.Decimal `json:"employmentAdjustment"`
	NetAnnualImpact        decimal.Decimal `json:"netAnnualImpact"`
	DeficitImpact          decimal.Decimal `json:"deficitImpact"`
	RecessionProbability   decimal.Decimal `json:"recessionProbability"`
	HealthcareCosts        HealthcareCosts `json:"healthcareCosts"`
	CommunityImpact        CommunityImpact `json:"communityImpact"`
	Timeline               Timeline        `json:"timeline"`
	Breakdown              []BreakdownItem `json:"breakdown"`

	// Metadata
	Scenario    string          `json:"scenario"`
	Income      decimal.Decimal `json:"income"`
	LastUpdated string          `json:"lastUpdated"`

	BigBillScenario *PolicyResults `json:"bigBillScenario,omitempty"`
}

// BreakdownFor returns the breakdown row for a category
func (r *PolicyResults) BreakdownFor(category string) (BreakdownItem, bool) {
	for _, item := range r.Breakdown {
		if item.Category == category {
			return item, true
		}
	}
	return BreakdownItem{}, false
}
