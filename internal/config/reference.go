package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed reference_2025.yaml
var defaultReferenceYAML []byte

// ReferenceLoader loads and validates reference data tables
type ReferenceLoader struct{}

// NewReferenceLoader creates a new reference loader
func NewReferenceLoader() *ReferenceLoader {
	return &ReferenceLoader{}
}

// Default returns the embedded reference tables
func (rl *ReferenceLoader) Default() (*domain.ReferenceData, error) {
	ref, err := rl.Parse(defaultReferenceYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded reference data: %w", err)
	}
	return ref, nil
}

// MustDefault returns the embedded reference tables and panics if they are invalid
func MustDefault() *domain.ReferenceData {
	ref, err := NewReferenceLoader().Default()
	if err != nil {
		panic(err)
	}
	return ref
}

// LoadFromFile loads reference tables from a YAML file
func (rl *ReferenceLoader) LoadFromFile(filename string) (*domain.ReferenceData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return rl.Parse(data)
}

// Load reads filename when set and falls back to the embedded tables otherwise
func (rl *ReferenceLoader) Load(filename string) (*domain.ReferenceData, error) {
	if filename == "" {
		return rl.Default()
	}
	return rl.LoadFromFile(filename)
}

// Parse decodes and validates reference tables
func (rl *ReferenceLoader) Parse(data []byte) (*domain.ReferenceData, error) {
	var ref domain.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rl.Validate(&ref); err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}

	return &ref, nil
}

// Validate checks that the tables are internally consistent
func (rl *ReferenceLoader) Validate(ref *domain.ReferenceData) error {
	if ref.Metadata.LastUpdated == "" {
		return fmt.Errorf("metadata.last_updated is required")
	}
	if err := rl.validateIncome(&ref.Income); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	if err := rl.validateFederalTax(&ref.FederalTax); err != nil {
		return fmt.Errorf("federal_tax: %w", err)
	}
	if err := rl.validateHealthcare(&ref.Healthcare); err != nil {
		return fmt.Errorf("healthcare: %w", err)
	}
	if err := rl.validateStates(ref); err != nil {
		return fmt.Errorf("states: %w", err)
	}
	if err := rl.validateEnergy(&ref.Energy); err != nil {
		return fmt.Errorf("energy: %w", err)
	}
	if err := rl.validateCommunity(&ref.Community); err != nil {
		return fmt.Errorf("community: %w", err)
	}
	if err := rl.validateScenario(&ref.Scenarios.CurrentLaw); err != nil {
		return fmt.Errorf("scenarios.current_law: %w", err)
	}
	if err := rl.validateScenario(&ref.Scenarios.BigBill); err != nil {
		return fmt.Errorf("scenarios.big_bill: %w", err)
	}
	return nil
}

func (rl *ReferenceLoader) validateIncome(income *domain.IncomeRules) error {
	if income.Default.IsNegative() {
		return fmt.Errorf("default cannot be negative")
	}
	for _, r := range domain.AllIncomeRanges() {
		midpoint, ok := income.Midpoints[r]
		if !ok {
			return fmt.Errorf("missing midpoint for %s", r)
		}
		if midpoint.IsNegative() {
			return fmt.Errorf("midpoint for %s cannot be negative", r)
		}
	}
	return nil
}

func (rl *ReferenceLoader) validateFederalTax(tax *domain.FederalTaxRules) error {
	if len(tax.Brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	prevMax := decimal.Zero
	for i, b := range tax.Brackets {
		if !b.Min.Equal(prevMax) {
			return fmt.Errorf("bracket %d: min %s does not continue from %s", i, b.Min, prevMax)
		}
		if !isFraction(b.Rate) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i)
		}
		last := i == len(tax.Brackets)-1
		if b.Unbounded() && !last {
			return fmt.Errorf("bracket %d: only the top bracket may be unbounded", i)
		}
		if !b.Unbounded() && b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max must exceed min", i)
		}
		prevMax = b.Max
	}
	for _, status := range domain.AllFamilyStatuses() {
		if _, ok := tax.StandardDeduction[status]; !ok {
			return fmt.Errorf("missing standard deduction for %s", status)
		}
	}
	if !tax.ChildCredit.PhaseOutStep.IsPositive() {
		return fmt.Errorf("child_credit.phase_out_step must be positive")
	}
	return nil
}

func (rl *ReferenceLoader) validateHealthcare(hc *domain.HealthcareRules) error {
	for _, age := range domain.AllAgeRanges() {
		m, ok := hc.AgeMultipliers[age]
		if !ok {
			return fmt.Errorf("missing age multiplier for %s", age)
		}
		if !m.IsPositive() {
			return fmt.Errorf("age multiplier for %s must be positive", age)
		}
	}
	if len(hc.Employer.ContributionTiers) == 0 {
		return fmt.Errorf("employer.contribution_tiers cannot be empty")
	}
	for i, tier := range hc.Employer.ContributionTiers {
		if !isFraction(tier.Value) {
			return fmt.Errorf("employer tier %d: contribution must be between 0 and 1", i)
		}
	}
	if err := validateRatioTiers(hc.Marketplace.SubsidyTiers); err != nil {
		return fmt.Errorf("marketplace.subsidy_tiers: %w", err)
	}
	if err := validateRatioTiers(hc.Proposed.SubsidyTiers); err != nil {
		return fmt.Errorf("proposed.subsidy_tiers: %w", err)
	}
	if !hc.Poverty.Base.IsPositive() {
		return fmt.Errorf("poverty.base must be positive")
	}
	prev := decimal.Zero
	for i, tier := range hc.Medicare.IRMAATiers {
		if tier.IncomeThresholdSingle.LessThanOrEqual(prev) {
			return fmt.Errorf("medicare.irmaa_tiers %d: thresholds must ascend", i)
		}
		prev = tier.IncomeThresholdSingle
	}
	return nil
}

func validateRatioTiers(tiers []domain.RatioTier) error {
	prev := decimal.Zero
	for i, tier := range tiers {
		if tier.UpTo.LessThanOrEqual(prev) {
			return fmt.Errorf("tier %d: up_to must ascend", i)
		}
		if !isFraction(tier.Subsidy) {
			return fmt.Errorf("tier %d: subsidy must be between 0 and 1", i)
		}
		prev = tier.UpTo
	}
	return nil
}

func (rl *ReferenceLoader) validateStates(ref *domain.ReferenceData) error {
	if len(ref.States) == 0 {
		return fmt.Errorf("at least one state is required")
	}
	for code, s := range ref.States {
		if code != code.Normalize() || len(code) != 2 {
			return fmt.Errorf("%q is not a two-letter upper-case code", code)
		}
		if !isFraction(s.IncomeTaxRate) || !isFraction(s.SalesTaxRate) || !isFraction(s.PropertyTaxRate) {
			return fmt.Errorf("%s: rates must be between 0 and 1", code)
		}
		if !s.CostOfLivingIndex.IsPositive() {
			return fmt.Errorf("%s: cost_of_living_index must be positive", code)
		}
	}
	for i, zr := range ref.ZipPrefixes {
		if zr.Low < 0 || zr.High > 999 || zr.Low > zr.High {
			return fmt.Errorf("zip_prefixes %d: invalid range %d-%d", i, zr.Low, zr.High)
		}
		if _, ok := ref.States[zr.State]; !ok {
			return fmt.Errorf("zip_prefixes %d: unknown state %s", i, zr.State)
		}
	}
	return nil
}

func (rl *ReferenceLoader) validateEnergy(e *domain.EnergyRules) error {
	if !e.ScalarDivisor.IsPositive() {
		return fmt.Errorf("scalar_divisor must be positive")
	}
	if e.ScalarMin.GreaterThan(e.ScalarMax) {
		return fmt.Errorf("scalar_min cannot exceed scalar_max")
	}
	return nil
}

func (rl *ReferenceLoader) validateCommunity(c *domain.CommunityRules) error {
	if !c.ReferenceIncome.IsPositive() {
		return fmt.Errorf("reference_income must be positive")
	}
	if !c.NationalPropertyTaxRate.IsPositive() {
		return fmt.Errorf("national_property_tax_rate must be positive")
	}
	bounds := map[string]domain.Bounds{
		"school_funding_bounds": c.SchoolFundingBounds,
		"infrastructure_bounds": c.InfrastructureBounds,
		"jobs_bounds":           c.JobsBounds,
	}
	for name, b := range bounds {
		if b.Min.GreaterThan(b.Max) {
			return fmt.Errorf("%s: min cannot exceed max", name)
		}
	}
	for code, bonus := range c.StateBonuses {
		if !bonus.InfrastructureFactor.IsPositive() {
			return fmt.Errorf("state_bonuses.%s: infrastructure_factor must be positive", code)
		}
	}
	if !c.BigBillBonus.InfrastructureFactor.IsPositive() {
		return fmt.Errorf("big_bill_bonus: infrastructure_factor must be positive")
	}
	return nil
}

func (rl *ReferenceLoader) validateScenario(p *domain.PolicyParams) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	switch p.TaxVariant {
	case domain.TaxVariantProposed, domain.TaxVariantBigBill:
	default:
		return fmt.Errorf("unknown tax_variant %q", p.TaxVariant)
	}
	if p.HealthcareImpactMultiplier.IsNegative() || p.ProposedCostMultiplier.IsNegative() {
		return fmt.Errorf("multipliers cannot be negative")
	}
	if !p.DeficitPerBaseIncome.IsZero() && !p.DeficitBaseIncome.IsPositive() {
		return fmt.Errorf("deficit_base_income must be positive when deficit_per_base_income is set")
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
