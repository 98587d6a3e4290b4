package calculation

import (
	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the policy impact calculation. It holds only
// read-only reference data and is safe for concurrent use.
type CalculationEngine struct {
	Reference      *domain.ReferenceData
	TaxCalc        *FederalTaxCalculator
	HealthcareCalc *HealthcareCostCalculator
	AdjustmentCalc *AdjustmentCalculator
	CommunityCalc  *CommunityCalculator
	Debug          bool // Enable debug output for detailed calculations
	Logger         Logger
}

// NewCalculationEngine creates a calculation engine over the embedded reference tables
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithConfig(config.MustDefault())
}

// NewCalculationEngineWithConfig creates a calculation engine over the given reference tables
func NewCalculationEngineWithConfig(ref *domain.ReferenceData) *CalculationEngine {
	return &CalculationEngine{
		Reference:      ref,
		TaxCalc:        NewFederalTaxCalculator(ref.FederalTax, ref.Policy),
		HealthcareCalc: NewHealthcareCostCalculator(ref.Healthcare),
		AdjustmentCalc: NewAdjustmentCalculator(ref.Energy, ref.Employment),
		CommunityCalc:  NewCommunityCalculator(ref.Community),
		Logger:         NopLogger{},
	}
}

// SetLogger sets a custom logger for the engine
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculatePolicyImpact computes the current-law results for a form and, when
// requested, attaches the big-bill scenario. It is deterministic and has no side effects.
func (ce *CalculationEngine) CalculatePolicyImpact(form domain.FormData) *domain.PolicyResults {
	h := ce.ResolveHousehold(form)

	results := ce.RunScenario(h, ce.Reference.Scenarios.CurrentLaw)
	if form.IncludeBigBill {
		results.BigBillScenario = ce.RunScenario(h, ce.Reference.Scenarios.BigBill)
	}

	if ce.Debug {
		ce.Logger.Infof("policy impact: state=%q income=%s net=%s", h.State, h.Income, results.NetAnnualImpact)
	}
	return results
}

// ResolveIncome maps an income range to its midpoint, falling back to the default
func (ce *CalculationEngine) ResolveIncome(r domain.IncomeRange) decimal.Decimal {
	if midpoint, ok := ce.Reference.Income.Midpoints[r]; ok && r.Valid() {
		return midpoint
	}
	return ce.Reference.Income.Default
}

// ResolveState returns the explicit state or the one inferred from the ZIP code
func (ce *CalculationEngine) ResolveState(form domain.FormData) (domain.StateCode, domain.StateRules, bool) {
	code := form.State.Normalize()
	if code == "" && form.ZipCode != "" {
		if inferred, ok := ce.Reference.StateForZip(form.ZipCode); ok {
			ce.Logger.Debugf("inferred state %s from zip %s", inferred, form.ZipCode)
			code = inferred
		}
	}
	rules, ok := ce.Reference.State(code)
	if code != "" && !ok {
		ce.Logger.Warnf("unknown state %q, state adjustments skipped", code)
	}
	return code, rules, ok
}

// ResolveHousehold builds the shared input snapshot and computes the
// scenario-independent figures once.
func (ce *CalculationEngine) ResolveHousehold(form domain.FormData) *Household {
	income := ce.ResolveIncome(form.IncomeRange)
	code, stateRules, known := ce.ResolveState(form)

	stateMultiplier := one
	if known {
		stateMultiplier = stateRules.CostOfLivingIndex.Div(hundred)
	}

	h := &Household{
		Form:       form,
		Income:     income,
		State:      code,
		StateRules: stateRules,
		KnownState: known,
		Tax: TaxInput{
			Income:          income,
			Status:          form.FamilyStatus,
			Children:        form.Children(),
			OtherDependents: form.OtherDependents(),
		},
		Healthcare: HealthcareProfile{
			InsuranceType:    form.InsuranceType,
			AgeRange:         form.AgeRange,
			FamilyStatus:     form.FamilyStatus,
			EmploymentStatus: form.EmploymentStatus,
			HasHSA:           form.HasHSA && form.InsuranceType.SupportsHSA(),
			Income:           income,
			FamilyCoverage:   form.IsFamilyCoverage(),
			HouseholdSize:    form.HouseholdSize(),
			StateMultiplier:  stateMultiplier,
		},
	}

	h.CurrentTax = ce.TaxCalc.CurrentLawTax(h.Tax)
	h.HealthcareCosts = ce.HealthcareCalc.CalculateHealthcareCosts(h.Healthcare)
	h.StateAdjustment = ce.AdjustmentCalc.StateAdjustment(income, stateRules, known)
	h.EnergyCost = ce.AdjustmentCalc.EnergyCost(income, code)
	h.EmploymentAdj = ce.AdjustmentCalc.EmploymentAdjustment(income, form.EmploymentStatus)

	if form.InsuranceType == domain.InsuranceMedicare {
		status := CalculateIRMAARiskStatus(income, form.FamilyStatus == domain.FamilyMarriedJoint, ce.HealthcareCalc.MedicareCalc)
		h.IRMAA = &status
	}

	return h
}
