package calculation

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

// Household is the resolved input snapshot shared by every scenario run.
// Both scenarios read the same Household; nothing in it changes between runs.
type Household struct {
	Form       domain.FormData
	Income     decimal.Decimal
	State      domain.StateCode
	StateRules domain.StateRules
	KnownState bool
	Tax        TaxInput
	Healthcare HealthcareProfile

	// Computed once and shared
	CurrentTax      decimal.Decimal
	HealthcareCosts domain.HealthcareCosts
	StateAdjustment decimal.Decimal
	EnergyCost      decimal.Decimal
	EmploymentAdj   decimal.Decimal
	IRMAA           *domain.IRMAAStatus
}

// RunScenario runs the aggregation pipeline for one policy parameter set
func (ce *CalculationEngine) RunScenario(h *Household, params domain.PolicyParams) *domain.PolicyResults {
	var proposedTax decimal.Decimal
	switch params.TaxVariant {
	case domain.TaxVariantBigBill:
		proposedTax = ce.TaxCalc.BigBillTax(h.Tax)
	case domain.TaxVariantProposed:
		proposedTax = ce.TaxCalc.ProposedTax(h.Tax)
	default:
		proposedTax = ce.TaxCalc.ProposedTax(h.Tax)
	}

	hcMultiplier := defaultOne(params.HealthcareImpactMultiplier)
	costMultiplier := defaultOne(params.ProposedCostMultiplier)

	taxImpact := proposedTax.Sub(h.CurrentTax).Round(0)

	// Impact is taken from whole-dollar costs so the current-law row reads proposed − current
	wholeDollars := domain.HealthcareCosts{
		Current:  h.HealthcareCosts.Current.Round(0),
		Proposed: h.HealthcareCosts.Proposed.Round(0),
	}
	healthcareImpact := wholeDollars.Impact().Mul(hcMultiplier).Round(0)
	reportedHealthcare := domain.HealthcareCosts{
		Current:  wholeDollars.Current,
		Proposed: h.HealthcareCosts.Proposed.Mul(costMultiplier).Round(0),
	}
	stateAdj := h.StateAdjustment.Round(0)
	energy := h.EnergyCost.Round(0)
	employment := h.EmploymentAdj.Round(0)

	net := taxImpact.Add(healthcareImpact).Add(stateAdj).Add(energy).Add(employment)

	timeline := ce.Reference.Scenarios.Timeline
	results := &domain.PolicyResults{
		AnnualTaxImpact:        taxImpact,
		AnnualHealthcareImpact: healthcareImpact,
		AnnualEnergyImpact:     energy,
		StateAdjustment:        stateAdj,
		EmploymentAdjustment:   employment,
		NetAnnualImpact:        net,
		DeficitImpact:          ce.deficitImpact(h.Income, params),
		RecessionProbability:   decimal.Max(params.RecessionFloor, params.RecessionBaseline.Sub(params.RecessionReduction)),
		HealthcareCosts:        reportedHealthcare,
		CommunityImpact: ce.CommunityCalc.CalculateCommunityImpact(CommunityInput{
			Income:     h.Income,
			State:      h.State,
			StateRules: h.StateRules,
			KnownState: h.KnownState,
		}, params.CommunityBonus),
		Timeline: domain.Timeline{
			FiveYear:   projectTotal(net, 5, timeline.FiveYear),
			TenYear:    projectTotal(net, 10, timeline.TenYear),
			TwentyYear: projectTotal(net, 20, timeline.TwentyYear),
		},
		Scenario:    params.Name,
		Income:      h.Income,
		LastUpdated: ce.Reference.Metadata.LastUpdated,
	}

	results.Breakdown = []domain.BreakdownItem{
		{
			Category:    domain.CategoryFederalTax,
			Current:     h.CurrentTax.Round(0),
			Proposed:    proposedTax.Round(0),
			Impact:      taxImpact,
			Description: taxDescription(params.TaxVariant),
		},
		{
			Category:    domain.CategoryHealthcare,
			Current:     reportedHealthcare.Current,
			Proposed:    reportedHealthcare.Proposed,
			Impact:      healthcareImpact,
			Description: healthcareDescription(h),
		},
		{
			Category:    domain.CategoryStateLocal,
			Proposed:    stateAdj,
			Impact:      stateAdj,
			Description: stateDescription(h),
		},
		{
			Category:    domain.CategoryEnergy,
			Proposed:    energy,
			Impact:      energy,
			Description: "Household electricity, heating and fuel costs",
		},
		{
			Category:    domain.CategoryEmployment,
			Proposed:    employment,
			Impact:      employment,
			Description: employmentDescription(h.Form.EmploymentStatus),
		},
	}

	ce.Logger.Debugf("scenario %s: tax=%s healthcare=%s state=%s energy=%s employment=%s net=%s",
		params.Name, taxImpact, healthcareImpact, stateAdj, energy, employment, net)

	return results
}

func (ce *CalculationEngine) deficitImpact(income decimal.Decimal, params domain.PolicyParams) decimal.Decimal {
	if params.DeficitPerBaseIncome.IsZero() {
		return decimal.Zero
	}
	return params.DeficitPerBaseIncome.Mul(income).Div(params.DeficitBaseIncome).Round(0)
}

// projectTotal is round(net × years × factor)
func projectTotal(net decimal.Decimal, years int64, factor decimal.Decimal) decimal.Decimal {
	return net.Mul(decimal.NewFromInt(years)).Mul(factor).Round(0)
}

func defaultOne(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return one
	}
	return d
}

func taxDescription(v domain.TaxVariant) string {
	switch v {
	case domain.TaxVariantBigBill:
		return "Flat deduction bonus, 3% rate cut on middle incomes and per-dependent credit"
	case domain.TaxVariantProposed:
		return "Higher standard deduction, enhanced child credit and higher top rate"
	default:
		return "Federal income tax change"
	}
}

func healthcareDescription(h *Household) string {
	coverage := string(h.Healthcare.InsuranceType)
	if coverage == "" {
		coverage = string(domain.InsuranceEmployer)
	}
	desc := fmt.Sprintf("Premiums and out-of-pocket costs for %s coverage", coverage)
	if h.IRMAA != nil && h.IRMAA.Risk != domain.IRMAARiskSafe {
		desc += fmt.Sprintf(" (IRMAA %s, %s)", strings.ToLower(string(h.IRMAA.Risk)), h.IRMAA.Tier)
	}
	return desc
}

func stateDescription(h *Household) string {
	if !h.KnownState {
		return "No state selected"
	}
	return fmt.Sprintf("%s income tax and cost of living", h.StateRules.Name)
}

func employmentDescription(status domain.EmploymentStatus) string {
	switch status {
	case domain.EmploymentSelfEmployed:
		return "Self-employment tax exposure"
	case domain.EmploymentContract:
		return "Contractor filing and payroll tax exposure"
	case domain.EmploymentPartTime:
		return "Part-time withholding and benefit gaps"
	case domain.EmploymentFullTime:
		return "Full-time withholding simplification"
	case domain.EmploymentUnemployed, domain.EmploymentRetired, domain.EmploymentStudent, domain.EmploymentUnable:
		return "No employment adjustment"
	default:
		return "No employment adjustment"
	}
}
