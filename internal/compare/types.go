package compare

import (
	"fmt"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single policy scenario with its headline metrics
type ComparisonResult struct {
	ScenarioName string                `json:"scenarioName"`
	Label        string                `json:"label"`
	Results      *domain.PolicyResults `json:"-"`

	// Key Metrics
	NetAnnualImpact      decimal.Decimal `json:"netAnnualImpact"`
	TaxImpact            decimal.Decimal `json:"taxImpact"`
	HealthcareImpact     decimal.Decimal `json:"healthcareImpact"`
	TenYearTotal         decimal.Decimal `json:"tenYearTotal"`
	TwentyYearTotal      decimal.Decimal `json:"twentyYearTotal"`
	DeficitImpact        decimal.Decimal `json:"deficitImpact"`
	RecessionProbability decimal.Decimal `json:"recessionProbability"`

	// Comparison to Base
	NetDiffFromBase        decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase         decimal.Decimal `json:"netPctFromBase"`
	TenYearDiffFromBase    decimal.Decimal `json:"tenYearDiffFromBase"`
	TaxDiffFromBase        decimal.Decimal `json:"taxDiffFromBase"`
	HealthcareDiffFromBase decimal.Decimal `json:"healthcareDiffFromBase"`
}

// CategoryDelta is one breakdown category across the base and alternative scenarios
type CategoryDelta struct {
	Category    string          `json:"category"`
	Base        decimal.Decimal `json:"base"`
	Alternative decimal.Decimal `json:"alternative"`
	Difference  decimal.Decimal `json:"difference"`
}

// ComparisonSet represents Current Law against the alternative policy for one household
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Categories         []CategoryDelta    `json:"categories"`
	Recommendations    []string           `json:"recommendations"`
	Income             decimal.Decimal    `json:"income"`
	LastUpdated        string             `json:"lastUpdated"`
	FormPath           string             `json:"formPath,omitempty"`
}

// MetricsCalculator extracts key metrics from policy results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the headline metrics for one scenario
func (mc *MetricsCalculator) CalculateMetrics(results *domain.PolicyResults, label string) ComparisonResult {
	if label == "" {
		label = results.Scenario
	}
	return ComparisonResult{
		ScenarioName:         results.Scenario,
		Label:                label,
		Results:              results,
		NetAnnualImpact:      results.NetAnnualImpact,
		TaxImpact:            results.AnnualTaxImpact,
		HealthcareImpact:     results.AnnualHealthcareImpact,
		TenYearTotal:         results.Timeline.TenYear,
		TwentyYearTotal:      results.Timeline.TwentyYear,
		DeficitImpact:        results.DeficitImpact,
		RecessionProbability: results.RecessionProbability,
	}
}

// CalculateComparison computes deltas between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.NetAnnualImpact.Sub(base.NetAnnualImpact)

	if !base.NetAnnualImpact.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.
			Div(base.NetAnnualImpact.Abs()).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	scenario.TenYearDiffFromBase = scenario.TenYearTotal.Sub(base.TenYearTotal)
	scenario.TaxDiffFromBase = scenario.TaxImpact.Sub(base.TaxImpact)
	scenario.HealthcareDiffFromBase = scenario.HealthcareImpact.Sub(base.HealthcareImpact)

	return scenario
}

// CategoryDeltas lines up the breakdown rows of two results by category
func (mc *MetricsCalculator) CategoryDeltas(base, alternative *domain.PolicyResults) []CategoryDelta {
	deltas := make([]CategoryDelta, 0, len(base.Breakdown))
	for _, item := range base.Breakdown {
		alt, _ := alternative.BreakdownFor(item.Category)
		deltas = append(deltas, CategoryDelta{
			Category:    item.Category,
			Base:        item.Impact,
			Alternative: alt.Impact,
			Difference:  alt.Impact.Sub(item.Impact),
		})
	}
	return deltas
}

// GenerateRecommendations summarises which scenario leaves the household better
// off. Impacts are costs, so lower is better.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Lowest annual cost
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetAnnualImpact.LessThan(best.NetAnnualImpact) {
			best = alt
		}
	}
	if best != base {
		savings := base.NetAnnualImpact.Sub(best.NetAnnualImpact)
		recommendations = append(recommendations,
			"Lower Annual Cost: "+best.Label+" saves $"+savings.StringFixed(0)+
				" per year compared with "+base.Label)
	} else {
		recommendations = append(recommendations,
			"Lower Annual Cost: "+base.Label+" costs this household the least each year")
	}

	for _, alt := range compSet.AlternativeResults {
		if !alt.TaxDiffFromBase.IsZero() {
			recommendations = append(recommendations,
				fmt.Sprintf("Federal Tax: %s changes your tax bill by %s per year", alt.Label, signedDollars(alt.TaxDiffFromBase)))
		}
		if !alt.HealthcareDiffFromBase.IsZero() {
			recommendations = append(recommendations,
				fmt.Sprintf("Healthcare: %s changes your healthcare costs by %s per year", alt.Label, signedDollars(alt.HealthcareDiffFromBase)))
		}
		if alt.DeficitImpact.IsPositive() {
			recommendations = append(recommendations,
				fmt.Sprintf("Deficit: %s adds an estimated $%s per household to the federal deficit", alt.Label, alt.DeficitImpact.StringFixed(0)))
		}
	}

	return recommendations
}

func signedDollars(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(0)
	}
	return "+$" + d.StringFixed(0)
}
