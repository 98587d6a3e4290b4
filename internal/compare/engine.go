package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string // current-law (default) or big-bill
	FormPath         string // shown in the report header
}

// Compare runs both policy scenarios for one household and compares them
func (ce *CompareEngine) Compare(ctx context.Context, form domain.FormData, options CompareOptions) (*ComparisonSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = domain.ScenarioCurrentLaw
	}

	form.IncludeBigBill = true
	results := ce.CalcEngine.CalculatePolicyImpact(form)
	scenarios := ce.CalcEngine.Reference.Scenarios

	current := ce.MetricsCalculator.CalculateMetrics(results, scenarios.CurrentLaw.Label)
	bigBill := ce.MetricsCalculator.CalculateMetrics(results.BigBillScenario, scenarios.BigBill.Label)

	var base, alt ComparisonResult
	switch baseName {
	case domain.ScenarioCurrentLaw:
		base, alt = current, bigBill
	case domain.ScenarioBigBill:
		base, alt = bigBill, current
	default:
		return nil, fmt.Errorf("base scenario %s not found", baseName)
	}

	alt = ce.MetricsCalculator.CalculateComparison(alt, base)

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{alt},
		Categories:         ce.MetricsCalculator.CategoryDeltas(base.Results, alt.Results),
		Income:             results.Income,
		LastUpdated:        results.LastUpdated,
		FormPath:           options.FormPath,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
