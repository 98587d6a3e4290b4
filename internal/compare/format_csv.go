package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Net Annual Impact",
		"Federal Tax Impact",
		"Healthcare Impact",
		"Ten Year Total",
		"Twenty Year Total",
		"Deficit Impact",
		"Recession Probability",
		"Net Diff from Base",
		"Net % Change",
		"Ten Year Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.Label,
		scenarioType,
		result.NetAnnualImpact.StringFixed(0),
		result.TaxImpact.StringFixed(0),
		result.HealthcareImpact.StringFixed(0),
		result.TenYearTotal.StringFixed(0),
		result.TwentyYearTotal.StringFixed(0),
		result.DeficitImpact.StringFixed(0),
		result.RecessionProbability.StringFixed(0),
		result.NetDiffFromBase.StringFixed(0),
		result.NetPctFromBase.StringFixed(1),
		result.TenYearDiffFromBase.StringFixed(0),
	}
}
