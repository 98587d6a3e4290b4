package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("POLICY IMPACT COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", tf.baseLabel(compSet)))
	sb.WriteString(fmt.Sprintf("Household Income: $%s\n", tf.formatDecimal(compSet.Income)))
	if compSet.FormPath != "" {
		sb.WriteString(fmt.Sprintf("Form: %s\n", compSet.FormPath))
	}
	sb.WriteString(fmt.Sprintf("Data Updated: %s\n", compSet.LastUpdated))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Net / Year",
		numWidth, "10-Year",
		numWidth, "Deficit",
		numWidth, "Recession %"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}
	for i := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Per-category impacts
	if len(compSet.Categories) > 0 {
		altLabel := "Alternative"
		if len(compSet.AlternativeResults) > 0 {
			altLabel = compSet.AlternativeResults[0].Label
		}

		sb.WriteString("\nBY CATEGORY (annual, positive = higher cost)\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
			nameWidth, "Category",
			numWidth, tf.truncate(tf.baseLabel(compSet), numWidth),
			numWidth, tf.truncate(altLabel, numWidth),
			numWidth, "Difference"))
		for _, cat := range compSet.Categories {
			sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
				nameWidth, tf.truncate(cat.Category, nameWidth),
				numWidth, tf.formatSigned(cat.Base),
				numWidth, tf.formatSigned(cat.Alternative),
				numWidth, tf.formatSigned(cat.Difference)))
		}
	}

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			sb.WriteString(fmt.Sprintf("  Annual Net:       %s (%s%%)\n",
				tf.formatSigned(alt.NetDiffFromBase),
				alt.NetPctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Ten-Year Total:   %s\n", tf.formatSigned(alt.TenYearDiffFromBase)))
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Federal Tax:      %s\n", tf.formatSigned(alt.TaxDiffFromBase)))
			}
			if !alt.HealthcareDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Healthcare:       %s\n", tf.formatSigned(alt.HealthcareDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nSUMMARY\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) baseLabel(compSet *ComparisonSet) string {
	if compSet.BaseResult != nil && compSet.BaseResult.Label != "" {
		return compSet.BaseResult.Label
	}
	return compSet.BaseScenarioName
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Label
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatSigned(result.NetAnnualImpact),
		numWidth, tf.formatSigned(result.TenYearTotal),
		numWidth, "$"+tf.formatDecimal(result.DeficitImpact),
		numWidth, result.RecessionProbability.StringFixed(0)+"%")
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// formatSigned renders +$1.2K / -$505 / $0
func (tf *TableFormatter) formatSigned(d decimal.Decimal) string {
	return tf.deltaSymbol(d) + "$" + tf.formatDecimal(d.Abs())
}

// deltaSymbol returns the sign prefix for a delta
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s %s/yr", tf.baseLabel(compSet), tf.formatSigned(compSet.BaseResult.NetAnnualImpact)))

	for _, alt := range compSet.AlternativeResults {
		change := "="
		if !alt.NetDiffFromBase.IsZero() {
			change = tf.formatSigned(alt.NetDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf(" | %s: %s", alt.Label, change))
	}

	return sb.String()
}
