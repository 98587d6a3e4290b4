package output

import (
	"fmt"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// DefaultAssumptions is rendered when no reference data is supplied
var DefaultAssumptions = []string{
	"Income is the midpoint of the selected range ($62,500 when no range is chosen)",
	"Tax brackets and deductions held at 2025 levels",
	"Multi-year totals apply fixed growth factors to the annual net impact",
	"Community and economic figures are heuristic indicators, not forecasts",
}

// Assumptions describes the modelling assumptions behind a reference data set
func Assumptions(ref *domain.ReferenceData) []string {
	if ref == nil {
		return DefaultAssumptions
	}
	t := ref.Scenarios.Timeline
	return []string{
		fmt.Sprintf("Income is the midpoint of the selected range (%s when no range is chosen)", FormatCurrency(ref.Income.Default)),
		fmt.Sprintf("Tax brackets and deductions held at %d levels", ref.Metadata.DataYear),
		fmt.Sprintf("Multi-year totals use growth factors of %s (5y), %s (10y) and %s (20y)",
			t.FiveYear.String(), t.TenYear.String(), t.TwentyYear.String()),
		"Community and economic figures are heuristic indicators, not forecasts",
	}
}
