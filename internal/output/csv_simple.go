package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// CSVFormatter emits one row per breakdown category per scenario, followed by a net row
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.PolicyResults) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Category", "Current", "Proposed", "Impact"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	scenarios := []*domain.PolicyResults{results}
	if results.BigBillScenario != nil {
		scenarios = append(scenarios, results.BigBillScenario)
	}
	for _, sc := range scenarios {
		for _, item := range sc.Breakdown {
			row := []string{
				sc.Scenario,
				item.Category,
				item.Current.StringFixed(0),
				item.Proposed.StringFixed(0),
				item.Impact.StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		if err := w.Write([]string{sc.Scenario, "Net", "", "", sc.NetAnnualImpact.StringFixed(0)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
