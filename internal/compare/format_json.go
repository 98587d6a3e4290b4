package compare

import (
	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // indent the output

	// IncludeResults adds each scenario's full PolicyResults under "scenarios",
	// keyed by scenario name
	IncludeResults bool
}

// comparisonDocument is the JSON shape: the comparison fields inline plus the
// optional per-scenario results
type comparisonDocument struct {
	*ComparisonSet
	Scenarios map[string]*domain.PolicyResults `json:"scenarios,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := comparisonDocument{ComparisonSet: compSet}
	if jf.IncludeResults {
		doc.Scenarios = scenarioResults(compSet)
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// scenarioResults collects the results behind the base and alternatives. The
// nested big-bill scenario is dropped since it appears under its own key.
func scenarioResults(compSet *ComparisonSet) map[string]*domain.PolicyResults {
	out := make(map[string]*domain.PolicyResults)
	add := func(r *ComparisonResult) {
		if r == nil || r.Results == nil {
			return
		}
		flat := *r.Results
		flat.BigBillScenario = nil
		out[r.ScenarioName] = &flat
	}

	add(compSet.BaseResult)
	for i := range compSet.AlternativeResults {
		add(&compSet.AlternativeResults[i])
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
