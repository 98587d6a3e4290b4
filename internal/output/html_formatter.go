package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// HTMLFormatter renders a standalone HTML page
type HTMLFormatter struct {
	Assumptions []string
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"signed": FormatSignedCurrency,
	"pct":    FormatPercentage,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.PolicyResults) ([]byte, error) {
	assumptions := h.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	scenarios := []*domain.PolicyResults{results}
	if results.BigBillScenario != nil {
		scenarios = append(scenarios, results.BigBillScenario)
	}

	var buf bytes.Buffer
	data := struct {
		Results     *domain.PolicyResults
		Scenarios   []*domain.PolicyResults
		Assumptions []string
	}{results, scenarios, assumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
