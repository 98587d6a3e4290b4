package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// ConsoleFormatter renders a plain-text report for terminals
type ConsoleFormatter struct {
	Assumptions []string
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PolicyResults) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("no results to format")
	}

	var buf bytes.Buffer
	rule := strings.Repeat("=", 72)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "HOUSEHOLD POLICY IMPACT REPORT")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "Income used:  %s\n", FormatCurrency(results.Income))
	fmt.Fprintf(&buf, "Data updated: %s\n", results.LastUpdated)
	fmt.Fprintln(&buf)

	assumptions := c.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeScenario(&buf, "CURRENT LAW", results)
	if results.BigBillScenario != nil {
		writeScenario(&buf, "BIG BILL", results.BigBillScenario)
		writeScenarioDelta(&buf, results, results.BigBillScenario)
	}

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, title string, r *domain.PolicyResults) {
	fmt.Fprintf(buf, "SCENARIO: %s\n", title)
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	fmt.Fprintf(buf, "%-22s %14s %14s %14s\n", "Category", "Current", "Proposed", "Impact")
	for _, item := range r.Breakdown {
		fmt.Fprintf(buf, "%-22s %14s %14s %14s\n",
			item.Category, FormatCurrency(item.Current), FormatCurrency(item.Proposed), FormatSignedCurrency(item.Impact))
	}
	fmt.Fprintf(buf, "%-22s %14s %14s %14s\n", "NET ANNUAL IMPACT", "", "", FormatSignedCurrency(r.NetAnnualImpact))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "Multi-year outlook:")
	fmt.Fprintf(buf, "  5 years:  %s\n", FormatSignedCurrency(r.Timeline.FiveYear))
	fmt.Fprintf(buf, "  10 years: %s\n", FormatSignedCurrency(r.Timeline.TenYear))
	fmt.Fprintf(buf, "  20 years: %s\n", FormatSignedCurrency(r.Timeline.TwentyYear))
	fmt.Fprintln(buf)

	c := r.CommunityImpact
	fmt.Fprintln(buf, "Community:")
	fmt.Fprintf(buf, "  School funding change: %s\n", FormatPercentage(c.SchoolFunding))
	fmt.Fprintf(buf, "  Infrastructure:        %s\n", FormatCurrency(c.Infrastructure))
	fmt.Fprintf(buf, "  Local jobs:            %s\n", c.Jobs.StringFixed(0))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "Economy:")
	fmt.Fprintf(buf, "  Deficit per household: %s\n", FormatCurrency(r.DeficitImpact))
	fmt.Fprintf(buf, "  Recession probability: %s\n", FormatPercentage(r.RecessionProbability))
	fmt.Fprintln(buf)
}

func writeScenarioDelta(buf *bytes.Buffer, base, alt *domain.PolicyResults) {
	diff := alt.NetAnnualImpact.Sub(base.NetAnnualImpact)
	fmt.Fprintln(buf, "BIG BILL VS CURRENT LAW")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	fmt.Fprintf(buf, "Annual net difference:  %s\n", FormatSignedCurrency(diff))
	fmt.Fprintf(buf, "10-year difference:     %s\n", FormatSignedCurrency(alt.Timeline.TenYear.Sub(base.Timeline.TenYear)))
	fmt.Fprintf(buf, "Added deficit share:    %s\n", FormatCurrency(alt.DeficitImpact.Sub(base.DeficitImpact)))
}
