package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// Formatter renders policy results in one output format
type Formatter interface {
	Name() string
	Format(results *domain.PolicyResults) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.PolicyResults) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.PolicyResults) ([]byte, error) {
	return f.F(results)
}

// JSONFormatter emits the results exactly as the HTTP API returns them
type JSONFormatter struct {
	Compact bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PolicyResults) ([]byte, error) {
	if j.Compact {
		return json.Marshal(results)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

var formatters = map[string]Formatter{
	"console": ConsoleFormatter{},
	"table":   ConsoleFormatter{},
	"csv":     CSVFormatter{},
	"json":    JSONFormatter{},
	"html":    HTMLFormatter{},
	"summary": FormatterFunc{ID: "summary", F: formatSummary},
}

// GetFormatterByName returns the formatter registered for name, or nil
func GetFormatterByName(name string) Formatter {
	return formatters[strings.ToLower(strings.TrimSpace(name))]
}

// CheckFormat reports whether name is a registered format
func CheckFormat(name string) error {
	if GetFormatterByName(name) == nil {
		return fmt.Errorf("unsupported format: %s (supported: %s)", name, strings.Join(FormatterNames(), ", "))
	}
	return nil
}

// withAssumptions hands the assumption lines to the formatters that print them
func withAssumptions(f Formatter, assumptions []string) Formatter {
	if assumptions == nil {
		return f
	}
	switch v := f.(type) {
	case ConsoleFormatter:
		v.Assumptions = assumptions
		return v
	case HTMLFormatter:
		v.Assumptions = assumptions
		return v
	default:
		return f
	}
}

// formatSummary prints one line per scenario
func formatSummary(results *domain.PolicyResults) ([]byte, error) {
	if results == nil {
		return nil, fmt.Errorf("no results to format")
	}
	var b strings.Builder
	for _, r := range []*domain.PolicyResults{results, results.BigBillScenario} {
		if r == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: %s per year, %s over 10 years\n",
			r.Scenario, FormatSignedCurrency(r.NetAnnualImpact), FormatSignedCurrency(r.Timeline.TenYear))
	}
	return []byte(b.String()), nil
}

// FormatterNames lists the registered format names in sorted order
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders results with f and writes them to w
func WriteFormatted(w io.Writer, f Formatter, results *domain.PolicyResults) error {
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s output: %w", f.Name(), err)
	}
	return nil
}
