package compare

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/shopspring/decimal"
)

func testComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	ce := NewCompareEngine(calculation.NewCalculationEngine())
	compSet, err := ce.Compare(context.Background(), californiaFamily(), CompareOptions{FormPath: "/path/to/family.yaml"})
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	return compSet
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(testComparisonSet(t))

	expected := []string{
		"POLICY IMPACT COMPARISON",
		"Base Scenario: Current Law",
		"Household Income: $125.0K",
		"Form: /path/to/family.yaml",
		"Data Updated: 2025-07-01",
		"Current Law (base)",
		"+$17.5K",
		"+$10.7K",
		"BY CATEGORY",
		"Federal Income Tax",
		"-$6.4K",
		"COMPARISON TO BASE",
		"Annual Net:       -$6.8K (-38.7%)",
		"SUMMARY",
		"- Lower Annual Cost: Big Bill saves $6758 per year compared with Current Law",
	}
	for _, want := range expected {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}

	compSet := &ComparisonSet{
		BaseScenarioName: "current-law",
		BaseResult: &ComparisonResult{
			ScenarioName:    "current-law",
			Label:           "Current Law",
			NetAnnualImpact: decimal.NewFromInt(-505),
		},
	}

	result := formatter.Format(compSet)

	if !strings.Contains(result, "-$505") {
		t.Errorf("Expected base net in output:\n%s", result)
	}
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Should not show comparison section without alternatives")
	}
	if strings.Contains(result, "SUMMARY") {
		t.Error("Should not show summary without recommendations")
	}
}

func TestTableFormatter_FormatDecimal(t *testing.T) {
	formatter := &TableFormatter{}

	tests := []struct {
		input    int64
		expected string
	}{
		{500, "500"},
		{1500, "1.5K"},
		{125000, "125.0K"},
		{2500000, "2.50M"},
	}
	for _, tt := range tests {
		if got := formatter.formatDecimal(decimal.NewFromInt(tt.input)); got != tt.expected {
			t.Errorf("formatDecimal(%d) = %s, want %s", tt.input, got, tt.expected)
		}
	}

	if got := formatter.formatSigned(decimal.NewFromInt(-440)); got != "-$440" {
		t.Errorf("formatSigned(-440) = %s", got)
	}
	if got := formatter.formatSigned(decimal.Zero); got != "$0" {
		t.Errorf("formatSigned(0) = %s", got)
	}
}

func TestTableFormatter_Truncate(t *testing.T) {
	formatter := &TableFormatter{}

	if got := formatter.truncate("short", 10); got != "short" {
		t.Errorf("Expected 'short', got %s", got)
	}
	if got := formatter.truncate("a very long scenario label", 10); got != "a very ..." {
		t.Errorf("Expected 'a very ...', got %s", got)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.FormatCompact(testComparisonSet(t))

	if result != "Base: Current Law +$17.5K/yr | Big Bill: -$6.8K" {
		t.Errorf("Unexpected compact output: %s", result)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}

	result, err := formatter.Format(testComparisonSet(t))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,Net Annual Impact") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "Current Law,base,17451,-2449,-817,223373,572393,0,28,0,0.0,0" {
		t.Errorf("Unexpected base row: %s", lines[1])
	}
	if lines[2] != "Big Bill,alternative,10693,-8880,-1144,136870,350730,4000,22,-6758,-38.7,-86503" {
		t.Errorf("Unexpected alternative row: %s", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	compSet := testComparisonSet(t)

	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		result, err := formatter.Format(compSet)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal([]byte(result), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if decoded["baseScenarioName"] != "current-law" {
			t.Errorf("Unexpected base scenario: %v", decoded["baseScenarioName"])
		}
		base := decoded["baseResult"].(map[string]any)
		if base["netAnnualImpact"] != float64(17451) {
			t.Errorf("Expected numeric net impact, got %v", base["netAnnualImpact"])
		}
		if pretty != strings.Contains(result, "\n  ") {
			t.Errorf("Pretty=%v but indentation mismatch", pretty)
		}
	}
}

func TestJSONFormatter_IncludeResults(t *testing.T) {
	compSet := testComparisonSet(t)

	result, err := (&JSONFormatter{IncludeResults: true}).Format(compSet)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(result), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	scenarios, ok := decoded["scenarios"].(map[string]any)
	if !ok {
		t.Fatalf("Expected scenarios object, got %v", decoded["scenarios"])
	}
	if len(scenarios) != 2 {
		t.Fatalf("Expected 2 scenarios, got %d", len(scenarios))
	}

	current := scenarios["current-law"].(map[string]any)
	if current["netAnnualImpact"] != float64(17451) {
		t.Errorf("Unexpected current-law net: %v", current["netAnnualImpact"])
	}
	if _, nested := current["bigBillScenario"]; nested {
		t.Error("current-law results should not nest the big-bill scenario")
	}
	bigBill := scenarios["big-bill"].(map[string]any)
	if bigBill["netAnnualImpact"] != float64(10693) {
		t.Errorf("Unexpected big-bill net: %v", bigBill["netAnnualImpact"])
	}
	if breakdown, ok := bigBill["breakdown"].([]any); !ok || len(breakdown) != 5 {
		t.Errorf("Expected 5 breakdown rows, got %v", bigBill["breakdown"])
	}

	// the comparison itself must be untouched
	if compSet.BaseResult.Results.BigBillScenario == nil {
		t.Error("formatting should not modify the comparison set")
	}

	plain, err := (&JSONFormatter{}).Format(compSet)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Contains(plain, `"scenarios"`) {
		t.Error("scenarios should be omitted unless requested")
	}
}
