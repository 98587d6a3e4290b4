package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of household form files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a form from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.FormData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var form domain.FormData
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		if err := json.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateForm(&form); err != nil {
		return nil, fmt.Errorf("form validation failed: %w", err)
	}

	return &form, nil
}

// ValidateForm rejects values outside the wizard's choices. Empty fields are allowed.
func (ip *InputParser) ValidateForm(form *domain.FormData) error {
	if form.State != "" && len(form.State.Normalize()) != 2 {
		return fmt.Errorf("state must be a two-letter code, got %q", form.State)
	}
	if form.ZipCode != "" && !isZip(form.ZipCode) {
		return fmt.Errorf("zip code must be 5 digits, got %q", form.ZipCode)
	}
	if form.AgeRange != "" && !form.AgeRange.Valid() {
		return fmt.Errorf("unknown age range %q", form.AgeRange)
	}
	if form.FamilyStatus != "" && !form.FamilyStatus.Valid() {
		return fmt.Errorf("unknown family status %q", form.FamilyStatus)
	}
	if form.NumberOfQualifyingChildren < 0 || form.NumberOfQualifyingChildren > 10 {
		return fmt.Errorf("number of qualifying children must be between 0 and 10")
	}
	if form.NumberOfOtherDependents < 0 || form.NumberOfOtherDependents > 10 {
		return fmt.Errorf("number of other dependents must be between 0 and 10")
	}
	if form.EmploymentStatus != "" && !form.EmploymentStatus.Valid() {
		return fmt.Errorf("unknown employment status %q", form.EmploymentStatus)
	}
	if form.InsuranceType != "" && !form.InsuranceType.Valid() {
		return fmt.Errorf("unknown insurance type %q", form.InsuranceType)
	}
	if form.IncomeRange != "" && !form.IncomeRange.Valid() {
		return fmt.Errorf("unknown income range %q", form.IncomeRange)
	}
	return nil
}

func isZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
