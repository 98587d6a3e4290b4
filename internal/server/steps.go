package server

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/billimpact/internal/domain"
)

// Wizard step names accepted by PUT /api/sessions/{id}/steps/{step}
const (
	StepLocation   = "location"
	StepHousehold  = "household"
	StepEmployment = "employment"
	StepHealthcare = "healthcare"
	StepIncome     = "income"
)

// Steps lists the wizard steps in order
var Steps = []string{StepLocation, StepHousehold, StepEmployment, StepHealthcare, StepIncome}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// StepPayload is the body of one wizard step
type StepPayload interface {
	Validate() error
	Apply(form *domain.FormData)
}

// NewStepPayload returns an empty payload for the named step
func NewStepPayload(step string) (StepPayload, error) {
	switch step {
	case StepLocation:
		return &LocationStep{}, nil
	case StepHousehold:
		return &HouseholdStep{}, nil
	case StepEmployment:
		return &EmploymentStep{}, nil
	case StepHealthcare:
		return &HealthcareStep{}, nil
	case StepIncome:
		return &IncomeStep{}, nil
	default:
		return nil, &ErrUnknownStep{Step: step}
	}
}

// LocationStep carries a ZIP code, a state, or both
type LocationStep struct {
	ZipCode string `json:"zipCode" validate:"omitempty,len=5,numeric"`
	State   string `json:"state" validate:"omitempty,len=2,alpha"`
}

// Validate validates the LocationStep using the validator.
func (s *LocationStep) Validate() error {
	if s.ZipCode == "" && s.State == "" {
		return &ErrValidation{Field: "location", Message: "requires zipCode or state"}
	}
	return structError(validate.Struct(s))
}

// Apply copies the step into the form
func (s *LocationStep) Apply(form *domain.FormData) {
	form.ZipCode = s.ZipCode
	form.State = domain.StateCode(s.State).Normalize()
}

// HouseholdStep carries age, filing status and dependents
type HouseholdStep struct {
	AgeRange                   domain.AgeRange     `json:"ageRange" validate:"required,oneof=18-29 30-44 45-64 65+"`
	FamilyStatus               domain.FamilyStatus `json:"familyStatus" validate:"required,oneof=single married-joint married-separate head-of-household"`
	NumberOfQualifyingChildren int                 `json:"numberOfQualifyingChildren" validate:"min=0,max=10"`
	NumberOfOtherDependents    int                 `json:"numberOfOtherDependents" validate:"min=0,max=10"`
}

// Validate validates the HouseholdStep using the validator.
func (s *HouseholdStep) Validate() error {
	return structError(validate.Struct(s))
}

// Apply copies the step into the form
func (s *HouseholdStep) Apply(form *domain.FormData) {
	form.AgeRange = s.AgeRange
	form.FamilyStatus = s.FamilyStatus
	form.NumberOfQualifyingChildren = s.NumberOfQualifyingChildren
	form.NumberOfOtherDependents = s.NumberOfOtherDependents
}

// EmploymentStep carries the employment status
type EmploymentStep struct {
	EmploymentStatus domain.EmploymentStatus `json:"employmentStatus" validate:"required,oneof=full-time part-time self-employed contract unemployed retired student unable"`
}

// Validate validates the EmploymentStep using the validator.
func (s *EmploymentStep) Validate() error {
	return structError(validate.Struct(s))
}

// Apply copies the step into the form
func (s *EmploymentStep) Apply(form *domain.FormData) {
	form.EmploymentStatus = s.EmploymentStatus
}

// HealthcareStep carries the coverage type and HSA flag
type HealthcareStep struct {
	InsuranceType domain.InsuranceType `json:"insuranceType" validate:"required,oneof=employer marketplace medicare medicaid military uninsured"`
	HasHSA        bool                 `json:"hasHSA"`
}

// Validate validates the HealthcareStep using the validator.
func (s *HealthcareStep) Validate() error {
	if err := structError(validate.Struct(s)); err != nil {
		return err
	}
	if s.HasHSA && !s.InsuranceType.SupportsHSA() {
		return &ErrValidation{Field: "hasHSA", Message: fmt.Sprintf("is not available with %s coverage", s.InsuranceType)}
	}
	return nil
}

// Apply copies the step into the form
func (s *HealthcareStep) Apply(form *domain.FormData) {
	form.InsuranceType = s.InsuranceType
	form.HasHSA = s.HasHSA
}

// IncomeStep carries the income range and the big-bill opt-in
type IncomeStep struct {
	IncomeRange    domain.IncomeRange `json:"incomeRange" validate:"required,oneof=under-25k 25k-50k 50k-75k 75k-100k 100k-150k 150k-200k 200k-400k 400k-plus"`
	IncludeBigBill *bool              `json:"includeBigBill"`
}

// Validate validates the IncomeStep using the validator.
func (s *IncomeStep) Validate() error {
	return structError(validate.Struct(s))
}

// Apply copies the step into the form; an absent opt-in keeps the previous choice
func (s *IncomeStep) Apply(form *domain.FormData) {
	form.IncomeRange = s.IncomeRange
	if s.IncludeBigBill != nil {
		form.IncludeBigBill = *s.IncludeBigBill
	}
}

// structError converts the first validator failure into an ErrValidation
func structError(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ErrValidation{Message: err.Error()}
	}
	fe := fieldErrs[0]
	return &ErrValidation{Field: fe.Field(), Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "len":
		return fmt.Sprintf("must be %s characters", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "alpha":
		return "must contain only letters"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
