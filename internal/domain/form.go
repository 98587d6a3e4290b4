package domain

import "strings"

// AgeRange is the age band selected on the household step
type AgeRange string

const (
	Age18To29  AgeRange = "18-29"
	Age30To44  AgeRange = "30-44"
	Age45To64  AgeRange = "45-64"
	Age65AndUp AgeRange = "65+"
)

// AllAgeRanges lists the age bands in wizard order
func AllAgeRanges() []AgeRange {
	return []AgeRange{Age18To29, Age30To44, Age45To64, Age65AndUp}
}

// Valid reports whether the age range is one of the known bands
func (a AgeRange) Valid() bool {
	switch a {
	case Age18To29, Age30To44, Age45To64, Age65AndUp:
		return true
	default:
		return false
	}
}

// FamilyStatus doubles as the federal filing status
type FamilyStatus string

const (
	FamilySingle          FamilyStatus = "single"
	FamilyMarriedJoint    FamilyStatus = "married-joint"
	FamilyMarriedSeparate FamilyStatus = "married-separate"
	FamilyHeadOfHousehold FamilyStatus = "head-of-household"
)

// AllFamilyStatuses lists the filing statuses in wizard order
func AllFamilyStatuses() []FamilyStatus {
	return []FamilyStatus{FamilySingle, FamilyMarriedJoint, FamilyMarriedSeparate, FamilyHeadOfHousehold}
}

// Valid reports whether the family status is known
func (f FamilyStatus) Valid() bool {
	switch f {
	case FamilySingle, FamilyMarriedJoint, FamilyMarriedSeparate, FamilyHeadOfHousehold:
		return true
	default:
		return false
	}
}

// EmploymentStatus is the respondent's primary work situation
type EmploymentStatus string

const (
	EmploymentFullTime     EmploymentStatus = "full-time"
	EmploymentPartTime     EmploymentStatus = "part-time"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentContract     EmploymentStatus = "contract"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
	EmploymentRetired      EmploymentStatus = "retired"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentUnable       EmploymentStatus = "unable"
)

// AllEmploymentStatuses lists employment statuses in wizard order
func AllEmploymentStatuses() []EmploymentStatus {
	return []EmploymentStatus{
		EmploymentFullTime, EmploymentPartTime, EmploymentSelfEmployed, EmploymentContract,
		EmploymentUnemployed, EmploymentRetired, EmploymentStudent, EmploymentUnable,
	}
}

// Valid reports whether the employment status is known
func (e EmploymentStatus) Valid() bool {
	switch e {
	case EmploymentFullTime, EmploymentPartTime, EmploymentSelfEmployed, EmploymentContract,
		EmploymentUnemployed, EmploymentRetired, EmploymentStudent, EmploymentUnable:
		return true
	default:
		return false
	}
}

// InsuranceType is the respondent's current health coverage
type InsuranceType string

const (
	InsuranceEmployer    InsuranceType = "employer"
	InsuranceMarketplace InsuranceType = "marketplace"
	InsuranceMedicare    InsuranceType = "medicare"
	InsuranceMedicaid    InsuranceType = "medicaid"
	InsuranceMilitary    InsuranceType = "military"
	InsuranceUninsured   InsuranceType = "uninsured"
)

// AllInsuranceTypes lists coverage types in wizard order
func AllInsuranceTypes() []InsuranceType {
	return []InsuranceType{
		InsuranceEmployer, InsuranceMarketplace, InsuranceMedicare,
		InsuranceMedicaid, InsuranceMilitary, InsuranceUninsured,
	}
}

// Valid reports whether the insurance type is known
func (i InsuranceType) Valid() bool {
	switch i {
	case InsuranceEmployer, InsuranceMarketplace, InsuranceMedicare,
		InsuranceMedicaid, InsuranceMilitary, InsuranceUninsured:
		return true
	default:
		return false
	}
}

// SupportsHSA reports whether an HSA election changes the cost formula
func (i InsuranceType) SupportsHSA() bool {
	return i == InsuranceEmployer || i == InsuranceMarketplace
}

// IncomeRange is a household income bracket resolved to a midpoint
type IncomeRange string

const (
	IncomeUnder25K   IncomeRange = "under-25k"
	Income25KTo50K   IncomeRange = "25k-50k"
	Income50KTo75K   IncomeRange = "50k-75k"
	Income75KTo100K  IncomeRange = "75k-100k"
	Income100KTo150K IncomeRange = "100k-150k"
	Income150KTo200K IncomeRange = "150k-200k"
	Income200KTo400K IncomeRange = "200k-400k"
	Income400KPlus   IncomeRange = "400k-plus"
)

// AllIncomeRanges lists income ranges in ascending order
func AllIncomeRanges() []IncomeRange {
	return []IncomeRange{
		IncomeUnder25K, Income25KTo50K, Income50KTo75K, Income75KTo100K,
		Income100KTo150K, Income150KTo200K, Income200KTo400K, Income400KPlus,
	}
}

// Valid reports whether the income range is known
func (r IncomeRange) Valid() bool {
	switch r {
	case IncomeUnder25K, Income25KTo50K, Income50KTo75K, Income75KTo100K,
		Income100KTo150K, Income150KTo200K, Income200KTo400K, Income400KPlus:
		return true
	default:
		return false
	}
}

// StateCode is a two-letter USPS state abbreviation (DC included)
type StateCode string

// Normalize upper-cases and trims the code
func (s StateCode) Normalize() StateCode {
	return StateCode(strings.ToUpper(strings.TrimSpace(string(s))))
}

// Named states carry their own energy formulas and community bonuses.
const (
	StateCalifornia   StateCode = "CA"
	StateTexas        StateCode = "TX"
	StateNewYork      StateCode = "NY"
	StateFlorida      StateCode = "FL"
	StatePennsylvania StateCode = "PA"
)

// FormData is the wizard's accumulated answers. Every field is optional.
type FormData struct {
	State                      StateCode        `json:"state,omitempty" yaml:"state"`
	ZipCode                    string           `json:"zipCode,omitempty" yaml:"zip_code"`
	AgeRange                   AgeRange         `json:"ageRange,omitempty" yaml:"age_range"`
	FamilyStatus               FamilyStatus     `json:"familyStatus,omitempty" yaml:"family_status"`
	NumberOfQualifyingChildren int              `json:"numberOfQualifyingChildren" yaml:"number_of_qualifying_children"`
	NumberOfOtherDependents    int              `json:"numberOfOtherDependents" yaml:"number_of_other_dependents"`
	EmploymentStatus           EmploymentStatus `json:"employmentStatus,omitempty" yaml:"employment_status"`
	InsuranceType              InsuranceType    `json:"insuranceType,omitempty" yaml:"insurance_type"`
	HasHSA                     bool             `json:"hasHSA" yaml:"has_hsa"`
	IncomeRange                IncomeRange      `json:"incomeRange,omitempty" yaml:"income_range"`
	IncludeBigBill             bool             `json:"includeBigBill" yaml:"include_big_bill"`
}

// Children returns the qualifying-child count clamped to the form's 0-10 range
func (f FormData) Children() int {
	return clampCount(f.NumberOfQualifyingChildren)
}

// OtherDependents returns the other-dependent count clamped to 0-10
func (f FormData) OtherDependents() int {
	return clampCount(f.NumberOfOtherDependents)
}

// TotalDependents is children plus other dependents
func (f FormData) TotalDependents() int {
	return f.Children() + f.OtherDependents()
}

// HouseholdSize counts the filer, a joint spouse and all dependents
func (f FormData) HouseholdSize() int {
	size := 1 + f.TotalDependents()
	if f.FamilyStatus == FamilyMarriedJoint {
		size++
	}
	return size
}

// IsFamilyCoverage reports whether family rather than individual coverage applies
func (f FormData) IsFamilyCoverage() bool {
	return f.FamilyStatus == FamilyMarriedJoint ||
		f.FamilyStatus == FamilyHeadOfHousehold ||
		f.TotalDependents() > 0
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
