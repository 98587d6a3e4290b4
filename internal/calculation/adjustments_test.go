package calculation

import (
	"testing"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdjustmentCalculator(t *testing.T) (*AdjustmentCalculator, *domain.ReferenceData) {
	t.Helper()
	ref := testReference(t)
	return NewAdjustmentCalculator(ref.Energy, ref.Employment), ref
}

func TestAdjustmentCalculator_StateAdjustment(t *testing.T) {
	ac, ref := testAdjustmentCalculator(t)

	tests := []struct {
		state    domain.StateCode
		income   int64
		expected string
	}{
		{domain.StateCalifornia, 125000, "21250"},
		{domain.StateTexas, 37500, "-525"},
		{domain.StateNewYork, 62500, "7418.75"},
		{domain.StateFlorida, 62500, "350"},
		{domain.StatePennsylvania, 62500, "1793.75"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			rules, ok := ref.State(tt.state)
			require.True(t, ok)
			assertDecimal(t, tt.expected, ac.StateAdjustment(decimal.NewFromInt(tt.income), rules, true))
		})
	}

	t.Run("unknown state is zero", func(t *testing.T) {
		rules, _ := ref.State(domain.StateCalifornia)
		assert.True(t, ac.StateAdjustment(decimal.NewFromInt(125000), rules, false).IsZero())
	})
}

func TestAdjustmentCalculator_EnergyCost(t *testing.T) {
	ac, _ := testAdjustmentCalculator(t)

	tests := []struct {
		name     string
		state    domain.StateCode
		income   int64
		expected string
	}{
		{"texas at half scale", domain.StateTexas, 37500, "83"},
		{"california", domain.StateCalifornia, 125000, "717"},
		{"default formula", "", 62500, "203"},
		{"states without a formula use the default", "OH", 62500, "203"},
		// 12500/75000 is below the 0.3 floor
		{"scalar floor", domain.StateFlorida, 12500, "47"},
		// 500000/75000 is above the 3.0 cap
		{"scalar cap", domain.StateNewYork, 500000, "3300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := ac.EnergyCost(decimal.NewFromInt(tt.income), tt.state).Round(0)
			assertDecimal(t, tt.expected, actual)
		})
	}
}

func TestAdjustmentCalculator_EmploymentRate(t *testing.T) {
	ac, _ := testAdjustmentCalculator(t)

	tests := []struct {
		status   domain.EmploymentStatus
		expected string
	}{
		{domain.EmploymentSelfEmployed, "0.0765"},
		{domain.EmploymentContract, "0.06"},
		{domain.EmploymentPartTime, "0.02"},
		{domain.EmploymentFullTime, "-0.01"},
		{domain.EmploymentUnemployed, "0"},
		{domain.EmploymentRetired, "0"},
		{domain.EmploymentStudent, "0"},
		{domain.EmploymentUnable, "0"},
		{"", "0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assertDecimal(t, tt.expected, ac.EmploymentRate(tt.status))
		})
	}
}

func TestAdjustmentCalculator_EmploymentAdjustment(t *testing.T) {
	ac, _ := testAdjustmentCalculator(t)

	assertDecimal(t, "2868.75", ac.EmploymentAdjustment(decimal.NewFromInt(37500), domain.EmploymentSelfEmployed))
	assertDecimal(t, "-1250", ac.EmploymentAdjustment(decimal.NewFromInt(125000), domain.EmploymentFullTime))
	assertDecimal(t, "0", ac.EmploymentAdjustment(decimal.NewFromInt(125000), domain.EmploymentRetired))
}
