package calculation

import (
	"testing"

	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testMedicareCalculator(t *testing.T) *MedicareCalculator {
	t.Helper()
	return NewMedicareCalculator(testReference(t).Healthcare.Medicare)
}

func TestMedicareCalculator_AnnualCost(t *testing.T) {
	mc := testMedicareCalculator(t)

	tests := []struct {
		name     string
		income   int64
		joint    bool
		expected string
	}{
		{"below first threshold", 87500, false, "4562.4"},
		{"exactly at threshold pays no surcharge", 103000, false, "4562.4"},
		{"tier 1", 110000, false, "5401.2"},
		{"tier 3 single", 175000, false, "7916.4"},
		// Joint thresholds are doubled
		{"joint below", 175000, true, "4562.4"},
		{"top tier single", 500000, false, "9174"},
		{"top tier joint", 500000, true, "9174"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, mc.AnnualCost(decimal.NewFromInt(tt.income), tt.joint))
		})
	}
}

func TestMedicareCalculator_MonthlyBasePremium(t *testing.T) {
	assertDecimal(t, "380.2", testMedicareCalculator(t).MonthlyBasePremium())
}

func TestCalculateIRMAARiskStatus(t *testing.T) {
	mc := testMedicareCalculator(t)

	tests := []struct {
		name      string
		income    int64
		joint     bool
		risk      domain.IRMAARisk
		tier      string
		surcharge string
		distance  string
	}{
		{"well below", 62500, false, domain.IRMAARiskSafe, "None", "0", "40500"},
		{"within warning distance", 95000, false, domain.IRMAARiskWarning, "None", "0", "8000"},
		{"at threshold", 103000, false, domain.IRMAARiskWarning, "None", "0", "0"},
		{"first tier", 110000, false, domain.IRMAARiskBreach, "Tier1", "69.9", "19000"},
		{"third tier", 175000, false, domain.IRMAARiskBreach, "Tier3", "279.5", "18000"},
		{"top tier has no next threshold", 250000, false, domain.IRMAARiskBreach, "Tier4", "384.3", "0"},
		{"joint safe", 175000, true, domain.IRMAARiskSafe, "None", "0", "31000"},
		{"joint breach", 300000, true, domain.IRMAARiskBreach, "Tier2", "174.7", "22000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := CalculateIRMAARiskStatus(decimal.NewFromInt(tt.income), tt.joint, mc)
			assert.Equal(t, tt.risk, status.Risk)
			assert.Equal(t, tt.tier, status.Tier)
			assertDecimal(t, tt.surcharge, status.MonthlySurcharge)
			assertDecimal(t, tt.distance, status.DistanceToThreshold)
		})
	}
}

func TestCalculateIRMAARiskStatus_NoTiers(t *testing.T) {
	status := CalculateIRMAARiskStatus(decimal.NewFromInt(1000000), false, NewMedicareCalculator(domain.MedicareRules{}))
	assert.Equal(t, domain.IRMAARiskSafe, status.Risk)
	assert.Equal(t, "None", status.Tier)
}

func TestGetTierName(t *testing.T) {
	assert.Equal(t, "Tier1", getTierName(1))
	assert.Equal(t, "Tier4", getTierName(4))
	assert.Equal(t, "Unknown", getTierName(0))
}
