package tuistyles

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0"},
		{"12", "$12"},
		{"999.6", "$1,000"},
		{"17451", "$17,451"},
		{"-6757", "-$6,757"},
		{"572393", "$572,393"},
		{"2458333", "$2,458,333"},
		{"-136087", "-$136,087"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$1,521", FormatSignedCurrency(decimal.NewFromInt(1521)))
	assert.Equal(t, "-$505", FormatSignedCurrency(decimal.NewFromInt(-505)))
	assert.Equal(t, "$0", FormatSignedCurrency(decimal.Zero))
}

func TestTrendIndicator(t *testing.T) {
	assert.Equal(t, "▲", TrendIndicator(decimal.NewFromInt(5)))
	assert.Equal(t, "▼", TrendIndicator(decimal.NewFromInt(-5)))
	assert.Equal(t, "=", TrendIndicator(decimal.Zero))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "28%", FormatPercent(decimal.NewFromInt(28)))
}
