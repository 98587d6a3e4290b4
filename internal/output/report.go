package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/billimpact/internal/domain"
)

// GenerateReport writes results to w in the named format. Assumption lines are
// printed by the console and HTML reports; nil keeps their defaults.
func GenerateReport(w io.Writer, results *domain.PolicyResults, format string, assumptions []string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	return WriteFormatted(w, withAssumptions(GetFormatterByName(format), assumptions), results)
}

// SaveForm writes a form as YAML so it can be fed back to the calculate command
func SaveForm(form domain.FormData, filename string) error {
	data, err := yaml.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal form: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write form file: %w", err)
	}
	return nil
}

// FormatCurrency formats whole dollars with thousands separators, e.g. -$12,345
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "$" + groupThousands(rounded.StringFixed(0))
}

// FormatSignedCurrency is FormatCurrency with a leading + on positive amounts
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.Round(0).IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// FormatPercentage formats a value already on the 0-100 scale
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
