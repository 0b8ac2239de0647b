package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NA is the placeholder for undefined aggregates and deltas.
const NA = "N/A"

// FormatNumber renders a decimal quantity with thousands grouping and
// exactly two fraction digits.
func FormatNumber(v float64) string {
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// FormatAmount renders a token amount with thousands grouping and two
// fraction digits without converting through a float.
func FormatAmount(d decimal.Decimal) string {
	return groupThousands(d.StringFixed(2))
}

// FormatPct renders a 0-1 fraction as a percentage with two fraction digits.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// FormatSignedInt renders an absolute delta with thousands grouping, no
// fraction digits, and an explicit "+" for non-negative values.
func FormatSignedInt(v float64) string {
	s := groupThousands(fmt.Sprintf("%.0f", v))
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// FormatSignedPct renders a relative delta as a signed percentage with two
// fraction digits.
func FormatSignedPct(v float64) string {
	s := fmt.Sprintf("%.2f%%", v*100)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// groupThousands inserts comma separators into the integer part of a plain
// decimal string such as "-1234567.89".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + fracPart
}
