package metrics

import (
	"fmt"
	"math/big"
	"strings"

	"vault-pulse/internal/domain"

	"github.com/shopspring/decimal"
)

// ParseTokenAmount converts a raw 18-decimal fixed-point integer string into
// token units. The string is parsed as an arbitrary-precision integer first;
// amounts routinely exceed 2^53, so going through a float would corrupt the
// low digits.
func ParseTokenAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty token amount")
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return decimal.Zero, fmt.Errorf("token amount %q is not an integer", raw)
	}
	return decimal.NewFromBigInt(n, -domain.TokenDecimals), nil
}
