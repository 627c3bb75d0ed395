package service

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fraction digits to write any float64 exactly.
const exactDigits = 1100

// FormatNumber renders x with the given number of fraction digits, then
// drops trailing zeros and a dangling decimal point. Rounding works on the
// exact binary value of x with ties going away from zero, so 2.5 becomes
// "3" and 1.005 (stored as 1.00499...) becomes "1". Zero and non-finite
// values render as "0".
func FormatNumber(x float64, decimals int) string {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}

	exact := new(big.Float).SetFloat64(x).Text('f', exactDigits)
	d, err := decimal.NewFromString(exact)
	if err != nil {
		// Not reachable for finite input; keep the shortest representation.
		d = decimal.NewFromFloat(x)
	}

	s := d.StringFixed(int32(decimals))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
