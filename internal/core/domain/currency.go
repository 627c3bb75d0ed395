package domain

import "strings"

// Currency identifies one of the three fields of the converter.
type Currency string

const (
	CurrencyStars Currency = "stars" // in-platform points
	CurrencyTON   Currency = "ton"   // blockchain token
	CurrencyUSDT  Currency = "usdt"  // stablecoin
)

// DefaultBaseCurrency is the base a fresh widget starts with.
const DefaultBaseCurrency = CurrencyStars

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{CurrencyStars, CurrencyTON, CurrencyUSDT}
}

// ParseCurrency maps a case-insensitive code to a Currency.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyStars, CurrencyTON, CurrencyUSDT:
		return true
	}
	return false
}

// Decimals is the number of fraction digits shown for c.
func (c Currency) Decimals() int {
	if c == CurrencyStars {
		return 0
	}
	return 4
}

func (c Currency) String() string {
	return string(c)
}
