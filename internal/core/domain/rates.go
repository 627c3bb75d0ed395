package domain

import (
	"fmt"
	"math"
	"time"
)

// RateTable holds the six directed exchange rates between the supported
// currencies. Every rate is derived from stars->usdt and ton->usdt, so a
// table is either complete or not built at all.
type RateTable struct {
	StarsToTON  float64 `json:"stars_to_ton"`
	StarsToUSDT float64 `json:"stars_to_usdt"`
	TONToStars  float64 `json:"ton_to_stars"`
	TONToUSDT   float64 `json:"ton_to_usdt"`
	USDTToStars float64 `json:"usdt_to_stars"`
	USDTToTON   float64 `json:"usdt_to_ton"`
}

// BuildRateTable derives the full table from the fixed stars price k and
// the fetched token price r, both quoted in usdt.
func BuildRateTable(starsToUSDT, tonToUSDT float64) (RateTable, error) {
	if !isPositiveFinite(starsToUSDT) {
		return RateTable{}, fmt.Errorf("stars_to_usdt must be positive and finite, got %v", starsToUSDT)
	}
	if !isPositiveFinite(tonToUSDT) {
		return RateTable{}, fmt.Errorf("ton_to_usdt must be positive and finite, got %v", tonToUSDT)
	}

	k, r := starsToUSDT, tonToUSDT
	t := RateTable{
		StarsToTON:  k / r,
		StarsToUSDT: k,
		TONToStars:  r / k,
		TONToUSDT:   r,
		USDTToStars: 1 / k,
		USDTToTON:   1 / r,
	}
	if !t.Valid() {
		// Extreme inputs can still overflow or underflow a quotient.
		return RateTable{}, fmt.Errorf("derived rates out of range for k=%v r=%v", k, r)
	}
	return t, nil
}

// Rate returns the multiplier converting an amount in from into to.
func (t RateTable) Rate(from, to Currency) float64 {
	switch {
	case from == to:
		return 1
	case from == CurrencyStars && to == CurrencyTON:
		return t.StarsToTON
	case from == CurrencyStars && to == CurrencyUSDT:
		return t.StarsToUSDT
	case from == CurrencyTON && to == CurrencyStars:
		return t.TONToStars
	case from == CurrencyTON && to == CurrencyUSDT:
		return t.TONToUSDT
	case from == CurrencyUSDT && to == CurrencyStars:
		return t.USDTToStars
	case from == CurrencyUSDT && to == CurrencyTON:
		return t.USDTToTON
	}
	return math.NaN()
}

// Valid reports whether all six rates are positive finite numbers.
func (t RateTable) Valid() bool {
	for _, v := range []float64{t.StarsToTON, t.StarsToUSDT, t.TONToStars, t.TONToUSDT, t.USDTToStars, t.USDTToTON} {
		if !isPositiveFinite(v) {
			return false
		}
	}
	return true
}

// RateSource tells where the token rate of a snapshot came from.
type RateSource string

const (
	RateSourceLive     RateSource = "live"
	RateSourceCache    RateSource = "cache"
	RateSourceFallback RateSource = "fallback"
)

// RateSnapshot is one published rate table together with its provenance.
// Snapshots are immutable once published.
type RateSnapshot struct {
	Table     RateTable  `json:"rates"`
	TokenRate float64    `json:"token_rate"`
	Source    RateSource `json:"source"`
	FetchedAt time.Time  `json:"fetched_at"`
}

func isPositiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
