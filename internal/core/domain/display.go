package domain

// DisplayAmounts is what the rendering collaborator paints after every
// state change: one formatted string per currency plus the active card.
type DisplayAmounts struct {
	Stars  string   `json:"stars"`
	TON    string   `json:"ton"`
	USDT   string   `json:"usdt"`
	Active Currency `json:"active"`
}

// NeutralDisplay is the all-zero output shown while there is no amount or
// no rate table.
func NeutralDisplay(active Currency) DisplayAmounts {
	return DisplayAmounts{Stars: "0", TON: "0", USDT: "0", Active: active}
}

// Get returns the formatted amount for c.
func (d DisplayAmounts) Get(c Currency) string {
	switch c {
	case CurrencyStars:
		return d.Stars
	case CurrencyTON:
		return d.TON
	case CurrencyUSDT:
		return d.USDT
	}
	return ""
}

// IsActive reports whether c is the highlighted card. Exactly one is.
func (d DisplayAmounts) IsActive(c Currency) bool {
	return d.Active == c
}

// Conversion is the engine result for one call. Clamped reports that the
// amount exceeded the bound and was converted at the bound instead.
type Conversion struct {
	Display DisplayAmounts
	Clamped bool
}
