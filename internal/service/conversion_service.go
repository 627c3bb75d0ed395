package service

import (
	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports"
)

// ConversionServiceImpl implements ports.ConversionService. It keeps no
// state between calls; the bound M is fixed at construction.
type ConversionServiceImpl struct {
	maxValue float64
	metrics  ports.Metrics
}

// NewConversionService creates a conversion engine bounded by maxValue.
func NewConversionService(maxValue float64, metrics ports.Metrics) *ConversionServiceImpl {
	return &ConversionServiceImpl{
		maxValue: maxValue,
		metrics:  metricsOrNop(metrics),
	}
}

// Convert computes the three displayed amounts for text interpreted in
// base. Without rates, or without a parseable amount, it returns the
// neutral display. The active card always follows base.
func (s *ConversionServiceImpl) Convert(text domain.AmountText, base domain.Currency, rates *domain.RateTable) domain.Conversion {
	if rates == nil || !rates.Valid() {
		s.metrics.ObserveConversion(string(base), true)
		return domain.Conversion{Display: domain.NeutralDisplay(base)}
	}

	v, ok := text.Parse()
	if !ok {
		s.metrics.ObserveConversion(string(base), true)
		return domain.Conversion{Display: domain.NeutralDisplay(base)}
	}

	// The sanitizer should already have clamped; do not rely on it.
	clamped := false
	if v > s.maxValue {
		v = s.maxValue
		clamped = true
	}

	display := domain.DisplayAmounts{Active: base}
	for _, c := range domain.Currencies() {
		formatted := FormatNumber(v*rates.Rate(base, c), c.Decimals())
		switch c {
		case domain.CurrencyStars:
			display.Stars = formatted
		case domain.CurrencyTON:
			display.TON = formatted
		case domain.CurrencyUSDT:
			display.USDT = formatted
		}
	}

	s.metrics.ObserveConversion(string(base), false)
	return domain.Conversion{Display: display, Clamped: clamped}
}
