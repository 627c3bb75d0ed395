package service

import (
	"strconv"
	"testing"

	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testStarsToUSDT = 0.015
	testTokenRate   = 3.15
)

func newTestRateTable(t *testing.T) *domain.RateTable {
	t.Helper()
	table, err := domain.BuildRateTable(testStarsToUSDT, testTokenRate)
	require.NoError(t, err)
	return &table
}

func TestConversionService_Convert_EndToEndRates(t *testing.T) {
	svc := NewConversionService(domain.DefaultMaxInputValue, nil)
	rates := newTestRateTable(t)

	tests := []struct {
		name  string
		text  domain.AmountText
		base  domain.Currency
		stars string
		ton   string
		usdt  string
	}{
		{"stars base", "1000", domain.CurrencyStars, "1000", "4.7619", "15"},
		{"ton base", "1", domain.CurrencyTON, "210", "1", "3.15"},
		{"usdt base", "15", domain.CurrencyUSDT, "1000", "4.7619", "15"},
		{"fractional stars rounded", "1.6", domain.CurrencyStars, "2", "0.0076", "0.024"},
		{"trailing point", "5.", domain.CurrencyTON, "1050", "5", "15.75"},
		{"leading point", ".5", domain.CurrencyUSDT, "33", "0.1587", "0.5"},
		{"zero amount", "0", domain.CurrencyStars, "0", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Convert(tt.text, tt.base, rates)
			assert.False(t, got.Clamped)
			assert.Equal(t, domain.DisplayAmounts{
				Stars:  tt.stars,
				TON:    tt.ton,
				USDT:   tt.usdt,
				Active: tt.base,
			}, got.Display)
		})
	}
}

func TestConversionService_Convert_NeutralDisplay(t *testing.T) {
	svc := NewConversionService(domain.DefaultMaxInputValue, nil)
	rates := newTestRateTable(t)

	tests := []struct {
		name  string
		text  domain.AmountText
		base  domain.Currency
		rates *domain.RateTable
	}{
		{"rates absent", "500", domain.CurrencyStars, nil},
		{"rates absent other base", "500", domain.CurrencyUSDT, nil},
		{"invalid table", "500", domain.CurrencyTON, &domain.RateTable{}},
		{"empty text", "", domain.CurrencyTON, rates},
		{"lone point", ".", domain.CurrencyStars, rates},
		{"malformed text", "1.2.3", domain.CurrencyStars, rates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Convert(tt.text, tt.base, tt.rates)
			assert.Equal(t, domain.NeutralDisplay(tt.base), got.Display)
			assert.False(t, got.Clamped)
			assert.True(t, got.Display.IsActive(tt.base))
		})
	}
}

func TestConversionService_Convert_ClampsAboveBound(t *testing.T) {
	svc := NewConversionService(domain.DefaultMaxInputValue, nil)

	got := svc.Convert("2000000000", domain.CurrencyStars, newTestRateTable(t))

	assert.True(t, got.Clamped)
	assert.Equal(t, "1000000000", got.Display.Stars)
	assert.Equal(t, "4761904.7619", got.Display.TON)
	assert.Equal(t, "15000000", got.Display.USDT)
}

func TestConversionService_Convert_BaseCurrencyIdentity(t *testing.T) {
	svc := NewConversionService(domain.DefaultMaxInputValue, nil)
	rates := newTestRateTable(t)

	amounts := []domain.AmountText{"1", "42", "123.4567", "0.0001", "999999999"}
	for _, base := range domain.Currencies() {
		for _, text := range amounts {
			got := svc.Convert(text, base, rates)

			want, ok := text.Parse()
			require.True(t, ok)
			shown, err := strconv.ParseFloat(got.Display.Get(base), 64)
			require.NoError(t, err)
			assert.InDelta(t, want, shown, 0.5, "base=%s text=%s", base, text)
			assert.Equal(t, FormatNumber(want, base.Decimals()), got.Display.Get(base))
		}
	}
}

func TestConversionService_Convert_RoundTrip(t *testing.T) {
	rates := newTestRateTable(t)

	for _, from := range domain.Currencies() {
		for _, to := range domain.Currencies() {
			for _, v := range []float64{1, 1000, 0.25, 123456.789} {
				back := v * rates.Rate(from, to) * rates.Rate(to, from)
				assert.InEpsilon(t, v, back, 1e-12, "%s->%s->%s", from, to, from)
			}
		}
	}
}

func TestConversionService_Convert_SwitchingBase(t *testing.T) {
	svc := NewConversionService(domain.DefaultMaxInputValue, nil)
	rates := newTestRateTable(t)

	asStars := svc.Convert("100", domain.CurrencyStars, rates)
	asTON := svc.Convert("100", domain.CurrencyTON, rates)

	assert.Equal(t, "100", asStars.Display.Stars)
	assert.Equal(t, "100", asTON.Display.TON)
	assert.Equal(t, "21000", asTON.Display.Stars)
	assert.Equal(t, "315", asTON.Display.USDT)
	assert.True(t, asTON.Display.IsActive(domain.CurrencyTON))
	assert.False(t, asTON.Display.IsActive(domain.CurrencyStars))
}

func TestConversionService_Convert_ReportsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := mocks.NewMockMetrics(ctrl)
	svc := NewConversionService(domain.DefaultMaxInputValue, metrics)

	metrics.EXPECT().ObserveConversion("stars", true)
	metrics.EXPECT().ObserveConversion("usdt", false)

	svc.Convert("10", domain.CurrencyStars, nil)
	svc.Convert("10", domain.CurrencyUSDT, newTestRateTable(t))
}
