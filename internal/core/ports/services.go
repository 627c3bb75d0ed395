package ports

import (
	"context"

	"stars-converter/internal/core/domain"
)

// RateService owns the published rate snapshot.
type RateService interface {
	// Refresh resolves the token rate once and publishes a new snapshot.
	Refresh(ctx context.Context) (*domain.RateSnapshot, error)
	// Snapshot returns the current snapshot; ok is false until the first
	// refresh has completed.
	Snapshot() (snapshot *domain.RateSnapshot, ok bool)
	// Table returns a copy of the published rate table, or nil while none
	// has been published.
	Table() *domain.RateTable
}

// ConversionService turns an amount into the three displayed amounts.
type ConversionService interface {
	Convert(text domain.AmountText, base domain.Currency, rates *domain.RateTable) domain.Conversion
}

// WidgetService applies one UI event to a widget state.
type WidgetService interface {
	Dispatch(ctx context.Context, state domain.WidgetState, event domain.Event) (domain.Outcome, error)
}
