package service

import (
	"context"
	"time"

	"stars-converter/internal/core/domain"
	"stars-converter/internal/core/ports"
	"stars-converter/pkg/apperror"

	"github.com/rs/zerolog"
)

// OverflowFeedback tunes the cue the host plays on an overflow.
type OverflowFeedback struct {
	MarkerDuration     time.Duration // after a normalize or convert clamp
	VetoMarkerDuration time.Duration // after a vetoed keystroke
	HapticPattern      []time.Duration
}

// WidgetServiceImpl implements ports.WidgetService. Each UI event maps to
// one sanitizer call followed by a conversion against the current rate
// snapshot.
type WidgetServiceImpl struct {
	sanitizer  *Sanitizer
	conversion ports.ConversionService
	rates      ports.RateService
	feedback   OverflowFeedback
	metrics    ports.Metrics
	log        zerolog.Logger
}

// NewWidgetService creates the widget dispatcher.
func NewWidgetService(
	sanitizer *Sanitizer,
	conversion ports.ConversionService,
	rates ports.RateService,
	feedback OverflowFeedback,
	metrics ports.Metrics,
	log zerolog.Logger,
) *WidgetServiceImpl {
	return &WidgetServiceImpl{
		sanitizer:  sanitizer,
		conversion: conversion,
		rates:      rates,
		feedback:   feedback,
		metrics:    metricsOrNop(metrics),
		log:        log,
	}
}

// Dispatch applies event to state and returns the new state together with
// what the host must render.
func (s *WidgetServiceImpl) Dispatch(ctx context.Context, state domain.WidgetState, event domain.Event) (domain.Outcome, error) {
	if state.Base == "" {
		state.Base = domain.DefaultBaseCurrency
	}
	base, ok := domain.ParseCurrency(string(state.Base))
	if !ok {
		return domain.Outcome{}, apperror.ErrUnknownCurrency(string(state.Base))
	}
	state.Base = base
	if !state.Text.Valid() {
		return domain.Outcome{}, apperror.ErrInvalidAmountText()
	}

	out := domain.Outcome{State: state, Accepted: true, Caret: domain.CaretKeep}

	switch event.Type {
	case domain.EventInput:
		res := s.sanitizer.NormalizeAt(event.Raw, event.Caret)
		out.State.Text = res.Text
		out.Caret = res.Caret
		if res.Overflow {
			out.Overflow = s.overflow(domain.OverflowNormalize)
		}

	case domain.EventKey:
		// Never mutates the buffer; an accepted key reaches the host field
		// and comes back as an input event.
		decision := s.sanitizer.ShouldAccept(event.Key, state.Text)
		out.Accepted = decision.Accept
		if decision.Overflow {
			out.Overflow = s.overflow(domain.OverflowKeypress)
		}

	case domain.EventPaste:
		pasted := s.sanitizer.SanitizePaste(event.Text)
		if pasted.Text == "" {
			break
		}
		res := s.sanitizer.Normalize(string(pasted.Text))
		out.State.Text = res.Text
		out.Caret = len(res.Text)
		if res.Overflow {
			out.Overflow = s.overflow(domain.OverflowNormalize)
		}

	case domain.EventSelect:
		base, ok := domain.ParseCurrency(string(event.Currency))
		if !ok {
			return domain.Outcome{}, apperror.ErrUnknownCurrency(string(event.Currency))
		}
		out.State.Base = base

	case domain.EventRender:

	default:
		return domain.Outcome{}, apperror.Validation("unknown event type: " + string(event.Type))
	}

	conv := s.conversion.Convert(out.State.Text, out.State.Base, s.rates.Table())
	out.Display = conv.Display
	if conv.Clamped {
		out.State.Text = domain.FormatBound(s.sanitizer.MaxValue())
		if out.Overflow == nil {
			out.Overflow = s.overflow(domain.OverflowConvert)
		}
	}

	s.log.Debug().
		Str("event", string(event.Type)).
		Str("base", string(out.State.Base)).
		Bool("accepted", out.Accepted).
		Bool("overflow", out.Overflow != nil).
		Msg("widget event dispatched")

	return out, nil
}

func (s *WidgetServiceImpl) overflow(source domain.OverflowSource) *domain.OverflowSignal {
	s.metrics.ObserveOverflow(string(source))

	marker := s.feedback.MarkerDuration
	if source == domain.OverflowKeypress {
		marker = s.feedback.VetoMarkerDuration
	}
	pattern := make([]time.Duration, len(s.feedback.HapticPattern))
	copy(pattern, s.feedback.HapticPattern)

	return &domain.OverflowSignal{
		Source:         source,
		MarkerDuration: marker,
		HapticPattern:  pattern,
	}
}
