package dto

import (
	"time"

	"stars-converter/internal/core/domain"
)

// ConvertRequest is the request body for a one-shot conversion.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"max=64,amount_text"`
	Base   string `json:"base" binding:"omitempty,currency"`
}

// Amounts are the three formatted amounts keyed by currency.
type Amounts struct {
	Stars string `json:"stars"`
	TON   string `json:"ton"`
	USDT  string `json:"usdt"`
}

// ConvertResponse is the response body for a conversion.
type ConvertResponse struct {
	Amounts Amounts         `json:"amounts"`
	Active  domain.Currency `json:"active"`
	Clamped bool            `json:"clamped"`
}

// RatesResponse describes the published rate table. Everything but Ready
// is omitted until the first refresh completes.
type RatesResponse struct {
	Ready     bool              `json:"ready"`
	TokenRate float64           `json:"token_rate,omitempty"`
	Source    domain.RateSource `json:"source,omitempty"`
	FetchedAt *time.Time        `json:"fetched_at,omitempty"`
	Rates     *domain.RateTable `json:"rates,omitempty"`
}

// WidgetState is the client-held widget state. Text is echoed back from the
// previous outcome, so its limit is at least the largest event payload.
type WidgetState struct {
	Text string `json:"text" binding:"max=4096,amount_text"`
	Base string `json:"base" binding:"omitempty,currency"`
}

// KeyEvent is a keydown as reported by the host page.
type KeyEvent struct {
	Key  string `json:"key" binding:"max=32" trim:"-"`
	Ctrl bool   `json:"ctrl"`
	Meta bool   `json:"meta"`
}

// WidgetEvent is one UI event. Caret is optional; without it the caret is
// assumed to sit at the end of Raw.
type WidgetEvent struct {
	Type     string   `json:"type" binding:"required,oneof=input key paste select render"`
	Raw      string   `json:"raw" binding:"max=1024" trim:"-"`
	Caret    *int     `json:"caret" binding:"omitempty,min=0"`
	Key      KeyEvent `json:"key"`
	Text     string   `json:"text" binding:"max=4096" trim:"-"`
	Currency string   `json:"currency" binding:"omitempty,currency"`
}

// WidgetEventRequest is the request body for a widget event.
type WidgetEventRequest struct {
	State WidgetState `json:"state"`
	Event WidgetEvent `json:"event"`
}

// ToDomain converts the request into the dispatcher's input.
func (r WidgetEventRequest) ToDomain() (domain.WidgetState, domain.Event) {
	state := domain.WidgetState{
		Text: domain.AmountText(r.State.Text),
		Base: domain.Currency(r.State.Base),
	}

	caret := domain.CaretKeep
	if r.Event.Caret != nil {
		caret = *r.Event.Caret
	}
	event := domain.Event{
		Type:  domain.EventType(r.Event.Type),
		Raw:   r.Event.Raw,
		Caret: caret,
		Key: domain.KeyEvent{
			Key:  r.Event.Key.Key,
			Ctrl: r.Event.Key.Ctrl,
			Meta: r.Event.Key.Meta,
		},
		Text:     r.Event.Text,
		Currency: domain.Currency(r.Event.Currency),
	}
	return state, event
}

// Overflow tells the host to flash the invalid marker and vibrate.
type Overflow struct {
	Source          domain.OverflowSource `json:"source"`
	MarkerMS        int64                 `json:"marker_ms"`
	HapticPatternMS []int64               `json:"haptic_pattern_ms"`
}

// WidgetEventResponse is everything the host needs to re-render.
type WidgetEventResponse struct {
	State    WidgetState     `json:"state"`
	Amounts  Amounts         `json:"amounts"`
	Active   domain.Currency `json:"active"`
	Accepted bool            `json:"accepted"`
	Caret    int             `json:"caret"`
	Overflow *Overflow       `json:"overflow,omitempty"`
}

// NewAmounts copies the formatted amounts of d.
func NewAmounts(d domain.DisplayAmounts) Amounts {
	return Amounts{Stars: d.Stars, TON: d.TON, USDT: d.USDT}
}

// NewConvertResponse builds the conversion response body.
func NewConvertResponse(conv domain.Conversion) ConvertResponse {
	return ConvertResponse{
		Amounts: NewAmounts(conv.Display),
		Active:  conv.Display.Active,
		Clamped: conv.Clamped,
	}
}

// NewRatesResponse builds the rates response body from the current
// snapshot, which may be nil.
func NewRatesResponse(snap *domain.RateSnapshot) RatesResponse {
	if snap == nil {
		return RatesResponse{}
	}
	fetchedAt := snap.FetchedAt
	table := snap.Table
	return RatesResponse{
		Ready:     true,
		TokenRate: snap.TokenRate,
		Source:    snap.Source,
		FetchedAt: &fetchedAt,
		Rates:     &table,
	}
}

// NewWidgetEventResponse builds the widget response body.
func NewWidgetEventResponse(out domain.Outcome) WidgetEventResponse {
	resp := WidgetEventResponse{
		State: WidgetState{
			Text: string(out.State.Text),
			Base: string(out.State.Base),
		},
		Amounts:  NewAmounts(out.Display),
		Active:   out.Display.Active,
		Accepted: out.Accepted,
		Caret:    out.Caret,
	}
	if out.Overflow != nil {
		pattern := make([]int64, 0, len(out.Overflow.HapticPattern))
		for _, d := range out.Overflow.HapticPattern {
			pattern = append(pattern, d.Milliseconds())
		}
		resp.Overflow = &Overflow{
			Source:          out.Overflow.Source,
			MarkerMS:        out.Overflow.MarkerDuration.Milliseconds(),
			HapticPatternMS: pattern,
		}
	}
	return resp
}
