package domain

import "time"

// WidgetState is everything the converter remembers between events. The
// host owns it and hands it to every dispatch.
type WidgetState struct {
	Text AmountText `json:"text"`
	Base Currency   `json:"base"`
}

// NewWidgetState returns the state of a freshly mounted widget.
func NewWidgetState() WidgetState {
	return WidgetState{Text: "", Base: DefaultBaseCurrency}
}

// OverflowSource names the path that detected an out-of-bound amount.
type OverflowSource string

const (
	OverflowKeypress  OverflowSource = "keypress"  // digit vetoed before insertion
	OverflowNormalize OverflowSource = "normalize" // buffer clamped after the fact
	OverflowConvert   OverflowSource = "convert"   // engine-side re-validation clamped
)

// OverflowSignal asks the host to flash the invalid marker for
// MarkerDuration and play HapticPattern when the platform can vibrate.
type OverflowSignal struct {
	Source         OverflowSource  `json:"source"`
	MarkerDuration time.Duration   `json:"-"`
	HapticPattern  []time.Duration `json:"-"`
}

// EventType enumerates the UI events the dispatcher understands.
type EventType string

const (
	EventInput  EventType = "input"  // the field buffer changed
	EventKey    EventType = "key"    // a keydown, before it reaches the buffer
	EventPaste  EventType = "paste"  // clipboard text dropped into the field
	EventSelect EventType = "select" // a currency card was clicked
	EventRender EventType = "render" // repaint without changes (initial mount, new rates)
)

// KeyEvent is a keydown as reported by the host.
type KeyEvent struct {
	Key  string `json:"key"`
	Ctrl bool   `json:"ctrl"`
	Meta bool   `json:"meta"`
}

// Event is one UI event. Only the fields of its Type are read.
type Event struct {
	Type     EventType `json:"type"`
	Raw      string    `json:"raw,omitempty"`
	Caret    int       `json:"caret,omitempty"`
	Key      KeyEvent  `json:"key,omitempty"`
	Text     string    `json:"text,omitempty"`
	Currency Currency  `json:"currency,omitempty"`
}

// CaretKeep tells the host to leave the caret where it is.
const CaretKeep = -1

// Outcome is everything the host needs after a dispatch.
type Outcome struct {
	State    WidgetState
	Display  DisplayAmounts
	Accepted bool // false only for a vetoed keystroke
	Caret    int
	Overflow *OverflowSignal
}
