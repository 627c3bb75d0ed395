package service

import (
	"strings"
	"unicode/utf8"

	"stars-converter/internal/core/domain"
)

// SanitizeResult is the outcome of cleaning a piece of field text.
type SanitizeResult struct {
	Text     domain.AmountText
	Overflow bool // the text exceeded the bound and was replaced by it
	Caret    int  // caret hint, or domain.CaretKeep
}

// KeyDecision is the verdict on a single keydown.
type KeyDecision struct {
	Accept   bool
	Overflow bool // the key was vetoed because the bound would be exceeded
}

// controlKeys pass through the filter untouched.
var controlKeys = map[string]struct{}{
	"Backspace":  {},
	"Tab":        {},
	"Escape":     {},
	"Enter":      {},
	"Delete":     {},
	"ArrowLeft":  {},
	"ArrowUp":    {},
	"ArrowRight": {},
	"ArrowDown":  {},
}

// chordKeys are accepted together with Ctrl or Meta: select-all, copy,
// paste, cut.
var chordKeys = map[string]struct{}{
	"a": {}, "c": {}, "v": {}, "x": {},
}

// Sanitizer keeps the amount field numerically well-formed and bounded.
type Sanitizer struct {
	maxValue float64
}

// NewSanitizer creates a sanitizer with magnitude bound maxValue.
func NewSanitizer(maxValue float64) *Sanitizer {
	return &Sanitizer{maxValue: maxValue}
}

// MaxValue returns the bound M.
func (s *Sanitizer) MaxValue() float64 {
	return s.maxValue
}

// Normalize cleans a full field buffer. See NormalizeAt.
func (s *Sanitizer) Normalize(raw string) SanitizeResult {
	return s.NormalizeAt(raw, domain.CaretKeep)
}

// NormalizeAt cleans a full field buffer whose caret sits at rune offset
// caret. Characters outside [0-9.] are dropped, extra decimal points are
// collapsed into the first, and a value above the bound is replaced by
// the bound. When the text changed the caret hint is clamped to the new
// length; otherwise the caret stays where it is.
func (s *Sanitizer) NormalizeAt(raw string, caret int) SanitizeResult {
	clean := cleanAmount(raw)

	res := SanitizeResult{Text: clean, Caret: domain.CaretKeep}
	if clean.Exceeds(s.maxValue) {
		res.Text = domain.FormatBound(s.maxValue)
		res.Overflow = true
	}

	if string(res.Text) != raw {
		if caret < 0 {
			caret = utf8.RuneCountInString(raw)
		}
		res.Caret = min(caret, len(res.Text))
	}
	return res
}

// ShouldAccept decides whether key may reach a buffer holding current.
// Control keys and the copy/cut/paste/select-all chords always pass. A
// digit that would push the value past the bound is vetoed and flagged.
func (s *Sanitizer) ShouldAccept(key domain.KeyEvent, current domain.AmountText) KeyDecision {
	if _, ok := controlKeys[key.Key]; ok {
		return KeyDecision{Accept: true}
	}
	if key.Ctrl || key.Meta {
		if _, ok := chordKeys[strings.ToLower(key.Key)]; ok {
			return KeyDecision{Accept: true}
		}
	}

	if utf8.RuneCountInString(key.Key) != 1 {
		return KeyDecision{}
	}

	ch := key.Key[0]
	switch {
	case ch == '.':
		if strings.Contains(string(current), ".") {
			return KeyDecision{}
		}
		return KeyDecision{Accept: true}
	case ch >= '0' && ch <= '9':
		if (current + domain.AmountText(key.Key)).Exceeds(s.maxValue) {
			return KeyDecision{Overflow: true}
		}
		return KeyDecision{Accept: true}
	}
	return KeyDecision{}
}

// SanitizePaste cleans pasted text the same way NormalizeAt does but leaves
// the bound to the normalize pass that follows the paste. The caret goes
// to the end of the pasted text.
func (s *Sanitizer) SanitizePaste(text string) SanitizeResult {
	clean := cleanAmount(text)
	return SanitizeResult{Text: clean, Caret: len(clean)}
}

// cleanAmount strips everything but digits and points, then keeps the
// first point and joins the fragments after it.
func cleanAmount(raw string) domain.AmountText {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	parts := strings.Split(b.String(), ".")
	if len(parts) > 2 {
		return domain.AmountText(parts[0] + "." + strings.Join(parts[1:], ""))
	}
	return domain.AmountText(b.String())
}
