// internal/profanity/profanity.go
//
// Pluggable profanity detection used by the language filters.
//
// Responsibilities:
//   - Define the Detector capability queried as ContainsProfanity(text).
//   - Provide the default detector backed by github.com/TwiN/go-away.
//   - Provide None, the no-op detector used when detection is disabled.
//
// A missing detector is never an error: callers treat nil as None.

package profanity

import (
	"strings"

	goaway "github.com/TwiN/go-away"
)

// Detector reports whether text contains profanity.
type Detector interface {
	ContainsProfanity(text string) bool
}

// Func adapts a plain function to Detector.
type Func func(text string) bool

func (f Func) ContainsProfanity(text string) bool { return f(text) }

// None never flags anything.
type None struct{}

func (None) ContainsProfanity(string) bool { return false }

// GoAway wraps a go-away detector.
type GoAway struct {
	d *goaway.ProfanityDetector
}

// NewGoAway returns the default detector. Leet-speak and special-character
// sanitizing are turned off: candidates are plain lowercase dictionary words.
func NewGoAway() *GoAway {
	d := goaway.NewProfanityDetector().
		WithSanitizeLeetSpeak(false).
		WithSanitizeSpecialCharacters(false).
		WithSanitizeAccents(true)
	return &GoAway{d: d}
}

// ContainsProfanity flags text only when the profanity go-away finds spans
// the whole word. go-away matches substrings, which would drop words such as
// "kasse" or "tasse".
func (g *GoAway) ContainsProfanity(text string) bool {
	if g == nil || g.d == nil {
		return false
	}
	w := strings.ToLower(strings.TrimSpace(text))
	if w == "" {
		return false
	}
	found := g.d.ExtractProfanity(w)
	return found != "" && strings.EqualFold(found, w)
}

// OrNone returns d, or None when d is nil.
func OrNone(d Detector) Detector {
	if d == nil {
		return None{}
	}
	return d
}

// Named resolves a detector by its configuration name: "goaway" (default) or "none".
func Named(name string) Detector {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off", "disabled":
		return None{}
	default:
		return NewGoAway()
	}
}
