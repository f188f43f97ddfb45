package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoneNeverFlags(t *testing.T) {
	assert.False(t, None{}.ContainsProfanity("fuck"))
	assert.False(t, OrNone(nil).ContainsProfanity("shit"))
}

func TestGoAway(t *testing.T) {
	d := NewGoAway()
	assert.True(t, d.ContainsProfanity("fuck"))
	assert.True(t, d.ContainsProfanity("SHIT"))
	assert.False(t, d.ContainsProfanity("garden"))
	assert.False(t, d.ContainsProfanity(""))

	for _, w := range []string{"kasse", "tasse", "gasse", "dicke", "sexta", "cumin", "classic"} {
		t.Run(w, func(t *testing.T) {
			assert.False(t, d.ContainsProfanity(w), "profanity inside a longer word is not flagged")
		})
	}

	var nilDetector *GoAway
	assert.False(t, nilDetector.ContainsProfanity("fuck"))
}

func TestFunc(t *testing.T) {
	d := Func(func(s string) bool { return s == "bad" })
	assert.True(t, d.ContainsProfanity("bad"))
	assert.False(t, d.ContainsProfanity("good"))
}

func TestNamed(t *testing.T) {
	assert.IsType(t, None{}, Named("none"))
	assert.IsType(t, None{}, Named(" OFF "))
	assert.IsType(t, &GoAway{}, Named(""))
	assert.IsType(t, &GoAway{}, Named("goaway"))
}
