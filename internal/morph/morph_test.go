package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

func TestLooksPluralEN(t *testing.T) {
	catalog := words.ToSet([]string{"party", "leaf", "knife", "box", "church", "woman", "tomato", "house", "bus", "glass", "cat", "ad", "it", "ox"})
	tests := []struct {
		word string
		want bool
	}{
		{"parties", true},
		{"leaves", true},
		{"knives", true},
		{"boxes", true},
		{"churches", true},
		{"women", true},
		{"tomatoes", true},
		{"houses", true},
		{"cats", true},
		{"buses", true},
		{"glasses", true},
		{"glass", false},
		{"bonus", false},
		{"status", false},
		{"dogs", false},
		{"its", false},
		{"ads", false},
		{"oxes", true},
		{"CATS", true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksPluralEN(tt.word, catalog))
		})
	}
}

func TestLooksPastTenseEN(t *testing.T) {
	catalog := words.ToSet([]string{"carry", "walk", "burn", "burne", "jump"})
	assert.True(t, LooksPastTenseEN("carried", catalog))
	assert.True(t, LooksPastTenseEN("walked", catalog))
	assert.True(t, LooksPastTenseEN("burnt", catalog))
	assert.False(t, LooksPastTenseEN("jumpt", catalog), "-t needs both stem and stem+e")
	assert.False(t, LooksPastTenseEN("red", words.ToSet([]string{"r"})))
	assert.False(t, LooksPastTenseEN("walk", catalog))
}

func TestLooksPluralDE(t *testing.T) {
	catalog := words.ToSet([]string{"lehrerin", "kind", "frau", "hund", "auto", "mädchen", "tisch"})
	tests := []struct {
		word string
		want bool
	}{
		{"lehrerinnen", true},
		{"kinder", true},
		{"frauen", true},
		{"hunde", true},
		{"autos", true},
		{"tische", true},
		{"mädchen", false},
		{"hund", false},
		{"baum", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksPluralDE(tt.word, catalog))
		})
	}
}

func TestLooksPluralDEDiminutive(t *testing.T) {
	// "-chen" and "-lein" are never read as an -en plural.
	catalog := words.ToSet([]string{"häusch", "fräul"})
	assert.False(t, LooksPluralDE("häuschen", catalog))
	assert.False(t, LooksPluralDE("fräulein", catalog))
}

func TestLooksPastTenseDE(t *testing.T) {
	catalog := words.ToSet([]string{"machen", "fallen", "spielen", "sagen"})
	assert.True(t, LooksPastTenseDE("gemacht", catalog))
	assert.True(t, LooksPastTenseDE("gefallen", catalog))
	assert.True(t, LooksPastTenseDE("spielte", catalog))
	assert.True(t, LooksPastTenseDE("spieltest", catalog))
	assert.True(t, LooksPastTenseDE("sagten", catalog))
	assert.False(t, LooksPastTenseDE("garten", catalog))
	assert.False(t, LooksPastTenseDE("gut", catalog))
}

func TestShouldExcludeInflected(t *testing.T) {
	en := words.ToSet([]string{"cat"})
	assert.True(t, ShouldExcludeInflected("cats", "en-US", en))
	assert.False(t, ShouldExcludeInflected("cats", "fr", en))
	assert.False(t, ShouldExcludeInflected("cats", "en", nil))

	de := words.ToSet([]string{"hund"})
	assert.True(t, ShouldExcludeInflected("hunde", "de", de))
}

func TestReduce(t *testing.T) {
	catalog := words.ToSet([]string{"cat", "house"})
	in := []string{"cats", "dogs", "house", "houses"}
	assert.Equal(t, []string{"dogs", "house"}, Reduce(in, "en", catalog))
	assert.Equal(t, []string{"cats", "dogs", "house", "houses"}, in)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("EN"))
	assert.True(t, Supported("de-CH"))
	assert.False(t, Supported("nl"))
}
