package words

// Alphabet is a closed set of allowed lowercase letters for a language family.
type Alphabet struct {
	name  string
	extra map[rune]struct{}
}

// NewAlphabet returns the Latin a–z alphabet extended with the letters in extra.
func NewAlphabet(name, extra string) Alphabet {
	a := Alphabet{name: name, extra: make(map[rune]struct{})}
	for _, r := range extra {
		a.extra[r] = struct{}{}
	}
	return a
}

var (
	// Latin is plain a–z.
	Latin = NewAlphabet("latin", "")
	// German is a–z plus ä, ö, ü and ß.
	German = NewAlphabet("german", "äöüß")
)

// alphabets maps archetypes to their alphabet. Languages without an entry
// fall back to German, which is the widest Latin set the engine supports.
var alphabets = map[string]Alphabet{
	"en": Latin,
	"de": German,
}

// AlphabetFor returns the alphabet used for lang.
func AlphabetFor(lang string) Alphabet {
	if a, ok := alphabets[Archetype(lang)]; ok {
		return a
	}
	return German
}

// Name identifies the alphabet in logs.
func (a Alphabet) Name() string { return a.name }

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	if r >= 'a' && r <= 'z' {
		return true
	}
	_, ok := a.extra[r]
	return ok
}

// Match reports whether w is non-empty and every rune belongs to the alphabet.
func (a Alphabet) Match(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}
