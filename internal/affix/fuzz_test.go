package affix

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzParseRuleLine(f *testing.F) {
	for _, seed := range []string{
		"SFX S 0 s .",
		"PFX U Y 1",
		"SFX E e ing [^e]e",
		"# comment",
		"",
		"SFX",
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		r, err := parseRuleLine(line)
		if err != nil {
			return
		}
		if r.Condition == "" {
			t.Fatalf("accepted rule %q without a condition", line)
		}
		if r.Strip == "0" || r.Add == "0" {
			t.Fatalf("zero placeholder leaked from %q", line)
		}
	})
}

func FuzzReadEntries(f *testing.F) {
	f.Add("3\nhaus/SE\nbär\n")
	f.Add("\ufeff\n\nword")
	f.Add("/////")
	f.Fuzz(func(t *testing.T, body string) {
		entries, err := ReadEntries(strings.NewReader(body))
		if err != nil {
			return
		}
		for _, e := range entries {
			if strings.ContainsAny(e.Base, "\n") {
				t.Fatalf("multi-line base %q", e.Base)
			}
			if strings.Contains(e.Base, "/") {
				t.Fatalf("base %q still holds a flag separator", e.Base)
			}
		}
	})
}

func FuzzExpand(f *testing.F) {
	f.Add("run", "S", "", "s", ".", 4)
	f.Add("pony", "S", "y", "ies", "[^aeiou]", 6)
	f.Add("cat", "S", "", "s", "[abc", 4)
	f.Fuzz(func(t *testing.T, base, flags, strip, add, cond string, length int) {
		if length < 0 || length > 32 {
			return
		}
		rules := rulesOf(
			Rule{Flag: "S", Strip: strip, Add: add, Condition: cond, Kind: Suffix},
			Rule{Flag: "S", Strip: strip, Add: add, Condition: cond, Kind: Prefix},
		)
		got := Candidates([]Entry{{Base: base, Flags: flags}}, rules, length, Options{})
		for w := range got {
			if utf8.RuneCountInString(w) != length {
				t.Fatalf("candidate %q has wrong length, want %d", w, length)
			}
		}
	})
}
