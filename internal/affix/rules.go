// Package affix parses hunspell-style .aff/.dic pairs and expands base entries
// into same-length inflected candidates.
//
// Only a simplified subset of hunspell is supported: a single prefix OR a single
// suffix is applied to a base form, never both, and rule conditions are used as
// raw regular-expression fragments.
package affix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// scannerBufSize bounds a single line of an .aff or .dic file.
const scannerBufSize = 1 << 20

// errSkipLine signals that a line carries no rule or entry (comment, header, malformed).
var errSkipLine = errors.New("skip line")

// Kind tells whether a rule attaches at the end or the start of a word.
type Kind int

const (
	Suffix Kind = iota
	Prefix
)

func (k Kind) String() string {
	if k == Prefix {
		return "PFX"
	}
	return "SFX"
}

// Rule is a single affix transformation. Rules are immutable once parsed.
type Rule struct {
	Flag      string
	Strip     string
	Add       string
	Condition string
	Kind      Kind
}

// RuleTable maps a flag to all rules declared for it, in file order.
type RuleTable map[string][]Rule

// Rules holds the suffix and prefix tables of one or more .aff files.
type Rules struct {
	Suffixes RuleTable
	Prefixes RuleTable
}

// NewRules returns empty rule tables.
func NewRules() *Rules {
	return &Rules{Suffixes: make(RuleTable), Prefixes: make(RuleTable)}
}

// Add appends rule to the table matching its kind.
func (r *Rules) Add(rule Rule) {
	table := r.Suffixes
	if rule.Kind == Prefix {
		table = r.Prefixes
	}
	table[rule.Flag] = append(table[rule.Flag], rule)
}

// Merge concatenates other's rules onto r, flag by flag.
func (r *Rules) Merge(other *Rules) {
	if other == nil {
		return
	}
	for flag, list := range other.Suffixes {
		r.Suffixes[flag] = append(r.Suffixes[flag], list...)
	}
	for flag, list := range other.Prefixes {
		r.Prefixes[flag] = append(r.Prefixes[flag], list...)
	}
}

// Len returns the total number of rules.
func (r *Rules) Len() int {
	n := 0
	for _, list := range r.Suffixes {
		n += len(list)
	}
	for _, list := range r.Prefixes {
		n += len(list)
	}
	return n
}

// ParseRules reads an .aff file. A missing file yields empty tables.
func ParseRules(path string) (*Rules, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRules(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open aff: %w", err)
	}
	defer f.Close()

	rules, err := ReadRules(f)
	if err != nil {
		return nil, fmt.Errorf("read aff %s: %w", path, err)
	}
	return rules, nil
}

// ReadRules parses SFX/PFX rule lines from r. Malformed lines are skipped.
func ReadRules(r io.Reader) (*Rules, error) {
	rules := NewRules()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for sc.Scan() {
		rule, err := parseRuleLine(sc.Text())
		if err != nil {
			continue
		}
		rules.Add(rule)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// parseRuleLine parses "TYPE FLAG STRIP ADD [CONDITION]".
// Header lines ("TYPE FLAG Y|N COUNT") and anything else return errSkipLine.
func parseRuleLine(line string) (Rule, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, errSkipLine
	}
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return Rule{}, errSkipLine
	}

	var kind Kind
	switch parts[0] {
	case "SFX":
		kind = Suffix
	case "PFX":
		kind = Prefix
	default:
		return Rule{}, errSkipLine
	}
	if parts[2] == "Y" || parts[2] == "N" {
		return Rule{}, errSkipLine
	}

	cond := "."
	if len(parts) >= 5 {
		cond = parts[4]
	}
	return Rule{
		Flag:      parts[1],
		Strip:     zeroToEmpty(parts[2]),
		Add:       zeroToEmpty(parts[3]),
		Condition: cond,
		Kind:      kind,
	}, nil
}

// zeroToEmpty maps hunspell's "0" placeholder to the empty string.
func zeroToEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
