package affix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"github.com/Stewinjo/AnyLetters/internal/words"
)

// Entry is a single .dic line: a normalized base form and its flag characters.
type Entry struct {
	Base  string
	Flags string
}

// ParseEntries reads a .dic file. A missing file yields no entries.
func ParseEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open dic: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("read dic %s: %w", path, err)
	}
	return entries, nil
}

// ReadEntries parses word-list lines from r.
//
// Blank lines are skipped. The first non-blank line is dropped when it is purely
// numeric (the hunspell entry-count header); numeric lines further down are kept
// as entries. Each line is split on the first "/" into base and flags.
func ReadEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry
	first := true

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if first {
			line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		}
		if line == "" {
			continue
		}
		if first {
			first = false
			if isNumeric(line) {
				continue
			}
		}
		entries = append(entries, parseEntryLine(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseEntryLine(line string) Entry {
	base, flags, _ := strings.Cut(line, "/")
	return Entry{Base: words.Normalize(base), Flags: flags}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Catalog returns the set of every base form in entries.
func Catalog(entries []Entry) words.Set {
	out := make(words.Set, len(entries))
	for _, e := range entries {
		out[e.Base] = struct{}{}
	}
	return out
}
