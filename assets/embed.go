// assets/embed.go
//
// Embedded default data shipped inside the binary.
//
// Responsibilities:
//   - Carry the default language filter configurations (filters/*.json) and the
//     blacklist word lists they reference.
//   - Read newline word lists from any fs.FS (embedded or a directory override).

package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed filters/*.json filters/*.txt
var FS embed.FS

// Filters returns the embedded filter configuration directory.
func Filters() fs.FS {
	sub, err := fs.Sub(FS, "filters")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// Lines returns the trimmed, lowercased, non-blank lines of name in fsys.
// Lines starting with "#" are comments.
func Lines(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
