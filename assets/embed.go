// Package assets bundles the default word lists so the server runs without
// any files configured.
package assets

import (
	"bufio"
	"embed"
	"io"
	"os"
	"strings"
)

// Embedded list names.
const (
	StartFile      = "start.txt"      // root words, one per line
	DictionaryFile = "dictionary.txt" // words the default dictionary accepts
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// ReadLines reads one entry per line, lowercased and trimmed.
// Blank lines and lines starting with "#" are skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// ReadFile reads a word list from disk, or from the embedded file name when
// path is empty.
func ReadFile(path, embedded string) ([]string, error) {
	if path == "" {
		return readEmbedded(embedded)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

func readEmbedded(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
