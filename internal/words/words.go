// internal/words/words.go
//
// Provides word source loading for the game session.
//
// Responsibilities:
//   - Read whitespace-delimited word lists from files or any io.Reader.
//   - Fall back to the embedded default dictionary from the assets package.
//   - Report which word lengths a list can support (Lengths).
//
// Word list format:
//   - Any number of words per line, separated by whitespace.
//   - Lines whose first non-space character is '#' are comments.
//   - Words are lowercased; tokens with anything other than a–z after
//     lowercasing are dropped.
//
// Read failures are returned to the caller; the CLI treats them as fatal.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daronb83/hang/assets"
)

// Parse reads every word token from r.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			w := strings.ToLower(tok)
			if isAlpha(w) {
				out = append(out, w)
			}
		}
	}
	return out, sc.Err()
}

// Load reads a word list from the file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return list, nil
}

// Default returns the embedded dictionary.
func Default() ([]string, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("open embedded dictionary: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Lengths counts words by length.
func Lengths(list []string) map[int]int {
	m := make(map[int]int)
	for _, w := range list {
		m[len(w)]++
	}
	return m
}

// isAlpha reports whether s is non-empty and all lowercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
