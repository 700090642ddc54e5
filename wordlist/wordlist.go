// Package wordlist reads newline-separated word lists from files or streams
// and prepares them for indexing.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Loader reads word lists line by line. Blank lines are skipped and
// surrounding whitespace is trimmed; the remaining transformations are
// opt-in.
type Loader struct {
	normalise bool
	lower     bool
	dedupe    bool
}

// NewLoader creates a Loader that keeps words exactly as read.
func NewLoader() *Loader {
	return &Loader{}
}

// WithNormalisation sets the Loader to strip diacritics from each word.
// For example, Jürgen is read as Jurgen.
func (l *Loader) WithNormalisation() *Loader {
	l.normalise = true
	return l
}

// WithLowercase sets the Loader to lowercase each word.
func (l *Loader) WithLowercase() *Loader {
	l.lower = true
	return l
}

// WithDedupe sets the Loader to drop repeated words, keeping the first
// occurrence in reading order.
func (l *Loader) WithDedupe() *Loader {
	l.dedupe = true
	return l
}

// Apply runs the Loader's per-word transformations on a single word. Queries
// against an index built from this Loader's output should pass through Apply
// so they see the same alphabet.
func (l *Loader) Apply(word string) string {
	if l.normalise {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		normal, _, err := transform.String(transformer, word)
		if err == nil {
			word = normal
		}
	}
	if l.lower {
		word = strings.ToLower(word)
	}
	return word
}

// Read collects the words from r.
func (l *Loader) Read(r io.Reader) ([]string, error) {
	var words []string
	var seen map[string]struct{}
	if l.dedupe {
		seen = make(map[string]struct{})
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		word = l.Apply(word)
		if l.dedupe {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// Load collects the words from the file at path.
func (l *Loader) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return words, nil
}

// Load reads the file at path with a default Loader.
func Load(path string) ([]string, error) {
	return NewLoader().Load(path)
}
