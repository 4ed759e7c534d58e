// Package lexicon holds the word lists that drive cataloguing
// capitalization: words kept lowercase in titles, particles kept
// lowercase in author names, Mac-prefixed surnames, and honorifics.
//
// A Lexicon is an immutable snapshot. Mutation happens by building a
// new snapshot and swapping it into whatever holds it; concurrent
// readers of an existing snapshot are always safe.
package lexicon

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
)

//go:embed defaults/*.txt
var defaultsFS embed.FS

// Lexicon is an immutable set of exception lists. The zero value is
// usable and matches nothing; most callers start from Default().
type Lexicon struct {
	lowercaseTitleWords  map[string]struct{}
	lowercaseAuthorWords map[string]struct{}
	macSurnames          map[string]struct{}
	authorTitles         map[string]struct{}
}

// Default returns a Lexicon built from the embedded word lists.
func Default() *Lexicon {
	lex, err := build(
		mustEmbedded("lowercase_title_words.txt"),
		mustEmbedded("lowercase_author_words.txt"),
		mustEmbedded("mac_surnames.txt"),
		mustEmbedded("author_titles.txt"),
	)
	if err != nil {
		// Embedded lists are compiled in; failure here is a packaging bug.
		panic(fmt.Sprintf("lexicon: embedded defaults: %v", err))
	}
	return lex
}

// New builds a Lexicon from explicit word slices. Words are lower-cased
// and deduplicated; order does not matter. Nil slices mean empty lists.
func New(lowercaseTitleWords, lowercaseAuthorWords, macSurnames, authorTitles []string) *Lexicon {
	return &Lexicon{
		lowercaseTitleWords:  toSet(lowercaseTitleWords),
		lowercaseAuthorWords: toSet(lowercaseAuthorWords),
		macSurnames:          toSet(macSurnames),
		authorTitles:         toSet(authorTitles),
	}
}

// Files names the four optional word list files; empty fields fall back
// to the embedded defaults. Each file holds one word per line, case and
// order insensitive, blank lines and #-comments ignored.
type Files struct {
	LowercaseTitleWords  string
	LowercaseAuthorWords string
	MacSurnames          string
	AuthorTitles         string
}

// Load builds a Lexicon from the given files, falling back to the
// embedded defaults for any path left empty.
func Load(files Files) (*Lexicon, error) {
	titleWords, err := wordsFrom(files.LowercaseTitleWords, "lowercase_title_words.txt")
	if err != nil {
		return nil, err
	}
	authorWords, err := wordsFrom(files.LowercaseAuthorWords, "lowercase_author_words.txt")
	if err != nil {
		return nil, err
	}
	macs, err := wordsFrom(files.MacSurnames, "mac_surnames.txt")
	if err != nil {
		return nil, err
	}
	titles, err := wordsFrom(files.AuthorTitles, "author_titles.txt")
	if err != nil {
		return nil, err
	}
	return build(titleWords, authorWords, macs, titles)
}

// IsLowercaseTitleWord reports whether word stays lowercase in titles.
// Matching is case-insensitive.
func (l *Lexicon) IsLowercaseTitleWord(word string) bool {
	return contains(l.lowercaseTitleWords, word)
}

// IsLowercaseAuthorWord reports whether word stays lowercase in author
// names (particles such as "van" and "von").
func (l *Lexicon) IsLowercaseAuthorWord(word string) bool {
	return contains(l.lowercaseAuthorWords, word)
}

// IsMacSurname reports whether word is a surname whose letter after the
// "Mac" prefix should be capitalized.
func (l *Lexicon) IsMacSurname(word string) bool {
	return contains(l.macSurnames, word)
}

// IsAuthorTitle reports whether word is an honorific rather than part
// of a name.
func (l *Lexicon) IsAuthorTitle(word string) bool {
	return contains(l.authorTitles, word)
}

// WithLowercaseTitleWords returns a copy with the title word list replaced.
func (l *Lexicon) WithLowercaseTitleWords(words []string) *Lexicon {
	c := l.clone()
	c.lowercaseTitleWords = toSet(words)
	return c
}

// WithLowercaseAuthorWords returns a copy with the author word list replaced.
func (l *Lexicon) WithLowercaseAuthorWords(words []string) *Lexicon {
	c := l.clone()
	c.lowercaseAuthorWords = toSet(words)
	return c
}

// WithMacSurnames returns a copy with the Mac surname list replaced.
func (l *Lexicon) WithMacSurnames(names []string) *Lexicon {
	c := l.clone()
	c.macSurnames = toSet(names)
	return c
}

// WithAuthorTitles returns a copy with the honorific list replaced.
func (l *Lexicon) WithAuthorTitles(titles []string) *Lexicon {
	c := l.clone()
	c.authorTitles = toSet(titles)
	return c
}

func (l *Lexicon) clone() *Lexicon {
	return &Lexicon{
		lowercaseTitleWords:  l.lowercaseTitleWords,
		lowercaseAuthorWords: l.lowercaseAuthorWords,
		macSurnames:          l.macSurnames,
		authorTitles:         l.authorTitles,
	}
}

func contains(set map[string]struct{}, word string) bool {
	if len(set) == 0 {
		return false
	}
	_, ok := set[strings.ToLower(word)]
	return ok
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

func build(titleWords, authorWords, macs, titles []string) (*Lexicon, error) {
	return New(titleWords, authorWords, macs, titles), nil
}

// wordsFrom reads the word list at path, or the embedded fallback when
// path is empty.
func wordsFrom(path, fallback string) ([]string, error) {
	if path == "" {
		return mustEmbedded(fallback), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := cleanLine(scanner.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}

func mustEmbedded(name string) []string {
	data, err := defaultsFS.ReadFile("defaults/" + name)
	if err != nil {
		panic(fmt.Sprintf("lexicon: missing embedded list %s: %v", name, err))
	}
	var words []string
	for _, line := range bytes.Split(data, []byte("\n")) {
		if w := cleanLine(string(line)); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}
	return strings.ToLower(line)
}
