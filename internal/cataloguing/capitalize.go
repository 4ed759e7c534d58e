// Package cataloguing capitalizes book titles and author names the way
// library catalogues expect: connective words stay lowercase inside
// titles, name particles stay lowercase in author names, Mc/Mac
// surnames and O'Hara-style names get their embedded capital, and
// roman numerals go fully uppercase.
//
// The rules are driven by a lexicon.Lexicon snapshot held by a
// Cataloguer. A Cataloguer is immutable and safe for concurrent use.
// The package-level functions operate on a default Cataloguer whose
// snapshot the Set* functions swap atomically.
package cataloguing

import (
	"regexp"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/bookcat/internal/lexicon"
)

// apostropheNameRe matches words like "o'hara" where the letters on
// both sides of the apostrophe are capitalized. Applied to
// accent-stripped lowercase input.
var apostropheNameRe = regexp.MustCompile(`^[a-z][` + apostrophes + `][a-z]{2,}`)

// Options tunes a Cataloguer.
type Options struct {
	// DisableMcPrefix turns off the Mc/Mac surname rule, so "mcdonald"
	// capitalizes as "Mcdonald" rather than "McDonald".
	DisableMcPrefix bool
}

// Cataloguer applies capitalization and sort-key rules using an
// immutable lexicon snapshot.
type Cataloguer struct {
	lex      *lexicon.Lexicon
	mcPrefix bool
}

// New returns a Cataloguer over lex with the Mc/Mac rule enabled.
func New(lex *lexicon.Lexicon) *Cataloguer {
	return NewWithOptions(lex, Options{})
}

// NewWithOptions returns a Cataloguer over lex with the given options.
func NewWithOptions(lex *lexicon.Lexicon, opts Options) *Cataloguer {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Cataloguer{lex: lex, mcPrefix: !opts.DisableMcPrefix}
}

// Lexicon returns the snapshot this Cataloguer reads.
func (c *Cataloguer) Lexicon() *lexicon.Lexicon {
	return c.lex
}

// WithLexicon returns a copy of c reading from lex.
func (c *Cataloguer) WithLexicon(lex *lexicon.Lexicon) *Cataloguer {
	return &Cataloguer{lex: lex, mcPrefix: c.mcPrefix}
}

// CapitalizeTitle capitalizes a book title, preserving all separator
// characters. Words in the lowercase-title-words list stay lowercase
// unless they open or close the title, open a subtitle after a colon,
// or close the segment before a colon. Roman numerals go uppercase.
//
//	CapitalizeTitle("the hobbit: or, there and back again")
//	  -> "The Hobbit: Or, There and Back Again"
func (c *Cataloguer) CapitalizeTitle(title string) string {
	sections, totalWords := segment(title, false)

	wordCount := 0
	first := true
	for i, section := range sections {
		if !startsWord(section, false) {
			continue
		}

		// Whether this word closes the segment before a colon, which
		// makes the next word open a subtitle.
		last := false
		if i < len(sections)-1 {
			last = strings.Contains(sections[i+1], ":")
		}

		newSection := strings.ToLower(section)
		switch {
		case isRomanNumeral(section):
			newSection = strings.ToUpper(section)
		case first || !c.lex.IsLowercaseTitleWord(section) || wordCount == totalWords-1 || last:
			newSection = c.capitalizeWord(section)
		}
		sections[i] = newSection

		wordCount++
		first = last
	}

	return strings.Join(sections, "")
}

// CapitalizeAuthor capitalizes an author name, preserving separator
// characters. Particles in the lowercase-author-words list stay
// lowercase ("Ludwig van Beethoven"), roman numerals go uppercase
// ("Pope John XXIII"), and the Mc/Mac and apostrophe rules apply
// ("Cormac McCarthy", "Patrick O'Brien").
func (c *Cataloguer) CapitalizeAuthor(author string) string {
	sections, _ := segment(author, false)

	for i, section := range sections {
		if !startsWord(section, false) {
			continue
		}

		newSection := c.capitalizeWord(section)
		switch {
		case isRomanNumeral(section):
			newSection = strings.ToUpper(section)
		case c.lex.IsLowercaseAuthorWord(section):
			newSection = strings.ToLower(section)
		}
		sections[i] = newSection
	}

	return strings.Join(sections, "")
}

// capitalizeWord lower-cases word and restores the capitals it should
// carry: the first letter, the letter after a recognized Mc/Mac prefix,
// and the letter after a leading apostrophe (O'Hara).
func (c *Cataloguer) capitalizeWord(word string) string {
	lower := strings.ToLower(word)

	divide := 0
	if c.mcPrefix {
		if strings.HasPrefix(lower, "mc") {
			divide = 2
		} else if strings.HasPrefix(lower, "mac") && c.lex.IsMacSurname(lower) {
			divide = 3
		}
	}

	// A letter, an apostrophe, and at least two more letters is a name
	// like O'Hara with a capital on both sides of the apostrophe.
	if apostropheNameRe.MatchString(stripAccents(lower)) {
		divide = 2
	}

	runes := []rune(lower)
	if divide > len(runes) {
		divide = len(runes)
	}
	return upperFirst(string(runes[:divide])) + upperFirst(string(runes[divide:]))
}

// upperFirst capitalizes the first rune of s; the rest is assumed to be
// lowercase already.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := firstRune(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
