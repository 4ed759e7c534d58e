package cataloguing

import (
	"sync/atomic"

	"git.home.luguber.info/inful/bookcat/internal/lexicon"
)

// defaultCataloguer backs the package-level functions. Setters swap in
// a fresh Cataloguer over an updated lexicon snapshot, so capitalize
// calls running concurrently keep reading a consistent snapshot.
var defaultCataloguer atomic.Pointer[Cataloguer]

func init() {
	defaultCataloguer.Store(New(lexicon.Default()))
}

// Default returns the Cataloguer the package-level functions use.
func Default() *Cataloguer {
	return defaultCataloguer.Load()
}

// SetDefault replaces the Cataloguer the package-level functions use.
func SetDefault(c *Cataloguer) {
	if c == nil {
		c = New(lexicon.Default())
	}
	defaultCataloguer.Store(c)
}

// SetLowercaseTitleWords replaces the list of words, like "the" and
// "of", that stay lowercase inside titles.
func SetLowercaseTitleWords(words []string) {
	swapLexicon(func(l *lexicon.Lexicon) *lexicon.Lexicon {
		return l.WithLowercaseTitleWords(words)
	})
}

// SetLowercaseAuthorWords replaces the list of name particles, like
// "van" and "von", that stay lowercase in author names.
func SetLowercaseAuthorWords(words []string) {
	swapLexicon(func(l *lexicon.Lexicon) *lexicon.Lexicon {
		return l.WithLowercaseAuthorWords(words)
	})
}

// SetMacSurnames replaces the list of surnames, like "macdonald", whose
// letter after the "Mac" prefix is capitalized.
func SetMacSurnames(names []string) {
	swapLexicon(func(l *lexicon.Lexicon) *lexicon.Lexicon {
		return l.WithMacSurnames(names)
	})
}

// SetAuthorTitles replaces the list of honorifics, like "mr" and
// "lord", recognized as titles rather than name parts.
func SetAuthorTitles(titles []string) {
	swapLexicon(func(l *lexicon.Lexicon) *lexicon.Lexicon {
		return l.WithAuthorTitles(titles)
	})
}

func swapLexicon(update func(*lexicon.Lexicon) *lexicon.Lexicon) {
	cur := defaultCataloguer.Load()
	defaultCataloguer.Store(cur.WithLexicon(update(cur.Lexicon())))
}

// CapitalizeTitle capitalizes a title using the default Cataloguer.
func CapitalizeTitle(title string) string {
	return Default().CapitalizeTitle(title)
}

// CapitalizeAuthor capitalizes an author name using the default
// Cataloguer.
func CapitalizeAuthor(author string) string {
	return Default().CapitalizeAuthor(author)
}

// SortableTitle derives a title sort form using the default Cataloguer.
func SortableTitle(title string) string {
	return Default().SortableTitle(title)
}

// SortableAuthor derives a "Last, First" form using the default
// Cataloguer.
func SortableAuthor(author string) string {
	return Default().SortableAuthor(author)
}
