package cataloguing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// apostrophes are the characters treated as part of a word rather than
// as separators: the ASCII apostrophe, the Windows-1252 smart quotes,
// and the Unicode single quotation marks.
const apostrophes = "'‘’"

// stripAccents decomposes s and drops combining marks, so that "é"
// classifies like "e". Output is only used for classification; the
// original runes are what end up in capitalized text.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// isWordRune reports whether r belongs inside a word: ASCII letters and
// digits (accent-insensitively), apostrophes, and, when includeHyphens
// is set, the hyphen.
func isWordRune(r rune, includeHyphens bool) bool {
	if strings.ContainsRune(apostrophes, r) {
		return true
	}
	if includeHyphens && r == '-' {
		return true
	}
	stripped := stripAccents(string(r))
	if stripped == "" {
		// A bare combining mark attaches to the word around it, so
		// decomposed input like "étude" stays one word.
		return true
	}
	first, size := firstRune(stripped)
	if size != len(stripped) {
		return false
	}
	return (first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z') || (first >= '0' && first <= '9')
}

// startsWord reports whether section begins with a word rune.
func startsWord(section string, includeHyphens bool) bool {
	if section == "" {
		return false
	}
	r, _ := firstRune(section)
	return isWordRune(r, includeHyphens)
}

// segment splits s into alternating word and separator runs, preserving
// every character, and counts the word runs.
//
//	segment("@apple + banana. ", false) -> ["@", "apple", " + ", "banana", ". "], 2
//
// When wordsOnly is set, only the word runs are returned and hyphens
// count as word characters, so "three-word" stays one word.
func segment(s string, wordsOnly bool) ([]string, int) {
	if s == "" {
		return nil, 0
	}

	var (
		result    []string
		section   []rune
		wordCount int
		onWord    bool
		started   bool
	)

	flush := func() {
		if len(section) == 0 {
			return
		}
		if onWord || !wordsOnly {
			result = append(result, string(section))
		}
		section = section[:0]
	}

	for _, r := range s {
		isWord := isWordRune(r, wordsOnly)
		if !started || isWord != onWord {
			flush()
			onWord = isWord
			started = true
			if isWord {
				wordCount++
			}
		}
		section = append(section, r)
	}
	flush()

	return result, wordCount
}

func firstRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}
