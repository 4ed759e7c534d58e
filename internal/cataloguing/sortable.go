package cataloguing

import (
	"regexp"
	"strings"
)

var (
	anyAlnumRe   = regexp.MustCompile(`[a-z0-9]`)
	digitCommaRe = regexp.MustCompile(`\d,\d`)
	digitRunRe   = regexp.MustCompile(`\d+`)
)

// SortableTitle derives the catalogue sort form of a title: leading
// articles and surrounding punctuation are dropped, separators collapse
// to at most one space, and digit runs are spelled out so "1984" sorts
// under N. Returns "" when the title has no alphanumeric content.
//
//	SortableTitle("the left hand of darkness") -> "Left Hand of Darkness"
func (c *Cataloguer) SortableTitle(title string) string {
	return c.sortableTitle(title, true, true)
}

// TitleSortKey is the comparison key used by SortByTitle: the sortable
// form without case correction.
func (c *Cataloguer) TitleSortKey(title string) string {
	return c.sortableTitle(title, false, true)
}

func (c *Cataloguer) sortableTitle(title string, correctCase, smartNumbers bool) string {
	title = strings.ToLower(title)
	if !anyAlnumRe.MatchString(title) {
		return ""
	}

	if smartNumbers {
		// Commas inside numbers ("1,984") are grouping, not separators.
		for {
			m := digitCommaRe.FindStringIndex(title)
			if m == nil {
				break
			}
			title = title[:m[0]+1] + title[m[0]+2:]
		}
		title = spellOutDigits(title)
	}

	sections, _ := segment(title, false)

	// Trim a leading and a trailing separator run.
	if len(sections) > 0 && !startsWord(sections[0], false) {
		sections = sections[1:]
	}
	if len(sections) > 0 && !startsWord(sections[len(sections)-1], false) {
		sections = sections[:len(sections)-1]
	}
	if len(sections) == 0 {
		return ""
	}

	switch sections[0] {
	case "a", "an", "the":
		// Drop the article and the separator after it. An article with
		// nothing after it leaves no sortable content.
		if len(sections) == 1 {
			return ""
		}
		sections = sections[2:]
	}

	for i, section := range sections {
		if !startsWord(section, false) {
			if strings.Contains(section, " ") {
				sections[i] = " "
			} else {
				sections[i] = ""
			}
		}
	}

	out := strings.Join(sections, "")
	if correctCase {
		out = c.CapitalizeTitle(out)
	}
	return out
}

// spellOutDigits replaces every digit run in s with its English
// spelling. Runs beyond the supported range stay as digits.
func spellOutDigits(s string) string {
	var b strings.Builder
	for {
		m := digitRunRe.FindStringIndex(s)
		if m == nil {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:m[0]])
		if words, ok := spellDigits(s[m[0]:m[1]]); ok {
			b.WriteString(words)
		} else {
			b.WriteString(s[m[0]:m[1]])
		}
		s = s[m[1]:]
	}
}

// SortableAuthor derives the "Last, First" catalogue form of an author
// name: honorifics are dropped, initials gain periods, "jr"/"sr" and
// trailing roman numerals bind to the surname, apostrophes are removed,
// and Mc names sort under Mac. Returns "" when nothing but honorifics
// remains.
//
//	SortableAuthor("ludwig van beethoven") -> "van Beethoven, Ludwig"
func (c *Cataloguer) SortableAuthor(author string) string {
	return strings.Join(c.separateAuthorName(author, true), ", ")
}

// AuthorSortKey is the comparison key used by SortByAuthor: the
// sortable form without case correction.
func (c *Cataloguer) AuthorSortKey(author string) string {
	return strings.Join(c.separateAuthorName(author, false), ", ")
}

// separateAuthorName splits an author name into a surname part and,
// when present, a given-name part.
func (c *Cataloguer) separateAuthorName(author string, correctCase bool) []string {
	sections, _ := segment(strings.ToLower(author), true)

	words := make([]string, 0, len(sections))
	for _, w := range sections {
		if !c.lex.IsAuthorTitle(w) {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}

	// divide is where the surname block starts. Suffixes make the
	// surname two words long.
	divide := len(words) - 1
	last := words[len(words)-1]
	switch {
	case last == "jr" || last == "sr":
		words[len(words)-1] = last + "."
		divide = len(words) - 2
	case isRomanNumeral(last):
		divide = len(words) - 2
	}
	if divide < 0 {
		divide = 0
	}

	for i, w := range words {
		if len([]rune(w)) == 1 {
			// A lone letter is an initial.
			w += "."
		} else if strings.HasPrefix(w, "mc") {
			// Mc names file under Mac.
			w = "mac" + w[2:]
		}
		if correctCase {
			w = c.CapitalizeAuthor(w)
		}
		words[i] = strings.ReplaceAll(w, "'", "")
	}

	// Particles such as "van" and "de" belong to the surname.
	for i := divide - 1; i >= 0; i-- {
		if !c.lex.IsLowercaseAuthorWord(words[i]) {
			break
		}
		divide--
	}

	lastName := strings.Join(words[divide:], " ")
	if divide == 0 {
		return []string{lastName}
	}
	return []string{lastName, strings.Join(words[:divide], " ")}
}
