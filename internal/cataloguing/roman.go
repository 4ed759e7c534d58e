package cataloguing

import "regexp"

// romanRe matches canonical roman numerals from 1 to 3999. Mixed case
// is accepted; the empty string is rejected separately since every
// group is optional.
var romanRe = regexp.MustCompile(`^(?i)m{0,3}(cm|cd|d?c{0,3})(xc|xl|l?x{0,3})(ix|iv|v?i{0,3})$`)

// isRomanNumeral reports whether s is a valid roman numeral, ignoring
// case. Only canonical subtractive forms count: "iiii" is not a
// numeral, "ix" is.
func isRomanNumeral(s string) bool {
	return s != "" && romanRe.MatchString(s)
}
