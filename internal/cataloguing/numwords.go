package cataloguing

import (
	"strconv"
	"strings"
)

var numOnes = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var numTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var numScales = []string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion",
}

// spellDigits converts a run of decimal digits to English words with no
// "and", the form used for sortable titles ("123" becomes "one hundred
// twenty-three"). Runs too long for uint64 are reported unsupported and
// left as digits by the caller.
func spellDigits(digits string) (string, bool) {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return "", false
	}
	return spellNumber(n), true
}

// spellNumber converts n to English words without "and".
func spellNumber(n uint64) string {
	if n == 0 {
		return "zero"
	}

	// Break into base-1000 groups, least significant first.
	var groups []uint64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		part := spellUnderThousand(groups[i])
		if numScales[i] != "" {
			part += " " + numScales[i]
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

func spellUnderThousand(n uint64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, numOnes[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, numOnes[n])
	default:
		tens := numTens[n/10]
		if n%10 != 0 {
			tens += "-" + numOnes[n%10]
		}
		parts = append(parts, tens)
	}
	return strings.Join(parts, " ")
}
