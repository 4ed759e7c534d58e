package cataloguing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortableTitle_DropsArticleAndPunctuation(t *testing.T) {
	c := newTestCataloguer(t)

	cases := []struct {
		in   string
		want string
	}{
		{"the left hand of darkness", "Left Hand of Darkness"},
		{"A Wizard of Earthsea", "Wizard of Earthsea"},
		{"  an unkindness of ghosts.", "Unkindness of Ghosts"},
		{"moby-dick; or, the whale", "Mobydick or the Whale"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, c.SortableTitle(tc.in), "input %q", tc.in)
	}
}

func TestSortableTitle_NoAlphanumericContent(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "", c.SortableTitle(""))
	require.Equal(t, "", c.SortableTitle("?!* --"))
	require.Equal(t, "", c.SortableTitle("the"))
}

func TestSortableTitle_SmartNumbers(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "One Thousand Nine Hundred Eightyfour", c.SortableTitle("1984"))
	// Commas inside numbers are grouping, not separators.
	require.Equal(t, "Twentyfour Thousand Six Hundred One", c.SortableTitle("24,601"))
	require.Equal(t, "Around the World in Eighty Days",
		c.SortableTitle("around the world in 80 days"))
}

func TestSortableAuthor_LastFirstForm(t *testing.T) {
	c := newTestCataloguer(t)

	cases := []struct {
		in   string
		want string
	}{
		{"ludwig van beethoven", "van Beethoven, Ludwig"},
		{"ursula k. le guin", "le Guin, Ursula K."},
		{"CORMAC MCCARTHY", "MacCarthy, Cormac"},
		{"patrick o'brien", "OBrien, Patrick"},
		{"madonna", "Madonna"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, c.SortableAuthor(tc.in), "input %q", tc.in)
	}
}

func TestSortableAuthor_HonorificsDropped(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "Doyle, Arthur Conan", c.SortableAuthor("sir arthur conan doyle"))
	require.Equal(t, "", c.SortableAuthor("mr"))
}

func TestSortableAuthor_SuffixesBindToSurname(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "King Jr., Martin Luther", c.SortableAuthor("martin luther king jr"))
	require.Equal(t, "John XXIII", c.SortableAuthor("pope john xxiii"))
}

func TestSortableAuthor_InitialsGainPeriods(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "Tolkien, J. R. R.", c.SortableAuthor("j r r tolkien"))
}

func TestTitleSortKey_NoCaseCorrection(t *testing.T) {
	c := newTestCataloguer(t)

	require.Equal(t, "left hand of darkness", c.TitleSortKey("The Left Hand of Darkness"))
}
