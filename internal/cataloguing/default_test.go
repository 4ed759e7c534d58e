package cataloguing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/bookcat/internal/lexicon"
)

// resetDefault restores the embedded-defaults cataloguer after a test
// that mutates package state.
func resetDefault(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { SetDefault(New(lexicon.Default())) })
}

func TestDefault_WorksWithoutAnySetterCall(t *testing.T) {
	out := CapitalizeTitle("a tale of two cities")
	require.NotEmpty(t, out)
	require.Equal(t, "A Tale of Two Cities", out)
}

func TestSetLowercaseTitleWords_TakesEffect(t *testing.T) {
	resetDefault(t)

	SetLowercaseTitleWords([]string{"of"})
	out := CapitalizeTitle("the history of middle earth")
	require.Contains(t, out, " of ")
}

func TestSetMacSurnames_TakesEffect(t *testing.T) {
	resetDefault(t)

	SetMacSurnames([]string{"Mac"})
	// "macdonald" is no longer a listed surname, so only the first
	// letter capitalizes.
	require.Equal(t, "Macdonald", CapitalizeAuthor("macdonald"))

	SetMacSurnames([]string{"macdonald"})
	require.Equal(t, "MacDonald", CapitalizeAuthor("macdonald"))
}

func TestSetLowercaseAuthorWords_TakesEffect(t *testing.T) {
	resetDefault(t)

	SetLowercaseAuthorWords(nil)
	require.Equal(t, "Ludwig Van Beethoven", CapitalizeAuthor("ludwig van beethoven"))
}

func TestSetAuthorTitles_TakesEffect(t *testing.T) {
	resetDefault(t)

	SetAuthorTitles(nil)
	require.Equal(t, "Doyle, Sir Arthur Conan", SortableAuthor("sir arthur conan doyle"))
}

func TestSetters_DoNotDisturbConcurrentReads(t *testing.T) {
	resetDefault(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = CapitalizeTitle("the hobbit: or, there and back again")
		}
	}()
	for i := 0; i < 100; i++ {
		SetLowercaseTitleWords([]string{"the", "and", "or"})
	}
	<-done
}
