package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startTestWatcher(t *testing.T, files Files, onReload func(*Lexicon)) *Watcher {
	t.Helper()

	w, err := NewWatcher(files, onReload)
	require.NoError(t, err)
	w.debounceTime = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx))
	t.Cleanup(w.Stop)

	return w
}

func TestWatcher_FileChange_DeliversRebuiltSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lowercase_title_words.txt")
	require.NoError(t, os.WriteFile(path, []byte("of\nthe\n"), 0o644))

	reloaded := make(chan *Lexicon, 1)
	startTestWatcher(t, Files{LowercaseTitleWords: path}, func(lex *Lexicon) {
		select {
		case reloaded <- lex:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("zyx\n"), 0o644))

	select {
	case lex := <-reloaded:
		require.True(t, lex.IsLowercaseTitleWord("zyx"))
		require.False(t, lex.IsLowercaseTitleWord("of"))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered after word list change")
	}
}

func TestWatcher_RapidWrites_CollapseIntoFewReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mac_surnames.txt")
	require.NoError(t, os.WriteFile(path, []byte("macdonald\n"), 0o644))

	reloaded := make(chan *Lexicon, 16)
	startTestWatcher(t, Files{MacSurnames: path}, func(lex *Lexicon) {
		reloaded <- lex
	})

	// A burst of writes collapses into far fewer reloads: one while the
	// debounce timer runs, plus at most one queued behind it.
	for range 5 {
		require.NoError(t, os.WriteFile(path, []byte("mactavish\n"), 0o644))
	}

	var last *Lexicon
	deliveries := 0
	deadline := time.After(2 * time.Second)
collect:
	for {
		select {
		case last = <-reloaded:
			deliveries++
		case <-deadline:
			break collect
		}
	}

	require.GreaterOrEqual(t, deliveries, 1, "no reload delivered after word list change")
	require.LessOrEqual(t, deliveries, 2)
	require.True(t, last.IsMacSurname("mactavish"))
}

func TestWatcher_ReloadFailure_DeliversNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "author_titles.txt")
	require.NoError(t, os.WriteFile(path, []byte("mr\n"), 0o644))

	reloaded := make(chan *Lexicon, 1)
	startTestWatcher(t, Files{AuthorTitles: path}, func(lex *Lexicon) {
		reloaded <- lex
	})

	// Replace the word list with a directory of the same name. The
	// create event triggers a reload attempt, which fails; the callback
	// must not fire, so callers keep their previous snapshot.
	require.NoError(t, os.Remove(path))
	require.NoError(t, os.Mkdir(path, 0o755))

	select {
	case <-reloaded:
		t.Fatal("failed reload must not deliver a snapshot")
	case <-time.After(1 * time.Second):
	}
}

func TestWatcher_NoFilesConfigured_StartIsIdle(t *testing.T) {
	w, err := NewWatcher(Files{}, func(*Lexicon) {
		t.Fatal("idle watcher must never reload")
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	w.Stop()
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lowercase_author_words.txt")
	require.NoError(t, os.WriteFile(path, []byte("van\n"), 0o644))

	reloaded := make(chan *Lexicon, 1)
	startTestWatcher(t, Files{LowercaseAuthorWords: path}, func(lex *Lexicon) {
		reloaded <- lex
	})

	// A change to a sibling file in the watched directory is not a word
	// list change.
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("unrelated\n"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file change caused a reload")
	case <-time.After(1 * time.Second):
	}
}
