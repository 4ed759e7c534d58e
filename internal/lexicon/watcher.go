package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the configured word list files and rebuilds the
// Lexicon when any of them changes. Rapid successive writes are
// debounced into a single reload.
type Watcher struct {
	files        Files
	onReload     func(*Lexicon)
	watcher      *fsnotify.Watcher
	watched      map[string]struct{}
	reloadChan   chan struct{}
	debounceTime time.Duration
}

// NewWatcher creates a watcher over the non-empty paths in files.
// onReload receives each successfully rebuilt snapshot.
func NewWatcher(files Files, onReload func(*Lexicon)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		files:        files,
		onReload:     onReload,
		watcher:      fsw,
		watched:      make(map[string]struct{}),
		reloadChan:   make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}

	for _, path := range []string{
		files.LowercaseTitleWords,
		files.LowercaseAuthorWords,
		files.MacSurnames,
		files.AuthorTitles,
	} {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("resolve word list path %s: %w", path, err)
		}
		w.watched[abs] = struct{}{}
	}

	return w, nil
}

// Start begins monitoring. It returns immediately; reloads happen on
// background goroutines until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.watched) == 0 {
		slog.Debug("No word list files configured, lexicon watcher idle")
		return nil
	}

	// Watch the parent directories; editors often replace files rather
	// than writing them in place.
	dirs := make(map[string]struct{})
	for path := range w.watched {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch word list directory %s: %w", dir, err)
		}
	}

	slog.Info("Starting lexicon watcher", "files", len(w.watched))

	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)

	return nil
}

// Stop closes the underlying file system watcher.
func (w *Watcher) Stop() {
	if err := w.watcher.Close(); err != nil {
		slog.Error("Error closing lexicon watcher", "error", err)
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Word list change detected", "file", event.Name, "op", event.Op.String())
			select {
			case w.reloadChan <- struct{}{}:
			default:
				// A reload is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Lexicon watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.watched[abs]
	return ok
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.reloadChan:
			// Debounce: editors fire several events per save.
			timer := time.NewTimer(w.debounceTime)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	lex, err := Load(w.files)
	if err != nil {
		slog.Error("Failed to reload word lists, keeping previous lexicon", "error", err)
		return
	}
	slog.Info("Word lists reloaded")
	if w.onReload != nil {
		w.onReload(lex)
	}
}
