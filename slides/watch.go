package slides

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a deck file whenever it changes on disk. Editors often
// replace files via rename, so the parent directory is watched rather than
// the file itself.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan Deck
	done    chan struct{}
}

// Watch starts watching the deck file at path. Reloads that fail validation
// are logged and dropped; the previously loaded deck stays current.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close() //nolint:errcheck
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		fsw:     fsw,
		updates: make(chan Deck, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers freshly loaded decks. Only the latest deck is retained
// if the consumer falls behind.
func (w *Watcher) Updates() <-chan Deck {
	return w.updates
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}

			deck, err := Load(w.path)
			if err != nil {
				log.Warn("Ignoring deck reload", "path", w.path, "error", err)
				continue
			}

			// Keep only the newest deck.
			select {
			case <-w.updates:
			default:
			}
			select {
			case w.updates <- deck:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn("Deck watcher error", "error", err)
		}
	}
}
