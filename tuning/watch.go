package tuning

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long the file must stay quiet after a change before it is
// reported, so one save that arrives as several events is read once, whole.
const debounce = 100 * time.Millisecond

// Watcher reports changes to one tuning file. The parent directory is
// watched so editors that save by rename are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	var (
		quiet *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if quiet != nil {
			quiet.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if name, err := filepath.Abs(event.Name); err != nil || name != w.path {
				continue
			}
			if quiet == nil {
				quiet = time.NewTimer(debounce)
			} else {
				quiet.Reset(debounce)
			}
			fire = quiet.C
		case <-fire:
			fire = nil
			select {
			case w.Events <- w.path:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Poll returns the changed path if an event is waiting, without blocking.
// It is meant to be called from the game loop.
func (w *Watcher) Poll() (string, bool) {
	select {
	case p, ok := <-w.Events:
		return p, ok
	default:
		return "", false
	}
}
