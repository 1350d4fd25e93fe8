// Package watch re-imports a model file whenever it changes on disk.
package watch

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Faultbox/assimp-go/pkg/assimp"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events one save produces.
const DefaultDebounce = 100 * time.Millisecond

// Reload is the outcome of one import. The receiver owns Scene and must
// Close it.
type Reload struct {
	Scene *assimp.Scene
	Err   error
}

// Watcher imports a file once at start and again after every change.
type Watcher struct {
	im       *assimp.Importer
	path     string
	flags    assimp.PostProcess
	debounce time.Duration
	log      *zap.Logger

	fs   *fsnotify.Watcher
	out  chan Reload
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must stay quiet before a reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) { w.log = log }
}

// New starts watching path. The first Reload carries the initial import.
func New(im *assimp.Importer, path string, flags assimp.PostProcess, opts ...Option) (*Watcher, error) {
	if im == nil {
		return nil, errors.New("watch: nil importer")
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		im:       im,
		path:     filepath.Clean(path),
		flags:    flags,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		fs:       fsWatch,
		out:      make(chan Reload),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	// Watch the directory: editors often save by renaming a temp file over
	// the original, which drops a watch on the file itself.
	if err := fsWatch.Add(filepath.Dir(w.path)); err != nil {
		_ = fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", w.path, err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Reloads delivers one Reload per import. It is closed after Close.
func (w *Watcher) Reloads() <-chan Reload { return w.out }

// Close stops watching. A scene imported but not yet received is released.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	defer close(w.out)

	if !w.reload() {
		return
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path || e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.String("path", w.path), zap.Error(err))

		case <-fire:
			fire = nil
			if !w.reload() {
				return
			}

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// reload imports the file and hands the result over. It reports false when
// the watcher closed first.
func (w *Watcher) reload() bool {
	s, err := w.im.ImportFile(w.path, w.flags)
	if err != nil {
		w.log.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
	} else {
		w.log.Info("reloaded", zap.String("path", w.path), zap.Stringer("scene", s.ID()))
	}

	select {
	case w.out <- Reload{Scene: s, Err: err}:
		return true
	case <-w.done:
		if s != nil {
			_ = s.Close()
		}
		return false
	}
}
