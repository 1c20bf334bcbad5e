// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reload rebuilds a [gpu.Program] when its shader source
// files change on disk.
//
// Change notifications arrive on a background goroutine, but nothing
// in gpu is touched there: the render thread polls
// [Watcher.Pending] (or [Program.Update]) once per frame.
package reload

import (
	"path/filepath"
	"slices"
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"

	"cogentcore.org/glpipe/gpu"
)

// Watcher watches a set of files and collects the ones that changed.
type Watcher struct {
	watcher *fsnotify.Watcher

	// files watched, by cleaned path
	files map[string]bool

	mu      sync.Mutex
	changed []string

	done chan bool
	wg   sync.WaitGroup

	closeOnce sync.Once
	closeErr  error
}

// NewWatcher returns a watcher of the given files. The directories
// holding them are watched, as editors often replace a file rather
// than write it.
func NewWatcher(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Log(err)
	}
	w := &Watcher{watcher: fw, files: make(map[string]bool), done: make(chan bool)}
	dirs := map[string]bool{}
	for _, f := range files {
		f = filepath.Clean(f)
		w.files[f] = true
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Log(err)
		}
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			w.mu.Lock()
			if !slices.Contains(w.changed, name) {
				w.changed = append(w.changed, name)
			}
			w.mu.Unlock()
			gpu.Logger().Debug("reload: file changed", "file", name, "op", event.Op.String())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Pending returns and clears the files changed since the last call,
// in the order they first changed. It does not block.
func (w *Watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	ch := w.changed
	w.changed = nil
	return ch
}

// Changed returns whether any file changed since the last Pending,
// without clearing anything.
func (w *Watcher) Changed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.changed) > 0
}

// Close stops watching. Calls after the first return its result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.watcher.Close()
		w.wg.Wait()
	})
	return w.closeErr
}
