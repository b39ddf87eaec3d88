package sheet

import (
	"os"
	"path/filepath"
	"time"
)

// Watcher polls a workspace's root directory and rescans worksheets
// whose modification time changed.
type Watcher struct {
	workspace    *Workspace
	stopCh       chan struct{}
	doneCh       chan struct{}
	pollInterval time.Duration
	modTimes     map[string]time.Time

	// OnChange is called after a worksheet was rescanned. OnRemove is
	// called after a worksheet disappeared. Both run on the watcher's
	// goroutine.
	OnChange func(f *File)
	OnRemove func(path string)
}

func NewWatcher(w *Workspace, pollInterval time.Duration) *Watcher {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Watcher{
		workspace:    w,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
		pollInterval: pollInterval,
		modTimes:     make(map[string]time.Time),
	}
}

func (w *Watcher) Start() {
	go w.run()
}

// Stop ends polling and waits for the watcher's goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.Scan()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan performs a single poll. It is not safe to call concurrently
// with a started watcher.
func (w *Watcher) Scan() {
	currentFiles := make(map[string]bool)

	filepath.Walk(w.workspace.RootDir(), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if isHiddenDir(w.workspace.RootDir(), path, info) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != Ext {
			return nil
		}

		currentFiles[path] = true

		lastMod, known := w.modTimes[path]
		if !known || info.ModTime().After(lastMod) {
			w.modTimes[path] = info.ModTime()
			f, err := w.workspace.ScanFile(path)
			if err != nil {
				log.Errorf("scan %s: %s", path, err)
				return nil
			}
			if w.OnChange != nil {
				w.OnChange(f)
			}
		}
		return nil
	})

	for path := range w.modTimes {
		if !currentFiles[path] {
			delete(w.modTimes, path)
			w.workspace.RemoveFile(path)
			if w.OnRemove != nil {
				w.OnRemove(path)
			}
		}
	}
}
