package fswatcher

import (
	"errors"
	"io/fs"
	"sort"
	"sync"
	"time"
)

const MIN_INTERVAL = time.Millisecond * 20

// fsPoller is polling implementation of FileWatcher interface
type fsPoller struct {
	// watched files and dirs
	watches map[string]struct{}
	// stores info about files and dirs inside watched paths
	files      map[string]fs.FileInfo
	events     chan Event
	errors     chan error
	done       chan struct{}
	scanDone   chan struct{}
	shouldSkip func(fs.FileInfo) bool
	fsys       fs.FS
	running    bool

	mu     *sync.Mutex
	closed bool
}

func (p *fsPoller) AddShouldSkipHook(fn func(fs.FileInfo) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shouldSkip = fn
}

// Add adds given name into the list of the watched paths.
// If name is a directory, all nested files are watched as well.
func (p *fsPoller) Add(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New("poller is closed")
	}

	list, err := p.listDirFiles(name)
	if err != nil {
		return err
	}

	for fname, fi := range list {
		p.files[fname] = fi
	}
	p.watches[name] = struct{}{}

	return nil
}

// listDirFiles returns list of the files if name is a directory,
// if name isn't a directory then just returns it's FileInfo.
func (p *fsPoller) listDirFiles(name string) (map[string]fs.FileInfo, error) {
	files := map[string]fs.FileInfo{}

	fInfo, err := fs.Stat(p.fsys, name)
	if err != nil {
		return nil, err
	}
	files[name] = fInfo

	if !fInfo.IsDir() {
		return files, nil
	}

	err = fs.WalkDir(p.fsys, name, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == name {
			return nil
		}

		stat, err := d.Info()
		if err != nil {
			return err
		}
		if p.shouldSkip != nil && p.shouldSkip(stat) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		files[path] = stat
		return nil
	})

	return files, err
}

// collectChanges rescans watched paths, updates the snapshot and returns
// the differences as events sorted by name.
func (p *fsPoller) collectChanges() ([]Event, []error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	current := map[string]fs.FileInfo{}
	var errs []error

	for path := range p.watches {
		files, err := p.listDirFiles(path)
		if err != nil {
			// a removed path stays watched and shows up again once recreated
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			errs = append(errs, err)
			continue
		}
		for name, fi := range files {
			current[name] = fi
		}
	}

	// keep the old snapshot so a failed scan doesn't look like removals
	if len(errs) > 0 {
		return nil, errs
	}

	events := []Event{}
	for path, oldInfo := range p.files {
		newInfo, exists := current[path]
		if !exists {
			events = append(events, Event{Op: Remove, Name: path})
			continue
		}
		if isModified(oldInfo, newInfo) {
			events = append(events, Event{Op: Write, Name: path})
		}
	}
	for path := range current {
		if _, exists := p.files[path]; !exists {
			events = append(events, Event{Op: Create, Name: path})
		}
	}
	p.files = current

	sort.Slice(events, func(i, j int) bool { return events[i].Name < events[j].Name })
	return events, nil
}

func isModified(oldFi, newFi fs.FileInfo) bool {
	if newFi.IsDir() {
		return false
	}
	return !oldFi.ModTime().Equal(newFi.ModTime()) || oldFi.Size() != newFi.Size()
}

// scanForChanges checks watched paths for changes and sends the events
func (p *fsPoller) scanForChanges() {
	events, errs := p.collectChanges()
	for _, err := range errs {
		select {
		case p.errors <- err:
		case <-p.done:
			return
		}
	}
	for _, e := range events {
		select {
		case p.events <- e:
		case <-p.done:
			return
		}
	}
}

// WatchedList return list of watched files and folders
func (p *fsPoller) WatchedList() map[string]fs.FileInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	files := make(map[string]fs.FileInfo)
	for k, v := range p.files {
		files[k] = v
	}

	return files
}

// Start polls watched paths every interval until the poller is closed.
func (p *fsPoller) Start(interval time.Duration) error {
	if interval < MIN_INTERVAL {
		interval = MIN_INTERVAL
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return errors.New("poller is closed")
	}
	if p.running {
		p.mu.Unlock()
		return errors.New("watcher is already running")
	}
	p.running = true
	p.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return nil
		case <-ticker.C:
		}

		p.scanForChanges()
		select {
		case p.scanDone <- struct{}{}:
		default:
		}
	}
}

func (p *fsPoller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	close(p.done)
	p.closed = true
	p.running = false
	return nil
}

func (p *fsPoller) Errors() <-chan error {
	return p.errors
}

func (p *fsPoller) Events() <-chan Event {
	return p.events
}

func (p *fsPoller) ScanComplete() <-chan struct{} {
	return p.scanDone
}
