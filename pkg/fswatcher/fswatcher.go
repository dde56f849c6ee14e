package fswatcher

import (
	"io/fs"
	"sync"
	"time"
)

// Event represents a single file system notification
type Event struct {
	Name string // Path to the file or directory
	Op   Op     // File operation that triggered the event.
}

// Op describes a type of event
type Op uint32

// Operations
const (
	Create Op = 1 << iota
	Write
	Remove
)

func (op Op) String() string {
	switch op {
	case Create:
		return "CREATE"
	case Write:
		return "WRITE"
	case Remove:
		return "REMOVE"
	}
	return "?"
}

// FsWatcher is fsnotify-like interface for implementing file watchers
type FsWatcher interface {
	Events() <-chan Event
	Errors() <-chan error
	Add(name string) error
	Close() error
	Start(interval time.Duration) error
	AddShouldSkipHook(func(fi fs.FileInfo) bool)
}

// NewFsPoller creates a polling watcher over fsys.
func NewFsPoller(fsys fs.FS) FsWatcher {
	return newFsPoller(fsys)
}

func newFsPoller(fsys fs.FS) *fsPoller {
	return &fsPoller{
		events:   make(chan Event),
		errors:   make(chan error),
		done:     make(chan struct{}),
		scanDone: make(chan struct{}),
		fsys:     fsys,
		watches:  map[string]struct{}{},
		mu:       new(sync.Mutex),
		files:    make(map[string]fs.FileInfo),
	}
}
