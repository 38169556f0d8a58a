package github

import (
	"context"
	"log"
	"sync"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Fetcher is satisfied by *Client.
type Fetcher interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// Loader runs a Fetcher at most once and remembers the outcome. It is the
// GitHub page's session: it resumes exactly once, either Ready with a
// populated snapshot or Failed with a terminal error. A new session needs a
// new Loader.
type Loader struct {
	fetcher Fetcher

	once sync.Once
	done chan struct{}

	mu     sync.Mutex
	status Status
	snap   *Snapshot
	err    error
}

func NewLoader(f Fetcher) *Loader {
	return &Loader{fetcher: f, status: StatusIdle, done: make(chan struct{})}
}

// Start begins the fetch in the background if it has not started yet.
func (l *Loader) Start() {
	l.once.Do(func() {
		l.setStatus(StatusLoading)
		go l.run()
	})
}

// Load starts the fetch if needed and waits for it, or for ctx to end.
// Giving up on ctx does not cancel the fetch itself.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	l.Start()
	select {
	case <-l.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap, l.err
}

// Status reports the session state without blocking.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Result returns the outcome so far; both are nil until the fetch finishes.
func (l *Loader) Result() (*Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap, l.err
}

func (l *Loader) run() {
	snap, err := l.fetcher.Fetch(context.Background())

	l.mu.Lock()
	if err != nil {
		log.Printf("GitHub: %v", err)
		l.status, l.err = StatusFailed, err
	} else {
		log.Printf("GitHub: loaded %d repositories", len(snap.Repositories))
		l.status, l.snap = StatusReady, snap
	}
	l.mu.Unlock()
	close(l.done)
}

func (l *Loader) setStatus(s Status) {
	l.mu.Lock()
	l.status = s
	l.mu.Unlock()
}
