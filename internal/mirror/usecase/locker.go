package usecase

import "sync"

// repoLocks serializes actions per repository name. Deliveries for
// different repositories run fully in parallel; deliveries for the same
// repository must not race on the probe-then-act sequence.
//
// Entries are never evicted: the map holds one mutex per distinct
// repository name ever synced, which is bounded by the number of
// mirrored repositories, so it stays small for the process lifetime.
type repoLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRepoLocks() *repoLocks {
	return &repoLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for name and returns its unlock func.
func (r *repoLocks) acquire(name string) func() {
	r.mu.Lock()
	l, ok := r.locks[name]
	if !ok {
		l = &sync.Mutex{}
		r.locks[name] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}
