// internal/app/store/metrics/loader.go
package metricsstore

import "sync"

// Token identifies one load started by Loader.Begin.
type Token struct {
	seq uint64
}

// Loader caches the most recently published snapshot of type T behind a
// readiness flag. Begin issues a token for a new load and Publish accepts
// a snapshot only while its token is still the newest, so overlapping
// loads resolve latest-wins: a slow earlier load can never overwrite a
// newer one. Ready flips to true on the first accepted publish and never
// flips back; a loader that is never published stays not ready.
type Loader[T any] struct {
	mu    sync.Mutex
	seq   uint64
	ready bool
	data  T
}

// Begin starts a new load and returns its token. Any token issued
// earlier is invalidated.
func (l *Loader[T]) Begin() Token {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	return Token{seq: l.seq}
}

// Publish stores snap if tok is still the newest token. It reports
// whether the snapshot was accepted; a stale token is discarded.
func (l *Loader[T]) Publish(tok Token, snap T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if tok.seq != l.seq {
		return false
	}
	l.data = snap
	l.ready = true
	return true
}

// Snapshot returns the latest accepted snapshot and whether one has been
// published yet.
func (l *Loader[T]) Snapshot() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data, l.ready
}
