package keystore

import (
	"errors"
	"sync"
	"time"
)

// ErrNoKeys is returned when a key is requested but none are stored.
var ErrNoKeys = errors.New("no API keys available")

// Status reports whether a key may be used right now and how long until it
// becomes usable again.
type Status struct {
	Available         bool
	CooldownRemaining time.Duration
	LastUsed          time.Time
}

// Manager hands out keys from a Store in round-robin order and tracks
// per-key cooldowns. Transcription backends apply a short cooldown after
// each use and a longer one after an error; translation backends use none.
type Manager struct {
	store *Store

	mu          sync.Mutex
	next        int
	availableAt map[string]time.Time
	lastUsed    map[string]time.Time

	now func() time.Time // overridable for tests
}

// NewManager wraps a Store with rotation and cooldown tracking.
func NewManager(store *Store) *Manager {
	return &Manager{
		store:       store,
		availableAt: make(map[string]time.Time),
		lastUsed:    make(map[string]time.Time),
		now:         time.Now,
	}
}

// Store exposes the underlying persistent store.
func (m *Manager) Store() *Store {
	return m.store
}

// Next returns the next key in rotation, skipping keys that are still in
// cooldown. When every key is cooling down, the one that becomes available
// soonest is returned anyway so a single-key setup never deadlocks.
func (m *Manager) Next() (string, error) {
	keys := m.store.Keys()
	if len(keys) == 0 {
		return "", ErrNoKeys
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.next >= len(keys) {
		m.next = 0
	}

	now := m.now()
	var soonest string
	var soonestAt time.Time
	for i := 0; i < len(keys); i++ {
		key := keys[(m.next+i)%len(keys)]
		at := m.availableAt[key]
		if !at.After(now) {
			m.next = (m.next + i + 1) % len(keys)
			m.lastUsed[key] = now
			return key, nil
		}
		if soonest == "" || at.Before(soonestAt) {
			soonest = key
			soonestAt = at
		}
	}

	m.next = (m.next + 1) % len(keys)
	m.lastUsed[soonest] = now
	return soonest, nil
}

// MarkUsed records that a key finished a request and starts its cooldown.
// A zero cooldown makes the key immediately available again.
func (m *Manager) MarkUsed(key string, cooldown time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.lastUsed[key] = now
	m.availableAt[key] = now.Add(cooldown)
}

// Status reports the current availability of a key, or nil for a key the
// manager has never seen.
func (m *Manager) Status(key string) *Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	last, seen := m.lastUsed[key]
	if !seen {
		return nil
	}

	now := m.now()
	remaining := m.availableAt[key].Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return &Status{
		Available:         remaining == 0,
		CooldownRemaining: remaining,
		LastUsed:          last,
	}
}
