package cart

import (
	"sync"
	"time"
)

// DefaultSessionTTL is the inactivity window after which a session's cart
// and wishlist are evicted, the server-side analogue of closing the tab.
const DefaultSessionTTL = 24 * time.Hour

// Session bundles the per-visitor volatile state.
type Session struct {
	Cart     *Cart
	Wishlist *Wishlist
	lastSeen time.Time
}

// Manager owns all live sessions, keyed by session id. Contents are never
// persisted; a restart empties every cart.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	m := &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go m.sweepLoop()
	return m
}

// Session returns the live session for the id, creating it on first use.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = &Session{Cart: New(), Wishlist: NewWishlist()}
		m.sessions[id] = s
	}
	s.lastSeen = time.Now()
	return s
}

// Drop removes a session outright.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) sweepLoop() {
	ticker := time.NewTicker(m.ttl / 4)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.sweep(time.Now())
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) sweep(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
