package store

import "sync"

// AutoGifts — кто включил авто-скупщик подарков.
type AutoGifts struct {
	mu    sync.RWMutex
	users map[int64]struct{}
}

func NewAutoGifts() *AutoGifts {
	return &AutoGifts{users: make(map[int64]struct{})}
}

func (g *AutoGifts) Toggle(userID int64, enable bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if enable {
		g.users[userID] = struct{}{}
		return
	}
	delete(g.users, userID)
}

func (g *AutoGifts) Enabled(userID int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.users[userID]
	return ok
}

func (g *AutoGifts) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.users)
}
