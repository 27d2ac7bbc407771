package store

import (
	"sync"
	"time"

	"github.com/yourname/starcheck-bot/internal/domain"
)

// Admins — реестр администраторов. Удаления нет: набор растёт до конца
// жизни процесса.
type Admins struct {
	mu   sync.RWMutex
	ids  map[int64]struct{}
	list []domain.AdminRecord // порядок добавления
}

func NewAdmins() *Admins {
	return &Admins{ids: make(map[int64]struct{})}
}

// Grant добавляет администратора. Повторный вызов для того же ID — no-op,
// возвращает false.
func (a *Admins) Grant(userID int64, username string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.ids[userID]; ok {
		return false
	}
	a.ids[userID] = struct{}{}
	a.list = append(a.list, domain.AdminRecord{
		ID:       userID,
		Username: username,
		AddedAt:  time.Now(),
	})
	return true
}

func (a *Admins) IsAdmin(userID int64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.ids[userID]
	return ok
}

func (a *Admins) List() []domain.AdminRecord {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]domain.AdminRecord, len(a.list))
	copy(out, a.list)
	return out
}

func (a *Admins) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.ids)
}
