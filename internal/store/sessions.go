package store

import (
	"sync"

	"github.com/yourname/starcheck-bot/internal/domain"
)

// Sessions хранит текущий многошаговый режим каждого чата. У чата ровно
// один режим; режимы разных чатов друг друга не видят.
type Sessions struct {
	mu    sync.Mutex
	modes map[int64]domain.Mode
}

func NewSessions() *Sessions {
	return &Sessions{modes: make(map[int64]domain.Mode)}
}

func (s *Sessions) Set(chatID int64, mode domain.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == domain.ModeNone {
		delete(s.modes, chatID)
		return
	}
	s.modes[chatID] = mode
}

func (s *Sessions) Get(chatID int64) domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modes[chatID]
}

func (s *Sessions) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modes, chatID)
}

// TakeIf атомарно сбрасывает режим, если он равен mode, и сообщает, удалось
// ли это. Дубль доставки того же сообщения второй раз получит false и не
// применит переход повторно.
func (s *Sessions) TakeIf(chatID int64, mode domain.Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modes[chatID] != mode {
		return false
	}
	delete(s.modes, chatID)
	return true
}
