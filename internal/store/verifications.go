package store

import (
	"sync"
	"time"

	"github.com/yourname/starcheck-bot/internal/domain"
)

const verificationIDLen = 8

// Verifications — очередь заявок на верификацию из двух источников: из бота
// (с привязкой к пользователю) и с сайта (анонимные, с IP). Решение по
// заявке принимается ровно один раз.
type Verifications struct {
	mu       sync.RWMutex
	byID     map[string]*domain.VerificationRequest
	session  []string // заявки из бота, порядок поступления
	website  []string // заявки с сайта, порядок поступления
	verified map[int64]struct{}
}

func NewVerifications() *Verifications {
	return &Verifications{
		byID:     make(map[string]*domain.VerificationRequest),
		verified: make(map[int64]struct{}),
	}
}

func (s *Verifications) SubmitFromSession(userID int64, phone, code string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.add(&domain.VerificationRequest{
		UserID: userID,
		Phone:  phone,
		Code:   code,
		Source: domain.SourceBot,
	})
	s.session = append(s.session, r.ID)
	return r.ID
}

func (s *Verifications) SubmitFromWebsite(phone, code, ip string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.add(&domain.VerificationRequest{
		Phone:  phone,
		Code:   code,
		IP:     ip,
		Source: domain.SourceWebsite,
	})
	s.website = append(s.website, r.ID)
	return r.ID
}

// add вызывается под s.mu.
func (s *Verifications) add(r *domain.VerificationRequest) *domain.VerificationRequest {
	id := newID(verificationIDLen)
	for s.byID[id] != nil {
		id = newID(verificationIDLen)
	}
	r.ID = id
	r.CreatedAt = time.Now()
	s.byID[id] = r
	return r
}

// Decide фиксирует решение администратора. Повторное решение по той же
// заявке отклоняется с ErrAlreadyDecided. Одобрение заявки из бота
// добавляет пользователя в набор верифицированных.
func (s *Verifications) Decide(id string, adminID int64, approve bool) (domain.VerificationRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byID[id]
	if !ok {
		return domain.VerificationRequest{}, ErrNotFound
	}
	if r.Decision != nil {
		return domain.VerificationRequest{}, ErrAlreadyDecided
	}

	r.Decision = &domain.Decision{By: adminID, At: time.Now(), Approved: approve}
	if approve && r.Source == domain.SourceBot {
		s.verified[r.UserID] = struct{}{}
	}
	return *r, nil
}

// PendingSession возвращает нерешённые заявки из бота в порядке поступления.
func (s *Verifications) PendingSession() []domain.VerificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.VerificationRequest
	for _, id := range s.session {
		if r := s.byID[id]; r != nil && r.Decision == nil {
			out = append(out, *r)
		}
	}
	return out
}

// RecentWebsite возвращает последние limit заявок с сайта, новые в конце.
func (s *Verifications) RecentWebsite(limit int) []domain.VerificationRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.website
	if limit > 0 && len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}
	out := make([]domain.VerificationRequest, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.byID[id])
	}
	return out
}

// ClearWebsite удаляет все заявки с сайта (операторская чистка).
func (s *Verifications) ClearWebsite() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.website {
		delete(s.byID, id)
	}
	s.website = nil
}

func (s *Verifications) IsVerified(userID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.verified[userID]
	return ok
}

func (s *Verifications) WebsiteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.website)
}

func (s *Verifications) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.session)
}
