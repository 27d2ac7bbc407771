package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourname/starcheck-bot/internal/domain"
)

const voucherIDLen = 8

// Vouchers — реестр чеков. Все мутации идут под одним мьютексом: проверка
// "чек не получен" и установка Claim — одна критическая секция, поэтому
// конкурентные попытки получить чек дают ровно один успех.
type Vouchers struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Voucher
	byIssuer map[int64][]string
	order    []string // порядок выпуска

	wallets     *Wallets
	botUsername string
}

func NewVouchers(wallets *Wallets, botUsername string) *Vouchers {
	return &Vouchers{
		byID:        make(map[string]*domain.Voucher),
		byIssuer:    make(map[int64][]string),
		wallets:     wallets,
		botUsername: botUsername,
	}
}

// Issue создаёт чек. amount == 0 даёт NFT-вариант. Возвращает копию чека и
// ссылку для получения.
func (s *Vouchers) Issue(issuerID int64, amount float64, inline bool) (domain.Voucher, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := newID(voucherIDLen)
	for s.byID[id] != nil { // коллизия почти невозможна, но id не переиспользуем
		id = newID(voucherIDLen)
	}

	v := &domain.Voucher{
		ID:        id,
		IssuerID:  issuerID,
		Amount:    amount,
		CreatedAt: time.Now(),
		IsGift:    amount == 0,
		Inline:    inline,
	}
	s.byID[id] = v
	s.byIssuer[issuerID] = append(s.byIssuer[issuerID], id)
	s.order = append(s.order, id)

	return *v, s.Link(id)
}

// Link собирает deep link получения чека.
func (s *Vouchers) Link(id string) string {
	return fmt.Sprintf("https://t.me/%s?start=check_%s", s.botUsername, id)
}

// ClaimResult — итог успешного получения чека.
type ClaimResult struct {
	Voucher    domain.Voucher
	NewBalance float64 // баланс получателя после зачисления
}

// Claim переводит чек в состояние "получен" ровно один раз и, если чек не
// NFT, зачисляет сумму на кошелёк получателя.
func (s *Vouchers) Claim(id string, claimantID int64) (ClaimResult, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	if !ok {
		return ClaimResult{}, ErrNotFound
	}
	if v.Claimed() {
		return ClaimResult{}, ErrAlreadyClaimed
	}

	v.Claim = &domain.Claim{By: claimantID, At: time.Now()}

	balance := s.wallets.Balance(claimantID)
	if !v.IsGift {
		balance = s.wallets.Credit(claimantID, v.Amount)
	}
	return ClaimResult{Voucher: *v, NewBalance: balance}, nil
}

// Lookup возвращает снимок чека без побочных эффектов (для inline-поиска).
func (s *Vouchers) Lookup(id string) (domain.Voucher, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return domain.Voucher{}, false
	}
	return *v, true
}

// ByIssuer возвращает чеки пользователя в порядке выпуска.
func (s *Vouchers) ByIssuer(userID int64) []domain.Voucher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byIssuer[userID]
	out := make([]domain.Voucher, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.byID[id])
	}
	return out
}

// All возвращает все чеки в порядке выпуска.
func (s *Vouchers) All() []domain.Voucher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Voucher, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out
}

func (s *Vouchers) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// IssuerCount — сколько пользователей выпускали чеки.
func (s *Vouchers) IssuerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byIssuer)
}

// Stats — сводка по всем чекам для work-панели.
type Stats struct {
	Total        int
	Active       int
	ClaimedCount int
	TotalStars   float64 // сумма по чекам с ненулевой суммой
	ClaimedStars float64
	GiftCount    int
	InlineCount  int
	Issuers      int
}

func (s *Vouchers) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.byID), Issuers: len(s.byIssuer)}
	for _, v := range s.byID {
		if v.Claimed() {
			st.ClaimedCount++
			st.ClaimedStars += v.Amount
		} else {
			st.Active++
		}
		if v.Amount > 0 {
			st.TotalStars += v.Amount
		}
		if v.IsGift {
			st.GiftCount++
		}
		if v.Inline {
			st.InlineCount++
		}
	}
	return st
}

// UserStats — сводка по чекам одного пользователя.
type UserStats struct {
	Total        int
	Active       int
	ClaimedCount int
	TotalStars   float64
	ClaimedStars float64
	GiftCount    int
}

func (s *Vouchers) StatsFor(userID int64) UserStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st UserStats
	for _, id := range s.byIssuer[userID] {
		v := s.byID[id]
		st.Total++
		if v.Claimed() {
			st.ClaimedCount++
			if v.Amount > 0 {
				st.ClaimedStars += v.Amount
			}
		} else {
			st.Active++
		}
		if v.Amount > 0 {
			st.TotalStars += v.Amount
		}
		if v.IsGift {
			st.GiftCount++
		}
	}
	return st
}
