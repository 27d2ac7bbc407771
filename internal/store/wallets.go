package store

import "sync"

// Wallets — балансы звёзд по пользователям. Кошелёк создаётся лениво при
// первом обращении, живёт только в памяти процесса.
type Wallets struct {
	mu       sync.RWMutex
	balances map[int64]float64
}

func NewWallets() *Wallets {
	return &Wallets{balances: make(map[int64]float64)}
}

// Credit зачисляет amount и возвращает новый баланс. Неположительные суммы
// отсеивает вызывающая сторона.
func (w *Wallets) Credit(userID int64, amount float64) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[userID] += amount
	return w.balances[userID]
}

// Debit списывает до amount звёзд и возвращает фактически списанное.
// Баланс не уходит в минус: если средств меньше, счёт обнуляется.
func (w *Wallets) Debit(userID int64, amount float64) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	bal := w.balances[userID]
	if bal >= amount {
		w.balances[userID] = bal - amount
		return amount
	}
	w.balances[userID] = 0
	return bal
}

func (w *Wallets) Balance(userID int64) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balances[userID]
}

func (w *Wallets) Total() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var sum float64
	for _, b := range w.balances {
		sum += b
	}
	return sum
}

// Holders возвращает владельцев кошельков в произвольном порядке.
func (w *Wallets) Holders() []int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := make([]int64, 0, len(w.balances))
	for id := range w.balances {
		ids = append(ids, id)
	}
	return ids
}
