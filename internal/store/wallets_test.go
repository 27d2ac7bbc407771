package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalletsCredit(t *testing.T) {
	w := NewWallets()

	assert.Equal(t, 100.0, w.Credit(1, 100))
	assert.Equal(t, 150.5, w.Credit(1, 50.5))
	assert.Equal(t, 150.5, w.Balance(1))
}

func TestWalletsBalanceUnknownUser(t *testing.T) {
	w := NewWallets()
	assert.Equal(t, 0.0, w.Balance(42))
}

func TestWalletsDebit(t *testing.T) {
	w := NewWallets()
	w.Credit(1, 100)

	assert.Equal(t, 30.0, w.Debit(1, 30))
	assert.Equal(t, 70.0, w.Balance(1))
}

func TestWalletsDebitSaturates(t *testing.T) {
	w := NewWallets()
	w.Credit(1, 40)

	// списание больше баланса возвращает то, что реально было
	assert.Equal(t, 40.0, w.Debit(1, 100))
	assert.Equal(t, 0.0, w.Balance(1))

	// повторное списание с пустого счёта
	assert.Equal(t, 0.0, w.Debit(1, 10))
	assert.Equal(t, 0.0, w.Balance(1))
}

func TestWalletsTotal(t *testing.T) {
	w := NewWallets()
	w.Credit(1, 100)
	w.Credit(2, 50)
	w.Debit(1, 25)

	assert.Equal(t, 125.0, w.Total())
	assert.Len(t, w.Holders(), 2)
}
