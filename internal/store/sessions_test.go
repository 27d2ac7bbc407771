package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourname/starcheck-bot/internal/domain"
)

func TestSessionsSetGet(t *testing.T) {
	s := NewSessions()
	assert.Equal(t, domain.ModeNone, s.Get(1))

	s.Set(1, domain.ModeAwaitCustomAmount)
	assert.Equal(t, domain.ModeAwaitCustomAmount, s.Get(1))
	assert.Equal(t, domain.ModeNone, s.Get(2))

	// новый режим заменяет старый
	s.Set(1, domain.ModeAwaitAdminID)
	assert.Equal(t, domain.ModeAwaitAdminID, s.Get(1))

	s.Clear(1)
	assert.Equal(t, domain.ModeNone, s.Get(1))
}

func TestSessionsSetNoneClears(t *testing.T) {
	s := NewSessions()
	s.Set(1, domain.ModeAwaitInlineAmount)
	s.Set(1, domain.ModeNone)
	assert.Equal(t, domain.ModeNone, s.Get(1))
}

func TestSessionsTakeIf(t *testing.T) {
	s := NewSessions()
	s.Set(1, domain.ModeAwaitCustomAmount)

	assert.True(t, s.TakeIf(1, domain.ModeAwaitCustomAmount))
	// второй раз режим уже снят — дубль доставки не проходит
	assert.False(t, s.TakeIf(1, domain.ModeAwaitCustomAmount))
	assert.Equal(t, domain.ModeNone, s.Get(1))
}

func TestSessionsTakeIfWrongMode(t *testing.T) {
	s := NewSessions()
	s.Set(1, domain.ModeAwaitAdminID)

	assert.False(t, s.TakeIf(1, domain.ModeAwaitCustomAmount))
	// режим остался нетронутым
	assert.Equal(t, domain.ModeAwaitAdminID, s.Get(1))
}
