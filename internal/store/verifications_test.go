package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourname/starcheck-bot/internal/domain"
)

func TestSubmitFromSession(t *testing.T) {
	s := NewVerifications()

	id := s.SubmitFromSession(7, "+79991234567", "123456")
	require.Len(t, id, 8)
	assert.Equal(t, 1, s.SessionCount())
	assert.Equal(t, 0, s.WebsiteCount())

	pending := s.PendingSession()
	require.Len(t, pending, 1)
	assert.Equal(t, id, pending[0].ID)
	assert.Equal(t, int64(7), pending[0].UserID)
	assert.Equal(t, domain.SourceBot, pending[0].Source)
	assert.Equal(t, domain.StatusPending, pending[0].Status())
}

func TestDecideApprove(t *testing.T) {
	s := NewVerifications()
	id := s.SubmitFromSession(7, "+79991234567", "123456")

	r, err := s.Decide(id, 100, true)
	require.NoError(t, err)
	require.NotNil(t, r.Decision)
	assert.Equal(t, int64(100), r.Decision.By)
	assert.Equal(t, domain.StatusApproved, r.Status())

	assert.True(t, s.IsVerified(7))
	assert.Empty(t, s.PendingSession())
}

func TestDecideReject(t *testing.T) {
	s := NewVerifications()
	id := s.SubmitFromSession(7, "+79991234567", "123456")

	r, err := s.Decide(id, 100, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, r.Status())
	assert.False(t, s.IsVerified(7))
}

func TestDecideTwiceRejected(t *testing.T) {
	s := NewVerifications()
	id := s.SubmitFromSession(7, "+79991234567", "123456")

	_, err := s.Decide(id, 100, false)
	require.NoError(t, err)

	_, err = s.Decide(id, 200, true)
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	// отклонённая заявка не становится одобренной задним числом
	assert.False(t, s.IsVerified(7))
}

func TestDecideUnknownID(t *testing.T) {
	s := NewVerifications()
	_, err := s.Decide("MISSING1", 100, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWebsiteApproveDoesNotVerifyUser(t *testing.T) {
	s := NewVerifications()
	id := s.SubmitFromWebsite("+79991234567", "123456", "10.0.0.1")

	_, err := s.Decide(id, 100, true)
	require.NoError(t, err)
	// у заявки с сайта нет пользователя, отмечать некого
	assert.False(t, s.IsVerified(0))
}

func TestRecentWebsiteOrderAndLimit(t *testing.T) {
	s := NewVerifications()
	s.SubmitFromWebsite("+1", "111111", "10.0.0.1")
	b := s.SubmitFromWebsite("+2", "222222", "10.0.0.2")
	c := s.SubmitFromWebsite("+3", "333333", "10.0.0.3")

	got := s.RecentWebsite(2)
	require.Len(t, got, 2)
	assert.Equal(t, b, got[0].ID)
	assert.Equal(t, c, got[1].ID)

	all := s.RecentWebsite(0)
	assert.Len(t, all, 3)
}

func TestClearWebsite(t *testing.T) {
	s := NewVerifications()
	s.SubmitFromWebsite("+1", "111111", "10.0.0.1")
	s.SubmitFromWebsite("+2", "222222", "10.0.0.2")
	botID := s.SubmitFromSession(7, "+3", "333333")

	s.ClearWebsite()
	assert.Equal(t, 0, s.WebsiteCount())
	assert.Empty(t, s.RecentWebsite(10))

	// заявки из бота чистка с сайта не трогает
	assert.Equal(t, 1, s.SessionCount())
	pending := s.PendingSession()
	require.Len(t, pending, 1)
	assert.Equal(t, botID, pending[0].ID)
}
