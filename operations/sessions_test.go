package operations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceinvoice/landing/contactform"
	"github.com/voiceinvoice/landing/inits"
)

func newTestSessions(t *testing.T, now *time.Time) *Sessions {
	t.Helper()
	db, err := inits.NewDB()
	require.NoError(t, err)
	s := NewSessions(db, time.Hour, func() *contactform.Controller {
		return contactform.NewController(contactform.DefaultTemplate(), nil, nil)
	}, nil)
	s.now = func() time.Time { return *now }
	return s
}

func TestAcquireCreatesAndReuses(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newTestSessions(t, &now)

	first, err := s.Acquire("")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, now.Add(time.Hour).Unix(), first.Expiry)

	now = now.Add(30 * time.Minute)
	again, err := s.Acquire(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Same(t, first.Controller, again.Controller)
	assert.Equal(t, now.Add(time.Hour).Unix(), again.Expiry)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAcquireReplacesUnknownAndExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newTestSessions(t, &now)

	unknown, err := s.Acquire("not-a-session")
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-session", unknown.ID)

	now = now.Add(2 * time.Hour)
	fresh, err := s.Acquire(unknown.ID)
	require.NoError(t, err)
	assert.NotEqual(t, unknown.ID, fresh.ID)
	assert.NotSame(t, unknown.Controller, fresh.Controller)
}

func TestDeleteExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newTestSessions(t, &now)

	old, err := s.Acquire("")
	require.NoError(t, err)
	now = now.Add(90 * time.Minute)
	live, err := s.Acquire("")
	require.NoError(t, err)

	deleted, err := s.DeleteExpired(now)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	gone, err := s.Get(old.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := s.Get(live.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
