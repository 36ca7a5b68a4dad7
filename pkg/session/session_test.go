package session_test

import (
	"testing"
	"time"

	"talent-sift/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	m, err := session.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	id, token, err := m.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSessionRejectsForeignTokens(t *testing.T) {
	a, err := session.NewManager("secret-a", time.Hour)
	require.NoError(t, err)
	b, err := session.NewManager("secret-b", time.Hour)
	require.NoError(t, err)

	_, token, err := a.Issue()
	require.NoError(t, err)

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		_, err := b.Parse(token)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := a.Parse("not-a-token")
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})
}

func TestSessionRandomSecret(t *testing.T) {
	m, err := session.NewManager("", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, m.TTL())

	_, token, err := m.Issue()
	require.NoError(t, err)
	_, err = m.Parse(token)
	assert.NoError(t, err)
}
