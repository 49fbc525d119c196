package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{40}$`)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)

	t.Run("password is hashed, never stored in plaintext", func(t *testing.T) {
		assert.NotEqual(t, "pw123", user.PasswordDigest)
		assert.NotContains(t, user.PasswordDigest, "pw123")
		assert.True(t, user.VerifyPassword("pw123"))
		assert.False(t, user.VerifyPassword("pw124"))
		assert.False(t, user.VerifyPassword(""))
	})

	t.Run("session is established at construction", func(t *testing.T) {
		assert.Regexp(t, hexToken, user.SessionToken)
		assert.Regexp(t, hexToken, user.UpdateToken)
		assert.NotEqual(t, user.SessionToken, user.UpdateToken)
		assert.WithinDuration(t, time.Now().Add(SessionDuration), user.SessionExpiration, 5*time.Second)
	})
}

func TestUser_RenewSession(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)

	oldSession := user.SessionToken
	oldUpdate := user.UpdateToken

	require.NoError(t, user.RenewSession())

	assert.NotEqual(t, oldSession, user.SessionToken, "session token must rotate")
	assert.NotEqual(t, oldUpdate, user.UpdateToken, "update token must rotate")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), user.SessionExpiration, 5*time.Second)
}

func TestUser_TokensAreIndependent(t *testing.T) {
	t.Parallel()

	a, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)
	b, err := NewUser("Ben", "ben@x.com", "pw456")
	require.NoError(t, err)

	assert.NotEqual(t, a.SessionToken, b.SessionToken)
	assert.NotEqual(t, a.UpdateToken, b.UpdateToken)
}

func TestUser_VerifySessionToken(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)

	t.Run("valid token before expiration", func(t *testing.T) {
		assert.True(t, user.VerifySessionToken(user.SessionToken))
	})

	t.Run("wrong token", func(t *testing.T) {
		assert.False(t, user.VerifySessionToken("deadbeef"))
		assert.False(t, user.VerifySessionToken(user.UpdateToken))
	})

	t.Run("correct token after expiration is rejected", func(t *testing.T) {
		expired := *user
		expired.SessionExpiration = time.Now().Add(-time.Second)
		assert.False(t, expired.VerifySessionToken(expired.SessionToken))
	})
}

func TestUser_VerifyUpdateToken(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)

	assert.True(t, user.VerifyUpdateToken(user.UpdateToken))
	assert.False(t, user.VerifyUpdateToken(user.SessionToken))

	// Update tokens are long-lived: a stale session expiration does not
	// invalidate them.
	user.SessionExpiration = time.Now().Add(-time.Hour)
	assert.True(t, user.VerifyUpdateToken(user.UpdateToken))
}

func TestUser_Serialize(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)
	user.ID = 7
	user.Favorites = []Location{
		{ID: 2, Name: "Uris Library", Address: "160 Ho Plaza, Ithaca NY", Latitude: 42.4477, Longitude: -76.4847},
	}

	full := user.Serialize()

	assert.Equal(t, "Ana", full["name"])
	assert.Equal(t, "ana@x.com", full["email"])
	assert.Len(t, full["session_token"], 40)
	assert.Equal(t, user.UpdateToken, full["update_token"])
	assert.IsType(t, "", full["session_expiration"])
	assert.NotContains(t, full, "password")
	assert.NotContains(t, full, "password_digest")
	assert.NotContains(t, full, "comments")
	assert.NotContains(t, full, "positions")

	favorites, ok := full["favorites"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, favorites, 1)
	assert.Equal(t, map[string]any{"id": uint(2), "name": "Uris Library", "address": "160 Ho Plaza, Ithaca NY"}, favorites[0])
}

func TestUser_SimpleSerializeIsSubset(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ana", "ana@x.com", "pw123")
	require.NoError(t, err)
	user.ID = 7

	full := user.Serialize()
	simple := user.SimpleSerialize()

	for key, value := range simple {
		assert.Contains(t, full, key)
		assert.Equal(t, full[key], value)
	}
}
