package auth

import (
	"testing"
	"time"

	model "bidwars/internal/models"

	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	t.Parallel()

	manager := NewManager("test-secret-for-bidwars", "bidwars")
	user := model.User{UserID: "user1", Username: "bidder1", Role: model.RolePlayer}

	token, err := manager.Issue(user, time.Hour)
	require.NoError(t, err)

	verified, err := manager.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user, verified)
}

func TestManager_VerifyRejections(t *testing.T) {
	t.Parallel()

	manager := NewManager("test-secret-for-bidwars", "bidwars")
	user := model.User{UserID: "user1", Username: "bidder1", Role: model.RolePlayer}

	t.Run("empty_token", func(t *testing.T) {
		_, err := manager.Verify("")
		require.Error(t, err)
	})

	t.Run("garbage_token", func(t *testing.T) {
		_, err := manager.Verify("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		other := NewManager("some-other-secret-entirely", "bidwars")
		token, err := other.Issue(user, time.Hour)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		other := NewManager("test-secret-for-bidwars", "someone-else")
		token, err := other.Issue(user, time.Hour)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired_token", func(t *testing.T) {
		token, err := manager.Issue(user, -time.Minute)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})

	t.Run("unknown_role", func(t *testing.T) {
		weird := user
		weird.Role = "superuser"
		token, err := manager.Issue(weird, time.Hour)
		require.NoError(t, err)

		_, err = manager.Verify(token)
		require.Error(t, err)
	})
}
