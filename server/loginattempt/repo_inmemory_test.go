package loginattempt_test

import (
	"testing"
	"time"

	"github.com/nobh/portal-gateway/server/loginattempt"
	"github.com/stretchr/testify/require"
)

func newAttempt(ttl time.Duration) *loginattempt.Attempt {
	now := time.Now()
	return &loginattempt.Attempt{
		Verifier:   "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk",
		ReturnPath: "/residents",
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
}

func TestInMemoryRepo_Take(t *testing.T) {
	t.Run("returns stored attempt", func(t *testing.T) {
		repo := loginattempt.NewInMemoryRepo()
		require.NoError(t, repo.Upsert("attempt-1", newAttempt(time.Minute)))

		got, err := repo.Take("attempt-1")
		require.NoError(t, err)
		require.Equal(t, "/residents", got.ReturnPath)
		require.NotEmpty(t, got.Verifier)
	})

	t.Run("is destructive", func(t *testing.T) {
		repo := loginattempt.NewInMemoryRepo()
		require.NoError(t, repo.Upsert("attempt-1", newAttempt(time.Minute)))

		_, err := repo.Take("attempt-1")
		require.NoError(t, err)

		_, err = repo.Take("attempt-1")
		require.ErrorIs(t, err, loginattempt.ErrNotFound)
	})

	t.Run("expired attempt is not found", func(t *testing.T) {
		repo := loginattempt.NewInMemoryRepo()
		require.NoError(t, repo.Upsert("attempt-1", newAttempt(-time.Second)))

		_, err := repo.Take("attempt-1")
		require.ErrorIs(t, err, loginattempt.ErrNotFound)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		repo := loginattempt.NewInMemoryRepo()
		_, err := repo.Take("nope")
		require.ErrorIs(t, err, loginattempt.ErrNotFound)
	})
}

func TestInMemoryRepo_Upsert(t *testing.T) {
	repo := loginattempt.NewInMemoryRepo()

	require.Error(t, repo.Upsert("", newAttempt(time.Minute)))
	require.Error(t, repo.Upsert("attempt-1", nil))

	// Stored value is a copy
	a := newAttempt(time.Minute)
	require.NoError(t, repo.Upsert("attempt-1", a))
	a.Verifier = "mutated"

	got, err := repo.Take("attempt-1")
	require.NoError(t, err)
	require.NotEqual(t, "mutated", got.Verifier)
}

func TestInMemoryRepo_Delete(t *testing.T) {
	repo := loginattempt.NewInMemoryRepo()
	require.NoError(t, repo.Upsert("attempt-1", newAttempt(time.Minute)))
	require.NoError(t, repo.Delete("attempt-1"))

	_, err := repo.Take("attempt-1")
	require.ErrorIs(t, err, loginattempt.ErrNotFound)
}
