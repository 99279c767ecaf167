package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteUserStore(t *testing.T) {
	t.Run("create and look up by email", func(t *testing.T) {
		f := NewBaseFixture(t)
		defer f.tearDown()
		store := NewSQLiteUserStore(f.db)

		created, err := store.CreateUser(f.ctx, "a@b.com", "hash")
		require.Nil(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)

		user, err := store.GetUserByEmail(f.ctx, "a@b.com")
		require.Nil(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "a@b.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
	})

	t.Run("lookup of unknown email returns nil", func(t *testing.T) {
		f := NewBaseFixture(t)
		defer f.tearDown()
		store := NewSQLiteUserStore(f.db)

		user, err := store.GetUserByEmail(f.ctx, "nobody@b.com")
		require.Nil(t, err)
		assert.Nil(t, user)
	})

	t.Run("unique constraint maps to ErrDuplicateUser", func(t *testing.T) {
		f := NewBaseFixture(t)
		defer f.tearDown()
		store := NewSQLiteUserStore(f.db)

		_, err := store.CreateUser(f.ctx, "a@b.com", "hash")
		require.Nil(t, err)

		// insert directly, bypassing any service-level pre-check
		dup, err := store.CreateUser(f.ctx, "a@b.com", "other-hash")
		require.Nil(t, dup)
		assert.Equal(t, ErrDuplicateUser, err)
	})
}
