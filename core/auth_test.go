package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "a@b.com"
	testPassword = "secret1"
)

func TestRegister(t *testing.T) {
	t.Run("successfully register a new user", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		user, err := f.auth.Register(f.ctx, testEmail, testPassword)
		require.Nil(t, err)
		require.NotNil(t, user)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, testEmail, user.Email)

		stored, err := f.userStore.GetUserByEmail(f.ctx, testEmail)
		require.Nil(t, err)
		require.NotNil(t, stored)
		assert.NotEmpty(t, stored.PasswordHash)
		assert.NotContains(t, stored.PasswordHash, testPassword)
	})

	t.Run("missing email or password", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		for _, creds := range [][2]string{
			{"", testPassword},
			{testEmail, ""},
			{"", ""},
		} {
			user, err := f.auth.Register(f.ctx, creds[0], creds[1])
			require.Nil(t, user)
			assert.Equal(t, ErrMissingCredentials, err)
		}
	})

	t.Run("invalid email format", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		for _, email := range []string{
			"bad-email",
			"a@b",
			"a b@c.com",
			"a@b@c.com",
			"@b.com",
			"a@.",
		} {
			user, err := f.auth.Register(f.ctx, email, testPassword)
			require.Nil(t, user, "email %q should be rejected", email)
			assert.Equal(t, ErrInvalidEmail, err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()
		seedUsers(f.ctx, f.t, f.auth, [2]string{testEmail, testPassword})

		user, err := f.auth.Register(f.ctx, testEmail, "another-password")
		require.Nil(t, user)
		assert.Equal(t, ErrDuplicateUser, err)
	})
}

func TestLogin(t *testing.T) {
	t.Run("missing email or password", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		token, _, err := f.auth.Login(f.ctx, testEmail, "")
		require.Empty(t, token)
		assert.Equal(t, ErrMissingCredentials, err)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()
		seedUsers(f.ctx, f.t, f.auth, [2]string{testEmail, testPassword})

		token, _, unknownErr := f.auth.Login(f.ctx, "nobody@b.com", testPassword)
		require.Empty(t, token)
		require.NotNil(t, unknownErr)

		token, _, wrongErr := f.auth.Login(f.ctx, testEmail, testPassword+"69")
		require.Empty(t, token)
		require.NotNil(t, wrongErr)

		assert.Equal(t, ErrBadCredentials, unknownErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("successful login yields a verifiable token", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()
		seedUsers(f.ctx, f.t, f.auth, [2]string{testEmail, testPassword})

		token, exp, err := f.auth.Login(f.ctx, testEmail, testPassword)
		require.Nil(t, err)
		require.NotEmpty(t, token)
		assert.Greater(t, exp, time.Now())

		claims, err := VerifyToken(token, secret)
		require.Nil(t, err)
		assert.Equal(t, testEmail, claims.Email)
		assert.NotEmpty(t, claims.Subject)
	})
}

func TestSession(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()
		seedUsers(f.ctx, f.t, f.auth, [2]string{testEmail, testPassword})

		token, _, err := f.auth.Login(f.ctx, testEmail, testPassword)
		require.Nil(t, err)

		session, err := f.auth.Session(f.ctx, token)
		require.Nil(t, err)
		require.NotNil(t, session)
		assert.Equal(t, testEmail, session.Email)
		assert.NotEmpty(t, session.UserID)
	})

	t.Run("expired token", func(t *testing.T) {
		f := NewAuthFixture(t, WithTokenExp(-time.Hour))
		defer f.tearDown()
		seedUsers(f.ctx, f.t, f.auth, [2]string{testEmail, testPassword})

		token, exp, err := f.auth.Login(f.ctx, testEmail, testPassword)
		require.Nil(t, err)
		require.True(t, exp.Before(time.Now()))

		session, err := f.auth.Session(f.ctx, token)
		require.Nil(t, session)
		assert.Equal(t, ErrUnauthenticated, err)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		token, _, err := NewToken(UserWithoutSecrets{ID: "id", Email: testEmail}, time.Hour, []byte("other-secret"))
		require.Nil(t, err)

		session, err := f.auth.Session(f.ctx, token)
		require.Nil(t, session)
		assert.Equal(t, ErrUnauthenticated, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := NewAuthFixture(t)
		defer f.tearDown()

		session, err := f.auth.Session(f.ctx, "garbage")
		require.Nil(t, session)
		assert.Equal(t, ErrUnauthenticated, err)
	})
}
