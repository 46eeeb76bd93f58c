package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafe-client/internal/common/logger"
	"cafe-client/internal/domain"
	"cafe-client/internal/localstore"
)

func newKV(t *testing.T) *localstore.Store {
	t.Helper()
	kv, err := localstore.Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

var nadia = domain.User{UserID: 7, Name: "Nadia", Email: "nadia@example.com", Phone: "01712345678", Role: domain.RoleUser}

func TestCredentialsRoundTrip(t *testing.T) {
	kv := newKV(t)

	first := New(kv, logger.Nop())
	assert.False(t, first.IsAuthenticated())
	first.SetCredentials(nadia, "tok-7")

	second := New(kv, logger.Nop())
	require.True(t, second.IsAuthenticated())
	assert.Equal(t, "tok-7", second.Token())
	assert.Equal(t, &nadia, second.User())
	assert.Equal(t, domain.RoleUser, second.Role())
}

func TestLogout(t *testing.T) {
	kv := newKV(t)
	require.NoError(t, kv.Set("cart", `[{"id":1,"name":"Latte","price":180,"quantity":1}]`))

	sess := New(kv, logger.Nop())
	sess.SetCredentials(nadia, "tok-7")
	sess.Logout()

	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())

	// Logging out never touches the persisted cart.
	cartRaw, ok, err := kv.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, cartRaw, "Latte")

	// And the cleared session stays cleared across a reload.
	assert.False(t, New(kv, logger.Nop()).IsAuthenticated())
}

func TestMalformedSession(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "garbage"},
		{"missing user", `{"token":"tok-7"}`},
		{"missing token", `{"user":{"userId":7,"role":"user"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := newKV(t)
			require.NoError(t, kv.Set("auth", tc.raw))

			sess := New(kv, logger.Nop())
			assert.False(t, sess.IsAuthenticated())

			// Malformed state is discarded for good.
			_, ok, err := kv.Get("auth")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestRoleGates(t *testing.T) {
	kv := newKV(t)
	sess := New(kv, logger.Nop())

	t.Run("logged out", func(t *testing.T) {
		assert.False(t, sess.IsAdmin())
		assert.True(t, sess.CanPlaceOrder())
		assert.Equal(t, domain.Role(""), sess.Role())
	})

	t.Run("regular user can order", func(t *testing.T) {
		sess.SetCredentials(nadia, "tok-7")
		assert.False(t, sess.IsAdmin())
		assert.True(t, sess.CanPlaceOrder())
	})

	t.Run("admin cannot order", func(t *testing.T) {
		admin := nadia
		admin.Role = domain.RoleAdmin
		sess.SetCredentials(admin, "tok-admin")
		assert.True(t, sess.IsAdmin())
		assert.False(t, sess.CanPlaceOrder())
	})
}
