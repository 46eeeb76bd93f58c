package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	t.Run("missing key", func(t *testing.T) {
		_, ok, err := s.Get("cart")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, s.Set("cart", `[{"id":1}]`))
		v, ok, err := s.Get("cart")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, `[{"id":1}]`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set("cart", `[]`))
		v, _, err := s.Get("cart")
		require.NoError(t, err)
		assert.Equal(t, `[]`, v)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete("cart"))
		_, ok, err := s.Get("cart")
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, s.Delete("cart"), "deleting a missing key is fine")
	})
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("auth", `{"token":"tok"}`))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get("auth")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"token":"tok"}`, v)
}
