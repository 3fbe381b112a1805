package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("sekret")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret", hash)

	assert.True(t, h.Verify("sekret", hash))
	assert.False(t, h.Verify("wrong", hash))
	assert.False(t, h.Verify("sekret", "not-a-bcrypt-hash"))
}

func TestPasswordHasherSaltsEachHash(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("sekret")
	require.NoError(t, err)
	second, err := h.Hash("sekret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("sekret", first))
	assert.True(t, h.Verify("sekret", second))
}
