package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
	assert.False(t, CheckPassword("s3cret-password", "not-a-hash"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateRandomPassword(t *testing.T) {
	t.Run("respects requested length", func(t *testing.T) {
		password, err := GenerateRandomPassword(16)
		require.NoError(t, err)
		assert.Len(t, password, 16)
	})

	t.Run("defaults on non-positive length", func(t *testing.T) {
		password, err := GenerateRandomPassword(0)
		require.NoError(t, err)
		assert.Len(t, password, 10)
	})

	t.Run("uses only alphabet characters", func(t *testing.T) {
		password, err := GenerateRandomPassword(64)
		require.NoError(t, err)
		for _, c := range password {
			assert.Contains(t, passwordAlphabet, string(c))
		}
	})

	t.Run("two passwords differ", func(t *testing.T) {
		first, err := GenerateRandomPassword(20)
		require.NoError(t, err)
		second, err := GenerateRandomPassword(20)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}
