package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Agent123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Agent123!", hash)

	assert.True(t, CheckPassword(hash, "Agent123!"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("Agent123!")
	require.NoError(t, err)
	second, err := HashPassword("Agent123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
