package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/estatedesk/backend/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(42, "sarah@demo.com", "agent", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)

	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "sarah@demo.com", claims.Email)
	assert.Equal(t, "agent", claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "sarah@demo.com", "agent", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token, "different-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateJWTGarbage(t *testing.T) {
	claims, err := ValidateJWT("not.a.token", testSecret)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func newTestBlacklist(t *testing.T) *TokenBlacklist {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenBlacklist(cache.NewClientFromRedis(client))
}

func TestTokenBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := newTestBlacklist(t)

	token, err := GenerateJWT(7, "admin@demo.com", "admin", testSecret, 1)
	require.NoError(t, err)

	revoked, err := blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	err = blacklist.Add(ctx, token, time.Hour)
	require.NoError(t, err)

	revoked, err = blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	ctx := context.Background()
	blacklist := newTestBlacklist(t)

	token, err := GenerateJWT(7, "admin@demo.com", "admin", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	claims, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "revoked")
}

func TestValidateJWTWithNilBlacklist(t *testing.T) {
	token, err := GenerateJWT(7, "admin@demo.com", "admin", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(context.Background(), token, testSecret, nil)

	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
}
