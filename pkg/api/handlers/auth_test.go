package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/estatedesk/backend/config"
	"github.com/estatedesk/backend/ent"
	"github.com/estatedesk/backend/ent/enttest"
	"github.com/estatedesk/backend/ent/user"
	"github.com/estatedesk/backend/pkg/auth"
	"github.com/estatedesk/backend/pkg/cache"
	"github.com/estatedesk/backend/pkg/metrics"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prometheus collectors register globally, so the whole test package
// shares one instance.
var testMetrics = metrics.New()

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
}

func setupAuthTest(t *testing.T) (*ent.Client, *AuthHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	blacklist := auth.NewTokenBlacklist(cache.NewClientFromRedis(redisClient))

	handler := NewAuthHandler(client, testConfig(), blacklist, testMetrics)
	return client, handler
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegister(t *testing.T) {
	client, handler := setupAuthTest(t)
	e := echo.New()

	t.Run("Success - Registers agent and returns token", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/register",
			`{"name":"Sarah Johnson","email":"sarah@demo.com","password":"Agent123!"}`)

		err := handler.Register(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])

		info := resp["user"].(map[string]interface{})
		assert.Equal(t, "sarah@demo.com", info["email"])
		assert.Equal(t, "agent", info["role"]) // self-registration never grants admin

		u, err := client.User.Query().Where(user.EmailEQ("sarah@demo.com")).Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, user.RoleAgent, u.Role)
		assert.NotEqual(t, "Agent123!", u.PasswordHash)
	})

	t.Run("Error - Duplicate email", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/register",
			`{"name":"Sarah Clone","email":"sarah@demo.com","password":"Agent123!"}`)

		err := handler.Register(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Error - Invalid email", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/register",
			`{"name":"Bad Email","email":"not-an-email","password":"Agent123!"}`)

		err := handler.Register(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	_, handler := setupAuthTest(t)
	e := echo.New()

	c, rec := postJSON(e, "/api/v1/auth/register",
		`{"name":"Sarah Johnson","email":"sarah@demo.com","password":"Agent123!"}`)
	require.NoError(t, handler.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("Success - Valid credentials", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/login",
			`{"email":"sarah@demo.com","password":"Agent123!"}`)

		err := handler.Login(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("Error - Wrong password", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/login",
			`{"email":"sarah@demo.com","password":"wrong-password"}`)

		err := handler.Login(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - Unknown email", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/auth/login",
			`{"email":"nobody@demo.com","password":"Agent123!"}`)

		err := handler.Login(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestMe(t *testing.T) {
	client, handler := setupAuthTest(t)
	e := echo.New()

	u, err := client.User.Create().
		SetName("Admin User").
		SetEmail("admin@demo.com").
		SetPasswordHash("hashed_password").
		SetRole(user.RoleAdmin).
		Save(context.Background())
	require.NoError(t, err)

	t.Run("Success - Returns current user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err := handler.Me(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var info map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "admin@demo.com", info["email"])
		assert.Equal(t, "admin", info["role"])
	})

	t.Run("Error - Missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Me(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	_, handler := setupAuthTest(t)
	e := echo.New()

	token, err := auth.GenerateJWT(1, "sarah@demo.com", "agent", "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token", token)

	err = handler.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	revoked, err := handler.blacklist.IsBlacklisted(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, revoked)
}
