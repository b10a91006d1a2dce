package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthGuardedApp(s *Server) *fiber.App {
	app := fiber.New()
	app.Get("/protected", s.AuthRequired(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"profile_id": s.profileID(c)})
	})
	return app
}

func getWithToken(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthRequired(t *testing.T) {
	s := &Server{config: testConfig()}
	app := newAuthGuardedApp(s)

	t.Run("Missing header", func(t *testing.T) {
		resp := getWithToken(t, app, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Garbage token", func(t *testing.T) {
		resp := getWithToken(t, app, "not-a-jwt")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Valid token passes through", func(t *testing.T) {
		token, err := s.generateToken(42)
		require.NoError(t, err)

		resp := getWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		other := &Server{config: testConfig()}
		other.config.JWTSecret = "a-completely-different-secret-key"
		token, err := other.generateToken(42)
		require.NoError(t, err)

		resp := getWithToken(t, app, token)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequiredClaimChecks(t *testing.T) {
	s := &Server{config: testConfig()}
	app := newAuthGuardedApp(s)

	sign := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(s.config.JWTSecret))
		require.NoError(t, err)
		return token
	}

	base := func() jwt.MapClaims {
		now := time.Now()
		return jwt.MapClaims{
			"sub": strconv.FormatUint(7, 10),
			"iss": tokenIssuer,
			"aud": tokenAudience,
			"exp": now.Add(time.Hour).Unix(),
			"iat": now.Unix(),
			"nbf": now.Unix(),
			"jti": "test-jti",
		}
	}

	t.Run("Wrong issuer", func(t *testing.T) {
		claims := base()
		claims["iss"] = "someone-else"
		resp := getWithToken(t, app, sign(t, claims))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Wrong audience", func(t *testing.T) {
		claims := base()
		claims["aud"] = "another-app"
		resp := getWithToken(t, app, sign(t, claims))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := base()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		resp := getWithToken(t, app, sign(t, claims))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Non numeric subject", func(t *testing.T) {
		claims := base()
		claims["sub"] = "not-a-number"
		resp := getWithToken(t, app, sign(t, claims))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthRequiredBlacklistedToken(t *testing.T) {
	mr := miniredis.RunT(t)
	s := &Server{
		config: testConfig(),
		redis:  redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	app := newAuthGuardedApp(s)

	token, err := s.generateToken(42)
	require.NoError(t, err)

	// First use succeeds.
	resp := getWithToken(t, app, token)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Blacklist the token's jti the way Logout does.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(s.config.JWTSecret), nil
	})
	require.NoError(t, err)
	jti := parsed.Claims.(jwt.MapClaims)["jti"].(string)
	require.NoError(t, mr.Set("blacklist:"+jti, "1"))

	resp2 := getWithToken(t, app, token)
	defer func() { _ = resp2.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}
