package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"govportal/internal/config"
	"govportal/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockProfileRepository is a mock of the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByStaticID(ctx context.Context, staticID string) (*models.Profile, error) {
	args := m.Called(ctx, staticID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]models.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) List(ctx context.Context, limit, offset int) ([]models.Profile, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockProfileRepository) SearchByName(ctx context.Context, query string, limit int) ([]models.Profile, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.Profile), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-key-for-handler-tests",
		LoginDomain: "gosuslugi.local",
		Port:        "8441",
	}
}

func newAuthTestServer(t *testing.T) (*Server, *MockProfileRepository, *fiber.App) {
	t.Helper()
	mockRepo := new(MockProfileRepository)
	s := &Server{config: testConfig(), profileRepo: mockRepo}

	app := fiber.New()
	app.Post("/auth/signup", s.SignUp)
	app.Post("/auth/login", s.Login)
	app.Post("/auth/refresh", s.Refresh)
	app.Post("/auth/logout", s.Logout)
	return s, mockRepo, app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func(*MockProfileRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"static_id": "AB-1234",
				"nickname":  "Jane Doe",
				"password":  "sup3rsecret",
			},
			mockSetup: func(m *MockProfileRepository) {
				m.On("GetByStaticID", mock.Anything, "AB-1234").Return(nil, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Invalid static ID",
			body: map[string]string{
				"static_id": "!!",
				"nickname":  "Jane Doe",
				"password":  "sup3rsecret",
			},
			mockSetup:      func(*MockProfileRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Weak password",
			body: map[string]string{
				"static_id": "AB-1234",
				"nickname":  "Jane Doe",
				"password":  "short",
			},
			mockSetup:      func(*MockProfileRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Duplicate static ID",
			body: map[string]string{
				"static_id": "AB-1234",
				"nickname":  "Jane Doe",
				"password":  "sup3rsecret",
			},
			mockSetup: func(m *MockProfileRepository) {
				m.On("GetByStaticID", mock.Anything, "AB-1234").
					Return(&models.Profile{ID: 1, StaticID: "AB-1234"}, nil)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockRepo, app := newAuthTestServer(t)
			tt.mockSetup(mockRepo)

			resp := postJSON(t, app, "/auth/signup", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestSignUpDerivesTechnicalLogin(t *testing.T) {
	_, mockRepo, app := newAuthTestServer(t)

	var created *models.Profile
	mockRepo.On("GetByStaticID", mock.Anything, "CD 777").Return(nil, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Profile)
	}).Return(nil)

	resp := postJSON(t, app, "/auth/signup", map[string]string{
		"static_id": "CD 777",
		"nickname":  "John Doe",
		"password":  "sup3rsecret",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created)
	assert.Equal(t, "static_cd_777@gosuslugi.local", created.Email)
	assert.NotEqual(t, "sup3rsecret", created.Password)
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("sup3rsecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &models.Profile{ID: 1, StaticID: "AB-1234", Password: string(hashed)}

	t.Run("Success", func(t *testing.T) {
		_, mockRepo, app := newAuthTestServer(t)
		mockRepo.On("GetByStaticID", mock.Anything, "AB-1234").Return(stored, nil)

		resp := postJSON(t, app, "/auth/login", map[string]string{
			"static_id": "AB-1234",
			"password":  "sup3rsecret",
		})
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["token"])
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, mockRepo, app := newAuthTestServer(t)
		mockRepo.On("GetByStaticID", mock.Anything, "AB-1234").Return(stored, nil)

		resp := postJSON(t, app, "/auth/login", map[string]string{
			"static_id": "AB-1234",
			"password":  "wrongwrong",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown account", func(t *testing.T) {
		_, mockRepo, app := newAuthTestServer(t)
		mockRepo.On("GetByStaticID", mock.Anything, "ZZ-9999").Return(nil, nil)
		mockRepo.On("GetByEmail", mock.Anything, "ZZ-9999").Return(nil, nil)

		resp := postJSON(t, app, "/auth/login", map[string]string{
			"static_id": "ZZ-9999",
			"password":  "sup3rsecret",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRefreshRotatesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s, _, _ := newAuthTestServer(t)
	s.redis = client
	app := fiber.New()
	app.Post("/auth/refresh", s.Refresh)

	require.NoError(t, mr.Set("refresh:old-token", "42"))

	resp := postJSON(t, app, "/auth/refresh", map[string]string{"refresh_token": "old-token"})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, body["refresh_token"])

	// The exchanged token is single use.
	assert.False(t, mr.Exists("refresh:old-token"))

	resp2 := postJSON(t, app, "/auth/refresh", map[string]string{"refresh_token": "old-token"})
	defer func() { _ = resp2.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestRefreshWithoutSessionStore(t *testing.T) {
	_, _, app := newAuthTestServer(t)

	resp := postJSON(t, app, "/auth/refresh", map[string]string{"refresh_token": "anything"})
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s, _, _ := newAuthTestServer(t)
	s.redis = client
	app := fiber.New()
	app.Post("/auth/logout", s.Logout)

	require.NoError(t, mr.Set("refresh:session-token", "42"))
	token, err := s.generateToken(42)
	require.NoError(t, err)

	encoded, err := json.Marshal(map[string]string{"refresh_token": "session-token"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.False(t, mr.Exists("refresh:session-token"))

	// The access token's jti is now blacklisted.
	keys := mr.Keys()
	var blacklisted bool
	for _, k := range keys {
		if len(k) > len("blacklist:") && k[:len("blacklist:")] == "blacklist:" {
			blacklisted = true
		}
	}
	assert.True(t, blacklisted)
}
