package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/dto"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/handler"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/service"
	"github.com/RadhepS/E-Commerce-Platform/internal/mocks"
	"github.com/RadhepS/E-Commerce-Platform/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handler-test-secret"

type testEnv struct {
	app          *fiber.App
	repo         *mocks.MockUserRepository
	tokenService *service.TokenService
	hasher       *service.BcryptHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService(testSecret, 60)
	hasher := service.NewBcryptHasher(bcrypt.MinCost)
	gate := service.NewSessionGate(tokenService, mockRepo)
	userService := service.NewUserService(mockRepo, tokenService, hasher, gate)
	authHandler := handler.NewAuthHandler(userService, false)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	return &testEnv{
		app:          app,
		repo:         mockRepo,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == constant.CookieName {
			return c
		}
	}
	return nil
}

func registerBody() dto.RegisterInput {
	return dto.RegisterInput{
		Username:     "alice",
		Password:     "password123",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		StreetNumber: "123",
		StreetName:   "Main St",
		City:         "Springfield",
		Province:     "ON",
		PostalCode:   "A1B 2C3",
		Country:      "Canada",
	}
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	t.Run("success", func(t *testing.T) {
		env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
		env.repo.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).Return(nil)
		env.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/create", registerBody()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "successfully created the user", body["message"])

		user := body["user"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, "Main St", user["street_name"])
		assert.NotContains(t, user, "password")
		assert.NotContains(t, user, "password_hash")

		// Registration does not authenticate.
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("bad request body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/create", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate username", func(t *testing.T) {
		existing := &domain.User{ID: "user-1", Username: "alice"}
		env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(existing, nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/create", registerBody()))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "user already exists", body["message"])
	})

	t.Run("invalid address", func(t *testing.T) {
		input := registerBody()
		input.Country = ""

		env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/create", input))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "invalid address", body["message"])
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	password := "password123"
	hash, err := env.hasher.Hash(password)
	require.NoError(t, err)

	user := &domain.User{
		ID:           "user-123",
		Username:     "alice",
		PasswordHash: hash,
		AddressID:    "addr-456",
	}
	address := &domain.Address{ID: "addr-456", StreetName: "Main St"}

	t.Run("success sets the session cookie", func(t *testing.T) {
		env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		env.repo.EXPECT().GetAddressByID(gomock.Any(), "addr-456").Return(address, nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/login",
			dto.LoginInput{Username: "alice", Password: password}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "cookie-set", body["message"])
		assert.Equal(t, "Main St", body["user"].(map[string]any)["street_name"])

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, constant.CookieMaxAgeSecond, cookie.MaxAge)

		// The cookie value is a token whose claim matches the user.
		claims, err := env.tokenService.Verify(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Username, claims.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		env.repo.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/login",
			dto.LoginInput{Username: "nobody", Password: password}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "user does not exist", decodeBody(t, resp)["message"])
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("wrong password", func(t *testing.T) {
		env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)

		resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/login",
			dto.LoginInput{Username: "alice", Password: "wrongpass"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "invalid password", decodeBody(t, resp)["message"])
		assert.Nil(t, sessionCookie(resp))
	})

	t.Run("bad request body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t)

	user := &domain.User{ID: "user-123", Username: "alice", AddressID: "addr-456"}
	address := &domain.Address{ID: "addr-456", StreetName: "Main St"}

	t.Run("no cookie", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest("GET", "/auth/status", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["isAuthenticated"])
		assert.NotContains(t, body, "user")
	})

	t.Run("valid cookie", func(t *testing.T) {
		token, err := env.tokenService.Issue(user.ID, user.Username)
		require.NoError(t, err)

		env.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
		env.repo.EXPECT().GetAddressByID(gomock.Any(), "addr-456").Return(address, nil)

		req := httptest.NewRequest("GET", "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: constant.CookieName, Value: token})

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["isAuthenticated"])
		assert.Equal(t, "alice", body["user"].(map[string]any)["username"])
		assert.Equal(t, "Main St", body["user"].(map[string]any)["street_name"])
	})

	t.Run("cookie for a deleted user", func(t *testing.T) {
		token, err := env.tokenService.Issue("gone-user", "bob")
		require.NoError(t, err)

		env.repo.EXPECT().GetByID(gomock.Any(), "gone-user").Return(nil, nil)

		req := httptest.NewRequest("GET", "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: constant.CookieName, Value: token})

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["isAuthenticated"])
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: constant.CookieName, Value: "tampered.token.value"})

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, false, decodeBody(t, resp)["isAuthenticated"])
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	t.Run("live session clears the cookie", func(t *testing.T) {
		user := &domain.User{ID: "user-123", Username: "alice"}
		token, err := env.tokenService.Issue(user.ID, user.Username)
		require.NoError(t, err)

		env.repo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: constant.CookieName, Value: token})

		resp, err := env.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		cookie := sessionCookie(resp)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.True(t, cookie.MaxAge < 0 || !cookie.Expires.IsZero())
	})

	t.Run("without a session is still a success", func(t *testing.T) {
		resp, err := env.app.Test(httptest.NewRequest("POST", "/auth/logout", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Nil(t, sessionCookie(resp))
	})
}

func TestRemove(t *testing.T) {
	env := newTestEnv(t)

	t.Run("success", func(t *testing.T) {
		deleted := &domain.User{ID: "user-123", Username: "alice"}
		env.repo.EXPECT().Delete(gomock.Any(), "user-123").Return(deleted, nil)

		resp, err := env.app.Test(httptest.NewRequest("DELETE", "/auth/users/user-123", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "successfully deleted", decodeBody(t, resp)["message"])
	})

	t.Run("not found", func(t *testing.T) {
		env.repo.EXPECT().Delete(gomock.Any(), "missing").Return(nil, nil)

		resp, err := env.app.Test(httptest.NewRequest("DELETE", "/auth/users/missing", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("storage error", func(t *testing.T) {
		env.repo.EXPECT().Delete(gomock.Any(), "user-123").Return(nil, errors.New("db down"))

		resp, err := env.app.Test(httptest.NewRequest("DELETE", "/auth/users/user-123", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

// TestAuthLifecycle walks the full register → login → bad login → logout →
// status sequence against a single in-memory user.
func TestAuthLifecycle(t *testing.T) {
	env := newTestEnv(t)

	var storedUser *domain.User
	var storedAddress *domain.Address

	// Register alice.
	env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	env.repo.EXPECT().CreateAddress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, a *domain.Address) error {
			storedAddress = a
			return nil
		})
	env.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u *domain.User) error {
			storedUser = u
			return nil
		})

	resp, err := env.app.Test(jsonRequest(t, "POST", "/auth/create", registerBody()))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, storedUser)
	assert.Equal(t, "alice", storedUser.Username)
	assert.Equal(t, "Main St", storedAddress.StreetName)
	assert.Equal(t, storedAddress.ID, storedUser.AddressID)

	// Login with the correct password.
	env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(storedUser, nil)
	env.repo.EXPECT().GetAddressByID(gomock.Any(), storedAddress.ID).Return(storedAddress, nil)

	resp, err = env.app.Test(jsonRequest(t, "POST", "/auth/login",
		dto.LoginInput{Username: "alice", Password: "password123"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Main St", decodeBody(t, resp)["user"].(map[string]any)["street_name"])

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	claims, err := env.tokenService.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, storedUser.ID, claims.UserID)

	// Login with the wrong password: failure, no cookie.
	env.repo.EXPECT().GetByUsername(gomock.Any(), "alice").Return(storedUser, nil)

	resp, err = env.app.Test(jsonRequest(t, "POST", "/auth/login",
		dto.LoginInput{Username: "alice", Password: "wrongpass"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))

	// Logout with the issued cookie.
	env.repo.EXPECT().GetByID(gomock.Any(), storedUser.ID).Return(storedUser, nil)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: constant.CookieName, Value: cookie.Value})
	resp, err = env.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, sessionCookie(resp))
	assert.Empty(t, sessionCookie(resp).Value)

	// Status without the cookie: anonymous again.
	resp, err = env.app.Test(httptest.NewRequest("GET", "/auth/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, false, decodeBody(t, resp)["isAuthenticated"])
}
