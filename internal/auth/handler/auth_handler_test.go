package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rosanadeaibes/my-notes/internal/auth/domain"
	"github.com/Rosanadeaibes/my-notes/internal/auth/dto"
	"github.com/Rosanadeaibes/my-notes/internal/auth/handler"
	"github.com/Rosanadeaibes/my-notes/internal/auth/service"
	"github.com/Rosanadeaibes/my-notes/internal/mocks"
	"github.com/Rosanadeaibes/my-notes/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(userService *service.UserService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	handler.RegisterRoutes(app, handler.NewAuthHandler(userService))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) response.Envelope {
	t.Helper()

	var env response.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	return env
}

func TestSignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 15, 300)
	app := newTestApp(service.NewUserService(mockRepo, tokenService))

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp := postJSON(t, app, "/auth/signup", dto.SignupInput{Email: "alice@x.com", Password: "secret123"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, fiber.StatusCreated, env.StatusCode)
		assert.Equal(t, "User created", env.Message)

		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@x.com", data["email"])
		assert.NotEmpty(t, data["id"])
		// The envelope never carries the password hash.
		assert.NotContains(t, data, "passwordHash")
		assert.NotContains(t, data, "password_hash")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "invalid input", env.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(&domain.User{ID: "existing"}, nil)

		resp := postJSON(t, app, "/auth/signup", dto.SignupInput{Email: "alice@x.com", Password: "secret123"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "User already exists", env.Message)
	})

	t.Run("multi-field validation lists each message", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/signup", dto.SignupInput{Email: "nope", Password: "x"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		messages, ok := env.Message.([]any)
		require.True(t, ok)
		assert.Len(t, messages, 2)
	})

	t.Run("repository failure is an internal error", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(nil, errors.New("db down"))

		resp := postJSON(t, app, "/auth/signup", dto.SignupInput{Email: "alice@x.com", Password: "secret123"})
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, fiber.StatusInternalServerError, env.StatusCode)
		assert.Contains(t, env.Message, "db down")
	})
}

func TestSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 15, 300)
	app := newTestApp(service.NewUserService(mockRepo, tokenService))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	storedUser := &domain.User{ID: "user-123", Email: "alice@x.com", PasswordHash: string(hash)}

	t.Run("success returns ids and both tokens", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(storedUser, nil)

		resp := postJSON(t, app, "/auth/signin", dto.SigninInput{Email: "alice@x.com", Password: "secret123"})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Sign in successful", env.Message)

		data, ok := env.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "user-123", data["id"])
		assert.Equal(t, "alice@x.com", data["email"])
		assert.NotEmpty(t, data["accessToken"])
		assert.NotEmpty(t, data["refreshToken"])
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(storedUser, nil)

		resp := postJSON(t, app, "/auth/signin", dto.SigninInput{Email: "alice@x.com", Password: "wrong-pass"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("unknown email yields the same error", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, nil)

		resp := postJSON(t, app, "/auth/signin", dto.SigninInput{Email: "ghost@x.com", Password: "secret123"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Invalid credentials", env.Message)
	})
}

func TestRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("access-secret", "refresh-secret", 15, 300)
	app := newTestApp(service.NewUserService(mockRepo, tokenService))

	t.Run("success", func(t *testing.T) {
		refreshToken, err := tokenService.Issue(service.KindRefresh, "user-123")
		require.NoError(t, err)

		resp := postJSON(t, app, "/auth/refresh-token", dto.RefreshInput{RefreshToken: refreshToken})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		data, ok := env.Data.(map[string]any)
		require.True(t, ok)

		accessToken, ok := data["accessToken"].(string)
		require.True(t, ok)

		userID, err := tokenService.Verify(service.KindAccess, accessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("missing token", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/refresh-token", dto.RefreshInput{})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Refresh token is required", env.Message)
	})

	t.Run("invalid token", func(t *testing.T) {
		resp := postJSON(t, app, "/auth/refresh-token", dto.RefreshInput{RefreshToken: "garbage"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "Unauthorized: Invalid token", env.Message)
	})
}
