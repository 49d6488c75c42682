// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/eye-test-server/internal/config"
	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/service"
	"github.com/MKhiriev/eye-test-server/internal/store"
	"github.com/MKhiriev/eye-test-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, config.Server{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validRegister is a convenience fixture used across multiple tests.
var validRegister = models.RegisterRequest{
	Email:    "alice@example.com",
	Password: "s3cret-password",
	Name:     "Alice",
}

var validLogin = models.LoginRequest{
	Email:    "alice@example.com",
	Password: "s3cret-password",
}

// ─────────────────────────────────────────────
// register — success
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created and a confirmation message, without issuing a token.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, _ string) (models.User, error) {
			u.UserID = 1
			u.Role = models.DefaultRole
			return u, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "user registered successfully")
	// registration never hands out a session: the client has to log in
	assert.Empty(t, rec.Header().Get("Authorization"))
	assert.NotContains(t, rec.Body.String(), "token")
}

// TestRegister_PasswordTravelsOutsideUserModel verifies that the plaintext
// password reaches the service as a separate argument, not inside the user
// model that later crosses the storage boundary.
func TestRegister_PasswordTravelsOutsideUserModel(t *testing.T) {
	var gotUser models.User
	var gotPassword string

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			gotUser = u
			gotPassword = password
			return u, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, validRegister.Email, gotUser.Email)
	assert.Equal(t, validRegister.Name, gotUser.Name)
	assert.Equal(t, validRegister.Password, gotPassword)
	assert.Empty(t, gotUser.PasswordHash)
}

// ─────────────────────────────────────────────
// register — invalid JSON
// ─────────────────────────────────────────────

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_EmptyBody verifies that an empty request body results in
// 400 Bad Request.
func TestRegister_EmptyBody(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// register — RegisterUser errors
// ─────────────────────────────────────────────

// TestRegister_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestRegister_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email, password and name are required")
}

// TestRegister_EmailAlreadyExists verifies that store.ErrEmailAlreadyExists
// maps to 409 Conflict.
func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

// TestRegister_UnexpectedError verifies that an unknown error from RegisterUser
// maps to 500 Internal Server Error.
func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// internals never leak into the response body
	assert.NotContains(t, rec.Body.String(), "db connection lost")
}

// TestRegister_WrappedEmailAlreadyExists verifies that a wrapped
// store.ErrEmailAlreadyExists is still matched via errors.Is.
func TestRegister_WrappedEmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, errors.Join(errors.New("outer"), store.ErrEmailAlreadyExists)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// login — success
// ─────────────────────────────────────────────

// TestLogin_Success verifies that a valid login request results in 200 OK
// with a JSON body carrying the signed token and the user's public profile.
func TestLogin_Success(t *testing.T) {
	const signedToken = "login.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email, Name: "Alice", Role: models.DefaultRole}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, models.DefaultRole, resp.User.Role)
}

// TestLogin_ResponseOmitsPasswordHash verifies that the serialised user
// profile never carries the stored password hash.
func TestLogin_ResponseOmitsPasswordHash(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: "$2a$10$secret-hash"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("t"), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "password")
}

// ─────────────────────────────────────────────
// login — invalid JSON
// ─────────────────────────────────────────────

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// ─────────────────────────────────────────────
// login — Login errors
// ─────────────────────────────────────────────

// TestLogin_InvalidDataProvided verifies that service.ErrInvalidDataProvided
// maps to 400 Bad Request.
func TestLogin_InvalidDataProvided(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email and password are required")
}

// TestLogin_UnknownEmailAndWrongPasswordLookAlike verifies that an unknown
// email and a wrong password produce byte-identical 401 responses, so the
// login endpoint cannot be used to enumerate registered accounts.
func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	run := func(loginErr error) *httptest.ResponseRecorder {
		auth := &mockAuthService{
			loginFn: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, loginErr
			},
		}

		h := newHandlerWithAuth(t, auth)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
		rec := httptest.NewRecorder()

		h.login(rec, req)
		return rec
	}

	unknownEmail := run(store.ErrUserNotFound)
	wrongPassword := run(service.ErrWrongPassword)

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
	assert.Contains(t, unknownEmail.Body.String(), "invalid email or password")
}

// TestLogin_UnexpectedError verifies that an unknown error from Login
// maps to 500 Internal Server Error.
func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("unexpected db error")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLogin_CreateTokenFails verifies that a token creation failure after
// successful credential verification maps to 500 Internal Server Error.
func TestLogin_CreateTokenFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 7, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing key unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLogin_WrappedWrongPassword verifies that a wrapped service.ErrWrongPassword
// is still matched via errors.Is.
func TestLogin_WrappedWrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.Join(errors.New("outer"), service.ErrWrongPassword)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
