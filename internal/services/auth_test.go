package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/closetshare/backend/internal/middleware"
	"github.com/go-redis/redismock/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userByUsernameQuery = "SELECT id, username, password_hash, credit_balance, created_at FROM users WHERE username = \\$1"

var userRowColumns = []string{"id", "username", "password_hash", "credit_balance", "created_at"}

func setupAuthConfig() {
	viper.Set("argon2.salt_length", 16)
	viper.Set("argon2.time", 1)
	viper.Set("argon2.memory", 64*1024)
	viper.Set("argon2.threads", 4)
	viper.Set("argon2.key_length", 32)
	viper.Set("jwt.secret_key", "test-secret")
	viper.Set("jwt.expiry_hours", 24)
}

func jsonRequest(method, target string, v interface{}) *http.Request {
	body, _ := json.Marshal(v)
	return httptest.NewRequest(method, target, bytes.NewBuffer(body))
}

func TestAuthService_Register(t *testing.T) {
	setupAuthConfig()

	t.Run("successful registration", func(t *testing.T) {
		st, mock := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		mock.ExpectQuery(userByUsernameQuery).WithArgs("janedoe").
			WillReturnRows(sqlmock.NewRows(userRowColumns))
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("janedoe", sqlmock.AnyArg(), 500, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		w := httptest.NewRecorder()
		service.Register(w, jsonRequest("POST", "/auth/register", RegisterRequest{Username: "janedoe", Password: "password123"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var response AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "janedoe", response.User.Username)
		assert.Equal(t, int64(500), response.User.CreditBalance)
		assert.NotContains(t, w.Body.String(), "password")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("username taken", func(t *testing.T) {
		st, mock := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		mock.ExpectQuery(userByUsernameQuery).WithArgs("janedoe").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "janedoe", "x", 500, fixedNow))

		w := httptest.NewRecorder()
		service.Register(w, jsonRequest("POST", "/auth/register", RegisterRequest{Username: "janedoe", Password: "password123"}))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("username too short", func(t *testing.T) {
		st, _ := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		w := httptest.NewRecorder()
		service.Register(w, jsonRequest("POST", "/auth/register", RegisterRequest{Username: "jane", Password: "password123"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		st, _ := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		w := httptest.NewRecorder()
		service.Register(w, httptest.NewRequest("POST", "/auth/register", bytes.NewBuffer([]byte("invalid"))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	setupAuthConfig()

	hashedPassword, err := hashPassword("password123")
	require.NoError(t, err)

	t.Run("successful login", func(t *testing.T) {
		st, mock := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		mock.ExpectQuery(userByUsernameQuery).WithArgs("janedoe").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "janedoe", hashedPassword, 320, fixedNow))

		w := httptest.NewRecorder()
		service.Login(w, jsonRequest("POST", "/auth/login", LoginRequest{Username: "janedoe", Password: "password123"}))

		assert.Equal(t, http.StatusOK, w.Code)
		var response AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(7), response.User.ID)
		assert.Equal(t, int64(320), response.User.CreditBalance)

		userID, err := parseTestToken(response.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		st, mock := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		mock.ExpectQuery(userByUsernameQuery).WithArgs("janedoe").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "janedoe", hashedPassword, 320, fixedNow))

		w := httptest.NewRecorder()
		service.Login(w, jsonRequest("POST", "/auth/login", LoginRequest{Username: "janedoe", Password: "wrongpassword"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		st, mock := newMockStore(t)
		service := NewAuthService(st, nil, 500)

		mock.ExpectQuery(userByUsernameQuery).WithArgs("nobody1").
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		w := httptest.NewRecorder()
		service.Login(w, jsonRequest("POST", "/auth/login", LoginRequest{Username: "nobody1", Password: "password123"}))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthService_GetUserAccount(t *testing.T) {
	st, mock := newMockStore(t)
	service := NewAuthService(st, nil, 500)

	mock.ExpectQuery("SELECT id, username, password_hash, credit_balance, created_at FROM users WHERE id = \\$1").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "janedoe", "secret", 320, fixedNow))

	r := httptest.NewRequest("GET", "/account", nil)
	r = r.WithContext(middleware.WithUserID(r.Context(), 7))
	w := httptest.NewRecorder()

	service.GetUserAccount(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"creditBalance":320`)
	assert.NotContains(t, w.Body.String(), "secret")

	t.Run("missing user id", func(t *testing.T) {
		w := httptest.NewRecorder()
		service.GetUserAccount(w, httptest.NewRequest("GET", "/account", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	setupAuthConfig()
	st, _ := newMockStore(t)
	rdb, mock := redismock.NewClientMock()
	service := NewAuthService(st, rdb, 500)

	mock.ExpectSet(middleware.BlacklistKey("abc.def.ghi"), "1", 24*time.Hour).SetVal("OK")

	r := httptest.NewRequest("POST", "/auth/logout", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")
	w := httptest.NewRecorder()

	service.Logout(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordHashing(t *testing.T) {
	setupAuthConfig()

	hash, err := hashPassword("password123")
	require.NoError(t, err)

	assert.True(t, verifyPassword("password123", hash))
	assert.False(t, verifyPassword("password124", hash))
	assert.False(t, verifyPassword("password123", "not-a-hash"))

	other, err := hashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salts differ")
}

func TestGenerateJWT(t *testing.T) {
	setupAuthConfig()

	token, err := generateJWT(42)
	require.NoError(t, err)

	userID, err := parseTestToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	viper.Set("jwt.secret_key", "")
	_, err = generateJWT(42)
	assert.Error(t, err)
	viper.Set("jwt.secret_key", "test-secret")
}

func parseTestToken(tokenString string) (int64, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		return 0, err
	}
	return int64(claims["user_id"].(float64)), nil
}

