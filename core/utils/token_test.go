package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkr4m/actually-star-k9/core/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	m := NewTokenManager("test-secret")
	userID := uuid.New()

	token, err := m.Generate(userID, "keith@k9.com", constants.ScopeTokenAccess)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAndParse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "keith@k9.com", claims.Email)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager("test-secret")
	token, err := m.Generate(uuid.New(), "keith@k9.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	other := NewTokenManager("other-secret")
	_, err = other.ValidateAndParse(token)
	assert.Error(t, err)
}

func TestGetTokenFromHeader(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer abc123")
	c := e.NewContext(req, httptest.NewRecorder())

	token, err := GetTokenFromHeader(c)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	_, err = GetTokenFromHeader(c)
	assert.Error(t, err)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc123")
	c = e.NewContext(req, httptest.NewRecorder())
	_, err = GetTokenFromHeader(c)
	assert.Error(t, err)
}
