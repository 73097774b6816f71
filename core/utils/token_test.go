package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")
	defer viper.Set("JWT_SECRET", "")

	userID := uuid.New()
	token, err := GenerateToken(userID, constants.RoleVolunteer, constants.ScopeTokenAccess, time.Hour)
	require.NoError(t, err)

	claims, appErr := ValidateAndParseToken(token)
	require.Nil(t, appErr)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, constants.RoleVolunteer, claims.Role)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)
}

func TestExpiredTokenRejected(t *testing.T) {
	viper.Set("JWT_SECRET", "test-secret")
	defer viper.Set("JWT_SECRET", "")

	token, err := GenerateToken(uuid.New(), constants.RoleVolunteer, constants.ScopeTokenAccess, -time.Minute)
	require.NoError(t, err)

	_, appErr := ValidateAndParseToken(token)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrTokenExpired, appErr.Code)
}

func TestGetTokenFromHeader(t *testing.T) {
	e := echo.New()

	newContext := func(header string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	token, appErr := GetTokenFromHeader(newContext("Bearer abc.def.ghi"))
	require.Nil(t, appErr)
	assert.Equal(t, "abc.def.ghi", token)

	_, appErr = GetTokenFromHeader(newContext(""))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrMissingAuthorizationHeader, appErr.Code)

	_, appErr = GetTokenFromHeader(newContext("Basic dXNlcjpwYXNz"))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidTokenFormat, appErr.Code)
}
