package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestGenerateJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWT("64b2f8a1c9e77a0012345678", testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "64b2f8a1c9e77a0012345678", claims.UserID)

	expiry := time.Unix(claims.ExpiresAt, 0)
	assert.WithinDuration(t, time.Now().Add(TokenValidity), expiry, time.Minute)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("64b2f8a1c9e77a0012345678", testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	claims := &JwtCustomClaims{
		UserID: "64b2f8a1c9e77a0012345678",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-11 * 24 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func runJWTMiddleware(t *testing.T, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The user-existence lookup is only reached with a valid token, so
	// a nil database is fine for these rejection paths.
	err := JWTMiddleware(testSecret, nil)(okHandler)(c)
	require.NoError(t, err)
	return rec
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	rec := runJWTMiddleware(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	rec := runJWTMiddleware(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_MalformedToken(t *testing.T) {
	rec := runJWTMiddleware(t, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_TamperedToken(t *testing.T) {
	token, err := GenerateJWT("64b2f8a1c9e77a0012345678", "another-secret")
	require.NoError(t, err)

	rec := runJWTMiddleware(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserIDFromContext_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "", GetUserIDFromContext(c))
}
