package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/microfinance_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "microfinance-test"
)

func signToken(t *testing.T, subject, issuer string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/api/v1/loans/:loanID", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		ctxUserID, _ := middleware.GetUserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user": userID, "ctxUser": ctxUserID})
	})
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/loan-1", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret, testIssuer))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"valid token", signToken(t, "officer-1", testIssuer, time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"expired", signToken(t, "officer-1", testIssuer, -time.Hour), http.StatusUnauthorized},
		{"wrong issuer", signToken(t, "officer-1", "someone-else", time.Hour), http.StatusUnauthorized},
		{"missing subject", signToken(t, "", testIssuer, time.Hour), http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.token)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user":"officer-1","ctxUser":"officer-1"}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret, ""))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/loan-1", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(middleware.StructuredLoggingMiddleware(discardLogger()))

	w := get(r, "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/loan-1", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.AuthMiddleware(testSecret, ""), middleware.RateLimit(lim))

	alice := signToken(t, "alice", "", time.Hour)
	bob := signToken(t, "bob", "", time.Hour)

	assert.Equal(t, http.StatusOK, get(r, alice).Code)
	assert.Equal(t, http.StatusOK, get(r, alice).Code)
	limited := get(r, alice)
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "0", limited.Header().Get("X-RateLimit-Remaining"))

	// limits are per user
	assert.Equal(t, http.StatusOK, get(r, bob).Code)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("sixty per minute")
	assert.Error(t, err)
}

type recordingSink struct {
	events []string
	users  []string
}

func (s *recordingSink) IsInitialized() bool { return true }

func (s *recordingSink) Enqueue(distinctID string, event string, _ map[string]any) {
	s.users = append(s.users, distinctID)
	s.events = append(s.events, event)
}

func TestPosthogMiddleware(t *testing.T) {
	sink := &recordingSink{}
	r := newRouter(middleware.AuthMiddleware(testSecret, ""), middleware.PosthogMiddleware(sink))

	require.Equal(t, http.StatusOK, get(r, signToken(t, "officer-1", "", time.Hour)).Code)
	require.Equal(t, http.StatusUnauthorized, get(r, "").Code)

	assert.Equal(t, []string{"api_v1_loans_loanID"}, sink.events)
	assert.Equal(t, []string{"officer-1"}, sink.users)
}
