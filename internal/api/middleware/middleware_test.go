package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohits-web03/resumehub/internal/apperr"
	"github.com/rohits-web03/resumehub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeResolver struct {
	user models.User
	err  error
}

func (f fakeResolver) Resolve(context.Context, string) (models.User, error) {
	return f.user, f.err
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		http.Error(w, "no user", http.StatusInternalServerError)
		return
	}
	_, _ = io.WriteString(w, user.Email)
}

func serve(t *testing.T, resolver SessionResolver, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	h := RequireSession(resolver, zap.NewNop())(http.HandlerFunc(echoUser))
	req := httptest.NewRequest(http.MethodGet, "/user/view", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireSession(t *testing.T) {
	jane := models.User{ID: "u1", Email: "jane@x.com"}
	token := &http.Cookie{Name: SessionCookie, Value: "tok"}

	tests := []struct {
		name     string
		resolver fakeResolver
		cookie   *http.Cookie
		status   int
		body     string
	}{
		{"no cookie", fakeResolver{user: jane}, nil, http.StatusUnauthorized, "Please login"},
		{"empty cookie", fakeResolver{user: jane}, &http.Cookie{Name: SessionCookie, Value: ""}, http.StatusUnauthorized, "Please login"},
		{"invalid session", fakeResolver{err: apperr.New(apperr.CodeInvalidSession, "token is expired")}, token, http.StatusBadRequest, "ERR: token is expired"},
		{"user gone", fakeResolver{err: apperr.ErrUserNotFound}, token, http.StatusBadRequest, "ERR: No user found"},
		{"storage down", fakeResolver{err: errors.New("db down")}, token, http.StatusInternalServerError, "ERR: db down"},
		{"ok", fakeResolver{user: jane}, token, http.StatusOK, "jane@x.com"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, tc.resolver, tc.cookie)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}

func TestLogger_RecordsStatusAndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/login", fields["path"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestLogger_GeneratesRequestID(t *testing.T) {
	h := Logger(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}
